package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/jzelinskie/cobrautil/v2/cobrazerolog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	log "github.com/raz729/MultiValueDictionary/internal/logging"
	"github.com/raz729/MultiValueDictionary/internal/repl"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mvdict",
		Short: "An interactive multi-value dictionary",
		Long:  "An in-memory dictionary where each key holds a set of distinct members, driven by line-oriented commands.",
		Example: fmt.Sprintf(`	%s:
		mvdict

	%s:
		mvdict demo`,
			color.YellowString("Interactive session"),
			color.GreenString("Scripted demonstration"),
		),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrazerolog.New(
				cobrazerolog.WithTarget(func(logger zerolog.Logger) {
					log.SetGlobalLogger(logger)
				}),
			).RunE(),
		),
		RunE: rootRun,
	}

	cobrazerolog.New().RegisterFlags(rootCmd.PersistentFlags())
	return rootCmd
}

func rootRun(cmd *cobra.Command, args []string) error {
	log.Info().Msg("starting interactive session, type HELP for a list of commands")

	session := repl.NewSession(cmd.OutOrStdout())
	return session.Run(cmd.Context(), cmd.InOrStdin())
}
