package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	log "github.com/raz729/MultiValueDictionary/internal/logging"
	"github.com/raz729/MultiValueDictionary/pkg/genutil"
	"github.com/raz729/MultiValueDictionary/pkg/genutil/mapz"
	"github.com/raz729/MultiValueDictionary/pkg/genutil/slicez"
)

func registerDemoCmd(rootCmd *cobra.Command) {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "runs a scripted demonstration of the dictionary",
		RunE:  demoRun,
	}
	demoCmd.Flags().Int("capacity", 8, "capacity hint for the number of keys")
	rootCmd.AddCommand(demoCmd)
}

func demoRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	capacity, err := cmd.Flags().GetInt("capacity")
	if err != nil {
		return err
	}
	dict := mapz.NewMultiValueDictionaryWithCap[string, string](genutil.MustEnsureUInt32(capacity))

	samples := []mapz.Pair[string, string]{
		{Key: "fruits", Value: "apple"},
		{Key: "fruits", Value: "banana"},
		{Key: "fruits", Value: "apple"},
		{Key: "veggies", Value: "carrot"},
		{Key: "veggies", Value: "celery"},
		{Key: "grains", Value: "rice"},
	}

	fmt.Fprintln(out, color.New(color.Bold).Sprint("Loading sample data"))
	for _, sample := range samples {
		added := dict.Add(sample.Key, sample.Value)
		log.Debug().Str("key", sample.Key).Str("member", sample.Value).Bool("added", added).Msg("loaded sample")
		fmt.Fprintf(out, "  ADD %s %s -> %v\n", sample.Key, sample.Value, added)
	}

	distinct := slicez.Unique(slicez.Map(samples, func(p mapz.Pair[string, string]) string {
		return p.Key
	}))
	fmt.Fprintf(out, "\nSample data spans %d distinct keys: %s\n", len(distinct), strings.Join(distinct, ", "))

	fmt.Fprintln(out, color.New(color.Bold).Sprint("\nAll items"))
	for key, member := range dict.All() {
		fmt.Fprintf(out, "  %s: %s\n", key, member)
	}

	fmt.Fprintf(out, "\n%d keys, %d members\n", dict.Len(), dict.NumValues())
	return nil
}
