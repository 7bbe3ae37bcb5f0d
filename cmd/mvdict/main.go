package main

import (
	"os"

	log "github.com/raz729/MultiValueDictionary/internal/logging"
)

func main() {
	rootCmd := newRootCmd()
	registerVersionCmd(rootCmd)
	registerDemoCmd(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Err(err).Msg("terminated with errors")
		os.Exit(1)
	}
}
