// Package cmd is for command line interactions with the shred application
package cmd

import (
	"log"

	"github.com/shredseq/shred/config"
	"github.com/spf13/cobra"
)

var settingsFile string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "shred",
	Short: `Simulate shotgun sequencing of a synthetic genome and rebuild
contigs from the reads with a k-mer de Bruijn graph`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	cobra.OnInitialize(func() { config.Setup(settingsFile) })

	RootCmd.PersistentFlags().StringVarP(&settingsFile, "settings", "s", "", "path to a YAML settings file")
}
