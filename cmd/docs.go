package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd regenerates the Markdown docs for every command
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for the shred commands",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.Flags().GetString("out")
		if err := doc.GenMarkdownTree(RootCmd, out); err != nil {
			log.Fatalf("failed to generate docs: %v", err)
		}
	},
}

// set flags
func init() {
	RootCmd.AddCommand(docsCmd)

	docsCmd.Flags().StringP("out", "o", "./docs", "directory to write the Markdown files to")
}
