/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dxfkit",
	Short: "dxfkit - DXF tag-stream toolkit",
	Long: `dxfkit decodes DXF drawing-exchange files, binary or text form,
into their flat (group code, value) record streams.

It can dump tag streams, build a persistent handle index over a file,
and serve an HTTP inspection API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("codepage", "", "Code page for text fields in binary files (e.g. ANSI_1252, default UTF-8)")
}
