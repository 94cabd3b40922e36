/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	dxfenc "github.com/dxfkit/dxfkit/pkg/encoding"
	"github.com/dxfkit/dxfkit/pkg/index"
	"github.com/dxfkit/dxfkit/pkg/reader"
)

// handlesCmd represents the handles command
var handlesCmd = &cobra.Command{
	Use:   "handles <file>",
	Short: "Build a handle index over a DXF file",
	Long: `Scan a DXF file and index every entity handle (group code 5) and
dimension style handle (group code 105) with its position in the stream.

Example:
  dxfkit handles drawing.dxf --index ./index
  dxfkit handles drawing.dxf --index ./index --lookup 1AF`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		codePage, _ := cmd.Flags().GetString("codepage")
		indexDir, _ := cmd.Flags().GetString("index")
		lookup, _ := cmd.Flags().GetString("lookup")

		data, err := os.ReadFile(args[0])
		if err != nil {
			cmd.Printf("Error reading file: %v\n", err)
			os.Exit(1)
		}

		enc, err := dxfenc.Lookup(codePage)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		r, format, err := reader.ForBytes(data, enc)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		ix, err := index.Open(indexDir)
		if err != nil {
			cmd.Printf("Error opening index: %v\n", err)
			os.Exit(1)
		}
		defer ix.Close()

		n, err := ix.Build(r)
		if err != nil {
			cmd.Printf("Error indexing: %v\n", err)
			os.Exit(1)
		}
		cmd.Printf("Indexed %d handles from %s stream (session %s)\n", n, format, ix.Session())

		if lookup != "" {
			pos, ok, err := ix.Lookup(lookup)
			if err != nil {
				cmd.Printf("Error looking up handle: %v\n", err)
				os.Exit(1)
			}
			if !ok {
				cmd.Printf("Handle %s not found\n", lookup)
				return
			}
			cmd.Printf("Handle %s at position %d\n", lookup, pos)
		}
	},
}

func init() {
	rootCmd.AddCommand(handlesCmd)
	handlesCmd.Flags().String("index", "./index", "Directory for the index store")
	handlesCmd.Flags().String("lookup", "", "Handle to look up after indexing")
}
