/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dxfkit/dxfkit/pkg/codec"
	dxfenc "github.com/dxfkit/dxfkit/pkg/encoding"
	"github.com/dxfkit/dxfkit/pkg/reader"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print the tag stream of a DXF file",
	Long: `Print every (group code, value) record of a DXF file, one per line.
Binary and text form are detected automatically.

Example:
  dxfkit dump drawing.dxf
  dxfkit dump --codepage ANSI_1252 legacy.dxf`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		codePage, _ := cmd.Flags().GetString("codepage")
		max, _ := cmd.Flags().GetInt("max")

		if err := dumpFile(cmd.OutOrStdout(), args[0], codePage, max); err != nil {
			cmd.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().Int("max", 0, "Stop after this many records (0 = all)")
}

// dumpFile writes the tag stream of the file at path to w.
func dumpFile(w io.Writer, path, codePage string, max int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	enc, err := dxfenc.Lookup(codePage)
	if err != nil {
		return err
	}

	r, format, err := reader.ForBytes(data, enc)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "# format: %s\n", format)

	count := 0
	for max <= 0 || count < max {
		code, err := r.Advance()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		value, err := formatValue(r)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%5d  %-7s  %s\n", code, r.Kind(), value)
		count++
	}
	return nil
}

func formatValue(r reader.TagReader) (string, error) {
	switch r.Kind() {
	case codec.TypeString, codec.TypeComment:
		return r.String()
	case codec.TypeInt16:
		v, err := r.Int16()
		return fmt.Sprintf("%d", v), err
	case codec.TypeInt32:
		v, err := r.Int32()
		return fmt.Sprintf("%d", v), err
	case codec.TypeInt64:
		v, err := r.Int64()
		return fmt.Sprintf("%d", v), err
	case codec.TypeDouble:
		v, err := r.Double()
		return fmt.Sprintf("%g", v), err
	case codec.TypeBool:
		v, err := r.Bool()
		return fmt.Sprintf("%t", v), err
	case codec.TypeBytes:
		v, err := r.Bytes()
		return hex.EncodeToString(v), err
	case codec.TypeHandle:
		return r.Handle()
	}
	return "", fmt.Errorf("no value decoded")
}
