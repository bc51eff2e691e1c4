package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/regmap/render"
)

var (
	format string
	output string
)

var convertCmd = &cobra.Command{
	Use:   "convert <sheet>",
	Short: "Convert a register map sheet to YAML or CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		blk, err := loadBlock(args[0])
		if err != nil {
			return fmt.Errorf("%v: %w", args[0], err)
		}

		outFormat := format
		if len(outFormat) == 0 {
			outFormat = "yaml"
			ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
			if slices.Contains(render.Formats, ext) {
				outFormat = ext
			}
		}

		// Render fully before touching the output file.
		var buf bytes.Buffer
		err = render.Write(&buf, outFormat, blk)
		if err != nil {
			return
		}

		if len(output) == 0 || output == "-" {
			_, err = buf.WriteTo(cmd.OutOrStdout())
			return
		}

		return os.WriteFile(output, buf.Bytes(), 0644)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&format, "format", "f", "", "Output format (yaml, csv); default from the output file extension")
	convertCmd.Flags().StringVarP(&output, "output", "o", "-", "Output file")
	rootCmd.AddCommand(convertCmd)
}
