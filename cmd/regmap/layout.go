package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the effective sheet layout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		lay, err := loadLayout()
		if err != nil {
			return
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		err = enc.Encode(lay)
		if err != nil {
			return
		}

		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
