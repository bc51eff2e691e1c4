package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <sheet>...",
	Short: "Check register map sheets without writing them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			blk, err := loadBlock(path)
			if err != nil {
				return fmt.Errorf("%v: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v: %v: %d registers, %d bit fields\n",
				path, blk.Name, len(blk.Registers), blk.BitFieldCount())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
