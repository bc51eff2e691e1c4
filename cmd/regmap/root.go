package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ezrec/regmap/layout"
	"github.com/ezrec/regmap/regmap"
	"github.com/ezrec/regmap/sheet"
)

var (
	layoutPath string
	sheetName  string
	strict     bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "regmap",
	Short: "Register map spreadsheet converter",
	Long: `regmap reads a register map sheet (.xlsx or .csv), checks every
register and bit field row, and writes the register block as YAML or CSV.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&layoutPath, "layout", "l", "", "Layout document (.yml, .toml, .star); default is the built-in layout")
	rootCmd.PersistentFlags().StringVarP(&sheetName, "sheet", "s", "", "Worksheet name; default is the first sheet")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Require cells to match a notation completely")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
}

// loadLayout returns the layout selected on the command line.
func loadLayout() (lay *layout.Layout, err error) {
	if len(layoutPath) == 0 {
		lay = layout.Default()
		return
	}

	lay, err = layout.Load(layoutPath)
	if err != nil {
		return
	}

	if verbose {
		log.Printf("%v: header row %d\n", layoutPath, lay.HeaderRow())
	}

	return
}

// loadBlock builds the register block of a sheet file.
func loadBlock(path string) (blk *regmap.RegisterBlock, err error) {
	lay, err := loadLayout()
	if err != nil {
		return
	}

	sh, err := sheet.Open(path, sheetName)
	if err != nil {
		return
	}

	b := &regmap.Builder{
		Syntax:  regmap.Syntax{Strict: strict},
		Verbose: verbose,
	}

	return sh.RegisterBlock(b, lay)
}
