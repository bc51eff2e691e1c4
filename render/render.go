// Package render writes register blocks as YAML or CSV.
package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/regmap/layout"
	"github.com/ezrec/regmap/regmap"
)

// Formats lists the output formats of Write.
var Formats = []string{"yaml", "csv"}

// Write validates the block, and writes it in the named format.
func Write(w io.Writer, format string, blk *regmap.RegisterBlock) (err error) {
	err = blk.Validate()
	if err != nil {
		return
	}

	switch format {
	case "yaml", "yml":
		return YAML(w, blk)
	case "csv":
		return CSV(w, blk)
	}

	return ErrFormat(format)
}

// YAML writes the structural dump of the block.
func YAML(w io.Writer, blk *regmap.RegisterBlock) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err = enc.Encode(blk)
	if err != nil {
		return
	}

	return enc.Close()
}

// CSVLayout returns the layout of the sheets written by CSV.
func CSVLayout() *layout.Layout {
	header := 2
	return &layout.Layout{
		RegisterBlock: layout.Section{
			layout.Name:     {Row: 0, Col: 1},
			layout.ByteSize: {Row: 1, Col: 1},
		},
		Register: layout.Section{
			layout.Name:          {Row: header, Col: 0},
			layout.OffsetAddress: {Row: header, Col: 1},
		},
		BitField: layout.Section{
			layout.Name:         {Row: header, Col: 2},
			layout.Assignment:   {Row: header, Col: 3},
			layout.Type:         {Row: header, Col: 4},
			layout.InitialValue: {Row: header, Col: 5},
			layout.Reference:    {Row: header, Col: 6},
			layout.Comment:      {Row: header, Col: 7},
		},
	}
}

// CSV writes the block in spreadsheet shape: block cells, a header row,
// then one row per bit field, with the register cells on the first row
// of each register only.
func CSV(w io.Writer, blk *regmap.RegisterBlock) (err error) {
	lay := CSVLayout()
	out := csv.NewWriter(w)

	err = out.Write([]string{"block_name", blk.Name})
	if err != nil {
		return
	}
	err = out.Write([]string{layout.ByteSize, strconv.Itoa(blk.ByteSize)})
	if err != nil {
		return
	}

	header := []string{
		"register_name", "offset_address",
		"bit_field_name", "assignment", "type", "initial_value", "reference", "comment",
	}
	err = out.Write(header)
	if err != nil {
		return
	}

	for row := range blk.Rows() {
		record := make([]string, len(header))
		for _, cell := range []struct {
			section, attr string
			cell          regmap.Cell
		}{
			{layout.Register, layout.Name, row.RegisterName},
			{layout.Register, layout.OffsetAddress, row.OffsetAddress},
			{layout.BitField, layout.Name, row.BitFieldName},
			{layout.BitField, layout.Assignment, row.Assignment},
			{layout.BitField, layout.Type, row.Type},
			{layout.BitField, layout.InitialValue, row.InitialValue},
			{layout.BitField, layout.Reference, row.Reference},
			{layout.BitField, layout.Comment, row.Comment},
		} {
			col, _ := lay.Column(cell.section, cell.attr)
			record[col] = cell.cell.Text
		}
		err = out.Write(record)
		if err != nil {
			return
		}
	}

	out.Flush()
	return out.Error()
}
