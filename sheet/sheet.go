// Package sheet reads register map sheets from CSV and XLSX files.
package sheet

import (
	"iter"
	"strconv"

	"github.com/ezrec/regmap/internal"
	"github.com/ezrec/regmap/layout"
	"github.com/ezrec/regmap/regmap"
)

// Sheet is a named grid of cells. Rows and columns count from zero.
type Sheet struct {
	Name  string
	Cells [][]regmap.Cell
}

// Cell returns the cell at a position; cells outside the grid are empty.
func (sh *Sheet) Cell(row int, col int) regmap.Cell {
	if row < 0 || row >= len(sh.Cells) {
		return regmap.Cell{}
	}
	cells := sh.Cells[row]
	if col < 0 || col >= len(cells) {
		return regmap.Cell{}
	}
	return cells[col]
}

// Rows returns the data rows below the layout's header row, skipping rows
// with no content in any mapped column.
func (sh *Sheet) Rows(lay *layout.Layout) iter.Seq[regmap.Row] {
	var rows iter.Seq[regmap.Row] = func(yield func(regmap.Row) bool) {
		for r := lay.HeaderRow() + 1; r < len(sh.Cells); r++ {
			at := func(section string, attribute string) regmap.Cell {
				col, ok := lay.Column(section, attribute)
				if !ok {
					return regmap.Cell{}
				}
				return sh.Cell(r, col)
			}

			row := regmap.Row{
				RowNo:         r + 1,
				RegisterName:  at(layout.Register, layout.Name),
				OffsetAddress: at(layout.Register, layout.OffsetAddress),
				BitFieldName:  at(layout.BitField, layout.Name),
				Assignment:    at(layout.BitField, layout.Assignment),
				Lsb:           at(layout.BitField, layout.Lsb),
				BitWidth:      at(layout.BitField, layout.BitWidth),
				Type:          at(layout.BitField, layout.Type),
				InitialValue:  at(layout.BitField, layout.InitialValue),
				Reference:     at(layout.BitField, layout.Reference),
				Comment:       at(layout.BitField, layout.Comment),
			}
			if !yield(row) {
				return
			}
		}
	}

	return internal.Filter(rows, func(row regmap.Row) bool { return !row.Blank() })
}

// Block returns the register block name and byte size cells. Without a
// name cell the sheet name is used; without a byte size cell it is zero.
func (sh *Sheet) Block(lay *layout.Layout) (name string, byteSize int, err error) {
	name = sh.Name
	if loc, ok := lay.RegisterBlock[layout.Name]; ok {
		if cell := sh.Cell(loc.Row, loc.Col); !cell.Empty() {
			name = cell.Text
		}
	}

	if loc, ok := lay.RegisterBlock[layout.ByteSize]; ok {
		cell := sh.Cell(loc.Row, loc.Col)
		if cell.Empty() {
			return
		}
		var size int64
		size, err = strconv.ParseInt(cell.Text, 0, 32)
		if err != nil || size < 0 {
			err = &ErrBlockAttribute{Attribute: layout.ByteSize, Value: cell.Text}
			return
		}
		byteSize = int(size)
	}

	return
}

// RegisterBlock builds the register block of the sheet.
func (sh *Sheet) RegisterBlock(b *regmap.Builder, lay *layout.Layout) (blk *regmap.RegisterBlock, err error) {
	name, byteSize, err := sh.Block(lay)
	if err != nil {
		return
	}

	return b.BuildBlock(name, byteSize, sh.Rows(lay))
}
