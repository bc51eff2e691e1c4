package regmap

import (
	"strings"
)

//go:generate go tool stringer -type=CellKind -trimprefix=Cell

// CellKind classifies the content of a spreadsheet cell.
type CellKind int

const (
	CellEmpty  CellKind = iota // Blank, or whitespace only.
	CellString                 // Text.
	CellOther                  // Numbers, dates, booleans, errors.
)

// Cell is a single spreadsheet cell value.
type Cell struct {
	Kind CellKind
	Text string // Display text, with surrounding whitespace removed.
}

// StringCell returns a text cell, or an empty cell for blank text.
func StringCell(text string) Cell {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return Cell{}
	}
	return Cell{Kind: CellString, Text: text}
}

// OtherCell returns a non-text cell displayed as text.
func OtherCell(text string) Cell {
	cell := StringCell(text)
	if cell.Kind == CellString {
		cell.Kind = CellOther
	}
	return cell
}

// Empty returns true if the cell holds nothing.
func (c Cell) Empty() bool {
	return c.Kind == CellEmpty
}

// Row is one spreadsheet row of register map attributes.
type Row struct {
	RowNo int // Spreadsheet row number (1-based), zero if unknown.

	RegisterName  Cell
	OffsetAddress Cell
	BitFieldName  Cell
	Assignment    Cell
	Lsb           Cell
	BitWidth      Cell
	Type          Cell
	InitialValue  Cell
	Reference     Cell
	Comment       Cell
}

// Blank returns true if every cell of the row is empty.
func (row *Row) Blank() bool {
	for _, cell := range []Cell{
		row.RegisterName, row.OffsetAddress, row.BitFieldName, row.Assignment,
		row.Lsb, row.BitWidth, row.Type, row.InitialValue, row.Reference, row.Comment,
	} {
		if !cell.Empty() {
			return false
		}
	}
	return true
}
