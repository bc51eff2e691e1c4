// Package regmap turns spreadsheet rows describing a hardware register map
// into registers and bit fields.
//
// Each Row carries the cells of one spreadsheet row. A row whose register
// name cell holds text starts a new Register; every row, the first one
// included, contributes one BitField to the current Register. Offset
// addresses are written as 0x10 or 8'h10, bit assignments as [7:4], 7:4,
// [5] or 5.
package regmap
