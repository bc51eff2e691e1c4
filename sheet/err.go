package sheet

import (
	"github.com/ezrec/regmap/translate"
)

var f = translate.From

// ErrBlockAttribute reports an unreadable register block cell.
type ErrBlockAttribute struct {
	Attribute string
	Value     string
}

func (err ErrBlockAttribute) Error() string {
	return f("register block %v is invalid: '%v'", err.Attribute, err.Value)
}

// ErrSheetMissing reports a worksheet absent from the workbook.
type ErrSheetMissing string

func (err ErrSheetMissing) Error() string {
	return f("sheet %v not found", string(err))
}

// ErrFormat reports an input file of unknown format.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("input format '%v' unknown", string(err))
}
