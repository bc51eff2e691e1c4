package regmap

import (
	"errors"

	"github.com/ezrec/regmap/translate"
)

var f = translate.From

var (
	// Cell errors
	ErrEmptyCell   = errors.New(f("empty cell"))
	ErrNotText     = errors.New(f("cell is not text"))
	ErrNotDownto   = errors.New(f("not a downto description"))
	ErrNoNotation  = errors.New(f("no bit notation matched"))
	ErrBitRange    = errors.New(f("bit position out of range"))
	ErrMissingName = errors.New(f("bit field name missing"))

	// Model errors
	ErrNoBitFields = errors.New(f("register has no bit fields"))
)

// ErrInvalidAddress reports an offset address cell in neither 0x nor 'h notation.
type ErrInvalidAddress struct {
	Register string
	Value    string
}

func (err ErrInvalidAddress) Error() string {
	return f("offset address of %v is invalid: '%v'", err.Register, err.Value)
}

// ErrInvalidAssignment reports an unusable bit assignment cell.
type ErrInvalidAssignment struct {
	BitField string
	Value    string
	Err      error
}

func (err ErrInvalidAssignment) Error() string {
	return f("assignment of %v is invalid: '%v': %v", err.BitField, err.Value, err.Err)
}

func (err ErrInvalidAssignment) Unwrap() error {
	return err.Err
}

// ErrOrdering reports a bit field row seen before any register row.
type ErrOrdering struct {
	BitField string
}

func (err ErrOrdering) Error() string {
	return f("bit field %v has no preceding register", err.BitField)
}

// ErrCellType reports a cell whose type cannot hold the attribute.
type ErrCellType struct {
	Attribute string
	Cell      Cell
}

func (err ErrCellType) Error() string {
	return f("%v cell has the wrong type: %v", f(err.Attribute), err.Cell.Text)
}

// ErrRegister reports an inconsistent register.
type ErrRegister struct {
	Register string
	Err      error
}

func (err ErrRegister) Error() string {
	return f("register %v: %v", err.Register, err.Err)
}

func (err ErrRegister) Unwrap() error {
	return err.Err
}

// ErrRow indicates the spreadsheet row of an error.
type ErrRow struct {
	RowNo int
	Err   error
}

func (err ErrRow) Error() string {
	return f("row %d: %v", err.RowNo, err.Err)
}

func (err ErrRow) Unwrap() error {
	return err.Err
}
