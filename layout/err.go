package layout

import (
	"github.com/ezrec/regmap/translate"
)

var f = translate.From

// ErrSchemaConsistency reports an attribute column whose header is not on
// the shared header row.
type ErrSchemaConsistency struct {
	Section   string
	Attribute string
	Row       int
	Expected  int
}

func (err ErrSchemaConsistency) Error() string {
	return f("%v.%v is declared at row %d, expected %d", err.Section, err.Attribute, err.Row, err.Expected)
}

// ErrAttributeUnknown reports an attribute the section does not have.
type ErrAttributeUnknown struct {
	Section   string
	Attribute string
}

func (err ErrAttributeUnknown) Error() string {
	return f("%v.%v is not a known attribute", err.Section, err.Attribute)
}

// ErrAttributeMissing reports a required attribute with no location.
type ErrAttributeMissing struct {
	Section   string
	Attribute string
}

func (err ErrAttributeMissing) Error() string {
	return f("%v.%v is required", err.Section, err.Attribute)
}

// ErrLocation reports a negative row or column.
type ErrLocation struct {
	Section   string
	Attribute string
	Location  Location
}

func (err ErrLocation) Error() string {
	return f("%v.%v has an invalid location (%d, %d)", err.Section, err.Attribute, err.Location.Row, err.Location.Col)
}

// ErrColumnShared reports two attributes mapped to the same column.
type ErrColumnShared struct {
	Section   string
	Attribute string
	Col       int
	Other     string
}

func (err ErrColumnShared) Error() string {
	return f("%v.%v shares column %d with %v", err.Section, err.Attribute, err.Col, err.Other)
}

// ErrFormat reports a layout document of unknown format.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("layout format '%v' unknown", string(err))
}
