package layout

import (
	"maps"
	"slices"
)

// Section names.
const (
	RegisterBlock = "register_block"
	Register      = "register"
	BitField      = "bit_field"
)

// Attribute names.
const (
	Name          = "name"
	ByteSize      = "byte_size"
	OffsetAddress = "offset_address"
	Assignment    = "assignment"
	Lsb           = "lsb"
	BitWidth      = "bitwidth"
	Type          = "type"
	InitialValue  = "initial_value"
	Reference     = "reference"
	Comment       = "comment"
)

// known lists the attributes of each section, in column order.
var known = map[string][]string{
	RegisterBlock: {Name, ByteSize},
	Register:      {Name, OffsetAddress},
	BitField:      {Name, Assignment, Lsb, BitWidth, Type, InitialValue, Reference, Comment},
}

// Location is a zero based sheet cell position.
type Location struct {
	Row int `yaml:"row" toml:"row"`
	Col int `yaml:"col" toml:"col"`
}

// Section maps attribute names to locations.
type Section map[string]Location

// Layout locates the register map attributes of a sheet.
type Layout struct {
	RegisterBlock Section `yaml:"register_block,omitempty" toml:"register_block,omitempty"`
	Register      Section `yaml:"register" toml:"register"`
	BitField      Section `yaml:"bit_field" toml:"bit_field"`
}

// Default returns the fixed layout of the block sheets: block name and
// byte size in column 1 of rows 0 and 1, attribute headers on row 3.
func Default() *Layout {
	header := 3
	return &Layout{
		RegisterBlock: Section{
			Name:     {Row: 0, Col: 1},
			ByteSize: {Row: 1, Col: 1},
		},
		Register: Section{
			Name:          {Row: header, Col: 1},
			OffsetAddress: {Row: header, Col: 2},
		},
		BitField: Section{
			Name:         {Row: header, Col: 3},
			Assignment:   {Row: header, Col: 4},
			Lsb:          {Row: header, Col: 5},
			BitWidth:     {Row: header, Col: 6},
			Type:         {Row: header, Col: 7},
			InitialValue: {Row: header, Col: 8},
			Reference:    {Row: header, Col: 9},
			Comment:      {Row: header, Col: 10},
		},
	}
}

// section returns the named section.
func (lay *Layout) section(name string) Section {
	switch name {
	case RegisterBlock:
		return lay.RegisterBlock
	case Register:
		return lay.Register
	case BitField:
		return lay.BitField
	}
	return nil
}

// HeaderRow returns the row of the attribute column headers.
func (lay *Layout) HeaderRow() int {
	return lay.Register[Name].Row
}

// Column returns the column of a register or bit field attribute.
func (lay *Layout) Column(section string, attribute string) (col int, ok bool) {
	loc, ok := lay.section(section)[attribute]
	if ok {
		col = loc.Col
	}
	return
}

// Validate checks that every attribute is known and well placed, and that
// all register and bit field headers share the header row.
func (lay *Layout) Validate() (err error) {
	for _, name := range []string{RegisterBlock, Register, BitField} {
		sec := lay.section(name)
		for _, attr := range slices.Sorted(maps.Keys(sec)) {
			if !slices.Contains(known[name], attr) {
				return &ErrAttributeUnknown{Section: name, Attribute: attr}
			}
			loc := sec[attr]
			if loc.Row < 0 || loc.Col < 0 {
				return &ErrLocation{Section: name, Attribute: attr, Location: loc}
			}
		}
	}

	for _, req := range []struct{ section, attr string }{
		{Register, Name},
		{Register, OffsetAddress},
		{BitField, Name},
	} {
		if _, ok := lay.section(req.section)[req.attr]; !ok {
			return &ErrAttributeMissing{Section: req.section, Attribute: req.attr}
		}
	}

	if _, ok := lay.BitField[Assignment]; !ok {
		_, lsb := lay.BitField[Lsb]
		_, width := lay.BitField[BitWidth]
		if !lsb || !width {
			return &ErrAttributeMissing{Section: BitField, Attribute: Assignment}
		}
	}

	header := lay.HeaderRow()
	columns := map[int]string{}
	for _, name := range []string{Register, BitField} {
		sec := lay.section(name)
		for _, attr := range known[name] {
			loc, ok := sec[attr]
			if !ok {
				continue
			}
			if loc.Row != header {
				return &ErrSchemaConsistency{Section: name, Attribute: attr, Row: loc.Row, Expected: header}
			}
			if other, ok := columns[loc.Col]; ok {
				return &ErrColumnShared{Section: name, Attribute: attr, Col: loc.Col, Other: other}
			}
			columns[loc.Col] = name + "." + attr
		}
	}

	return
}
