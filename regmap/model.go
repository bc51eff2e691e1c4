package regmap

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/regmap/internal"
)

// Assignment is the bit range a bit field occupies in its register.
type Assignment struct {
	Lsb   int `yaml:"lsb"`
	Width int `yaml:"width"`
}

// Msb returns the most significant bit of the assignment.
func (asn Assignment) Msb() int {
	return asn.Lsb + asn.Width - 1
}

// String returns the assignment in [msb:lsb] or [bit] notation.
func (asn Assignment) String() string {
	if asn.Width == 1 {
		return fmt.Sprintf("[%d]", asn.Lsb)
	}
	return fmt.Sprintf("[%d:%d]", asn.Msb(), asn.Lsb)
}

// Value is a cell value kept as written in the spreadsheet.
type Value string

var yamlInt = regexp.MustCompile(`^(?:-?(?:0|[1-9][0-9]*)|0x[0-9a-fA-F]+|0o[0-7]+)$`)

// MarshalYAML writes integer literals as YAML integers, keeping their notation.
func (v Value) MarshalYAML() (any, error) {
	if yamlInt.MatchString(string(v)) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: string(v)}, nil
	}
	return string(v), nil
}

// BitField is a named range of bits within a register.
type BitField struct {
	Name         string     `yaml:"name"`
	Assignment   Assignment `yaml:"assignment"`
	Type         string     `yaml:"type"`
	InitialValue Value      `yaml:"initial_value"`
	Reference    string     `yaml:"reference,omitempty"`
	Comment      string     `yaml:"comment"`
}

// Register is an addressable unit of bit fields.
type Register struct {
	Name          string     `yaml:"name"`
	OffsetAddress string     `yaml:"offset_address"` // Hex digits, no prefix.
	BitFields     []BitField `yaml:"bit_field"`
}

// Offset returns the numeric byte offset of the register.
func (reg *Register) Offset() (offset uint64, err error) {
	offset, err = strconv.ParseUint(reg.OffsetAddress, 16, 64)
	if err != nil {
		err = &ErrInvalidAddress{Register: reg.Name, Value: reg.OffsetAddress}
	}
	return
}

// Validate checks a register assembled outside of a Builder.
func (reg *Register) Validate() (err error) {
	if _, err = reg.Offset(); err != nil {
		return
	}

	if len(reg.BitFields) == 0 {
		return &ErrRegister{Register: reg.Name, Err: ErrNoBitFields}
	}

	for _, bf := range reg.BitFields {
		if len(bf.Name) == 0 {
			return &ErrRegister{Register: reg.Name, Err: ErrMissingName}
		}
		if bf.Assignment.Lsb < 0 || bf.Assignment.Width < 1 {
			return &ErrInvalidAssignment{BitField: bf.Name, Value: bf.Assignment.String(), Err: ErrBitRange}
		}
	}

	return
}

// Rows returns the register as the spreadsheet rows it was built from:
// the register cells on the first row only, one row per bit field.
func (reg *Register) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for n, bf := range reg.BitFields {
			row := Row{
				BitFieldName: StringCell(bf.Name),
				Assignment:   StringCell(bf.Assignment.String()),
				Type:         StringCell(bf.Type),
				InitialValue: StringCell(string(bf.InitialValue)),
				Reference:    StringCell(bf.Reference),
				Comment:      StringCell(bf.Comment),
			}
			if n == 0 {
				row.RegisterName = StringCell(reg.Name)
				row.OffsetAddress = StringCell("0x" + reg.OffsetAddress)
			}
			if !yield(row) {
				return
			}
		}
	}
}

// RegisterBlock is a named group of registers.
type RegisterBlock struct {
	Name      string     `yaml:"name"`
	ByteSize  int        `yaml:"byte_size"`
	Registers []Register `yaml:"register"`
}

// Validate checks every register of the block.
func (blk *RegisterBlock) Validate() (err error) {
	for n := range blk.Registers {
		err = blk.Registers[n].Validate()
		if err != nil {
			return
		}
	}
	return
}

// Rows returns the rows of all registers, in order.
func (blk *RegisterBlock) Rows() iter.Seq[Row] {
	seqs := make([]iter.Seq[Row], 0, len(blk.Registers))
	for n := range blk.Registers {
		seqs = append(seqs, blk.Registers[n].Rows())
	}
	return internal.Concat(seqs...)
}

// BitFieldCount returns the number of bit fields in the block.
func (blk *RegisterBlock) BitFieldCount() (count int) {
	for _, reg := range blk.Registers {
		count += len(reg.BitFields)
	}
	return
}
