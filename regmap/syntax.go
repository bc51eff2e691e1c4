package regmap

import (
	"regexp"
	"strconv"
	"strings"
)

// Offset address notations: 0x<hex> and Verilog <width>'h<hex>.
var (
	addressLoose  = regexp.MustCompile(`^(?:0x|[0-9]+'h)([a-fA-F0-9_]+)`)
	addressStrict = regexp.MustCompile(`^(?:0x|[0-9]+'h)([a-fA-F0-9_]+)$`)
)

// Bit assignment notations: [hi:lo], hi:lo, [bit], bit.
var (
	rangeLoose   = regexp.MustCompile(`^\[?([0-9]+):([0-9]+)\]?`)
	rangeStrict  = regexp.MustCompile(`^\[?([0-9]+):([0-9]+)\]?$`)
	singleLoose  = regexp.MustCompile(`^\[?([0-9]+)\]?`)
	singleStrict = regexp.MustCompile(`^\[?([0-9]+)\]?$`)
)

// Syntax parses offset address and bit assignment cells.
//
// By default a notation only has to match at the start of the cell, and
// anything after it is ignored. Strict requires the whole cell to match,
// with balanced brackets.
type Syntax struct {
	Strict bool
}

// Address returns the hex digits of an offset address, underscores removed.
func (syn Syntax) Address(register string, value string) (hex string, err error) {
	re := addressLoose
	if syn.Strict {
		re = addressStrict
	}

	match := re.FindStringSubmatch(value)
	if match != nil {
		hex = strings.ReplaceAll(match[1], "_", "")
	}

	if len(hex) == 0 {
		err = &ErrInvalidAddress{Register: register, Value: value}
		return
	}

	return
}

// Assignment returns the bit assignment of a cell. The range notation is
// tried first, and is 'downto': most significant bit first.
func (syn Syntax) Assignment(bitField string, value string) (asn Assignment, err error) {
	defer func() {
		if err != nil {
			err = &ErrInvalidAssignment{BitField: bitField, Value: value, Err: err}
		}
	}()

	if len(value) == 0 {
		err = ErrEmptyCell
		return
	}

	reRange, reSingle := rangeLoose, singleLoose
	if syn.Strict {
		if strings.HasPrefix(value, "[") != strings.HasSuffix(value, "]") {
			err = ErrNoNotation
			return
		}
		reRange, reSingle = rangeStrict, singleStrict
	}

	if match := reRange.FindStringSubmatch(value); match != nil {
		var hi, lo int
		hi, err = bitPosition(match[1])
		if err != nil {
			return
		}
		lo, err = bitPosition(match[2])
		if err != nil {
			return
		}
		if hi < lo {
			err = ErrNotDownto
			return
		}
		asn = Assignment{Lsb: lo, Width: hi - lo + 1}
		return
	}

	if match := reSingle.FindStringSubmatch(value); match != nil {
		var bit int
		bit, err = bitPosition(match[1])
		if err != nil {
			return
		}
		asn = Assignment{Lsb: bit, Width: 1}
		return
	}

	err = ErrNoNotation
	return
}

// LsbWidth returns the bit assignment given as separate lsb and bit width cells.
func (syn Syntax) LsbWidth(bitField string, lsb string, width string) (asn Assignment, err error) {
	defer func() {
		if err != nil {
			err = &ErrInvalidAssignment{BitField: bitField, Value: lsb + "/" + width, Err: err}
		}
	}()

	asn.Lsb, err = bitPosition(lsb)
	if err != nil {
		return
	}
	asn.Width, err = bitPosition(width)
	if err != nil {
		return
	}
	if asn.Width < 1 {
		err = ErrBitRange
		return
	}

	return
}

// bitPosition parses a decimal bit position.
func bitPosition(digits string) (bit int, err error) {
	v, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		err = ErrBitRange
		return
	}
	bit = int(v)
	return
}
