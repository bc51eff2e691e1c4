// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package regmap

import (
	"iter"
	"log"
)

// Builder groups spreadsheet rows into registers.
//
// A Builder holds no state between calls to Build, and can be reused.
type Builder struct {
	Syntax       // Cell notation rules.
	Verbose bool // If set, verbosely logs the registers built.
}

// Build consumes the rows in spreadsheet order. A row with text in its
// register name cell starts a new register; every row appends one bit field
// to the current register. The first error aborts the build, and no
// registers are returned.
func (b *Builder) Build(rows iter.Seq[Row]) (registers []Register, err error) {
	var row Row
	var rowno int

	defer func() {
		if err != nil {
			registers = nil
			if row.RowNo != 0 {
				rowno = row.RowNo
			}
			err = &ErrRow{RowNo: rowno, Err: err}
		}
	}()

	current := -1
	for row = range rows {
		rowno++

		switch row.RegisterName.Kind {
		case CellString:
			var reg Register
			reg, err = b.register(&row)
			if err != nil {
				return
			}
			registers = append(registers, reg)
			current = len(registers) - 1
			if b.Verbose {
				log.Printf("%v: register %v @ 0x%v\n", rowno, reg.Name, reg.OffsetAddress)
			}
		case CellOther:
			err = &ErrCellType{Attribute: "register name", Cell: row.RegisterName}
			return
		}

		if current < 0 {
			err = &ErrOrdering{BitField: row.BitFieldName.Text}
			return
		}

		var bf BitField
		bf, err = b.bitField(&row)
		if err != nil {
			return
		}

		reg := &registers[current]
		reg.BitFields = append(reg.BitFields, bf)
		if b.Verbose {
			log.Printf("%v:   %v %v\n", rowno, bf.Name, bf.Assignment)
		}
	}

	return
}

// register starts a register from the register cells of a row.
func (b *Builder) register(row *Row) (reg Register, err error) {
	reg.Name = row.RegisterName.Text
	if row.OffsetAddress.Kind == CellOther {
		err = &ErrInvalidAddress{Register: reg.Name, Value: row.OffsetAddress.Text}
		return
	}
	reg.OffsetAddress, err = b.Address(reg.Name, row.OffsetAddress.Text)
	return
}

// bitField makes a bit field from the bit field cells of a row.
func (b *Builder) bitField(row *Row) (bf BitField, err error) {
	bf.Name = row.BitFieldName.Text
	if len(bf.Name) == 0 {
		err = ErrMissingName
		return
	}

	// Bit notations are only read from text cells.
	switch {
	case row.Assignment.Empty() && !row.Lsb.Empty() && !row.BitWidth.Empty():
		if row.Lsb.Kind == CellOther || row.BitWidth.Kind == CellOther {
			err = &ErrInvalidAssignment{BitField: bf.Name, Value: row.Lsb.Text + "/" + row.BitWidth.Text, Err: ErrNotText}
			return
		}
		bf.Assignment, err = b.LsbWidth(bf.Name, row.Lsb.Text, row.BitWidth.Text)
	case row.Assignment.Kind == CellOther:
		err = &ErrInvalidAssignment{BitField: bf.Name, Value: row.Assignment.Text, Err: ErrNotText}
	default:
		bf.Assignment, err = b.Assignment(bf.Name, row.Assignment.Text)
	}
	if err != nil {
		return
	}

	bf.Type = row.Type.Text
	bf.InitialValue = Value(row.InitialValue.Text)
	bf.Reference = row.Reference.Text
	bf.Comment = row.Comment.Text

	return
}

// BuildBlock builds the registers of a named register block.
func (b *Builder) BuildBlock(name string, byteSize int, rows iter.Seq[Row]) (blk *RegisterBlock, err error) {
	registers, err := b.Build(rows)
	if err != nil {
		return
	}

	blk = &RegisterBlock{
		Name:      name,
		ByteSize:  byteSize,
		Registers: registers,
	}

	return
}
