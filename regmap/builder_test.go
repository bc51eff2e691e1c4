package regmap

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ezrec/regmap/translate"
)

// row makes a Row from text cells, in spreadsheet column order.
func row(register, offset, name, assignment, typ, initial, comment string) Row {
	return Row{
		RegisterName:  StringCell(register),
		OffsetAddress: StringCell(offset),
		BitFieldName:  StringCell(name),
		Assignment:    StringCell(assignment),
		Type:          StringCell(typ),
		InitialValue:  StringCell(initial),
		Comment:       StringCell(comment),
	}
}

func TestBuilder_Register(t *testing.T) {
	assert := assert.New(t)

	rows := []Row{
		row("REG0", "0x10", "f0", "[3:0]", "RW", "0", ""),
		row("", "", "f1", "[7:4]", "RO", "4", "upper nibble"),
	}

	b := &Builder{}
	registers, err := b.Build(slices.Values(rows))
	require.NoError(t, err)

	expected := []Register{
		{
			Name:          "REG0",
			OffsetAddress: "10",
			BitFields: []BitField{
				{Name: "f0", Assignment: Assignment{Lsb: 0, Width: 4}, Type: "RW", InitialValue: "0"},
				{Name: "f1", Assignment: Assignment{Lsb: 4, Width: 4}, Type: "RO", InitialValue: "4", Comment: "upper nibble"},
			},
		},
	}
	assert.Equal(expected, registers)
}

func TestBuilder_VerilogOffset(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	registers, err := b.Build(slices.Values([]Row{
		row("REG", "8'hA_1", "f", "5", "RW", "0", ""),
	}))
	require.NoError(t, err)
	require.Len(t, registers, 1)

	assert.Equal("A1", registers[0].OffsetAddress)
	assert.Equal(Assignment{Lsb: 5, Width: 1}, registers[0].BitFields[0].Assignment)
}

func TestBuilder_Order(t *testing.T) {
	assert := assert.New(t)

	var rows []Row
	for r := range 3 {
		for n := range 8 {
			reg, offset := "", ""
			if n == 0 {
				reg = fmt.Sprintf("REG%d", r)
				offset = fmt.Sprintf("0x%x", r*4)
			}
			rows = append(rows, row(reg, offset, fmt.Sprintf("f%d", n), fmt.Sprintf("%d", n), "RW", "0", ""))
		}
	}

	b := &Builder{}
	registers, err := b.Build(slices.Values(rows))
	require.NoError(t, err)
	require.Len(t, registers, 3)

	for r, reg := range registers {
		assert.Equal(fmt.Sprintf("REG%d", r), reg.Name)
		assert.Equal(fmt.Sprintf("%x", r*4), reg.OffsetAddress)
		if assert.Len(reg.BitFields, 8) {
			for n, bf := range reg.BitFields {
				assert.Equal(fmt.Sprintf("f%d", n), bf.Name)
				assert.Equal(n, bf.Assignment.Lsb)
			}
		}
	}
}

func TestBuilder_Ordering(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	registers, err := b.Build(slices.Values([]Row{
		row("", "", "orphan", "[0]", "RW", "0", ""),
		row("REG", "0x0", "f", "[1]", "RW", "0", ""),
	}))
	assert.Nil(registers)

	var ordering *ErrOrdering
	if assert.True(errors.As(err, &ordering)) {
		assert.Equal("orphan", ordering.BitField)
	}

	var at *ErrRow
	if assert.True(errors.As(err, &at)) {
		assert.Equal(1, at.RowNo)
	}
}

func TestBuilder_InvalidAssignment(t *testing.T) {
	assert := assert.New(t)

	rows := []Row{
		row("REG", "0x0", "a", "[3:0]", "RW", "0", ""),
		row("", "", "b", "9:12", "RW", "0", ""),
	}
	rows[1].RowNo = 17

	b := &Builder{}
	registers, err := b.Build(slices.Values(rows))
	assert.Nil(registers)
	assert.ErrorIs(err, ErrNotDownto)

	var bad *ErrInvalidAssignment
	if assert.True(errors.As(err, &bad)) {
		assert.Equal("b", bad.BitField)
		assert.Equal("9:12", bad.Value)
	}

	var at *ErrRow
	if assert.True(errors.As(err, &at)) {
		assert.Equal(17, at.RowNo)
	}
}

func TestBuilder_InvalidAddress(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	registers, err := b.Build(slices.Values([]Row{
		row("REG", "0x0", "a", "[0]", "RW", "0", ""),
		row("BAD", "16", "b", "[0]", "RW", "0", ""),
	}))
	assert.Nil(registers)

	var bad *ErrInvalidAddress
	if assert.True(errors.As(err, &bad)) {
		assert.Equal("BAD", bad.Register)
		assert.Equal("16", bad.Value)
	}

	var at *ErrRow
	if assert.True(errors.As(err, &at)) {
		assert.Equal(2, at.RowNo)
	}
}

func TestBuilder_CellType(t *testing.T) {
	assert := assert.New(t)

	rows := []Row{row("REG", "0x0", "a", "[0]", "RW", "0", "")}
	rows[0].RegisterName = OtherCell("42")

	b := &Builder{}
	_, err := b.Build(slices.Values(rows))

	var bad *ErrCellType
	if assert.True(errors.As(err, &bad)) {
		assert.Equal(CellOther, bad.Cell.Kind)
		assert.Equal("42", bad.Cell.Text)
		defer translate.SetLanguage(language.AmericanEnglish)

		translate.SetLanguage(language.AmericanEnglish)
		assert.Equal("register name cell has the wrong type: 42", bad.Error())

		translate.SetLanguage(language.Japanese)
		assert.Equal("レジスタ名 セルの型が不正です: 42", bad.Error())
	}
}

func TestBuilder_TypedCells(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}

	rows := []Row{row("REG", "0x0", "f", "[0]", "RW", "0", "")}
	rows[0].OffsetAddress = OtherCell("16")
	registers, err := b.Build(slices.Values(rows))
	assert.Nil(registers)
	var address *ErrInvalidAddress
	if assert.True(errors.As(err, &address)) {
		assert.Equal("REG", address.Register)
		assert.Equal("16", address.Value)
	}

	rows = []Row{row("REG", "0x0", "f", "[0]", "RW", "0", "")}
	rows[0].Assignment = OtherCell("5")
	registers, err = b.Build(slices.Values(rows))
	assert.Nil(registers)
	assert.ErrorIs(err, ErrNotText)
	var assignment *ErrInvalidAssignment
	if assert.True(errors.As(err, &assignment)) {
		assert.Equal("f", assignment.BitField)
		assert.Equal("5", assignment.Value)
	}

	rows = []Row{row("REG", "0x0", "f", "", "RW", "0", "")}
	rows[0].Lsb = OtherCell("8")
	rows[0].BitWidth = StringCell("8")
	registers, err = b.Build(slices.Values(rows))
	assert.Nil(registers)
	assert.ErrorIs(err, ErrNotText)
	assert.True(errors.As(err, &assignment))

	// Typed initial values are kept as text.
	rows = []Row{row("REG", "0x0", "f", "[0]", "RW", "", "")}
	rows[0].InitialValue = OtherCell("1")
	registers, err = b.Build(slices.Values(rows))
	require.NoError(t, err)
	assert.Equal(Value("1"), registers[0].BitFields[0].InitialValue)
}

func TestBuilder_MissingName(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	_, err := b.Build(slices.Values([]Row{row("REG", "0x0", "", "[0]", "RW", "0", "")}))
	assert.ErrorIs(err, ErrMissingName)
}

func TestBuilder_LsbWidth(t *testing.T) {
	assert := assert.New(t)

	rows := []Row{row("REG", "0x4", "wide", "", "RW", "0", "")}
	rows[0].Lsb = StringCell("8")
	rows[0].BitWidth = StringCell("8")

	b := &Builder{}
	registers, err := b.Build(slices.Values(rows))
	require.NoError(t, err)
	assert.Equal(Assignment{Lsb: 8, Width: 8}, registers[0].BitFields[0].Assignment)

	// The assignment cell wins over lsb and bit width.
	rows[0].Assignment = StringCell("[1]")
	registers, err = b.Build(slices.Values(rows))
	require.NoError(t, err)
	assert.Equal(Assignment{Lsb: 1, Width: 1}, registers[0].BitFields[0].Assignment)

	// Without either, the assignment is missing.
	rows[0].Assignment = Cell{}
	rows[0].BitWidth = Cell{}
	_, err = b.Build(slices.Values(rows))
	assert.ErrorIs(err, ErrEmptyCell)
}

func TestBuilder_Strict(t *testing.T) {
	assert := assert.New(t)

	rows := []Row{row("REG", "0x10 ; ctrl", "f", "[0]", "RW", "0", "")}

	b := &Builder{}
	_, err := b.Build(slices.Values(rows))
	assert.NoError(err)

	b.Strict = true
	_, err = b.Build(slices.Values(rows))
	var bad *ErrInvalidAddress
	assert.True(errors.As(err, &bad))
}

func TestBuilder_Empty(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	registers, err := b.Build(slices.Values([]Row{}))
	assert.NoError(err)
	assert.Empty(registers)
}

func TestBuilder_Reuse(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	_, err := b.Build(slices.Values([]Row{row("A", "0x0", "a", "[0]", "RW", "0", "")}))
	require.NoError(t, err)

	// No current register carries over from the previous build.
	_, err = b.Build(slices.Values([]Row{row("", "", "b", "[0]", "RW", "0", "")}))
	var ordering *ErrOrdering
	assert.True(errors.As(err, &ordering))
}

func TestBuilder_Idempotent(t *testing.T) {
	assert := assert.New(t)

	rows := []Row{
		row("CTRL", "0x0", "enable", "[0]", "RW", "0", "block enable"),
		row("", "", "mode", "[3:1]", "RW", "0x2", ""),
		row("STATUS", "8'h04", "busy", "0", "RO", "0", ""),
		row("", "", "count", "15:8", "RO", "0", "events"),
	}

	b := &Builder{}
	first, err := b.BuildBlock("blk", 16, slices.Values(rows))
	require.NoError(t, err)

	second, err := b.BuildBlock("blk", 16, first.Rows())
	require.NoError(t, err)

	assert.Equal(first, second)
	assert.Equal(4, second.BitFieldCount())
}
