package sheet

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ezrec/regmap/regmap"
)

// Open reads a sheet from a .csv or .xlsx file. For workbooks, an empty
// sheet name selects the first worksheet; CSV sheets are named after the
// file.
func Open(path string, name string) (sh *Sheet, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		if len(name) == 0 {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		return ReadCSV(inf, name)
	case ".xlsx", ".xlsm":
		return ReadXLSX(inf, name)
	}

	err = ErrFormat(ext)
	return
}

// ReadCSV reads a sheet of text cells.
func ReadCSV(input io.Reader, name string) (sh *Sheet, err error) {
	rd := csv.NewReader(input)
	rd.FieldsPerRecord = -1

	records, err := rd.ReadAll()
	if err != nil {
		return
	}

	sh = &Sheet{Name: name, Cells: make([][]regmap.Cell, len(records))}
	for r, record := range records {
		cells := make([]regmap.Cell, len(record))
		for c, text := range record {
			cells[c] = regmap.StringCell(text)
		}
		sh.Cells[r] = cells
	}

	return
}

// ReadXLSX reads a worksheet from a workbook. Text cells become string
// cells; numbers, dates and booleans keep their displayed text as other
// cells.
func ReadXLSX(input io.Reader, name string) (sh *Sheet, err error) {
	book, err := excelize.OpenReader(input)
	if err != nil {
		return
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(name) == 0 && len(sheets) > 0 {
		name = sheets[0]
	}
	if !slices.Contains(sheets, name) {
		err = ErrSheetMissing(name)
		return
	}

	rows, err := book.GetRows(name)
	if err != nil {
		return
	}

	sh = &Sheet{Name: name, Cells: make([][]regmap.Cell, len(rows))}
	for r, row := range rows {
		cells := make([]regmap.Cell, len(row))
		for c, text := range row {
			var ref string
			var kind excelize.CellType
			cells[c] = regmap.StringCell(text)
			if cells[c].Empty() {
				continue
			}
			ref, err = excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return
			}
			kind, err = book.GetCellType(name, ref)
			if err != nil {
				return
			}
			switch kind {
			case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
			default:
				cells[c] = regmap.OtherCell(text)
			}
		}
		sh.Cells[r] = cells
	}

	return
}
