// Package layout describes where register map attributes live in a sheet.
//
// A Layout has three sections. The register_block section gives the cell
// holding each block attribute. The register and bit_field sections give the
// header cell of each attribute column; data rows start below the header
// row, which every attribute of those two sections must share.
//
// Layout documents may be written in YAML, TOML or Starlark:
//
//	register_block:
//	  name: {row: 0, col: 1}
//	  byte_size: {row: 1, col: 1}
//	register:
//	  name: {row: 3, col: 1}
//	  offset_address: {row: 3, col: 2}
//	bit_field:
//	  name: {row: 3, col: 3}
//	  assignment: {row: 3, col: 4}
//	  type: {row: 3, col: 7}
//	  initial_value: {row: 3, col: 8}
//	  comment: {row: 3, col: 10}
//
// Rows and columns count from zero.
package layout
