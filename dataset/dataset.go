// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"strings"
)

// Shape limits enforced by the constructors.
const (
	MinRecords = 2
	MinVars    = 2
)

// Operation name constants for unified error wrapping.
const (
	opNew         = "New"
	opFromColumns = "FromColumns"
	opAt          = "At"
	opColumn      = "Column"
	opCheckVar    = "CheckVar"
)

// Dataset is an immutable row-major table of float64 observations.
// rows is the record count, vars the variable count, and data holds
// rows*vars values with variable v of record r at data[r*vars+v].
type Dataset struct {
	rows, vars int
	data       []float64
}

// New copies records into a validated Dataset.
// Stage 1 (Validate): record count, width of the first record, equal widths, finiteness.
// Stage 2 (Execute): copy into a flat row-major buffer.
// Complexity: O(rows*vars) time and memory.
func New(records [][]float64) (*Dataset, error) {
	if len(records) == 0 {
		return nil, invalidf(opNew, ErrNoRecords, "got 0 records")
	}
	if len(records) < MinRecords {
		return nil, invalidf(opNew, ErrTooFewRecords, "got %d, need %d", len(records), MinRecords)
	}
	vars := len(records[0])
	if vars < MinVars {
		return nil, invalidf(opNew, ErrTooFewVariables, "got %d, need %d", vars, MinVars)
	}

	data := make([]float64, 0, len(records)*vars)
	var r, v int
	var x float64
	for r = 0; r < len(records); r++ {
		if len(records[r]) != vars {
			return nil, invalidf(opNew, ErrRaggedRecord, "record %d has %d values, want %d", r, len(records[r]), vars)
		}
		for v = 0; v < vars; v++ {
			x = records[r][v]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, invalidf(opNew, ErrNaNInf, "record %d, variable %d", r, v)
			}
		}
		data = append(data, records[r]...)
	}

	return &Dataset{rows: len(records), vars: vars, data: data}, nil
}

// FromColumns builds a Dataset from one slice per variable; all columns
// must have the same length. Validation mirrors New.
func FromColumns(columns ...[]float64) (*Dataset, error) {
	if len(columns) < MinVars {
		return nil, invalidf(opFromColumns, ErrTooFewVariables, "got %d, need %d", len(columns), MinVars)
	}
	rows := len(columns[0])
	if rows == 0 {
		return nil, invalidf(opFromColumns, ErrNoRecords, "got 0 records")
	}
	if rows < MinRecords {
		return nil, invalidf(opFromColumns, ErrTooFewRecords, "got %d, need %d", rows, MinRecords)
	}

	vars := len(columns)
	data := make([]float64, rows*vars)
	var r, v int
	var x float64
	for v = 0; v < vars; v++ {
		if len(columns[v]) != rows {
			return nil, invalidf(opFromColumns, ErrRaggedRecord, "column %d has %d values, want %d", v, len(columns[v]), rows)
		}
		for r = 0; r < rows; r++ {
			x = columns[v][r]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, invalidf(opFromColumns, ErrNaNInf, "record %d, variable %d", r, v)
			}
			data[r*vars+v] = x
		}
	}

	return &Dataset{rows: rows, vars: vars, data: data}, nil
}

// Rows returns the number of records.
func (d *Dataset) Rows() int { return d.rows }

// Vars returns the number of variables per record.
func (d *Dataset) Vars() int { return d.vars }

// At returns variable v of record row.
// Complexity: O(1).
func (d *Dataset) At(row, v int) (float64, error) {
	if row < 0 || row >= d.rows {
		return 0, fmt.Errorf("%s(%d,%d): %w", opAt, row, v, ErrOutOfRange)
	}
	if v < 0 || v >= d.vars {
		return 0, fmt.Errorf("%s(%d,%d): %w", opAt, row, v, ErrOutOfRange)
	}

	return d.data[row*d.vars+v], nil
}

// Value is the unchecked form of At for hot loops whose indices were
// validated by the caller. It panics on out-of-range indices.
func (d *Dataset) Value(row, v int) float64 {
	return d.data[row*d.vars+v]
}

// Column returns a copy of variable v across all records, in record order.
func (d *Dataset) Column(v int) ([]float64, error) {
	if err := d.CheckVar(v); err != nil {
		return nil, fmt.Errorf("%s: %w", opColumn, err)
	}
	out := make([]float64, d.rows)
	for r := 0; r < d.rows; r++ {
		out[r] = d.data[r*d.vars+v]
	}

	return out, nil
}

// CheckVar reports ErrOutOfRange unless 0 <= v < Vars().
func (d *Dataset) CheckVar(v int) error {
	if v < 0 || v >= d.vars {
		return fmt.Errorf("%s(%d): %d variables: %w", opCheckVar, v, d.vars, ErrOutOfRange)
	}

	return nil
}

// CheckVars applies CheckVar to every index in vs.
func (d *Dataset) CheckVars(vs ...int) error {
	for _, v := range vs {
		if err := d.CheckVar(v); err != nil {
			return err
		}
	}

	return nil
}

// String renders a short shape summary plus the first few records.
func (d *Dataset) String() string {
	const preview = 3
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dataset(%d×%d)", d.rows, d.vars)
	for r := 0; r < d.rows && r < preview; r++ {
		sb.WriteString("\n[")
		for v := 0; v < d.vars; v++ {
			if v > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.4g", d.data[r*d.vars+v])
		}
		sb.WriteByte(']')
	}
	if d.rows > preview {
		fmt.Fprintf(&sb, "\n… %d more", d.rows-preview)
	}

	return sb.String()
}
