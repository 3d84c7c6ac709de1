// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.
// Callers match with errors.Is; shape violations additionally match
// ErrInvalidDataset so a single check covers every malformed-input case.

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataset is the umbrella condition for malformed input.
	ErrInvalidDataset = errors.New("dataset: invalid dataset")

	// ErrNoRecords indicates an empty record collection.
	ErrNoRecords = errors.New("dataset: no records")

	// ErrTooFewRecords indicates fewer than MinRecords records.
	// Correlation is undefined below two observations.
	ErrTooFewRecords = errors.New("dataset: too few records")

	// ErrTooFewVariables indicates records narrower than MinVars.
	ErrTooFewVariables = errors.New("dataset: too few variables")

	// ErrRaggedRecord indicates a record whose length differs from the first record.
	ErrRaggedRecord = errors.New("dataset: ragged record")

	// ErrNaNInf signals a NaN or ±Inf value.
	ErrNaNInf = errors.New("dataset: NaN or Inf encountered")

	// ErrOutOfRange indicates a variable or row index outside the table.
	ErrOutOfRange = errors.New("dataset: index out of range")
)

// invalidf tags a specific violation with ErrInvalidDataset so both sentinels match.
func invalidf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %w: %s", op, ErrInvalidDataset, err, fmt.Sprintf(format, args...))
}
