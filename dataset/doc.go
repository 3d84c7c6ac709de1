// Package dataset holds the observational input of the causal learners: an
// immutable, row-major table of finite real values, one column per variable.
//
// What:
//
//   - New(records) builds a Dataset from row records (record[i] is variable i).
//   - FromColumns(cols...) builds the same table from per-variable columns.
//   - At, Column and CheckVar give indexed, bounds-checked access.
//
// Why:
//
//   - Every algorithm downstream indexes variables positionally. A ragged or
//     non-finite table would silently misindex and still produce a
//     plausible-looking graph, so shape is validated once, up front.
//
// Invariants:
//
//   - Rows() >= 2 and Vars() >= 2.
//   - Every value is finite (no NaN, no ±Inf).
//   - The table is never mutated after construction; it may be shared freely.
//
// Errors:
//
//   - ErrInvalidDataset wraps every shape/value violation (ErrNoRecords,
//     ErrTooFewRecords, ErrTooFewVariables, ErrRaggedRecord, ErrNaNInf).
//   - ErrOutOfRange for variable or row indices outside the table.
package dataset
