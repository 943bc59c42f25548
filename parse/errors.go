// SPDX-License-Identifier: MIT

// Package parse: sentinel error set. Readers return these wrapped with
// the offending 1-based line number; callers match via errors.Is.

package parse

import "errors"

var (
	// ErrFormat is returned for malformed text: a missing colon, an
	// empty vertex id, an unparsable weight, a row label out of order
	// or a cell the model itself rejects.
	ErrFormat = errors.New("parse: malformed input")

	// ErrShape is returned when a matrix is not square: the row count
	// or a row's cell count disagrees with the header.
	ErrShape = errors.New("parse: matrix shape mismatch")
)
