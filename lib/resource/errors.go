// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is the sentinel for grammar rejections. Parse
// failures wrap it, so callers can test errors.Is(err,
// resource.ErrInvalidFormat) without naming the concrete type.
var ErrInvalidFormat = errors.New("invalid resource reference")

// InvalidFormatError is returned by Parse when the candidate string
// does not match the reference grammar. It carries the rejected string
// for diagnostics.
type InvalidFormatError struct {
	Input string
}

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid resource reference: %q", e.Input)
}

// Unwrap returns ErrInvalidFormat for errors.Is compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }
