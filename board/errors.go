package board

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them.
var (
	// ErrInvalidFEN indicates malformed position text.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrIllegalMove indicates a move that is not legal in the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMoveText indicates move text that is not UCI coordinate notation.
	ErrInvalidMoveText = errors.New("invalid move text")
)

// FENError reports which FEN field could not be parsed.
type FENError struct {
	Field string // placement, side, castling, en passant, halfmove, fullmove or position
	Value string
	Err   error // underlying cause, may be nil
}

func (e *FENError) Error() string {
	msg := fmt.Sprintf("%v: bad %s %q", ErrInvalidFEN, e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap lets errors.Is match both ErrInvalidFEN and the underlying cause.
func (e *FENError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidFEN}
	}
	return []error{ErrInvalidFEN, e.Err}
}

func fenError(field, value string, err error) error {
	return &FENError{Field: field, Value: value, Err: err}
}
