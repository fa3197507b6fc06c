package errors

import "errors"

var (
	ErrInvalidBallotBoxID = errors.New("invalid ballot box id")
	ErrBallotBoxNotFound  = errors.New("ballot box not found")
	ErrConflict           = errors.New("ballot box conflict")
)
