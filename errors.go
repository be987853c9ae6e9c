package huffman

import "errors"

// ErrInvalidInput is wrapped by every error that rejects caller input before
// construction begins.  Use errors.Is to test for it.
var ErrInvalidInput = errors.New("invalid input")

// Sentinel errors for specific kinds of invalid input.  Each of them also
// matches ErrInvalidInput under errors.Is.
var (
	ErrEmptyAlphabet   = invalidInput("empty alphabet")
	ErrNegativeWeight  = invalidInput("negative weight")
	ErrNonFiniteWeight = invalidInput("weight is NaN or infinite")
	ErrSymbolRange     = invalidInput("symbol out of range")
	ErrDuplicateSymbol = invalidInput("duplicate symbol")
	ErrNotPrefixFree   = invalidInput("code table is not prefix-free")
	ErrIncompleteCode  = invalidInput("bit string ends inside a code")
	ErrUnknownCode     = invalidInput("bit string does not match any code")
)

type inputError struct {
	msg string
}

func invalidInput(msg string) error {
	return &inputError{msg: msg}
}

func (e *inputError) Error() string {
	return e.msg
}

func (e *inputError) Unwrap() error {
	return ErrInvalidInput
}
