package sign

import (
	"crypto/subtle"
	"fmt"

	"github.com/pkg/errors"
)

// Code is a Noise error code. Codes other than CodeNone implement error, and the exported
// Err* sentinels are codes themselves, so errors.Cause(err) == ErrInvalidSignature works on
// wrapped errors as well.
type Code int

const (
	CodeNone             Code = 0
	CodeUnknownID        Code = 'E'<<8 | 2
	CodeUnknownName      Code = 'E'<<8 | 3
	CodeNotApplicable    Code = 'E'<<8 | 5
	CodeInvalidLength    Code = 'E'<<8 | 10
	CodeInvalidState     Code = 'E'<<8 | 12
	CodeInvalidPublicKey Code = 'E'<<8 | 15
	CodeInvalidSignature Code = 'E'<<8 | 17
)

var (
	ErrUnknownID        error = CodeUnknownID
	ErrUnknownName      error = CodeUnknownName
	ErrNotApplicable    error = CodeNotApplicable
	ErrInvalidLength    error = CodeInvalidLength
	ErrInvalidState     error = CodeInvalidState
	ErrInvalidPublicKey error = CodeInvalidPublicKey
	ErrInvalidSignature error = CodeInvalidSignature
)

var messages = map[Code]string{
	CodeNone:             "no error",
	CodeUnknownID:        "unknown algorithm identifier",
	CodeUnknownName:      "unknown algorithm name",
	CodeNotApplicable:    "operation not applicable",
	CodeInvalidLength:    "invalid length",
	CodeInvalidState:     "operation is not valid in the current state",
	CodeInvalidPublicKey: "invalid public key",
	CodeInvalidSignature: "invalid signature",
}

func (c Code) Error() string {
	if msg, ok := messages[c]; ok {
		return msg
	}

	return fmt.Sprintf("unknown error 0x%04x", int(c))
}

// Err returns nil for CodeNone and the code itself otherwise.
func (c Code) Err() error {
	if c == CodeNone {
		return nil
	}

	return c
}

// CodeOf extracts the Code at the root of err. A nil error maps to CodeNone; errors that
// did not originate from this package map to -1.
func CodeOf(err error) Code {
	if err == nil {
		return CodeNone
	}

	if code, ok := errors.Cause(err).(Code); ok {
		return code
	}

	return -1
}

// selectCode returns CodeNone when ok is 1 and code when ok is 0. ok must be 0 or 1, as
// produced by subtle.ConstantTimeCompare. The selection does not branch on ok.
func selectCode(ok int, code Code) Code {
	return Code(subtle.ConstantTimeSelect(ok, int(CodeNone), int(code)))
}
