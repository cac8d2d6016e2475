package catalog

import (
	"errors"
)

type ErrorKind string

// The two outcomes of a failed catalog lookup are deliberately distinct:
// an absent product is deterministic and must never be retried, while an
// unavailable catalog is transient and may be.
const (
	KindAbsent      ErrorKind = "ABSENT"
	KindUnavailable ErrorKind = "UNAVAILABLE"
)

type Error struct {
	Kind      ErrorKind
	ProductID string
	err       error // wrapped low-level error
}

func (e *Error) Error() string {
	msg := string(e.Kind) + ": product " + e.ProductID
	if e.err != nil {
		return msg + ": " + e.err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func NewError(kind ErrorKind, productID string, err error) *Error {
	return &Error{Kind: kind, ProductID: productID, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsAbsent(err error) bool {
	return IsKind(err, KindAbsent)
}

func IsUnavailable(err error) bool {
	return IsKind(err, KindUnavailable)
}
