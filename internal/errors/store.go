package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind tags a StoreError with the caller-facing failure class
type ErrorKind string

const (
	// KindInvalidInput means caller-supplied data failed validation
	KindInvalidInput ErrorKind = "InvalidInput"
	// KindNotFound means a referenced id does not exist in its collection
	KindNotFound ErrorKind = "NotFound"
)

// StoreError is the failure result of every record store operation.
// Msg is human readable and names the field or id that caused the failure.
type StoreError struct {
	Kind ErrorKind `json:"kind"`
	Msg  string    `json:"msg"`
	// Entity names the collection a NotFound id was looked up in, when known
	Entity string `json:"entity,omitempty"`
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Of records the collection the error refers to and returns e
func (e *StoreError) Of(entity string) *StoreError {
	e.Entity = entity
	return e
}

// InvalidInput builds a KindInvalidInput error
func InvalidInput(format string, args ...any) *StoreError {
	return &StoreError{Kind: KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// NotFound builds a KindNotFound error
func NotFound(format string, args ...any) *StoreError {
	return &StoreError{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// AsStoreError unwraps err into a StoreError when it carries one
func AsStoreError(err error) (*StoreError, bool) {
	var storeErr *StoreError
	if stderrors.As(err, &storeErr) {
		return storeErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a KindNotFound StoreError
func IsNotFound(err error) bool {
	storeErr, ok := AsStoreError(err)
	return ok && storeErr.Kind == KindNotFound
}

// IsInvalidInput reports whether err is a KindInvalidInput StoreError
func IsInvalidInput(err error) bool {
	storeErr, ok := AsStoreError(err)
	return ok && storeErr.Kind == KindInvalidInput
}
