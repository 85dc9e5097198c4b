package gperror

import (
	"fmt"

	"github.com/greenplum-db/gp-format-go-libs/constants"
)

// ErrorCode shares the code space of the catalog in the error package so
// that library errors and application errors can be reported uniformly.
// Codes 8100-8199 are reserved for the conversion library.
type ErrorCode = constants.ErrorCode

type Error interface {
	error
	GetCode() ErrorCode
	GetErr() error
}

type GpError struct {
	Err error
	ErrorCode
}

func (e *GpError) Error() string {
	return fmt.Sprintf("ERROR[%04d] %s", e.GetCode(), e.Err.Error())
}

func (e *GpError) GetCode() ErrorCode {
	return e.ErrorCode
}

func (e *GpError) GetErr() error {
	return e.Err
}

func New(errorCode ErrorCode, errorFormat string, args ...any) Error {
	return &GpError{ErrorCode: errorCode, Err: fmt.Errorf(errorFormat, args...)}
}
