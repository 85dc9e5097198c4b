package error

import (
	"fmt"

	"github.com/greenplum-db/gp-format-go-libs/constants"
)

type Error interface {
	error
	GetCode() constants.ErrorCode
	GetErr() error
}

func New(errorCode constants.ErrorCode, args ...any) Error {
	errorFormat := getErrorFormat(errorCode)
	return &gpfError{errorCode, fmt.Errorf(errorFormat, args...)}
}

type gpfError struct {
	constants.ErrorCode
	Err error
}

func (e *gpfError) Error() string {
	return fmt.Sprintf("ERROR[%04d] %s", e.GetCode(), e.Err.Error())
}

func (e *gpfError) GetCode() constants.ErrorCode {
	return e.ErrorCode
}

func (e *gpfError) GetErr() error {
	return e.Err
}

func NewInternalError(format string, args ...any) Error {
	return &InternalError{Err: fmt.Errorf(format, args...)}
}

type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return e.Err.Error()
}

func (e *InternalError) GetCode() constants.ErrorCode {
	return constants.ErrorCode(9999)
}

func (e *InternalError) GetErr() error {
	return e.Err
}

func getErrorFormat(errorCode constants.ErrorCode) string {
	switch errorCode {
	case NotImplemented:
		return "not implemented"
	case UnhandledError:
		return "unhandled error: %w"
	case InvalidValue:
		return `invalid value: '%v'`
	case FailedToGetUserInput:
		return "failed to get user input: %w"
	case FileSystemIssue:
		return "unexpected file system issue: %w"
	case ValueOutOfRange:
		return "value out of range: %d not in [%d, %d]"
	case FailedToReadFile:
		return "unable to read file %s: %w"
	case InvalidOption:
		return `invalid value: '%s' not in %s`

	// 0100 gpftoa input
	case InvalidFloatLiteral:
		return `cannot parse "%s" as a floating-point value: %w`
	case InvalidBitPattern:
		return `cannot parse "%s" as a hexadecimal bit pattern: %w`
	case BitPatternTooWide:
		return `bit pattern "%s" does not fit in binary%s`

	// 0200 gpftoa output
	case FailedToWriteOutput:
		return `failed to write output to "%s": %w`
	}

	return "unknown error"
}
