package error

import (
	"github.com/greenplum-db/gp-format-go-libs/constants"
)

// All of the status codes
// We interleave the ErrorCode and WarningCode values in order to preserve
// the uniqueness of the integer values of the codes.
// Codes below 100 follow the common numbering shared across gp libraries;
// the numbers missing from that block belong to codes this module does not
// carry. The 8100 block is reserved for the conversion library (gperror).
const (
	NotImplemented       = constants.ErrorCode(1)
	UnhandledError       = constants.ErrorCode(2)
	InvalidValue         = constants.ErrorCode(3)
	FailedToGetUserInput = constants.ErrorCode(6)
	FileSystemIssue      = constants.ErrorCode(7)
	ValueOutOfRange      = constants.ErrorCode(10)
	FailedToReadFile     = constants.ErrorCode(11)
	InvalidOption        = constants.ErrorCode(17)

	// 0100 gpftoa input
	InvalidFloatLiteral = constants.ErrorCode(101)
	InvalidBitPattern   = constants.ErrorCode(102)
	BitPatternTooWide   = constants.ErrorCode(103)
	InputOverflow       = constants.WarningCode(104)
	InputUnderflow      = constants.WarningCode(105)
	NoInputValues       = constants.WarningCode(106)

	// 0200 gpftoa output
	FailedToWriteOutput = constants.ErrorCode(201)
)
