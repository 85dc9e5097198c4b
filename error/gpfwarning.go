package error

import (
	"github.com/greenplum-db/gp-format-go-libs/constants"
)

func GetWarningFormat(statusCode constants.WarningCode) string {
	switch statusCode {
	// 0100 gpftoa input
	case InputOverflow:
		return `"%s" is out of range for binary%s; formatting as infinity`
	case InputUnderflow:
		return `"%s" underflows binary%s; formatting as zero`
	case NoInputValues:
		return `no input values were provided`
	}

	return "unknown warning"
}
