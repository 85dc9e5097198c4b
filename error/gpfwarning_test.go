package error_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/greenplum-db/gp-format-go-libs/constants"
	gpferror "github.com/greenplum-db/gp-format-go-libs/error"
)

var _ = Describe("warning", func() {
	DescribeTable("GetWarningFormat",
		func(warningCode constants.WarningCode, expectedWarningFormat string) {
			Expect(gpferror.GetWarningFormat(warningCode)).To(Equal(expectedWarningFormat))
		},
		Entry("unknown warning type", constants.WarningCode(998), `unknown warning`),
		Entry("input overflows the target width", gpferror.InputOverflow, `"%s" is out of range for binary%s; formatting as infinity`),
		Entry("input underflows the target width", gpferror.InputUnderflow, `"%s" underflows binary%s; formatting as zero`),
		Entry("no input values", gpferror.NoInputValues, `no input values were provided`),
	)
})
