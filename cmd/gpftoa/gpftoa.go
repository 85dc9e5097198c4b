package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/greenplum-db/gp-format-go-libs/constants"
	"github.com/greenplum-db/gp-format-go-libs/conv"
	gpferror "github.com/greenplum-db/gp-format-go-libs/error"
	"github.com/greenplum-db/gp-format-go-libs/gpfs"
	"github.com/greenplum-db/gp-format-go-libs/gplog"
	"github.com/greenplum-db/gp-format-go-libs/ui"
)

const usageMessage = "" +
	`Usage:
gpftoa [flags] [value ...]

Values come from the command line, from -in FILE (one value per line), or
from stdin. Each value is formatted per the conversion flags and written on
its own line to stdout, or to -out FILE.

Examples:
Format two values with two fixed digits:
	gpftoa -verb f -precision 2 -- 3.25 -0.5

Print the hex form of a binary64 bit pattern:
	gpftoa -bits -verb a 3ff0000000000000
`

const (
	minPrecision = -1
	maxPrecision = 5000
)

var (
	// main operation modes
	inPath    = flag.String("in", "", "read values from FILE, one per line")
	outPath   = flag.String("out", "", "write results to FILE, default is stdout")
	verb      = flag.String("verb", "g", "conversion letter, one of a A e E f F g G")
	precision = flag.Int("precision", -1, "fractional digits, -1 selects the conversion's default")
	width     = flag.String("width", "64", "input width in bits, 32 or 64")
	rounding  = flag.String("round", "nearest-even", "rounding mode: nearest-even, nearest-away, up, down, toward-zero")
	modifiers = flag.String("flags", "", `conversion modifiers drawn from "#+ "`)
	bitsInput = flag.Bool("bits", false, "read values as hexadecimal IEEE-754 bit patterns")
	debug     = flag.Bool("debug", false, "log the bit pattern of each value")
)

var fs = gpfs.New()

func usage() {
	fmt.Fprint(os.Stderr, usageMessage)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func contains[T constants.OptionType](options []T, value T) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

func validate() error {
	if !contains(constants.AllConversionTypes, constants.ConversionType(*verb)) {
		return gpferror.New(gpferror.InvalidOption, *verb, constants.AllConversionTypes)
	}

	if !contains(constants.AllWidthTypes, constants.WidthType(*width)) {
		return gpferror.New(gpferror.InvalidOption, *width, constants.AllWidthTypes)
	}

	if !contains(constants.AllRoundingTypes, constants.RoundingType(*rounding)) {
		return gpferror.New(gpferror.InvalidOption, *rounding, constants.AllRoundingTypes)
	}

	if *precision < minPrecision || *precision > maxPrecision {
		return gpferror.New(gpferror.ValueOutOfRange, *precision, minPrecision, maxPrecision)
	}

	for _, c := range *modifiers {
		if c != '#' && c != '+' && c != ' ' {
			return gpferror.New(gpferror.InvalidValue, string(c))
		}
	}

	return nil
}

func roundingMode(name constants.RoundingType) conv.RoundingMode {
	switch name {
	case constants.NearestAway:
		return conv.NearestTiesAwayFromZero
	case constants.RoundUp:
		return conv.Up
	case constants.RoundDown:
		return conv.Down
	case constants.TowardZero:
		return conv.TowardZero
	}

	return conv.NearestTiesToEven
}

func buildOptions() conv.FormatOptions {
	opts := conv.DefaultFormatOptions()
	opts.Precision = *precision
	opts.Rounding = roundingMode(constants.RoundingType(*rounding))
	for _, c := range *modifiers {
		switch c {
		case '#':
			opts.Alternate = true
		case '+':
			opts.Plus = true
		case ' ':
			opts.Space = true
		}
	}

	return opts
}

func collectInputs(operands []string) ([]string, error) {
	if len(operands) > 0 {
		return operands, nil
	}

	if *inPath != "" {
		return readInputFile(*inPath)
	}

	return readStdin()
}

func readInputFile(fullPath string) ([]string, error) {
	lines, err := fs.ReadLines(fullPath)
	if err != nil {
		return nil, gpferror.New(gpferror.FailedToReadFile, fullPath, err)
	}

	return lines, nil
}

func readStdin() ([]string, error) {
	lines := make([]string, 0)
	for {
		line, err := ui.GetUi().ReadLine()
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}

func formatAll(inputs []string) ([]string, error) {
	letter := (*verb)[0]
	opts := buildOptions()
	results := make([]string, 0, len(inputs))
	for _, token := range inputs {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		formatted, err := formatValue(token, letter, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, formatted)
	}

	return results, nil
}

func formatValue(token string, letter byte, opts conv.FormatOptions) (string, error) {
	if *width == string(constants.Width32) {
		return formatValue32(token, letter, opts)
	}

	return formatValue64(token, letter, opts)
}

func formatValue64(token string, letter byte, opts conv.FormatOptions) (string, error) {
	var value float64
	if *bitsInput {
		pattern, err := parseBitPattern(token)
		if err != nil {
			return "", err
		}
		value = math.Float64frombits(pattern)
	} else {
		var err error
		value, err = parseLiteral(token)
		if err != nil {
			return "", err
		}
	}

	var patternBuf [16]byte
	conv.FormatBits64(math.Float64bits(value), &patternBuf)
	gplog.Debug(`input "%s" has bit pattern %s`, token, patternBuf[:])

	var scratch [64]byte
	out, err := conv.FormatFloat64(scratch[:0], value, letter, opts)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

func formatValue32(token string, letter byte, opts conv.FormatOptions) (string, error) {
	var value float32
	if *bitsInput {
		pattern, err := parseBitPattern(token)
		if err != nil {
			return "", err
		}
		value = math.Float32frombits(uint32(pattern))
	} else {
		parsed, err := parseLiteral(token)
		if err != nil {
			return "", err
		}
		value = float32(parsed)
	}

	var patternBuf [8]byte
	conv.FormatBits32(math.Float32bits(value), &patternBuf)
	gplog.Debug(`input "%s" has bit pattern %s`, token, patternBuf[:])

	var scratch [64]byte
	out, err := conv.FormatFloat32(scratch[:0], value, letter, opts)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// parseLiteral parses a decimal or hex floating-point literal at the selected
// width. A literal that overflows or underflows the width is reported as a
// warning and the clamped value is kept, matching what strtod callers see.
func parseLiteral(token string) (float64, error) {
	bitSize := 64
	if *width == string(constants.Width32) {
		bitSize = 32
	}

	value, err := strconv.ParseFloat(token, bitSize)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, gpferror.New(gpferror.InvalidFloatLiteral, token, err)
		}
		warning := gpferror.InputUnderflow
		if math.IsInf(value, 0) {
			warning = gpferror.InputOverflow
		}
		ui.GetUi().DisplayWarning(warning, token, *width)
	}

	return value, nil
}

func parseBitPattern(token string) (uint64, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(token, "0x"), "0X")
	pattern, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, gpferror.New(gpferror.BitPatternTooWide, token, *width)
		}
		return 0, gpferror.New(gpferror.InvalidBitPattern, token, err)
	}
	if *width == string(constants.Width32) && pattern>>32 != 0 {
		return 0, gpferror.New(gpferror.BitPatternTooWide, token, *width)
	}

	return pattern, nil
}

func writeResults(results []string) error {
	if *outPath == "" {
		for _, line := range results {
			ui.GetUi().DisplayText("%s", line)
		}
		return nil
	}

	content := strings.Join(results, "\n") + "\n"
	if err := fs.Write(*outPath, content, 0644); err != nil {
		return gpferror.New(gpferror.FailedToWriteOutput, *outPath, err)
	}

	return nil
}

func report(err error) {
	gplog.Error("%s", err)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	gpftoaMain(flag.Args())
	os.Exit(gplog.GetErrorCode())
}

func gpftoaMain(operands []string) {
	gplog.InitializeLogging(constants.ExecutableName, "")
	if *debug {
		gplog.SetVerbosity(gplog.LOGDEBUG)
		gplog.SetLogFileVerbosity(gplog.LOGDEBUG)
	}

	// do simple validations, fail fast
	if err := validate(); err != nil {
		report(err)
		ui.GetUi().DisplayError("%s", usageMessage)
		return
	}

	inputs, err := collectInputs(operands)
	if err != nil {
		report(err)
		return
	}

	results, err := formatAll(inputs)
	if err != nil {
		report(err)
		return
	}
	if len(results) == 0 {
		ui.GetUi().DisplayWarning(gpferror.NoInputValues)
		return
	}

	if err = writeResults(results); err != nil {
		report(err)
	}
}
