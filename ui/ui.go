// Package ui provides hooks into STDOUT, STDERR and STDIN.
// This has been pilfered from CF CLI https://github.com/cloudfoundry/cli/blob/master/util/ui/ui.go
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/greenplum-db/gp-format-go-libs/constants"
	gpferror "github.com/greenplum-db/gp-format-go-libs/error"
	"github.com/greenplum-db/gp-format-go-libs/operating"
)

type IoReader interface {
	ReadString(delim byte) (string, error)
}

var (
	ui *UiImpl
)

func init() {
	Default()
}

var Dependency struct {
	DisplayTextToStream func(isErrStream bool, text string)
	GetUi               func() Ui
	GetWarningFormat    func(statusCode constants.WarningCode) string
	NewError            func(errorCode constants.ErrorCode, args ...any) gpferror.Error
	NewReader           func(rd io.Reader) IoReader
}

func Default() {
	Dependency.DisplayTextToStream = DisplayTextToStream
	Dependency.GetUi = GetUi
	Dependency.GetWarningFormat = gpferror.GetWarningFormat
	Dependency.NewError = gpferror.New
	Dependency.NewReader = newReader

	ui = &UiImpl{}

	ui.SetOut(operating.System.Stdout)
	ui.SetErr(operating.System.Stderr)
	ui.SetIn(operating.System.Stdin)
}

type Ui interface {
	DisplayError(format string, args ...any)
	DisplayErrorNoNewline(format string, args ...any)
	DisplayPrompt(format string, args ...any)
	DisplayText(format string, args ...any)
	DisplayTextNoNewline(format string, args ...any)
	DisplayWarning(warningCode constants.WarningCode, args ...any)
	GetErr() io.Writer
	GetErrLogWriter() io.Writer
	GetIn() io.Reader
	GetOut() io.Writer
	GetOutLogWriter() io.Writer
	ReadLine() (string, error)
	SetErr(e io.Writer)
	SetIn(i io.Reader)
	SetOut(o io.Writer)
}

type UiImpl struct {
	Err    io.Writer
	In     io.Reader
	Out    io.Writer
	Reader IoReader
}

func GetUi() Ui {
	return ui
}

func (g *UiImpl) SetOut(out io.Writer) {
	g.Out = out
}

func (g *UiImpl) GetOut() io.Writer {
	return g.Out
}

func (g *UiImpl) SetErr(err io.Writer) {
	g.Err = err
}

func (g *UiImpl) GetErr() io.Writer {
	return g.Err
}

func (g *UiImpl) SetIn(in io.Reader) {
	g.In = in
	g.Reader = Dependency.NewReader(in)
}

func (g *UiImpl) GetIn() io.Reader {
	return g.In
}

// DisplayError prints the error message to ui.Err, with a trailing '\n'.
func (g *UiImpl) DisplayError(format string, args ...any) {
	g.DisplayErrorNoNewline(format, args...)
	fmt.Fprintf(g.Err, "\n")
}

// DisplayErrorNoNewline prints the error message to ui.Err, without a trailing '\n'.
func (g *UiImpl) DisplayErrorNoNewline(format string, args ...any) {
	fmt.Fprintf(g.Err, format, args...)
}

// DisplayPrompt prints the message to ui.Out, with a trailing ' '.
func (g *UiImpl) DisplayPrompt(format string, args ...any) {
	g.DisplayTextNoNewline(format, args...)
	fmt.Fprintf(g.Out, " ")
}

// DisplayText prints the message to ui.Out, with a trailing '\n'.
func (g *UiImpl) DisplayText(format string, args ...any) {
	g.DisplayTextNoNewline(format, args...)
	fmt.Fprintf(g.Out, "\n")
}

// DisplayTextNoNewline prints the message to ui.Out, without a trailing '\n'.
func (g *UiImpl) DisplayTextNoNewline(format string, args ...any) {
	fmt.Fprintf(g.Out, format, args...)
}

// DisplayWarning prints a warning to ui.Err, with a trailing '\n'. Warnings
// share the error stream so that stdout stays reserved for program output.
func (g *UiImpl) DisplayWarning(warningCode constants.WarningCode, args ...any) {
	format := fmt.Sprintf("WARN [%04d] %s", warningCode, Dependency.GetWarningFormat(warningCode))
	fmt.Fprintf(g.Err, format, args...)
	fmt.Fprintf(g.Err, "\n")
}

func (g *UiImpl) GetErrLogWriter() io.Writer {
	return &GpfStreamLogWriterImpl{IsErrStream: true}
}

func (g *UiImpl) GetOutLogWriter() io.Writer {
	return &GpfStreamLogWriterImpl{}
}

// ReadLine reads a single line from ui.In. It returns io.EOF alongside the
// final line when the input ends without a terminator.
func (g *UiImpl) ReadLine() (string, error) {
	result, err := g.Reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", Dependency.NewError(gpferror.FailedToGetUserInput, err)
	}

	return strings.TrimRight(result, "\n"), err
}

type GpfStreamLogWriterImpl struct {
	IsErrStream bool
}

func (w *GpfStreamLogWriterImpl) Write(p []byte) (int, error) {
	size := len(p)
	if size > 0 {
		Dependency.DisplayTextToStream(w.IsErrStream, string(p))
	}

	return size, nil
}

func DisplayTextToStream(isErrStream bool, text string) {
	reformatted := strings.ReplaceAll(text, "%", "%%")
	if isErrStream {
		Dependency.GetUi().DisplayErrorNoNewline(reformatted)
	} else {
		Dependency.GetUi().DisplayTextNoNewline(reformatted)
	}
}

func newReader(rd io.Reader) IoReader {
	return bufio.NewReader(rd)
}
