package operating

/*
 * This file contains structs and functions used as entry points for
 * unit testing via dependency injection.
 */

import (
	"io"
	"os"
	"os/user"
	"time"
)

var (
	System = InitializeSystemFunctions()
)

func OpenFileWrite(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	var writer io.WriteCloser
	var err error
	writer, err = os.OpenFile(name, flag, perm)
	return writer, err
}

/*
 * SystemFunctions holds function pointers for built-in functions that will need
 * to be mocked out for unit testing.  All built-in functions manipulating the
 * filesystem, shell, or environment should ideally be called through a function
 * pointer in System (the global SystemFunctions variable) instead of being called
 * directly.
 *
 * All function pointers in SystemFunctions refer directly to built-in functions
 * except for OpenFileWrite, which refers to os.OpenFile but returns an
 * io.WriteCloser instead of an *os.File, to make mocking file opening in tests
 * easier.
 */

type SystemFunctions struct {
	CurrentUser   func() (*user.User, error)
	Getpid        func() int
	Hostname      func() (string, error)
	IsNotExist    func(err error) bool
	MkdirAll      func(path string, perm os.FileMode) error
	Now           func() time.Time
	OpenFileWrite func(name string, flag int, perm os.FileMode) (io.WriteCloser, error)
	Stat          func(name string) (os.FileInfo, error)
	Stdin         io.Reader
	Stdout        io.WriteCloser
	Stderr        io.WriteCloser
}

func InitializeSystemFunctions() *SystemFunctions {
	return &SystemFunctions{
		CurrentUser:   user.Current,
		Getpid:        os.Getpid,
		Hostname:      os.Hostname,
		IsNotExist:    os.IsNotExist,
		MkdirAll:      os.MkdirAll,
		Now:           time.Now,
		OpenFileWrite: OpenFileWrite,
		Stat:          os.Stat,
		Stdin:         os.Stdin,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
	}
}
