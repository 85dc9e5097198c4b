package gpfs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path"

	vfs "github.com/spf13/afero"
)

type FsObjectType int

const (
	IsFile FsObjectType = iota
	IsDir
)

type GpFs interface {
	Append(filename string, content string, perm os.FileMode) (int, error)
	CheckExists(fullPath string, fsObjectType FsObjectType) (bool, error)
	CreateDir(fullPath string) error
	Delete(fullPath string) error
	GetFileMode(name string) (os.FileMode, error)
	Read(fullPath string) (string, error)
	ReadLines(fullPath string) ([]string, error)
	Write(filename string, content string, perm os.FileMode) error
}

var Dependency struct {
	Chmod      func(fs vfs.Fs, name string, perms os.FileMode) error
	CreateDir  func(fs vfs.Fs, fullPath string) error
	GetLines   func(f GpFile) []string
	GetScanner func(f GpFile) GpScanner
	OpenFile   func(fs vfs.Fs, path string, flags int, perms os.FileMode) (GpFile, error)
	ReadFile   func(fs vfs.Fs, fullPath string) ([]byte, error)
	Stat       func(fs vfs.Fs, path string) (OsFile, error)
	WriteFile  func(fs vfs.Fs, filename string, data []byte, perm os.FileMode) error
}

func init() {
	Default()
}

func Default() {
	Dependency.Chmod = Chmod
	Dependency.CreateDir = CreateDir
	Dependency.GetLines = GetLines
	Dependency.GetScanner = getScanner
	Dependency.OpenFile = OpenFile
	Dependency.ReadFile = readFile
	Dependency.Stat = Stat
	Dependency.WriteFile = writeFile
}

type Filesystem vfs.Fs

type GpFile vfs.File

type OsFile os.FileInfo

type GpFsImpl struct {
	vfs.Fs
}

func New() GpFs {
	return &GpFsImpl{Fs: vfs.NewOsFs()}
}

func NewMockFs() GpFs {
	return &GpFsImpl{Fs: vfs.NewMemMapFs()}
}

func (fs GpFsImpl) Append(fullPath string, content string, perms os.FileMode) (int, error) {
	if err := Dependency.CreateDir(fs.Fs, path.Dir(fullPath)); err != nil {
		return 0, err
	}

	f, err := Dependency.OpenFile(fs.Fs, fullPath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, perms)
	if err != nil {
		return 0, fmt.Errorf(`writing "%s" failed due to: %w`, fullPath, err)
	}
	defer f.Close()

	count, err := f.WriteString(content)
	if err != nil {
		return 0, fmt.Errorf(`writing "%s" failed due to: %w`, fullPath, err)
	}

	return count, nil
}

func (fs GpFsImpl) CheckExists(fullPath string, fsObjectType FsObjectType) (bool, error) {
	file, err := Dependency.Stat(fs.Fs, fullPath)
	if errors.Is(err, os.ErrNotExist) {
		// File doesn't exist. This is an expected error.
		return false, nil
	} else if err != nil {
		// This is an unexpected error.
		return false, err
	}

	// Assume that file must be non-nil if err is nil
	switch fsObjectType {
	case IsDir:
		if !file.IsDir() {
			return false, fmt.Errorf(`expected directory "%s" but found a non-directory instead`, fullPath)
		}
	case IsFile:
		if file.IsDir() {
			return false, fmt.Errorf(`expected non-directory "%s" but found a directory instead`, fullPath)
		}
	}

	return true, nil
}

func (fs GpFsImpl) CreateDir(fullPath string) error {
	return Dependency.CreateDir(fs.Fs, fullPath)
}

func (fs GpFsImpl) Delete(fullPath string) error {
	if err := fs.Fs.RemoveAll(fullPath); err != nil {
		return fmt.Errorf(`removing "%s" failed due to: %w`, fullPath, err)
	}

	return nil
}

func (fs GpFsImpl) GetFileMode(fullPath string) (os.FileMode, error) {
	fileInfo, err := Dependency.Stat(fs.Fs, fullPath)
	if err != nil {
		return 0, err
	}

	return fileInfo.Mode().Perm(), nil
}

func (fs GpFsImpl) Read(fullPath string) (string, error) {
	if content, err := Dependency.ReadFile(fs.Fs, fullPath); err != nil {
		return "", fmt.Errorf(`failed to read "%s" due to: %w`, fullPath, err)
	} else {
		return string(content), nil
	}
}

func (fs GpFsImpl) ReadLines(fullPath string) ([]string, error) {
	f, err := Dependency.OpenFile(fs.Fs, fullPath, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Dependency.GetLines(f), nil
}

func (fs GpFsImpl) Write(filename string, content string, perms os.FileMode) error {
	if err := Dependency.CreateDir(fs.Fs, path.Dir(filename)); err != nil {
		return err
	}

	if err := Dependency.WriteFile(fs.Fs, filename, []byte(content), perms); err != nil {
		return fmt.Errorf(`failed to write "%s" due to: %w`, filename, err)
	}

	if err := Dependency.Chmod(fs.Fs, filename, perms); err != nil {
		return err
	}

	return nil
}

func Chmod(fs vfs.Fs, name string, perms os.FileMode) error {
	if err := fs.Chmod(name, perms); err != nil {
		return fmt.Errorf(`changing permissions for "%s" failed due to: %w`, name, err)
	}

	return nil
}

func CreateDir(fs vfs.Fs, fullPath string) error {
	if err := fs.MkdirAll(fullPath, 0755); err != nil {
		return fmt.Errorf(`creating "%s" failed due to: %w`, fullPath, err)
	}

	return nil
}

func GetLines(f GpFile) []string {
	scanner := Dependency.GetScanner(f)

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines
}

func OpenFile(fs vfs.Fs, path string, flags int, perms os.FileMode) (GpFile, error) {
	if f, err := fs.OpenFile(path, flags, perms); err != nil {
		return nil, fmt.Errorf(`opening "%s" failed due to: %w`, path, err)
	} else {
		return f, nil
	}
}

func Stat(fs vfs.Fs, path string) (OsFile, error) {
	fileInfo, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf(`getting system info for "%s" failed due to: %w`, path, err)
	}

	return fileInfo, nil
}

type GpScanner interface {
	Scan() bool
	Text() string
}

func getScanner(f GpFile) GpScanner {
	return bufio.NewScanner(f)
}

func readFile(fs vfs.Fs, fullPath string) ([]byte, error) {
	return vfs.ReadFile(fs, fullPath)
}

func writeFile(fs vfs.Fs, filename string, content []byte, perm os.FileMode) error {
	return vfs.WriteFile(fs, filename, content, perm)
}
