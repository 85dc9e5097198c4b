package testhelper

/*
 * This file contains test structs used in unit tests via dependency injection.
 */

// FailingReader returns its configured error from every read.
type FailingReader struct {
	Err error
}

func (reader *FailingReader) ReadString(delim byte) (string, error) {
	return "", reader.Err
}
