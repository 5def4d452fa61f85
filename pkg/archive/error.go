package archive

import "fmt"

// Kind identifies the pipeline stage an invocation failed in
type Kind string

const (
	KindMalformedEvent Kind = "malformed-event"
	KindDecompression  Kind = "decompression"
	KindParse          Kind = "parse"
	KindStorage        Kind = "storage"
)

// Error is returned for every failed invocation
type Error struct {
	Kind Kind
	Err  error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

// Cause returns the underlying error
func (e *Error) Cause() error {
	return e.Err
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

type causer interface {
	Cause() error
}

// ErrorKind returns the kind of an archive error or an empty string
func ErrorKind(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}

		c, ok := err.(causer)
		if !ok {
			break
		}

		err = c.Cause()
	}

	return ""
}

// ErrorMalformedEvent returns true if the event envelope could not be read
func ErrorMalformedEvent(err error) bool {
	return ErrorKind(err) == KindMalformedEvent
}

// ErrorDecompression returns true if the payload was not a valid gzip stream
func ErrorDecompression(err error) bool {
	return ErrorKind(err) == KindDecompression
}

// ErrorParse returns true if the payload was not a valid log batch
func ErrorParse(err error) bool {
	return ErrorKind(err) == KindParse
}

// ErrorStorage returns true if the log batch could not be written
func ErrorStorage(err error) bool {
	return ErrorKind(err) == KindStorage
}
