package deepl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxErrBodySize caps the amount of response body read when translating
// a non-200 response. This prevents unbounded memory usage when a large
// response arrives with an error status.
const maxErrBodySize = 4 << 10 // 4KB

var (
	// ErrInvalidResponse is the sentinel wrapped by [InvalidResponseError]:
	// the service responded with a body that could not be decoded.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrRequestFailed is the sentinel wrapped by [RequestError]: the
	// service returned a structured error message.
	ErrRequestFailed = errors.New("request failed")
	// ErrDocumentNotFound is returned when downloading a document with a
	// non-existing document ID or the wrong document key.
	ErrDocumentNotFound = errors.New("document does not exist or the document key is wrong")
	// ErrTranslationNotDone is returned when downloading a document that
	// is still being processed and is not yet ready.
	ErrTranslationNotDone = errors.New("document translation is not yet finished")
)

// InvalidResponseError reports a response body that could not be decoded
// into the expected shape.
type InvalidResponseError struct {
	Detail string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidResponse, e.Detail)
}

func (e *InvalidResponseError) Unwrap() error {
	return ErrInvalidResponse
}

// RequestError carries the error message the service returned alongside
// a non-200 status code.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%v: %s", ErrRequestFailed, e.Message)
}

func (e *RequestError) Unwrap() error {
	return ErrRequestFailed
}

// FileOp distinguishes the local filesystem operation that failed.
type FileOp string

const (
	FileRead  FileOp = "read"
	FileWrite FileOp = "write"
)

// FileError reports a local file that could not be read or written.
// Unwrap exposes the underlying I/O cause, so errors.Is works against
// causes like [io/fs.ErrNotExist].
type FileError struct {
	Op   FileOp
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("fail to %s file %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// errorResponse is the service's error envelope.
type errorResponse struct {
	Message string `json:"message"`
}

// errorFrom translates a non-200 response into a [RequestError], or an
// [InvalidResponseError] when the envelope cannot be decoded.
func (api *API) errorFrom(resp *http.Response) error {
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
	if err != nil {
		return &InvalidResponseError{Detail: fmt.Sprintf("reading error body: %v", err)}
	}

	var envelope errorResponse
	if err := json.Unmarshal(b, &envelope); err != nil {
		return &InvalidResponseError{Detail: fmt.Sprintf("invalid error response: %v", err)}
	}

	return &RequestError{StatusCode: resp.StatusCode, Message: envelope.Message}
}
