package deepl

import (
	"context"
	"errors"
	"fmt"
	"hash"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adamwoolhether/deepl/download"
)

// DocumentHandle identifies an uploaded document. Both fields are required
// to query status or download the result; the key never leaves the client
// except in requests for this document.
type DocumentHandle struct {
	DocumentID  string `json:"document_id"`
	DocumentKey string `json:"document_key"`
}

// DocumentStatus is the response of the document status endpoint.
type DocumentStatus struct {
	DocumentID       string        `json:"document_id"`
	Status           DocumentState `json:"status"`
	SecondsRemaining uint64        `json:"seconds_remaining"`
	BilledCharacters uint64        `json:"billed_characters"`
	ErrorMessage     string        `json:"error_message"`
}

// Done reports whether the translated document is ready for download.
func (s *DocumentStatus) Done() bool {
	return s.Status == DocumentDone
}

type documentUploadParams struct {
	Path       string   `form:"file" validate:"required"`
	TargetLang Language `form:"target_lang" validate:"required"`

	SourceLang *Language
	Formality  *Formality
	GlossaryID *string
	Filename   *string
}

// DocumentUploadCall is a prepared upload of a local file for translation.
type DocumentUploadCall struct {
	call[*DocumentHandle]
	params documentUploadParams
}

// UploadDocument prepares an upload of the file at path for translation
// into targetLang. The file is read before any network traffic; a read
// failure surfaces as a [FileError] without touching the service.
func (api *API) UploadDocument(path string, targetLang Language) *DocumentUploadCall {
	c := &DocumentUploadCall{
		params: documentUploadParams{Path: path, TargetLang: targetLang},
	}
	c.call = call[*DocumentHandle]{api: api, name: "document.upload", run: c.send}

	return c
}

// SourceLang sets the language of the uploaded document. Unset, the
// service detects it.
func (c *DocumentUploadCall) SourceLang(lang Language) *DocumentUploadCall {
	c.params.SourceLang = &lang
	return c
}

// Formality sets the desired register of the translated document.
func (c *DocumentUploadCall) Formality(f Formality) *DocumentUploadCall {
	c.params.Formality = &f
	return c
}

// GlossaryID applies a glossary to the document translation.
func (c *DocumentUploadCall) GlossaryID(id string) *DocumentUploadCall {
	c.params.GlossaryID = &id
	return c
}

// Filename overrides the name reported to the service. Defaults to the
// base name of the uploaded path; the service uses the extension to pick
// a document format.
func (c *DocumentUploadCall) Filename(name string) *DocumentUploadCall {
	c.params.Filename = &name
	return c
}

func (c *DocumentUploadCall) send(ctx context.Context) (*DocumentHandle, error) {
	if err := validateParams(&c.params); err != nil {
		return nil, err
	}

	contents, err := os.ReadFile(c.params.Path)
	if err != nil {
		return nil, &FileError{Op: FileRead, Path: c.params.Path, Err: err}
	}

	fileName := filepath.Base(c.params.Path)
	if c.params.Filename != nil {
		fileName = *c.params.Filename
	}

	fields := map[string]string{
		"target_lang": string(c.params.TargetLang),
	}
	if v := c.params.SourceLang; v != nil {
		fields["source_lang"] = string(*v)
	}
	if v := c.params.Formality; v != nil {
		fields["formality"] = v.String()
	}
	if v := c.params.GlossaryID; v != nil {
		fields["glossary_id"] = *v
	}

	return upload[DocumentHandle](ctx, c.api, "document", fields, fileName, contents)
}

// DocumentStatusCall is a prepared status query for an uploaded document.
type DocumentStatusCall struct {
	call[*DocumentStatus]
	doc DocumentHandle
}

// CheckDocument prepares a status query for doc.
func (api *API) CheckDocument(doc DocumentHandle) *DocumentStatusCall {
	c := &DocumentStatusCall{doc: doc}
	c.call = call[*DocumentStatus]{api: api, name: "document.status", run: c.send}

	return c
}

func (c *DocumentStatusCall) send(ctx context.Context) (*DocumentStatus, error) {
	form := url.Values{}
	form.Set("document_key", c.doc.DocumentKey)

	return postForm[DocumentStatus](ctx, c.api, "document/"+c.doc.DocumentID, form)
}

// DocumentDownloadCall is a prepared download of a translated document
// to a local destination path.
type DocumentDownloadCall struct {
	call[string]
	doc      DocumentHandle
	destPath string
	dlOpts   []download.Option
}

// DownloadDocument prepares a download of the translated doc to destPath.
// The result streams through a temp file that is renamed into place on
// success, so a failed download never leaves a partial destPath behind.
func (api *API) DownloadDocument(doc DocumentHandle, destPath string) *DocumentDownloadCall {
	c := &DocumentDownloadCall{doc: doc, destPath: destPath}
	c.call = call[string]{api: api, name: "document.download", run: c.send}

	return c
}

// Progress enables periodic download progress logging via the client's
// logger.
func (c *DocumentDownloadCall) Progress() *DocumentDownloadCall {
	c.dlOpts = append(c.dlOpts, download.WithProgress())
	return c
}

// Checksum verifies the downloaded document against the hex-encoded
// expected checksum.
func (c *DocumentDownloadCall) Checksum(h hash.Hash, expected string) *DocumentDownloadCall {
	c.dlOpts = append(c.dlOpts, download.WithChecksum(h, expected))
	return c
}

// SkipExisting makes the download a no-op when destPath already exists.
func (c *DocumentDownloadCall) SkipExisting() *DocumentDownloadCall {
	c.dlOpts = append(c.dlOpts, download.WithSkipExisting())
	return c
}

func (c *DocumentDownloadCall) send(ctx context.Context) (string, error) {
	if c.destPath == "" {
		return "", errors.New("destPath must not be empty")
	}

	api := c.api

	form := url.Values{}
	form.Set("document_key", c.doc.DocumentKey)

	reqURL := api.endpoint("document", c.doc.DocumentID, "result")
	req, err := api.newRequest(ctx, http.MethodPost, reqURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	resp, err := api.c.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}

	discardBody := true
	defer func() {
		if discardBody {
			if _, err := io.Copy(io.Discard, resp.Body); err != nil {
				api.logger.Error("failed to discard unused body", "error", err)
			}
		}
		if err := resp.Body.Close(); err != nil {
			api.logger.Error("failed to close response body", "error", err)
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", ErrDocumentNotFound
	case http.StatusServiceUnavailable:
		return "", ErrTranslationNotDone
	default:
		return "", api.errorFrom(resp)
	}

	discardBody = false
	if err := download.Handle(ctx, resp.Body, resp.ContentLength, c.destPath, api.logger, c.dlOpts...); err != nil {
		return "", &FileError{Op: FileWrite, Path: c.destPath, Err: err}
	}

	return c.destPath, nil
}
