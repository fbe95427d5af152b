package report

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
)

// UploadPath is the automation upload endpoint.
const UploadPath = "/v1/automations/upload"

// UploadFile is one file to send to the upload endpoint.
type UploadFile struct {
	Name string
	Data []byte
}

// Upload posts files as multipart form data, one "files" part per
// file, plus an optional automation_id field. Failures carry the
// upload-specific error prefix.
func (c *Client) Upload(files []UploadFile, automationID string) (*Result, error) {
	if len(files) == 0 {
		return nil, &UploadError{Detail: "no hay archivos para subir"}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, err
		}
	}
	if automationID != "" {
		if err := w.WriteField("automation_id", automationID); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	fullURL := c.BuildURL(UploadPath, nil)
	httpReq, err := http.NewRequest(http.MethodPost, fullURL, &buf)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	result, err := c.do(httpReq, fullURL, nil, c.cfg.Timeout)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil, &UploadError{Status: statusErr.Status, Detail: statusErr.Detail}
		}
		return nil, err
	}
	return result, nil
}
