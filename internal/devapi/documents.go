package devapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// UploadDocument submits a file as a multipart form with fields "file" and
// optional "jobId"/"attachmentType". Unlike JSON calls, no JSON content type
// header is sent; the multipart writer supplies its own boundary type.
func (c *Client) UploadDocument(ctx context.Context, filename string, file io.Reader, jobID, attachmentType string) Response[domain.JobAttachment] {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return failure[domain.JobAttachment]("Request failed")
	}
	if _, err := io.Copy(fw, file); err != nil {
		return failure[domain.JobAttachment]("Request failed")
	}
	if jobID != "" {
		_ = w.WriteField("jobId", jobID)
	}
	if attachmentType != "" {
		_ = w.WriteField("attachmentType", attachmentType)
	}
	if err := w.Close(); err != nil {
		return failure[domain.JobAttachment]("Request failed")
	}

	endpoint := "/hauling/documents/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return failure[domain.JobAttachment]("Request failed")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.decorate(req)

	resp, err := c.roundTrip(req, endpoint)
	if err != nil {
		return failure[domain.JobAttachment]("Network error: " + err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure[domain.JobAttachment]("Network error: " + err.Error())
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return failure[domain.JobAttachment](backendError(raw))
	}

	var out Response[domain.JobAttachment]
	if err := json.Unmarshal(raw, &out); err != nil {
		return failure[domain.JobAttachment]("Request failed")
	}
	return out
}

// GetJobDocuments lists the attachments of a load.
func (c *Client) GetJobDocuments(ctx context.Context, jobID string) Response[[]domain.JobAttachment] {
	return request[[]domain.JobAttachment](ctx, c, http.MethodGet, "/hauling/documents/job/"+jobID, nil)
}

// DeleteDocument removes an attachment.
func (c *Client) DeleteDocument(ctx context.Context, documentID string) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodDelete, "/hauling/documents/"+documentID, nil)
}

// DocumentURL builds the directly fetchable URL for a document, used for both
// inline preview and download. Pure string construction; no network call.
func (c *Client) DocumentURL(documentID string) string {
	return c.baseURL + "/hauling/documents/" + documentID
}
