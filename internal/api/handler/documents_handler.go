package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// DocumentsHandler serves load attachments: per-load listing, upload and
// removal. Preview and download links go straight to the backend document URL.
type DocumentsHandler struct {
	Base
}

func NewDocumentsHandler(base Base) *DocumentsHandler {
	return &DocumentsHandler{Base: base}
}

func (h *DocumentsHandler) List(c echo.Context) error {
	return h.page(c, c.QueryParam("job"), "")
}

// Upload accepts a multipart form with a "file" part plus the load it belongs
// to and forwards it as-is.
func (h *DocumentsHandler) Upload(c echo.Context) error {
	jobID := c.FormValue("jobId")
	attachmentType := c.FormValue("attachmentType")

	fh, err := c.FormFile("file")
	if err != nil {
		return h.page(c, jobID, "a file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return h.page(c, jobID, "could not read the uploaded file")
	}
	defer src.Close()

	client := h.client(c)
	resp := client.UploadDocument(c.Request().Context(), fh.Filename, src, jobID, attachmentType)
	if !resp.Success {
		return h.page(c, jobID, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionCreate, domain.AuditEntityDocument,
		strconv.FormatInt(resp.Data.ID, 10), map[string]any{"filename": fh.Filename, "jobId": jobID})
	return c.Redirect(http.StatusSeeOther, documentsPath(jobID))
}

func (h *DocumentsHandler) Delete(c echo.Context) error {
	documentID := c.Param("id")
	jobID := c.FormValue("jobId")

	client := h.client(c)
	resp := client.DeleteDocument(c.Request().Context(), documentID)
	if !resp.Success {
		return h.page(c, jobID, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionDelete, domain.AuditEntityDocument, documentID, nil)
	return c.Redirect(http.StatusSeeOther, documentsPath(jobID))
}

func (h *DocumentsHandler) page(c echo.Context, jobID, errMsg string) error {
	ctx := c.Request().Context()
	client := h.client(c)

	var jobs []domain.Job
	if resp := client.GetJobs(ctx); resp.Success {
		jobs = resp.Data
	} else if errMsg == "" {
		errMsg = resp.ErrorMessage()
	}

	var documents []domain.JobAttachment
	urls := map[int64]string{}
	if jobID != "" {
		resp := client.GetJobDocuments(ctx, jobID)
		if resp.Success {
			documents = resp.Data
			for _, d := range documents {
				urls[d.ID] = client.DocumentURL(strconv.FormatInt(d.ID, 10))
			}
		} else if errMsg == "" {
			errMsg = resp.ErrorMessage()
		}
	}

	return h.render(c, "documents", "Documents", errMsg, map[string]any{
		"Jobs":      jobs,
		"JobID":     jobID,
		"Documents": documents,
		"URLs":      urls,
	})
}

func documentsPath(jobID string) string {
	if jobID == "" {
		return "/documents"
	}
	return "/documents?job=" + url.QueryEscape(jobID)
}
