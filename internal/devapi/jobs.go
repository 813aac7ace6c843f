package devapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// GetJobs lists all hauling loads.
func (c *Client) GetJobs(ctx context.Context) Response[[]domain.Job] {
	return request[[]domain.Job](ctx, c, http.MethodGet, "/hauling/jobs", nil)
}

// CreateJob submits a new load.
func (c *Client) CreateJob(ctx context.Context, in domain.CreateJobInput) Response[domain.Job] {
	return request[domain.Job](ctx, c, http.MethodPost, "/hauling/jobs", in)
}

// UpdateJobStatus moves a load to a new status.
func (c *Client) UpdateJobStatus(ctx context.Context, jobID, status string) Response[domain.Job] {
	return request[domain.Job](ctx, c, http.MethodPut,
		fmt.Sprintf("/hauling/jobs/%s/status", jobID),
		map[string]string{"status": status})
}
