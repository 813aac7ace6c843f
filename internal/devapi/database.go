package devapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// GetDatabaseTables lists the backend's tables for the database console.
func (c *Client) GetDatabaseTables(ctx context.Context) Response[[]domain.DatabaseTable] {
	return request[[]domain.DatabaseTable](ctx, c, http.MethodGet, "/hauling/database/tables", nil)
}

// GetTableSchema fetches the column definitions of a table.
func (c *Client) GetTableSchema(ctx context.Context, tableName string) Response[[]domain.TableColumn] {
	return request[[]domain.TableColumn](ctx, c, http.MethodGet,
		"/hauling/database/tables/"+tableName+"/schema", nil)
}

// GetTableRows pages through raw rows of a table.
func (c *Client) GetTableRows(ctx context.Context, tableName string, q domain.RowsQuery) Response[domain.TableRowsPage] {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	return request[domain.TableRowsPage](ctx, c, http.MethodGet,
		withQuery("/hauling/database/tables/"+tableName+"/rows", v), nil)
}

// GetTableStats fetches size information for a table.
func (c *Client) GetTableStats(ctx context.Context, tableName string) Response[domain.TableStats] {
	return request[domain.TableStats](ctx, c, http.MethodGet,
		"/hauling/database/tables/"+tableName+"/stats", nil)
}

// ExecuteQuery runs an ad-hoc query through the backend console endpoint.
// Authorization and statement restrictions are enforced by the backend.
func (c *Client) ExecuteQuery(ctx context.Context, query string) Response[domain.QueryResult] {
	return request[domain.QueryResult](ctx, c, http.MethodPost, "/hauling/database/query",
		map[string]string{"query": query})
}
