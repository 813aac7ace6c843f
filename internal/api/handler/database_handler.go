package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// DatabaseHandler serves the database console: table browsing and ad-hoc
// queries. Routes are behind the admin-only middleware on top of the session
// guard; statement restrictions live in the backend.
type DatabaseHandler struct {
	Base
}

func NewDatabaseHandler(base Base) *DatabaseHandler {
	return &DatabaseHandler{Base: base}
}

// Page lists all tables; with ?table= it adds that table's schema, stats and
// a page of raw rows.
func (h *DatabaseHandler) Page(c echo.Context) error {
	return h.page(c, "", domain.QueryResult{})
}

// Query runs an ad-hoc statement and renders its result under the console.
func (h *DatabaseHandler) Query(c echo.Context) error {
	query := c.FormValue("query")
	if query == "" {
		return h.page(c, "a query is required", domain.QueryResult{})
	}

	client := h.client(c)
	resp := client.ExecuteQuery(c.Request().Context(), query)
	if !resp.Success {
		return h.page(c, resp.ErrorMessage(), domain.QueryResult{})
	}

	h.Audit.Record(c, client, domain.AuditActionView, domain.AuditEntitySystem,
		"database-query", map[string]any{"query": query})
	return h.page(c, resp.Data.Error, resp.Data)
}

func (h *DatabaseHandler) page(c echo.Context, errMsg string, result domain.QueryResult) error {
	ctx := c.Request().Context()
	client := h.client(c)

	var tables []domain.DatabaseTable
	if resp := client.GetDatabaseTables(ctx); resp.Success {
		tables = resp.Data
	} else if errMsg == "" {
		errMsg = resp.ErrorMessage()
	}

	data := map[string]any{
		"Tables": tables,
		"Result": result,
	}

	if table := c.QueryParam("table"); table != "" {
		data["Table"] = table

		if resp := client.GetTableSchema(ctx, table); resp.Success {
			data["Schema"] = resp.Data
		} else if errMsg == "" {
			errMsg = resp.ErrorMessage()
		}
		if resp := client.GetTableStats(ctx, table); resp.Success {
			data["TableStats"] = resp.Data
		}

		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		if limit <= 0 {
			limit = 50
		}
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		if resp := client.GetTableRows(ctx, table, domain.RowsQuery{Limit: limit, Offset: offset}); resp.Success {
			data["Rows"] = resp.Data
		}
		data["Limit"] = limit
		data["Offset"] = offset
	}

	return h.render(c, "database", "Database", errMsg, data)
}
