package handlers

import (
	"net/http"
	"strconv"

	request "vitrine_industrial/internal/adapter/http/dto/request"
	"vitrine_industrial/internal/adapter/persistence/localdb"

	"github.com/gin-gonic/gin"
)

// LegacyHandler exposes the local query client to pages that still speak the
// {data, error} envelope. Responses are the client's results as-is; only the
// status code is derived from the error code.
type LegacyHandler struct {
	client *localdb.Client
}

func NewLegacyHandler(client *localdb.Client) *LegacyHandler {
	return &LegacyHandler{client: client}
}

// Select query parameters: select, eq_field + eq_value, order + ascending,
// single=true.
func (h *LegacyHandler) Select(c *gin.Context) {
	q := h.client.From(c.Param("table")).Select(c.DefaultQuery("select", "*"))
	if field := c.Query("eq_field"); field != "" {
		q = q.Eq(field, c.Query("eq_value"))
	}
	if field := c.Query("order"); field != "" {
		asc, _ := strconv.ParseBool(c.DefaultQuery("ascending", "true"))
		q = q.Order(field, localdb.OrderOptions{Descending: !asc})
	}

	if single, _ := strconv.ParseBool(c.Query("single")); single {
		res := q.Single(c.Request.Context())
		c.JSON(legacyStatus(res.Error, http.StatusOK), res)
		return
	}
	res := <-q.Then(c.Request.Context())
	c.JSON(legacyStatus(res.Error, http.StatusOK), res)
}

func (h *LegacyHandler) Insert(c *gin.Context) {
	var payload request.LegacyInsertRequest
	if !bindValidated(c, &payload, nil) {
		return
	}
	res := h.client.From(c.Param("table")).Insert(c.Request.Context(), payload.Rows...)
	c.JSON(legacyStatus(res.Error, http.StatusCreated), res)
}

func (h *LegacyHandler) Update(c *gin.Context) {
	var payload request.LegacyUpdateRequest
	if !bindValidated(c, &payload, nil) {
		return
	}
	q := h.client.From(c.Param("table"))
	if payload.EqField != "" {
		q = q.Eq(payload.EqField, payload.EqValue)
	}
	res := q.Update(c.Request.Context(), payload.Values)
	c.JSON(legacyStatus(res.Error, http.StatusOK), res)
}

func (h *LegacyHandler) Delete(c *gin.Context) {
	q := h.client.From(c.Param("table"))
	if field := c.Query("eq_field"); field != "" {
		q = q.Eq(field, c.Query("eq_value"))
	}
	res := q.Delete(c.Request.Context())
	c.JSON(legacyStatus(res.Error, http.StatusOK), res)
}

func legacyStatus(qerr *localdb.QueryError, ok int) int {
	if qerr == nil {
		return ok
	}
	switch qerr.Code {
	case localdb.CodeNoRows, localdb.CodeUnknownTable:
		return http.StatusNotFound
	case localdb.CodeNoFilter:
		return http.StatusBadRequest
	case localdb.CodeStorage:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
