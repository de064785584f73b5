package handlers

import (
	"net/http"

	request "vitrine_industrial/internal/adapter/http/dto/request"
	response "vitrine_industrial/internal/adapter/http/dto/response"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/infrastructure/metrics"
	"vitrine_industrial/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// SubmitQuote godoc
// @Summary      Request a quote for a product
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body  request.QuoteSubmitRequest  true  "Quote form"
// @Success      201  {object}  entities.QuoteRequest
// @Failure      400  {object}  pkg.HTTPError
// @Failure      429  {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.QuoteSubmitRequest
	if !bindValidated(c, &payload, nil) {
		return
	}

	quote, err := h.usecase.SubmitQuote(c.Request.Context(), payload.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.RecordFormSubmission("quote")
	c.JSON(http.StatusCreated, quote)
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	filter := entities.QuoteFilter{
		Search: c.Query("search"),
		Status: entities.QuoteStatus(c.Query("status")),
	}
	quotes, err := h.usecase.ListQuotes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// UpdateQuote moves a quote through the sales pipeline and stores internal
// notes.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteUpdateRequest
	if !bindValidated(c, &payload, nil) {
		return
	}
	quote, err := h.usecase.UpdateQuote(c.Request.Context(), c.Param("id"), payload.QuoteRequestPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
