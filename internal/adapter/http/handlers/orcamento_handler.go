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

// OrcamentoHandler serves the contact form and the admin panel (orcamentos
// and settings).
type OrcamentoHandler struct {
	usecase usecase.IOrcamentoUseCase
}

func NewOrcamentoHandler(uc usecase.IOrcamentoUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{usecase: uc}
}

// SubmitOrcamento godoc
// @Summary      Send the contact form
// @Tags         orcamentos
// @Accept       json
// @Produce      json
// @Param        payload  body  request.OrcamentoSubmitRequest  true  "Contact form"
// @Success      201  {object}  entities.Orcamento
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orcamentos [post]
func (h *OrcamentoHandler) SubmitOrcamento(c *gin.Context) {
	var payload request.OrcamentoSubmitRequest
	if !bindValidated(c, &payload, nil) {
		return
	}

	orcamento, err := h.usecase.SubmitOrcamento(c.Request.Context(), payload.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.RecordFormSubmission("orcamento")
	c.JSON(http.StatusCreated, orcamento)
}

func (h *OrcamentoHandler) ListOrcamentos(c *gin.Context) {
	filter := entities.OrcamentoFilter{
		Search: c.Query("search"),
		Status: entities.OrcamentoStatus(c.Query("status")),
	}
	orcamentos, err := h.usecase.ListOrcamentos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(orcamentos))
}

func (h *OrcamentoHandler) GetOrcamento(c *gin.Context) {
	orcamento, err := h.usecase.GetOrcamento(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orcamento)
}

func (h *OrcamentoHandler) UpdateOrcamento(c *gin.Context) {
	var payload request.OrcamentoUpdateRequest
	if !bindValidated(c, &payload, nil) {
		return
	}
	orcamento, err := h.usecase.UpdateOrcamento(c.Request.Context(), c.Param("id"), payload.OrcamentoPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orcamento)
}

func (h *OrcamentoHandler) DeleteOrcamento(c *gin.Context) {
	if err := h.usecase.DeleteOrcamento(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrcamentoHandler) GetSettings(c *gin.Context) {
	settings, err := h.usecase.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings merges top-level sections; a section sent is replaced whole.
func (h *OrcamentoHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if !bindValidated(c, &payload, nil) {
		return
	}
	settings, err := h.usecase.UpdateSettings(c.Request.Context(), payload.SettingsPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
