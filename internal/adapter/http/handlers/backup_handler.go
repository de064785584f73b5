package handlers

import (
	"net/http"

	response "vitrine_industrial/internal/adapter/http/dto/response"
	"vitrine_industrial/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BackupHandler exports, imports and resets a whole store. The :scope path
// parameter selects the catalog or the admin panel.
type BackupHandler struct {
	usecase usecase.IBackupUseCase
}

func NewBackupHandler(uc usecase.IBackupUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

func (h *BackupHandler) Export(c *gin.Context) {
	data, err := h.usecase.Export(c.Request.Context(), c.Param("scope"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+c.Param("scope")+`-backup.json"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(data))
}

// Import takes the exported document as the raw request body.
func (h *BackupHandler) Import(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		respondAppError(c, errInvalidPayload)
		return
	}
	if err := h.usecase.Import(c.Request.Context(), c.Param("scope"), string(body)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "backup imported"})
}

func (h *BackupHandler) Reset(c *gin.Context) {
	if err := h.usecase.Reset(c.Request.Context(), c.Param("scope")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "store reset to seed data"})
}
