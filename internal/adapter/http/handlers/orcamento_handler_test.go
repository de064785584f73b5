package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitrine_industrial/internal/adapter/http/handlers/mocks"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase"
	"vitrine_industrial/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrcamentoHandler_SubmitOrcamento(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing nome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/orcamentos", h.SubmitOrcamento)

		req := httptest.NewRequest(http.MethodPost, "/v1/orcamentos", bytes.NewBufferString(`{"telefone":"1199999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("storage unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/orcamentos", h.SubmitOrcamento)

		uc.EXPECT().SubmitOrcamento(gomock.Any(), gomock.Any()).Return(entities.Orcamento{}, interfaces.ErrStorageUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/orcamentos", bytes.NewBufferString(`{"nome":"Carlos","telefone":"1199999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/orcamentos", h.SubmitOrcamento)

		qty := 2
		uc.EXPECT().SubmitOrcamento(gomock.Any(), entities.OrcamentoPatch{
			Nome:       strPtr("Carlos"),
			Telefone:   strPtr("1199999"),
			Email:      strPtr(""),
			Produto:    strPtr("Tanque 15.000 L"),
			Quantidade: &qty,
			Mensagem:   strPtr(""),
		}).Return(entities.Orcamento{ID: "orc-1", Nome: "Carlos", Quantidade: 2, Status: entities.OrcamentoStatusNovo}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orcamentos", bytes.NewBufferString(`{"nome":" Carlos ","telefone":"1199999","produto":"Tanque 15.000 L","quantidade":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body entities.Orcamento
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.ID != "orc-1" || body.Status != entities.OrcamentoStatusNovo {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOrcamentoHandler_Admin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/orcamentos/:id", h.GetOrcamento)

		uc.EXPECT().GetOrcamento(gomock.Any(), "orc-x").Return(entities.Orcamento{}, usecase.ErrOrcamentoNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/orcamentos/orc-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/orcamentos/:id", h.UpdateOrcamento)

		status := entities.OrcamentoStatusEmContato
		uc.EXPECT().UpdateOrcamento(gomock.Any(), "orc-1", entities.OrcamentoPatch{Status: &status}).
			Return(entities.Orcamento{ID: "orc-1", Status: status}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/orcamentos/orc-1", bytes.NewBufferString(`{"status":"em_contato"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/settings", h.UpdateSettings)

		patch := entities.SettingsPatch{Notificacoes: &entities.Notificacoes{AvisarNovosOrcamentos: false}}
		uc.EXPECT().UpdateSettings(gomock.Any(), patch).Return(entities.Settings{}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/settings", bytes.NewBufferString(`{"notificacoes":{"avisarNovosOrcamentos":false}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid usuario", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/settings", h.UpdateSettings)

		uc.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(entities.Settings{}, usecase.ErrInvalidUsuario)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/settings", bytes.NewBufferString(`{"usuarios":[{"nome":""}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func strPtr(s string) *string { return &s }
