package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitrine_industrial/internal/adapter/persistence/repository"
	"vitrine_industrial/internal/adapter/persistence/storage"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase"
	"vitrine_industrial/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

func newCatalogRouter(store interfaces.IStorage) *gin.Engine {
	repo := repository.New(store)
	h := NewCatalogHandler(usecase.NewCatalogUseCase(repo.Products, repo.Categories))

	r := gin.New()
	r.GET("/v1/products", h.ListPublicProducts)
	r.GET("/v1/products/:slug", h.GetPublicProduct)
	r.GET("/v1/admin/products", h.ListProducts)
	r.POST("/v1/admin/products", h.CreateProduct)
	r.GET("/v1/admin/products/:id", h.GetProduct)
	r.PATCH("/v1/admin/products/:id", h.UpdateProduct)
	r.DELETE("/v1/admin/products/:id", h.DeleteProduct)
	r.POST("/v1/admin/categories", h.CreateCategory)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCatalogHandler_Public(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lists only active products", func(t *testing.T) {
		r := newCatalogRouter(storage.NewMemoryStorage())
		w := serve(r, http.MethodGet, "/v1/products?status=DRAFT", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Data  []entities.Product `json:"data"`
			Total int                `json:"total"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Total != 2 {
			t.Fatalf("expected the 2 active seed products, got %d", body.Total)
		}
		for _, p := range body.Data {
			if p.Status != entities.ProductStatusActive {
				t.Fatalf("draft product %s leaked to the public list", p.ID)
			}
		}
	})

	t.Run("active product by slug", func(t *testing.T) {
		r := newCatalogRouter(storage.NewMemoryStorage())
		w := serve(r, http.MethodGet, "/v1/products/tanque-de-combustivel-15-000-l", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("draft product is not found", func(t *testing.T) {
		r := newCatalogRouter(storage.NewMemoryStorage())
		w := serve(r, http.MethodGet, "/v1/products/bomba-de-abastecimento-12v", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("no storage serves an empty catalog", func(t *testing.T) {
		r := newCatalogRouter(nil)
		w := serve(r, http.MethodGet, "/v1/products", "")
		if w.Code != http.StatusOK || w.Body.String() != `{"data":[],"total":0}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestCatalogHandler_Admin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create, update and delete", func(t *testing.T) {
		r := newCatalogRouter(storage.NewMemoryStorage())

		w := serve(r, http.MethodPost, "/v1/admin/products", `{"title":"Tanque Skid 3.000 L","price":18500}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var created entities.Product
		_ = json.Unmarshal(w.Body.Bytes(), &created)
		if created.ID == "" || created.Slug != "tanque-skid-3-000-l" || created.Status != entities.ProductStatusDraft {
			t.Fatalf("unexpected product %+v", created)
		}

		w = serve(r, http.MethodPatch, "/v1/admin/products/"+created.ID, `{"status":"ACTIVE"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		w = serve(r, http.MethodGet, "/v1/products/tanque-skid-3-000-l", "")
		if w.Code != http.StatusOK {
			t.Fatalf("activated product should be public, got %d", w.Code)
		}

		w = serve(r, http.MethodDelete, "/v1/admin/products/"+created.ID, "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		w = serve(r, http.MethodGet, "/v1/admin/products/"+created.ID, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", w.Code)
		}
	})

	t.Run("invalid slug", func(t *testing.T) {
		r := newCatalogRouter(storage.NewMemoryStorage())
		w := serve(r, http.MethodPost, "/v1/admin/products", `{"title":"Tanque","slug":"Tanque Novo"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		w = serve(r, http.MethodPost, "/v1/admin/categories", `{"name":"Bombas","slug":"bombas_"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		r := newCatalogRouter(storage.NewMemoryStorage())
		w := serve(r, http.MethodPost, "/v1/admin/products", `{"title":"Tanque","price":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status filter", func(t *testing.T) {
		r := newCatalogRouter(storage.NewMemoryStorage())
		w := serve(r, http.MethodGet, "/v1/admin/products?status=ARCHIVED", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create without storage", func(t *testing.T) {
		r := newCatalogRouter(nil)
		w := serve(r, http.MethodPost, "/v1/admin/products", `{"title":"Tanque"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
