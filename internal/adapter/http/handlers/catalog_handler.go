package handlers

import (
	"errors"
	"net/http"

	request "vitrine_industrial/internal/adapter/http/dto/request"
	response "vitrine_industrial/internal/adapter/http/dto/response"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves products and categories.
//
// Public routes only ever expose ACTIVE products; a draft is reported as
// not found. Admin routes see everything.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListPublicProducts godoc
// @Summary      List active products
// @Tags         catalog
// @Produce      json
// @Param        search       query  string  false  "Title, SKU or description"
// @Param        category_id  query  string  false  "Category id"
// @Success      200  {object}  response.ListResponse[entities.Product]
// @Router       /products [get]
func (h *CatalogHandler) ListPublicProducts(c *gin.Context) {
	filter := entities.ProductFilter{
		Search:     c.Query("search"),
		Status:     entities.ProductStatusActive,
		CategoryID: c.Query("category_id"),
	}
	h.listProducts(c, filter)
}

// GetPublicProduct godoc
// @Summary      Get an active product by slug
// @Tags         catalog
// @Produce      json
// @Param        slug  path  string  true  "Product slug"
// @Success      200  {object}  entities.Product
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{slug} [get]
func (h *CatalogHandler) GetPublicProduct(c *gin.Context) {
	product, err := h.usecase.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err == nil && product.Status != entities.ProductStatusActive {
		err = usecase.ErrProductNotFound
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := entities.ProductFilter{
		Search:     c.Query("search"),
		Status:     entities.ProductStatus(c.Query("status")),
		CategoryID: c.Query("category_id"),
	}
	h.listProducts(c, filter)
}

func (h *CatalogHandler) listProducts(c *gin.Context, filter entities.ProductFilter) {
	products, err := h.usecase.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(products))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if !bindValidated(c, &payload, payload.Validate) {
		return
	}
	product, err := h.usecase.CreateProduct(c.Request.Context(), payload.ProductPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if !bindValidated(c, &payload, payload.Validate) {
		return
	}
	product, err := h.usecase.UpdateProduct(c.Request.Context(), c.Param("id"), payload.ProductPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCategories is shared by the public and admin routers.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.usecase.ListCategories(c.Request.Context(), entities.CategoryFilter{Search: c.Query("search")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(categories))
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.usecase.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if !bindValidated(c, &payload, payload.Validate) {
		return
	}
	category, err := h.usecase.CreateCategory(c.Request.Context(), payload.CategoryPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if !bindValidated(c, &payload, payload.Validate) {
		return
	}
	category, err := h.usecase.UpdateCategory(c.Request.Context(), c.Param("id"), payload.CategoryPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.usecase.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindValidated decodes the JSON body and runs validate once the payload is
// filled. It writes the 400 response itself and reports whether to go on.
func bindValidated(c *gin.Context, payload any, validate func() error) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return false
	}
	if validate == nil {
		return true
	}
	if err := validate(); err != nil {
		if errors.Is(err, request.ErrInvalidSlug) {
			respondAppError(c, errInvalidSlug)
		} else {
			respondAppError(c, errInvalidPayload)
		}
		return false
	}
	return true
}
