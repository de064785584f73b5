package usecase

import (
	"context"
	"errors"
	"strings"

	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
)

var (
	ErrInvalidID            = errors.New("invalid id")
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidProductTitle  = errors.New("invalid product title")
	ErrInvalidProductStatus = errors.New("invalid product status")
	ErrInvalidProductValues = errors.New("price and stock must not be negative")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrInvalidCategoryName  = errors.New("invalid category name")
)

// ICatalogUseCase exposes products and categories.
type ICatalogUseCase interface {
	ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (entities.Product, error)
	CreateProduct(ctx context.Context, patch entities.ProductPatch) (entities.Product, error)
	UpdateProduct(ctx context.Context, id string, patch entities.ProductPatch) (entities.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context, filter entities.CategoryFilter) ([]entities.Category, error)
	GetCategory(ctx context.Context, id string) (entities.Category, error)
	CreateCategory(ctx context.Context, patch entities.CategoryPatch) (entities.Category, error)
	UpdateCategory(ctx context.Context, id string, patch entities.CategoryPatch) (entities.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	products   interfaces.IProductRepository
	categories interfaces.ICategoryRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(products interfaces.IProductRepository, categories interfaces.ICategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidProductStatus
	}
	return u.products.List(ctx, filter)
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidID
	}
	p, err := u.products.Get(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p == nil {
		return entities.Product{}, ErrProductNotFound
	}
	return *p, nil
}

func (u *CatalogUseCase) GetProductBySlug(ctx context.Context, slug string) (entities.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.Product{}, ErrInvalidID
	}
	p, err := u.products.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Product{}, err
	}
	if p == nil {
		return entities.Product{}, ErrProductNotFound
	}
	return *p, nil
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, patch entities.ProductPatch) (entities.Product, error) {
	if patch.Title == nil || strings.TrimSpace(*patch.Title) == "" {
		return entities.Product{}, ErrInvalidProductTitle
	}
	if err := validateProductPatch(patch); err != nil {
		return entities.Product{}, err
	}
	return u.products.Create(ctx, patch)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, id string, patch entities.ProductPatch) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidID
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return entities.Product{}, ErrInvalidProductTitle
	}
	if err := validateProductPatch(patch); err != nil {
		return entities.Product{}, err
	}

	updated, err := u.products.Update(ctx, id, patch)
	if err != nil {
		return entities.Product{}, err
	}
	if updated == nil {
		return entities.Product{}, ErrProductNotFound
	}
	return *updated, nil
}

func validateProductPatch(patch entities.ProductPatch) error {
	if patch.Status != nil && !patch.Status.Valid() {
		return ErrInvalidProductStatus
	}
	if (patch.Price != nil && *patch.Price < 0) || (patch.StockQty != nil && *patch.StockQty < 0) {
		return ErrInvalidProductValues
	}
	return nil
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	return deleteByID(ctx, id, u.products.Delete, ErrProductNotFound)
}

func (u *CatalogUseCase) ListCategories(ctx context.Context, filter entities.CategoryFilter) ([]entities.Category, error) {
	return u.categories.List(ctx, filter)
}

func (u *CatalogUseCase) GetCategory(ctx context.Context, id string) (entities.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Category{}, ErrInvalidID
	}
	c, err := u.categories.Get(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if c == nil {
		return entities.Category{}, ErrCategoryNotFound
	}
	return *c, nil
}

func (u *CatalogUseCase) CreateCategory(ctx context.Context, patch entities.CategoryPatch) (entities.Category, error) {
	if patch.Name == nil || strings.TrimSpace(*patch.Name) == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}
	return u.categories.Create(ctx, patch)
}

func (u *CatalogUseCase) UpdateCategory(ctx context.Context, id string, patch entities.CategoryPatch) (entities.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Category{}, ErrInvalidID
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}
	updated, err := u.categories.Update(ctx, id, patch)
	if err != nil {
		return entities.Category{}, err
	}
	if updated == nil {
		return entities.Category{}, ErrCategoryNotFound
	}
	return *updated, nil
}

// DeleteCategory does not cascade: products keep the dangling category_id.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	return deleteByID(ctx, id, u.categories.Delete, ErrCategoryNotFound)
}

func deleteByID(ctx context.Context, id string, del func(context.Context, string) (bool, error), notFound error) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	ok, err := del(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}
