package interfaces

import (
	"context"
	"vitrine_industrial/internal/domain/entities"
)

// IProductRepository abstracts the product collection.
//
// Not-found is reported as a nil record (Get/Update) or false (Delete), never
// as an error. Create fails with ErrStorageUnavailable without a substrate.

type IProductRepository interface {
	List(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
	Get(ctx context.Context, id string) (*entities.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Product, error)
	Create(ctx context.Context, patch entities.ProductPatch) (entities.Product, error)
	Update(ctx context.Context, id string, patch entities.ProductPatch) (*entities.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ICategoryRepository abstracts the category collection. Deleting a category
// never touches products that reference it.

type ICategoryRepository interface {
	List(ctx context.Context, filter entities.CategoryFilter) ([]entities.Category, error)
	Get(ctx context.Context, id string) (*entities.Category, error)
	Create(ctx context.Context, patch entities.CategoryPatch) (entities.Category, error)
	Update(ctx context.Context, id string, patch entities.CategoryPatch) (*entities.Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}
