package interfaces

import (
	"context"
	"vitrine_industrial/internal/domain/entities"
)

// IQuoteRepository abstracts the catalog quote request collection.

type IQuoteRepository interface {
	List(ctx context.Context, filter entities.QuoteFilter) ([]entities.QuoteRequest, error)
	Get(ctx context.Context, id string) (*entities.QuoteRequest, error)
	Create(ctx context.Context, patch entities.QuoteRequestPatch) (entities.QuoteRequest, error)
	Update(ctx context.Context, id string, patch entities.QuoteRequestPatch) (*entities.QuoteRequest, error)
	Delete(ctx context.Context, id string) (bool, error)
}
