package interfaces

import (
	"context"
	"vitrine_industrial/internal/domain/entities"
)

// INotifier announces new admin panel quotes (e-mail relay, Kafka topic...).
type INotifier interface {
	NotifyNewOrcamento(ctx context.Context, o entities.Orcamento) error
}
