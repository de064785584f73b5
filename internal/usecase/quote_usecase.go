package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound       = errors.New("quote request not found")
	ErrInvalidQuoteContact = errors.New("customer name, email and phone are required")
	ErrInvalidQuoteStatus  = errors.New("invalid quote status")
)

// IQuoteUseCase handles the catalog quote requests.
//
//   - SubmitQuote is the public form: status is always NEW
//   - UpdateQuote is the sales pipeline (status, internal notes)

type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, patch entities.QuoteRequestPatch) (entities.QuoteRequest, error)
	ListQuotes(ctx context.Context, filter entities.QuoteFilter) ([]entities.QuoteRequest, error)
	GetQuote(ctx context.Context, id string) (entities.QuoteRequest, error)
	UpdateQuote(ctx context.Context, id string, patch entities.QuoteRequestPatch) (entities.QuoteRequest, error)
	DeleteQuote(ctx context.Context, id string) error
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) SubmitQuote(ctx context.Context, patch entities.QuoteRequestPatch) (entities.QuoteRequest, error) {
	if blank(patch.CustomerName) || blank(patch.CustomerEmail) || blank(patch.CustomerPhone) {
		return entities.QuoteRequest{}, ErrInvalidQuoteContact
	}
	status := entities.QuoteStatusNew
	patch.Status = &status
	patch.InternalNotes = nil

	q, err := u.repo.Create(ctx, patch)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	log.Printf("[quote][usecase] quote submitted id=%s", q.ID)
	return q, nil
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context, filter entities.QuoteFilter) ([]entities.QuoteRequest, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidQuoteStatus
	}
	return u.repo.List(ctx, filter)
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidID
	}
	q, err := u.repo.Get(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q == nil {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	return *q, nil
}

func (u *QuoteUseCase) UpdateQuote(ctx context.Context, id string, patch entities.QuoteRequestPatch) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidID
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.QuoteRequest{}, ErrInvalidQuoteStatus
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if updated == nil {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	return *updated, nil
}

func (u *QuoteUseCase) DeleteQuote(ctx context.Context, id string) error {
	return deleteByID(ctx, id, u.repo.Delete, ErrQuoteNotFound)
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
