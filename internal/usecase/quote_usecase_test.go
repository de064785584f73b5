package usecase

import (
	"context"
	"errors"
	"testing"

	"vitrine_industrial/internal/domain/entities"
	mock_interfaces "vitrine_industrial/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestQuoteUseCase_SubmitQuote(t *testing.T) {
	t.Run("missing contact", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.SubmitQuote(context.Background(), entities.QuoteRequestPatch{
			CustomerName:  strPtr("Ana"),
			CustomerEmail: strPtr("ana@frota.com.br"),
			CustomerPhone: strPtr("   "),
		})
		if !errors.Is(err, ErrInvalidQuoteContact) {
			t.Fatalf("expected ErrInvalidQuoteContact, got %v", err)
		}
	})

	t.Run("forces NEW and drops internal notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		won := entities.QuoteStatusWon
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRequestPatch{})).DoAndReturn(
			func(_ context.Context, p entities.QuoteRequestPatch) (entities.QuoteRequest, error) {
				if p.Status == nil || *p.Status != entities.QuoteStatusNew {
					t.Fatalf("expected NEW status, got %v", p.Status)
				}
				if p.InternalNotes != nil {
					t.Fatalf("expected internal notes dropped")
				}
				return entities.QuoteRequest{ID: "q-1", Status: *p.Status, CustomerName: *p.CustomerName}, nil
			},
		)

		q, err := uc.SubmitQuote(context.Background(), entities.QuoteRequestPatch{
			Status:        &won,
			InternalNotes: strPtr("vip"),
			CustomerName:  strPtr("Ana"),
			CustomerEmail: strPtr("ana@frota.com.br"),
			CustomerPhone: strPtr("(11) 98888-0000"),
		})
		if err != nil || q.ID != "q-1" {
			t.Fatalf("unexpected result %+v err=%v", q, err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, errors.New("storage unavailable"))

		_, err := uc.SubmitQuote(context.Background(), entities.QuoteRequestPatch{
			CustomerName:  strPtr("Ana"),
			CustomerEmail: strPtr("ana@frota.com.br"),
			CustomerPhone: strPtr("1"),
		})
		if err == nil || err.Error() != "storage unavailable" {
			t.Fatalf("expected storage error, got %v", err)
		}
	})
}

func TestQuoteUseCase_UpdateQuote(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		if _, err := uc.UpdateQuote(context.Background(), " ", entities.QuoteRequestPatch{}); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		bad := entities.QuoteStatus("ARCHIVED")
		if _, err := uc.UpdateQuote(context.Background(), "q-1", entities.QuoteRequestPatch{Status: &bad}); !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).Return(nil, nil)

		if _, err := uc.UpdateQuote(context.Background(), " q-1 ", entities.QuoteRequestPatch{}); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		won := entities.QuoteStatusWon
		repo.EXPECT().Update(gomock.Any(), "q-1", entities.QuoteRequestPatch{Status: &won}).
			Return(&entities.QuoteRequest{ID: "q-1", Status: won}, nil)

		q, err := uc.UpdateQuote(context.Background(), "q-1", entities.QuoteRequestPatch{Status: &won})
		if err != nil || q.Status != won {
			t.Fatalf("unexpected result %+v err=%v", q, err)
		}
	})
}

func TestQuoteUseCase_Other(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "q-9").Return(nil, nil)
		if _, err := uc.GetQuote(context.Background(), "q-9"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("list invalid status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		if _, err := uc.ListQuotes(context.Background(), entities.QuoteFilter{Status: "x"}); !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), "q-2").Return(false, nil)

		if err := uc.DeleteQuote(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.DeleteQuote(context.Background(), "q-2"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}
