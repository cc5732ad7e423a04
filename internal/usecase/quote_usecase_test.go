package usecase

import (
	"context"
	"errors"
	"testing"

	"mecanica_rff/internal/domain/entities"
	mock_interfaces "mecanica_rff/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stubSource[T any] struct {
	ch       chan []T
	canceled bool
}

func newStubSource[T any](snapshots ...[]T) *stubSource[T] {
	ch := make(chan []T, len(snapshots))
	for _, s := range snapshots {
		ch <- s
	}
	return &stubSource[T]{ch: ch}
}

func (s *stubSource[T]) Subscribe() (<-chan []T, func()) {
	return s.ch, func() { s.canceled = true }
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_PrintUsesStoredSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	printer := mock_interfaces.NewMockIQuotePrinter(ctrl)
	uc := NewQuoteUseCase(repo, printer, nil)

	q := storedQuote()
	q.CashTotal = 999.99
	repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
	printer.EXPECT().Render(q).Return([]byte("%PDF"), nil)

	b, err := uc.Print(context.Background(), "q-1")
	if err != nil || string(b) != "%PDF" {
		t.Fatalf("unexpected print result %q err=%v", b, err)
	}
}

func TestQuoteUseCase_Subscribe(t *testing.T) {
	src := newStubSource([]entities.Quote{storedQuote()})
	uc := NewQuoteUseCase(nil, nil, src)

	ch, cancel := uc.Subscribe()
	got := <-ch
	cancel()

	if len(got) != 1 || got[0].ID != "q-1" {
		t.Fatalf("unexpected snapshot %+v", got)
	}
	if !src.canceled {
		t.Fatalf("expected cancel to reach the source")
	}
}
