package usecase

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_usecase.go -package=mocks

import (
	"context"
	"errors"
	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase/interfaces"
	"strings"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
)

// IQuoteUseCase serves read access to stored quotes and orders.
type IQuoteUseCase interface {
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Print(ctx context.Context, id string) ([]byte, error)
	Subscribe() (<-chan []entities.Quote, func())
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	printer interfaces.IQuotePrinter
	feed    interfaces.ISnapshotSource[entities.Quote]
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, printer interfaces.IQuotePrinter, feed interfaces.ISnapshotSource[entities.Quote]) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, printer: printer, feed: feed}
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// Print renders the stored snapshot; nothing is recomputed.
func (u *QuoteUseCase) Print(ctx context.Context, id string) ([]byte, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.printer.Render(q)
}

// Subscribe streams the quote list. The caller must call the returned cancel
// function when it stops reading.
func (u *QuoteUseCase) Subscribe() (<-chan []entities.Quote, func()) {
	return u.feed.Subscribe()
}
