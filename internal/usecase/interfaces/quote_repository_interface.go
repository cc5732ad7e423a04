package interfaces

import (
	"context"
	"errors"
	"mecanica_rff/internal/domain/entities"
)

// ErrStockConflict is returned by CreateOrder when a part no longer holds the
// reserved quantity at commit time. Nothing was written.
var ErrStockConflict = errors.New("stock changed before the order was committed")

// IQuoteRepository abstracts persistence of the "orcamento" collection.
//
// Not-found lookups return a zero Quote (empty ID) and a nil error, the same
// convention used by every repository in this service.
//
//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository.go -package=mock_interfaces
type IQuoteRepository interface {
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	// Create stores a new quote and returns it with the store-assigned id.
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	// CreateOrder decrements every reserved part and stores the quote in one
	// atomic write.
	CreateOrder(ctx context.Context, q entities.Quote, reservations []entities.StockReservation) (entities.Quote, error)
	// Replace overwrites an existing quote wholesale. A missing quote yields a
	// zero Quote.
	Replace(ctx context.Context, q entities.Quote) (entities.Quote, error)
	// Delete removes a quote, reporting whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
