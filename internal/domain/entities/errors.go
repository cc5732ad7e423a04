package entities

import (
	"errors"
	"fmt"
)

// Validation errors raised by the draft and editor state machines. They never
// require a store round-trip and always leave the draft untouched.
var (
	ErrClientNotSelected       = errors.New("client not selected")
	ErrNoLines                 = errors.New("draft has no part lines")
	ErrIncompleteLine          = errors.New("part line without a part")
	ErrInvalidLineIndex        = errors.New("invalid part line index")
	ErrInvalidQuantity         = errors.New("quantity must be a positive integer")
	ErrInvalidQuoteType        = errors.New("invalid quote type")
	ErrTooManyParts            = errors.New("too many distinct parts in one order")
	ErrInvalidDeleteTransition = errors.New("invalid delete transition")
	ErrInsufficientStock       = errors.New("insufficient stock")
)

// InsufficientStockError names the part that blocked an order and how many
// units were available when it was checked.
type InsufficientStockError struct {
	PartID    string
	PartName  string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for part %s (%s): available %d, requested %d", e.PartName, e.PartID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
