package request

import (
	"mecanica_rff/internal/domain/entities"
	"strconv"
	"strings"
)

// SelectClientRequest sets the draft's client; an empty client_id clears it.
type SelectClientRequest struct {
	ClientID string `json:"client_id"`
}

type SelectPartRequest struct {
	PartID string `json:"part_id" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetTypeRequest carries the tipo value: 0 pedido, 1 orçamento.
type SetTypeRequest struct {
	Type *int `json:"type" binding:"required"`
}

func (r SetTypeRequest) ResolveType() (entities.QuoteType, error) {
	if r.Type == nil {
		return 0, entities.ErrInvalidQuoteType
	}
	t := entities.QuoteType(*r.Type)
	if !t.Valid() {
		return 0, entities.ErrInvalidQuoteType
	}
	return t, nil
}

// ParseLineIndex reads the zero-based :index path parameter.
func ParseLineIndex(raw string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || i < 0 {
		return 0, entities.ErrInvalidLineIndex
	}
	return i, nil
}

type OpenEditorRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}
