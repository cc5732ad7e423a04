package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPart = Part{ID: "p1", Name: "Bico injetor", PurchasePrice: 50, FreightPrice: 10, Stock: 4}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft("d1", time.Now())
	assert.Equal(t, QuoteTypeOrcamento, d.Type)
	assert.Empty(t, d.Lines)
	assert.Nil(t, d.Client)
}

func TestDraftAddLine(t *testing.T) {
	d := NewDraft("d1", time.Now())
	require.NoError(t, d.AddLine())
	require.Len(t, d.Lines, 1)
	assert.Equal(t, 1, d.Lines[0].Quantity)

	err := d.AddLine()
	assert.ErrorIs(t, err, ErrIncompleteLine)
	assert.Len(t, d.Lines, 1, "draft must be unchanged")

	require.NoError(t, d.SelectPartForLine(0, testPart))
	require.NoError(t, d.AddLine())
	assert.Len(t, d.Lines, 2)
	assert.Equal(t, 1, d.Lines[1].Quantity)
}

func TestDraftSelectPartKeepsQuantity(t *testing.T) {
	d := NewDraft("d1", time.Now())
	require.NoError(t, d.AddLine())
	require.NoError(t, d.SetQuantity(0, 3))
	require.NoError(t, d.SelectPartForLine(0, testPart))

	assert.Equal(t, PartLine{PartID: "p1", Name: "Bico injetor", PurchasePrice: 50, FreightPrice: 10, Quantity: 3}, d.Lines[0])

	other := Part{ID: "p2", Name: "Filtro", PurchasePrice: 5}
	require.NoError(t, d.SelectPartForLine(0, other))
	assert.Equal(t, "p2", d.Lines[0].PartID)
	assert.Equal(t, 3, d.Lines[0].Quantity)
	assert.Zero(t, d.Lines[0].FreightPrice)

	assert.ErrorIs(t, d.SelectPartForLine(5, other), ErrInvalidLineIndex)
}

func TestDraftSetQuantity(t *testing.T) {
	d := NewDraft("d1", time.Now())
	require.NoError(t, d.AddLine())

	assert.ErrorIs(t, d.SetQuantity(0, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, d.SetQuantity(0, -2), ErrInvalidQuantity)
	assert.ErrorIs(t, d.SetQuantity(1, 2), ErrInvalidLineIndex)
	assert.Equal(t, 1, d.Lines[0].Quantity)

	require.NoError(t, d.SetQuantity(0, 7))
	assert.Equal(t, 7, d.Lines[0].Quantity)
}

func TestDraftRemoveLine(t *testing.T) {
	d := NewDraft("d1", time.Now())
	require.NoError(t, d.AddLine())
	require.NoError(t, d.SelectPartForLine(0, testPart))
	require.NoError(t, d.AddLine())

	require.NoError(t, d.RemoveLine(0))
	require.Len(t, d.Lines, 1)
	assert.False(t, d.Lines[0].HasPart())
	assert.ErrorIs(t, d.RemoveLine(3), ErrInvalidLineIndex)
	assert.ErrorIs(t, d.RemoveLine(-1), ErrInvalidLineIndex)
}

func TestDraftSetType(t *testing.T) {
	d := NewDraft("d1", time.Now())
	require.NoError(t, d.SetType(QuoteTypePedido))
	assert.True(t, d.Type.IsOrder())
	assert.ErrorIs(t, d.SetType(QuoteType(7)), ErrInvalidQuoteType)
	assert.Equal(t, QuoteTypePedido, d.Type)
}

func TestDraftValidate(t *testing.T) {
	d := NewDraft("d1", time.Now())
	assert.ErrorIs(t, d.Validate(), ErrClientNotSelected)

	d.SelectClient(&Client{ID: "c1", Name: "Ana", TaxID: "123"})
	assert.ErrorIs(t, d.Validate(), ErrNoLines)

	require.NoError(t, d.AddLine())
	assert.ErrorIs(t, d.Validate(), ErrIncompleteLine)

	require.NoError(t, d.SelectPartForLine(0, testPart))
	assert.NoError(t, d.Validate())
}

func TestDraftReservationsAggregatePerPart(t *testing.T) {
	d := NewDraft("d1", time.Now())
	for i, qty := range []int{2, 1, 3} {
		require.NoError(t, d.AddLine())
		p := testPart
		if i == 1 {
			p = Part{ID: "p2", Name: "Filtro"}
		}
		require.NoError(t, d.SelectPartForLine(i, p))
		require.NoError(t, d.SetQuantity(i, qty))
	}

	assert.Equal(t, []StockReservation{
		{PartID: "p1", PartName: "Bico injetor", Quantity: 5},
		{PartID: "p2", PartName: "Filtro", Quantity: 1},
	}, d.Reservations())
}

func TestDraftToQuoteAndReset(t *testing.T) {
	d := NewDraft("d1", time.Now())
	d.SelectClient(&Client{ID: "c1", Name: "Ana", TaxID: "123", Plate: "IJU-1234"})
	require.NoError(t, d.AddLine())
	require.NoError(t, d.SelectPartForLine(0, testPart))
	require.NoError(t, d.SetQuantity(0, 2))

	q := d.ToQuote("19/10/2026")
	assert.Empty(t, q.ID)
	assert.Equal(t, QuoteTypeOrcamento, q.Type)
	assert.Equal(t, "Ana", q.Client.Name)
	assert.Equal(t, "123", q.UIDUser)
	assert.Equal(t, "19/10/2026", q.Date)
	assert.Equal(t, 144.0, q.CashTotal)
	assert.Equal(t, 174.0, q.InstallmentTotal)
	assert.Equal(t, 2, q.Lines["peca1"].Quantity)

	require.NoError(t, d.SetType(QuoteTypePedido))
	d.Reset()
	assert.Nil(t, d.Client)
	assert.Empty(t, d.Lines)
	assert.Equal(t, QuoteTypeOrcamento, d.Type)
}
