package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteOrderedLines(t *testing.T) {
	q := Quote{Lines: map[string]PartLine{
		"peca10": {PartID: "p10"},
		"peca2":  {PartID: "p2"},
		"peca1":  {PartID: "p1"},
		"extra":  {PartID: "x"},
	}}

	assert.Equal(t, []string{"peca1", "peca2", "peca10", "extra"}, q.OrderedLineKeys())
	assert.Equal(t, "p1", q.OrderedLines()[0].PartID)
	assert.True(t, q.HasValidLine())
	assert.False(t, Quote{Lines: map[string]PartLine{"peca1": {}}}.HasValidLine())
}

func TestQuoteTypeLabels(t *testing.T) {
	assert.Equal(t, "Pedido", QuoteTypePedido.Label())
	assert.Equal(t, "Orçamento", QuoteTypeOrcamento.Label())
	assert.False(t, QuoteType(-1).Valid())
}

func TestQuoteAmountFor(t *testing.T) {
	q := Quote{CashTotal: 144, InstallmentTotal: 174}
	assert.Equal(t, 144.0, q.AmountFor(PaymentMethodAVista))
	assert.Equal(t, 174.0, q.AmountFor(PaymentMethodParcelado))
	assert.Equal(t, PaymentStatusAprovado, PaymentStatusFromProvider("approved"))
	assert.Equal(t, PaymentStatusNegado, PaymentStatusFromProvider("rejected"))
	assert.Equal(t, PaymentStatusPendente, PaymentStatusFromProvider("in_process"))
}

func TestInsufficientStockError(t *testing.T) {
	var err error = &InsufficientStockError{PartID: "p1", PartName: "Bico", Available: 1, Requested: 2}
	assert.True(t, errors.Is(err, ErrInsufficientStock))

	var typed *InsufficientStockError
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, 1, typed.Available)
}

func TestEditorSessionDeleteStateMachine(t *testing.T) {
	s := NewEditorSession("e1", Quote{ID: "q1"}, time.Now())
	assert.Equal(t, DeleteStateIdle, s.DeleteState)

	assert.ErrorIs(t, s.CancelDelete(), ErrInvalidDeleteTransition)
	assert.ErrorIs(t, s.CheckConfirmDelete(), ErrInvalidDeleteTransition)

	require.NoError(t, s.RequestDelete())
	assert.Equal(t, DeleteStatePending, s.DeleteState)
	assert.ErrorIs(t, s.RequestDelete(), ErrInvalidDeleteTransition)

	require.NoError(t, s.CancelDelete())
	assert.Equal(t, DeleteStateIdle, s.DeleteState)

	require.NoError(t, s.RequestDelete())
	require.NoError(t, s.CheckConfirmDelete())
	s.DeleteFailed()
	assert.Equal(t, DeleteStateIdle, s.DeleteState)

	require.NoError(t, s.RequestDelete())
	s.MarkDeleted()
	assert.ErrorIs(t, s.SetType(QuoteTypePedido), ErrInvalidDeleteTransition)
}

func TestEditorSessionSetTypeKeepsSnapshot(t *testing.T) {
	q := Quote{ID: "q1", Type: QuoteTypeOrcamento, CashTotal: 10, InstallmentTotal: 20,
		Lines: map[string]PartLine{"peca1": {PartID: "p1", PurchasePrice: 5, Quantity: 1}}}
	s := NewEditorSession("e1", q, time.Now())

	require.NoError(t, s.SetType(QuoteTypePedido))
	assert.Equal(t, QuoteTypePedido, s.Quote.Type)
	assert.Equal(t, 10.0, s.Quote.CashTotal)
	assert.Equal(t, q.Lines, s.Quote.Lines)
	assert.ErrorIs(t, s.SetType(QuoteType(3)), ErrInvalidQuoteType)
}
