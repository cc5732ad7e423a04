package response

import (
	"testing"

	"mecanica_rff/internal/domain/entities"
)

func TestFromQuote_OrdersLinesNumerically(t *testing.T) {
	q := entities.Quote{
		ID:   "q-1",
		Type: entities.QuoteTypePedido,
		Lines: map[string]entities.PartLine{
			"peca10": {PartID: "p10", Name: "Dez", PurchasePrice: 10, Quantity: 1},
			"peca2":  {PartID: "p2", Name: "Dois", PurchasePrice: 50, FreightPrice: 10, Quantity: 2},
		},
		CashTotal:        156,
		InstallmentTotal: 188.5,
		Date:             "19/10/2026",
	}

	res := FromQuote(q)
	if res.Type != 0 || res.TypeLabel != "Pedido" {
		t.Fatalf("unexpected type: %+v", res)
	}
	if len(res.Lines) != 2 || res.Lines[0].Key != "peca2" || res.Lines[1].Key != "peca10" {
		t.Fatalf("unexpected line order: %+v", res.Lines)
	}
	if res.Lines[0].UnitPrice != 72 || res.Lines[0].LineTotal != 144 {
		t.Fatalf("unexpected line prices: %+v", res.Lines[0])
	}
}

func TestFromDraft(t *testing.T) {
	t.Run("empty line blocks adding", func(t *testing.T) {
		d := entities.Draft{
			ID:    "d-1",
			Type:  entities.QuoteTypeOrcamento,
			Lines: []entities.PartLine{{PartID: "p1", PurchasePrice: 50, FreightPrice: 10, Quantity: 2}, {Quantity: 1}},
		}
		res := FromDraft(d)
		if res.CanAddLine {
			t.Fatalf("expected can_add_line false")
		}
		if res.CashTotal != 144 || res.InstallmentTotal != 174 {
			t.Fatalf("unexpected totals: %+v", res)
		}
		if res.Client != nil {
			t.Fatalf("expected no client")
		}
	})

	t.Run("client and complete lines", func(t *testing.T) {
		d := entities.Draft{ID: "d-1", Client: &entities.Client{ID: "c-1", Name: "Ana"}, Lines: []entities.PartLine{}}
		res := FromDraft(d)
		if !res.CanAddLine || res.Client == nil || res.Client.Name != "Ana" {
			t.Fatalf("unexpected draft response: %+v", res)
		}
		if res.Lines == nil {
			t.Fatalf("expected non-nil lines")
		}
	})
}

func TestFromEditor(t *testing.T) {
	s := entities.EditorSession{ID: "e-1", DeleteState: entities.DeleteStatePending, Quote: entities.Quote{ID: "q-1"}}
	res := FromEditor(s)
	if res.ID != "e-1" || res.DeleteState != "pending_confirmation" || res.Quote.ID != "q-1" {
		t.Fatalf("unexpected editor response: %+v", res)
	}
}
