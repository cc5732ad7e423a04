package request

import (
	"encoding/json"
	"errors"
	"testing"

	"mecanica_rff/internal/domain/entities"
)

func TestCreateClientRequest_ToEntity(t *testing.T) {
	r := CreateClientRequest{Name: " Ana ", TaxID: " 123 ", Plate: " abc1d23 "}
	c := r.ToEntity()
	if c.Name != "Ana" || c.TaxID != "123" || c.Plate != "ABC1D23" {
		t.Fatalf("unexpected client: %+v", c)
	}
	if c.ID != "" {
		t.Fatalf("expected no id, got %q", c.ID)
	}
}

func TestCreatePartRequest_ToEntity(t *testing.T) {
	p := CreatePartRequest{Name: " Bico ", PurchasePrice: 50, FreightPrice: 10, Stock: 3}.ToEntity()
	if p.Name != "Bico" || p.PurchasePrice != 50 || p.FreightPrice != 10 || p.Stock != 3 {
		t.Fatalf("unexpected part: %+v", p)
	}
}

func TestSetTypeRequest_ResolveType(t *testing.T) {
	zero, one, two := 0, 1, 2

	got, err := SetTypeRequest{Type: &zero}.ResolveType()
	if err != nil || got != entities.QuoteTypePedido {
		t.Fatalf("expected pedido, got %v err=%v", got, err)
	}
	got, err = SetTypeRequest{Type: &one}.ResolveType()
	if err != nil || got != entities.QuoteTypeOrcamento {
		t.Fatalf("expected orcamento, got %v err=%v", got, err)
	}
	if _, err := (SetTypeRequest{Type: &two}).ResolveType(); !errors.Is(err, entities.ErrInvalidQuoteType) {
		t.Fatalf("expected ErrInvalidQuoteType, got %v", err)
	}
	if _, err := (SetTypeRequest{}).ResolveType(); !errors.Is(err, entities.ErrInvalidQuoteType) {
		t.Fatalf("expected ErrInvalidQuoteType, got %v", err)
	}
}

func TestParseLineIndex(t *testing.T) {
	if i, err := ParseLineIndex("2"); err != nil || i != 2 {
		t.Fatalf("expected 2, got %d err=%v", i, err)
	}
	for _, raw := range []string{"", "-1", "x"} {
		if _, err := ParseLineIndex(raw); !errors.Is(err, entities.ErrInvalidLineIndex) {
			t.Fatalf("expected ErrInvalidLineIndex for %q, got %v", raw, err)
		}
	}
}

func TestPayOrderRequest_ToInput(t *testing.T) {
	r := PayOrderRequest{Method: " Parcelado ", Installments: 4, MPPayload: json.RawMessage(`{"token":"t"}`)}
	in := r.ToInput()
	if in.Method != entities.PaymentMethodParcelado || in.Installments != 4 || string(in.ProviderPayload) != `{"token":"t"}` {
		t.Fatalf("unexpected input: %+v", in)
	}
}
