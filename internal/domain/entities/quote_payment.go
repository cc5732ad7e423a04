package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// PaymentMethod selects which stored total an order is charged.
type PaymentMethod string

const (
	PaymentMethodAVista    PaymentMethod = "avista"
	PaymentMethodParcelado PaymentMethod = "parcelado"
)

// MaxInstallments is the "em até 10X SEM JUROS" limit printed on orders.
const MaxInstallments = 10

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// QuotePayment is a charge made against a saved order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// ProviderPayloadRaw keeps the Mercado Pago response body as received;
// ProviderPayload is its parsed form for querying.
type QuotePayment struct {
	ID           string        `json:"id"`
	QuoteID      string        `json:"quote_id"`
	Method       PaymentMethod `json:"method"`
	Installments int           `json:"installments"`
	Amount       float64       `json:"amount"`
	Date         time.Time     `json:"date"`
	Status       PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodAVista || m == PaymentMethodParcelado
}

// AmountFor returns the stored total matching the payment method.
func (q Quote) AmountFor(m PaymentMethod) float64 {
	if m == PaymentMethodParcelado {
		return q.InstallmentTotal
	}
	return q.CashTotal
}

// PaymentStatusFromProvider maps a Mercado Pago status onto ours.
func PaymentStatusFromProvider(status string) PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusNegado
	default:
		return PaymentStatusPendente
	}
}
