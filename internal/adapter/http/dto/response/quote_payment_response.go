package response

import (
	"mecanica_rff/internal/domain/entities"
	"time"
)

type QuotePaymentResponse struct {
	ID           string    `json:"id"`
	QuoteID      string    `json:"quote_id"`
	Method       string    `json:"method"`
	Installments int       `json:"installments"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	return QuotePaymentResponse{
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		Method:       string(p.Method),
		Installments: p.Installments,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

func FromQuotePayments(ps []entities.QuotePayment) []QuotePaymentResponse {
	out := make([]QuotePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromQuotePayment(p))
	}
	return out
}
