package request

import (
	"encoding/json"
	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase"
	"strings"
)

// PayOrderRequest charges a saved order.
//
// `mp_payload` is passed to Mercado Pago as-is (payment_method_id, token,
// payer...); the amount and installments are always set from the order.
type PayOrderRequest struct {
	Method       string          `json:"method" binding:"required"`
	Installments int             `json:"installments"`
	MPPayload    json.RawMessage `json:"mp_payload"`
}

func (r PayOrderRequest) ToInput() usecase.PayOrderInput {
	return usecase.PayOrderInput{
		Method:          entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.Method))),
		Installments:    r.Installments,
		ProviderPayload: r.MPPayload,
	}
}
