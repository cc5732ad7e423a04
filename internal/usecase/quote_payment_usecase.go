package usecase

//go:generate mockgen -source=quote_payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_payment_usecase.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidPaymentMethod           = errors.New("invalid payment method")
	ErrInvalidInstallments            = errors.New("invalid installments")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuoteNotOrder                  = errors.New("only orders can be paid")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PayOrderInput selects which stored total is charged. ProviderPayload carries
// the Mercado Pago fields the caller owns (payment_method_id, token, payer).
type PayOrderInput struct {
	Method          entities.PaymentMethod
	Installments    int
	ProviderPayload json.RawMessage
}

// IQuotePaymentUseCase charges saved orders.
//
// The amount always comes from the stored record: ValorAvista for cash,
// ValorParcelado for installments.
type IQuotePaymentUseCase interface {
	Pay(ctx context.Context, quoteID string, in PayOrderInput) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo           interfaces.IQuotePaymentRepository
	quotes         interfaces.IQuoteRepository
	gateway        interfaces.IPaymentGateway
	testPayerEmail string
	now            func() time.Time
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

// NewQuotePaymentUseCase wires the payment flow. testPayerEmail, when set, is
// used as payer.email for requests that identify no payer.
func NewQuotePaymentUseCase(repo interfaces.IQuotePaymentRepository, quotes interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, testPayerEmail string) *QuotePaymentUseCase {
	return &QuotePaymentUseCase{repo: repo, quotes: quotes, gateway: gateway, testPayerEmail: testPayerEmail, now: time.Now}
}

func (u *QuotePaymentUseCase) Pay(ctx context.Context, quoteID string, in PayOrderInput) (entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	log.Info().Str("quote_id", quoteID).Str("method", string(in.Method)).Int("installments", in.Installments).Msg("[payment][usecase] pay start")
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidQuoteID
	}
	if !in.Method.Valid() {
		return entities.QuotePayment{}, ErrInvalidPaymentMethod
	}
	installments, err := normalizeInstallments(in.Method, in.Installments)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	payload := in.ProviderPayload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Warn().Str("quote_id", quoteID).Msg("[payment][usecase] invalid payload (not a json object)")
		return entities.QuotePayment{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		return entities.QuotePayment{}, errors.New("payment gateway not configured")
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		log.Error().Str("quote_id", quoteID).Err(err).Msg("[payment][usecase] failed loading quote")
		return entities.QuotePayment{}, err
	}
	if q.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if !q.Type.IsOrder() {
		log.Warn().Str("quote_id", quoteID).Msg("[payment][usecase] quote is not an order")
		return entities.QuotePayment{}, ErrQuoteNotOrder
	}

	amount := q.AmountFor(in.Method)

	// The stored total is the source of truth for the amount.
	reqMap["transaction_amount"] = amount
	reqMap["installments"] = installments
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = q.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("%s %s - %s", q.Type.Label(), q.ID, q.Client.Name)
	}
	u.ensurePayerDefaults(reqMap)

	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Error().Str("quote_id", quoteID).Err(err).Msg("[payment][usecase] payment gateway failed")
		return entities.QuotePayment{}, mapGatewayError(err)
	}
	log.Info().Str("quote_id", quoteID).Str("provider_payment_id", providerPaymentID).Str("provider_status", providerStatus).Msg("[payment][usecase] payment gateway success")

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Str("quote_id", quoteID).Err(err).Msg("[payment][usecase] provider response unmarshal failed")
	}

	p := entities.QuotePayment{
		ID:                 providerPaymentID,
		QuoteID:            q.ID,
		Method:             in.Method,
		Installments:       installments,
		Amount:             amount,
		Date:               u.now().UTC(),
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error().Str("quote_id", quoteID).Str("payment_id", p.ID).Err(err).Msg("[payment][usecase] payment repository create failed")
		return entities.QuotePayment{}, err
	}
	log.Info().Str("quote_id", quoteID).Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("[payment][usecase] pay success")
	return created, nil
}

func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

// normalizeInstallments forces cash payments to a single installment.
func normalizeInstallments(m entities.PaymentMethod, n int) (int, error) {
	if m == entities.PaymentMethodAVista {
		if n > 1 {
			return 0, ErrInvalidInstallments
		}
		return 1, nil
	}
	if n < 1 || n > entities.MaxInstallments {
		return 0, ErrInvalidInstallments
	}
	return n, nil
}

func (u *QuotePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && u.testPayerEmail != "" {
		payer["email"] = u.testPayerEmail
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
