package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mecanica_rff/internal/infrastructure/config"
	"mecanica_rff/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog/log"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the SDK client, or a gateway that approves
// every charge locally when cfg.Mock is set.
func NewMercadoPagoGateway(cfg config.PaymentsConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		log.Info().Msg("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	if cfg.MercadoPagoAccessToken == "" {
		log.Error().Msg("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Error().Msg("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Info().Int("payload_len", len(requestPayload)).Msg("[payment][gateway] create start")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Error().Err(err).Msg("[payment][gateway] payload unmarshal failed")
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] response marshal failed")
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	log.Info().Str("provider_payment_id", id).Str("provider_status", resp.Status).Msg("[payment][gateway] create success")

	return id, resp.Status, b, nil
}

// mockPayment echoes the request back as an approved, accredited payment.
func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	log.Info().Int("payload_len", len(requestPayload)).Msg("[payment][gateway] mock create start")

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now.Format(time.RFC3339Nano)
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now.Format(time.RFC3339Nano)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] mock response marshal failed")
		return "", "", nil, err
	}

	log.Info().Str("provider_payment_id", id).Msg("[payment][gateway] mock create success")
	return id, "approved", b, nil
}
