package payments

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mecanica_rff/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(config.PaymentsConfig{})
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}

func TestMercadoPagoGateway_Mock(t *testing.T) {
	g, err := NewMercadoPagoGateway(config.PaymentsConfig{Mock: true})
	require.NoError(t, err)
	g.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":144,"external_reference":"q-1"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "approved", status)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "q-1", resp["external_reference"])
	assert.Equal(t, float64(144), resp["transaction_amount"])
	assert.Equal(t, "accredited", resp["status_detail"])
	assert.Equal(t, "2026-10-19T12:00:00Z", resp["date_created"])
}

func TestMercadoPagoGateway_MockKeepsNonObjectPayload(t *testing.T) {
	g, err := NewMercadoPagoGateway(config.PaymentsConfig{Mock: true})
	require.NoError(t, err)

	_, _, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`[1,2]`))
	require.NoError(t, err)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "[1,2]", resp["request_payload_raw"])
}
