package repository

import (
	"context"
	"testing"
	"time"

	"mecanica_rff/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewClientDynamoRepository(ddb, "")

	created, err := repo.Create(context.Background(), entities.Client{Name: "Bruno", TaxID: "987", Plate: "AAA0A00"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "cliente", aws.ToString(ddb.puts[0].TableName))
	assert.Contains(t, ddb.puts[0].Item, "cpfcnpj")
	assert.Contains(t, ddb.puts[0].Item, "placa")

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	missing, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestClientDynamoRepository_ListByName(t *testing.T) {
	ddb := newFakeDynamo()
	for _, it := range []clientItem{{ID: "1", Nome: "carlos"}, {ID: "2", Nome: "Ana"}, {ID: "3", Nome: "Bruno"}} {
		av, err := attributevalue.MarshalMap(it)
		require.NoError(t, err)
		ddb.scanItems = append(ddb.scanItems, av)
	}

	got, err := NewClientDynamoRepository(ddb, "").List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Ana", got[0].Name)
	assert.Equal(t, "Bruno", got[1].Name)
	assert.Equal(t, "carlos", got[2].Name)
}

func TestPartDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewPartDynamoRepository(ddb, "pecas_test")

	created, err := repo.Create(context.Background(), entities.Part{Name: "Bico", PurchasePrice: 50.5, FreightPrice: 10, Stock: 7})
	require.NoError(t, err)
	assert.Equal(t, "pecas_test", aws.ToString(ddb.puts[0].TableName))
	for _, field := range []string{"nome", "precoCompra", "precoFrete", "estoque"} {
		assert.Contains(t, ddb.puts[0].Item, field)
	}

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)
	assert.Equal(t, 50.5, got.PurchasePrice)
}

func TestQuotePaymentDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuotePaymentDynamoRepository(ddb, "")

	later := entities.QuotePayment{ID: "mp-2", QuoteID: "q-1", Method: entities.PaymentMethodParcelado, Installments: 3, Amount: 174, Date: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC), Status: entities.PaymentStatusAprovado}
	earlier := entities.QuotePayment{ID: "mp-1", QuoteID: "q-1", Method: entities.PaymentMethodAVista, Installments: 1, Amount: 144, Date: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC), Status: entities.PaymentStatusNegado}
	for _, p := range []entities.QuotePayment{later, earlier} {
		_, err := repo.Create(context.Background(), p)
		require.NoError(t, err)
		ddb.queryItems = append(ddb.queryItems, ddb.items[p.ID])
	}

	got, err := repo.ListByQuoteID(context.Background(), "q-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "mp-1", got[0].ID)
	assert.Equal(t, "mp-2", got[1].ID)
	assert.Equal(t, 3, got[1].Installments)
	assert.Equal(t, "quote_id-index", aws.ToString(ddb.queries[0].IndexName))
	assert.Equal(t, "quote_payments", aws.ToString(ddb.queries[0].TableName))
}
