package session

import (
	"context"
	"testing"
	"time"

	"mecanica_rff/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftRepository_RoundTrip(t *testing.T) {
	repo := NewDraftRepository(NewMemoryStore(), time.Hour)
	ctx := context.Background()

	d := entities.NewDraft("d-1", time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC))
	d.Client = &entities.Client{ID: "cli-1", Name: "Ana", TaxID: "123"}
	d.Type = entities.QuoteTypePedido
	d.Lines = []entities.PartLine{{PartID: "p1", Name: "Bico", PurchasePrice: 50, FreightPrice: 10, Quantity: 2}}
	require.NoError(t, repo.Save(ctx, d))

	got, err := repo.Get(ctx, "d-1")
	require.NoError(t, err)
	assert.Equal(t, d, got)

	require.NoError(t, repo.Delete(ctx, "d-1"))
	missing, err := repo.Get(ctx, "d-1")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestDraftRepository_ExpiredDraftIsMissing(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	repo := NewDraftRepository(store, time.Hour)

	require.NoError(t, repo.Save(context.Background(), entities.NewDraft("d-1", now)))
	now = now.Add(2 * time.Hour)

	got, err := repo.Get(context.Background(), "d-1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestEditorSessionRepository_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	repo := NewEditorSessionRepository(store, time.Hour)
	ctx := context.Background()

	q := entities.Quote{
		ID:               "q-1",
		Type:             entities.QuoteTypeOrcamento,
		Lines:            map[string]entities.PartLine{"peca1": {PartID: "p1", Quantity: 1}},
		CashTotal:        12,
		InstallmentTotal: 14.5,
		Date:             "19/10/2026",
	}
	s := entities.NewEditorSession("e-1", q, time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC))
	s.DeleteState = entities.DeleteStatePending
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, "e-1")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	// Drafts and editors do not share keys.
	_, ok, _ := store.Get(ctx, "draft:e-1")
	assert.False(t, ok)
}
