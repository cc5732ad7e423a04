package session

import (
	"context"
	"encoding/json"
	"time"

	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase/interfaces"
)

const (
	draftPrefix  = "draft:"
	editorPrefix = "editor:"
)

// jsonRepository stores one JSON document per id. Every Save refreshes the TTL.
type jsonRepository[T any] struct {
	store  Store
	prefix string
	ttl    time.Duration
}

func (r jsonRepository[T]) save(ctx context.Context, id string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.prefix+id, b, r.ttl)
}

func (r jsonRepository[T]) get(ctx context.Context, id string) (T, error) {
	var v T
	b, ok, err := r.store.Get(ctx, r.prefix+id)
	if err != nil || !ok {
		return v, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, err
	}
	return v, nil
}

func (r jsonRepository[T]) delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, r.prefix+id)
}

type DraftRepository struct {
	repo jsonRepository[entities.Draft]
}

var _ interfaces.IDraftRepository = (*DraftRepository)(nil)

func NewDraftRepository(store Store, ttl time.Duration) *DraftRepository {
	return &DraftRepository{repo: jsonRepository[entities.Draft]{store: store, prefix: draftPrefix, ttl: ttl}}
}

func (r *DraftRepository) Save(ctx context.Context, d entities.Draft) error {
	return r.repo.save(ctx, d.ID, d)
}

func (r *DraftRepository) Get(ctx context.Context, id string) (entities.Draft, error) {
	return r.repo.get(ctx, id)
}

func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	return r.repo.delete(ctx, id)
}

type EditorSessionRepository struct {
	repo jsonRepository[entities.EditorSession]
}

var _ interfaces.IEditorSessionRepository = (*EditorSessionRepository)(nil)

func NewEditorSessionRepository(store Store, ttl time.Duration) *EditorSessionRepository {
	return &EditorSessionRepository{repo: jsonRepository[entities.EditorSession]{store: store, prefix: editorPrefix, ttl: ttl}}
}

func (r *EditorSessionRepository) Save(ctx context.Context, s entities.EditorSession) error {
	return r.repo.save(ctx, s.ID, s)
}

func (r *EditorSessionRepository) Get(ctx context.Context, id string) (entities.EditorSession, error) {
	return r.repo.get(ctx, id)
}

func (r *EditorSessionRepository) Delete(ctx context.Context, id string) error {
	return r.repo.delete(ctx, id)
}
