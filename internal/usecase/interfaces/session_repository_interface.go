package interfaces

import (
	"context"
	"mecanica_rff/internal/domain/entities"
)

// IDraftRepository keeps builder drafts between requests.
//
//go:generate mockgen -source=session_repository_interface.go -destination=mocks/mock_session_repository.go -package=mock_interfaces
type IDraftRepository interface {
	Save(ctx context.Context, d entities.Draft) error
	// Get returns a zero Draft when the id is unknown or expired.
	Get(ctx context.Context, id string) (entities.Draft, error)
	Delete(ctx context.Context, id string) error
}

// IEditorSessionRepository keeps open editors between requests.
type IEditorSessionRepository interface {
	Save(ctx context.Context, s entities.EditorSession) error
	Get(ctx context.Context, id string) (entities.EditorSession, error)
	Delete(ctx context.Context, id string) error
}
