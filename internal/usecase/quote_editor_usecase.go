package usecase

//go:generate mockgen -source=quote_editor_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_editor_usecase.go -package=mocks

import (
	"context"
	"errors"
	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEditorNotFound  = errors.New("editor session not found")
	ErrInvalidEditorID = errors.New("invalid editor id")
	ErrMissingQuoteID  = errors.New("quote has no identifier")
)

// IQuoteEditorUseCase views, re-types, replaces or deletes one stored quote.
//
// The editable copy lives in an editor session. Totals and line snapshots are
// shown as stored and never recomputed from the catalog.
type IQuoteEditorUseCase interface {
	Open(ctx context.Context, quoteID string) (entities.EditorSession, error)
	Get(ctx context.Context, editorID string) (entities.EditorSession, error)
	SetType(ctx context.Context, editorID string, t entities.QuoteType) (entities.EditorSession, error)
	Save(ctx context.Context, editorID string) (entities.Quote, error)
	RequestDelete(ctx context.Context, editorID string) (entities.EditorSession, error)
	CancelDelete(ctx context.Context, editorID string) (entities.EditorSession, error)
	ConfirmDelete(ctx context.Context, editorID string) (string, error)
	Close(ctx context.Context, editorID string) error
}

type QuoteEditorUseCase struct {
	sessions interfaces.IEditorSessionRepository
	quotes   interfaces.IQuoteRepository
	notifier interfaces.ICollectionNotifier
	now      func() time.Time
}

var _ IQuoteEditorUseCase = (*QuoteEditorUseCase)(nil)

func NewQuoteEditorUseCase(sessions interfaces.IEditorSessionRepository, quotes interfaces.IQuoteRepository, notifier interfaces.ICollectionNotifier) *QuoteEditorUseCase {
	return &QuoteEditorUseCase{sessions: sessions, quotes: quotes, notifier: notifier, now: time.Now}
}

func (u *QuoteEditorUseCase) Open(ctx context.Context, quoteID string) (entities.EditorSession, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.EditorSession{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.EditorSession{}, err
	}
	if q.ID == "" {
		return entities.EditorSession{}, ErrQuoteNotFound
	}

	s := entities.NewEditorSession(uuid.NewString(), q, u.now().UTC())
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.EditorSession{}, err
	}
	log.Info().Str("editor_id", s.ID).Str("quote_id", q.ID).Msg("[editor][usecase] opened")
	return s, nil
}

func (u *QuoteEditorUseCase) Get(ctx context.Context, editorID string) (entities.EditorSession, error) {
	return u.load(ctx, editorID)
}

func (u *QuoteEditorUseCase) SetType(ctx context.Context, editorID string, t entities.QuoteType) (entities.EditorSession, error) {
	return u.mutate(ctx, editorID, func(s *entities.EditorSession) error {
		return s.SetType(t)
	})
}

// Save replaces the stored quote with the editable copy. The session is closed
// only when the replace succeeds, so a failed save can be retried.
func (u *QuoteEditorUseCase) Save(ctx context.Context, editorID string) (entities.Quote, error) {
	s, err := u.load(ctx, editorID)
	if err != nil {
		return entities.Quote{}, err
	}
	if s.DeleteState == entities.DeleteStateDeleted {
		return entities.Quote{}, entities.ErrInvalidDeleteTransition
	}
	if strings.TrimSpace(s.Quote.ID) == "" {
		log.Error().Str("editor_id", s.ID).Msg("[editor][usecase] session quote has no id")
		return entities.Quote{}, ErrMissingQuoteID
	}

	saved, err := u.quotes.Replace(ctx, s.Quote)
	if err != nil {
		log.Error().Str("editor_id", s.ID).Str("quote_id", s.Quote.ID).Err(err).Msg("[editor][usecase] replace failed")
		return entities.Quote{}, err
	}
	if saved.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if err := u.sessions.Delete(ctx, s.ID); err != nil {
		log.Warn().Str("editor_id", s.ID).Err(err).Msg("[editor][usecase] session close failed")
	}
	u.notify()
	log.Info().Str("editor_id", s.ID).Str("quote_id", saved.ID).Int("tipo", int(saved.Type)).Msg("[editor][usecase] saved")
	return saved, nil
}

func (u *QuoteEditorUseCase) RequestDelete(ctx context.Context, editorID string) (entities.EditorSession, error) {
	return u.mutate(ctx, editorID, func(s *entities.EditorSession) error {
		return s.RequestDelete()
	})
}

func (u *QuoteEditorUseCase) CancelDelete(ctx context.Context, editorID string) (entities.EditorSession, error) {
	return u.mutate(ctx, editorID, func(s *entities.EditorSession) error {
		return s.CancelDelete()
	})
}

// ConfirmDelete removes the quote and returns its id. Any failure sends the
// session back to idle editing.
func (u *QuoteEditorUseCase) ConfirmDelete(ctx context.Context, editorID string) (string, error) {
	s, err := u.load(ctx, editorID)
	if err != nil {
		return "", err
	}
	if err := s.CheckConfirmDelete(); err != nil {
		return "", err
	}

	existed, err := u.quotes.Delete(ctx, s.Quote.ID)
	if err == nil && !existed {
		err = ErrQuoteNotFound
	}
	if err != nil {
		log.Error().Str("editor_id", s.ID).Str("quote_id", s.Quote.ID).Err(err).Msg("[editor][usecase] delete failed")
		s.DeleteFailed()
		if saveErr := u.sessions.Save(ctx, s); saveErr != nil {
			log.Warn().Str("editor_id", s.ID).Err(saveErr).Msg("[editor][usecase] session state not persisted")
		}
		return "", err
	}

	s.MarkDeleted()
	if err := u.sessions.Delete(ctx, s.ID); err != nil {
		log.Warn().Str("editor_id", s.ID).Err(err).Msg("[editor][usecase] session close failed")
	}
	u.notify()
	log.Info().Str("editor_id", s.ID).Str("quote_id", s.Quote.ID).Msg("[editor][usecase] deleted")
	return s.Quote.ID, nil
}

func (u *QuoteEditorUseCase) Close(ctx context.Context, editorID string) error {
	editorID = strings.TrimSpace(editorID)
	if editorID == "" {
		return ErrInvalidEditorID
	}
	return u.sessions.Delete(ctx, editorID)
}

func (u *QuoteEditorUseCase) load(ctx context.Context, editorID string) (entities.EditorSession, error) {
	editorID = strings.TrimSpace(editorID)
	if editorID == "" {
		return entities.EditorSession{}, ErrInvalidEditorID
	}
	s, err := u.sessions.Get(ctx, editorID)
	if err != nil {
		return entities.EditorSession{}, err
	}
	if s.ID == "" {
		return entities.EditorSession{}, ErrEditorNotFound
	}
	return s, nil
}

func (u *QuoteEditorUseCase) mutate(ctx context.Context, editorID string, apply func(s *entities.EditorSession) error) (entities.EditorSession, error) {
	s, err := u.load(ctx, editorID)
	if err != nil {
		return entities.EditorSession{}, err
	}
	if err := apply(&s); err != nil {
		return entities.EditorSession{}, err
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.EditorSession{}, err
	}
	return s, nil
}

func (u *QuoteEditorUseCase) notify() {
	if u.notifier != nil {
		u.notifier.Notify(entities.CollectionOrcamentos)
	}
}
