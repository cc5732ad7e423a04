package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_rff/internal/domain/entities"
	mock_interfaces "mecanica_rff/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func storedQuote() entities.Quote {
	return entities.Quote{
		ID:      "q-1",
		Type:    entities.QuoteTypeOrcamento,
		Client:  sampleClient().Snapshot(),
		UIDUser: "123.456.789-00",
		Lines: map[string]entities.PartLine{
			"peca1": line("p1", 50, 10, 2),
		},
		CashTotal:        144,
		InstallmentTotal: 174,
		Date:             "01/10/2026",
	}
}

func editorSession(state entities.DeleteState) entities.EditorSession {
	s := entities.NewEditorSession("e-1", storedQuote(), time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))
	s.DeleteState = state
	return s
}

func newEditor(t *testing.T) (*QuoteEditorUseCase, *mock_interfaces.MockIEditorSessionRepository, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockICollectionNotifier, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := mock_interfaces.NewMockIEditorSessionRepository(ctrl)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	notifier := mock_interfaces.NewMockICollectionNotifier(ctrl)
	return NewQuoteEditorUseCase(sessions, quotes, notifier), sessions, quotes, notifier, ctrl
}

func TestQuoteEditorUseCase_Open(t *testing.T) {
	t.Run("quote not found", func(t *testing.T) {
		uc, _, quotes, _, ctrl := newEditor(t)
		defer ctrl.Finish()
		quotes.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, nil)

		_, err := uc.Open(context.Background(), "q-9")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, sessions, quotes, _, ctrl := newEditor(t)
		defer ctrl.Finish()
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		s, err := uc.Open(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" || s.Quote.ID != "q-1" || s.DeleteState != entities.DeleteStateIdle {
			t.Fatalf("unexpected session %+v", s)
		}
	})
}

func TestQuoteEditorUseCase_SetTypeKeepsSnapshot(t *testing.T) {
	uc, sessions, _, _, ctrl := newEditor(t)
	defer ctrl.Finish()
	sessions.EXPECT().Get(gomock.Any(), "e-1").Return(editorSession(entities.DeleteStateIdle), nil)
	sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	s, err := uc.SetType(context.Background(), "e-1", entities.QuoteTypePedido)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Quote.Type != entities.QuoteTypePedido || s.Quote.CashTotal != 144 || s.Quote.InstallmentTotal != 174 {
		t.Fatalf("unexpected quote %+v", s.Quote)
	}
}

func TestQuoteEditorUseCase_Save(t *testing.T) {
	t.Run("missing identifier", func(t *testing.T) {
		uc, sessions, _, _, ctrl := newEditor(t)
		defer ctrl.Finish()
		s := editorSession(entities.DeleteStateIdle)
		s.Quote.ID = ""
		sessions.EXPECT().Get(gomock.Any(), "e-1").Return(s, nil)

		_, err := uc.Save(context.Background(), "e-1")
		if !errors.Is(err, ErrMissingQuoteID) {
			t.Fatalf("expected ErrMissingQuoteID, got %v", err)
		}
	})

	t.Run("failure keeps the session", func(t *testing.T) {
		uc, sessions, quotes, _, ctrl := newEditor(t)
		defer ctrl.Finish()
		sessions.EXPECT().Get(gomock.Any(), "e-1").Return(editorSession(entities.DeleteStateIdle), nil)
		quotes.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		_, err := uc.Save(context.Background(), "e-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success closes the session", func(t *testing.T) {
		uc, sessions, quotes, notifier, ctrl := newEditor(t)
		defer ctrl.Finish()
		s := editorSession(entities.DeleteStateIdle)
		s.Quote.Type = entities.QuoteTypePedido
		sessions.EXPECT().Get(gomock.Any(), "e-1").Return(s, nil)
		quotes.EXPECT().Replace(gomock.Any(), s.Quote).Return(s.Quote, nil)
		sessions.EXPECT().Delete(gomock.Any(), "e-1").Return(nil)
		notifier.EXPECT().Notify(entities.CollectionOrcamentos)

		q, err := uc.Save(context.Background(), "e-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Type != entities.QuoteTypePedido {
			t.Fatalf("expected pedido, got %v", q.Type)
		}
	})

	t.Run("record removed meanwhile", func(t *testing.T) {
		uc, sessions, quotes, _, ctrl := newEditor(t)
		defer ctrl.Finish()
		sessions.EXPECT().Get(gomock.Any(), "e-1").Return(editorSession(entities.DeleteStateIdle), nil)
		quotes.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(entities.Quote{}, nil)

		_, err := uc.Save(context.Background(), "e-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteEditorUseCase_DeleteStateMachine(t *testing.T) {
	t.Run("request then cancel never touches the store", func(t *testing.T) {
		uc, sessions, _, _, ctrl := newEditor(t)
		defer ctrl.Finish()
		gomock.InOrder(
			sessions.EXPECT().Get(gomock.Any(), "e-1").Return(editorSession(entities.DeleteStateIdle), nil),
			sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
			sessions.EXPECT().Get(gomock.Any(), "e-1").Return(editorSession(entities.DeleteStatePending), nil),
			sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		)

		s, err := uc.RequestDelete(context.Background(), "e-1")
		if err != nil || s.DeleteState != entities.DeleteStatePending {
			t.Fatalf("expected pending, got %v err=%v", s.DeleteState, err)
		}
		s, err = uc.CancelDelete(context.Background(), "e-1")
		if err != nil || s.DeleteState != entities.DeleteStateIdle {
			t.Fatalf("expected idle, got %v err=%v", s.DeleteState, err)
		}
	})

	t.Run("confirm without request", func(t *testing.T) {
		uc, sessions, _, _, ctrl := newEditor(t)
		defer ctrl.Finish()
		sessions.EXPECT().Get(gomock.Any(), "e-1").Return(editorSession(entities.DeleteStateIdle), nil)

		_, err := uc.ConfirmDelete(context.Background(), "e-1")
		if !errors.Is(err, entities.ErrInvalidDeleteTransition) {
			t.Fatalf("expected ErrInvalidDeleteTransition, got %v", err)
		}
	})

	t.Run("confirm yields the deleted id", func(t *testing.T) {
		uc, sessions, quotes, notifier, ctrl := newEditor(t)
		defer ctrl.Finish()
		sessions.EXPECT().Get(gomock.Any(), "e-1").Return(editorSession(entities.DeleteStatePending), nil)
		quotes.EXPECT().Delete(gomock.Any(), "q-1").Return(true, nil)
		sessions.EXPECT().Delete(gomock.Any(), "e-1").Return(nil)
		notifier.EXPECT().Notify(entities.CollectionOrcamentos)

		id, err := uc.ConfirmDelete(context.Background(), "e-1")
		if err != nil || id != "q-1" {
			t.Fatalf("expected q-1, got %q err=%v", id, err)
		}
	})

	t.Run("failed confirm returns to idle", func(t *testing.T) {
		uc, sessions, quotes, _, ctrl := newEditor(t)
		defer ctrl.Finish()
		sessions.EXPECT().Get(gomock.Any(), "e-1").Return(editorSession(entities.DeleteStatePending), nil)
		quotes.EXPECT().Delete(gomock.Any(), "q-1").Return(false, errors.New("db"))
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.EditorSession) error {
			if s.DeleteState != entities.DeleteStateIdle {
				t.Fatalf("expected idle, got %v", s.DeleteState)
			}
			return nil
		})

		_, err := uc.ConfirmDelete(context.Background(), "e-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("editor not found", func(t *testing.T) {
		uc, sessions, _, _, ctrl := newEditor(t)
		defer ctrl.Finish()
		sessions.EXPECT().Get(gomock.Any(), "e-9").Return(entities.EditorSession{}, nil)

		_, err := uc.RequestDelete(context.Background(), "e-9")
		if !errors.Is(err, ErrEditorNotFound) {
			t.Fatalf("expected ErrEditorNotFound, got %v", err)
		}
	})
}
