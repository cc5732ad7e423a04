package entities

import "time"

// DeleteState tracks the two-step delete confirmation of an editor.
type DeleteState string

const (
	DeleteStateIdle    DeleteState = "idle"
	DeleteStatePending DeleteState = "pending_confirmation"
	DeleteStateDeleted DeleteState = "deleted"
)

// EditorSession holds the editable copy of one quote.
type EditorSession struct {
	ID          string      `json:"id"`
	Quote       Quote       `json:"quote"`
	DeleteState DeleteState `json:"delete_state"`
	OpenedAt    time.Time   `json:"opened_at"`
}

func NewEditorSession(id string, q Quote, now time.Time) EditorSession {
	return EditorSession{ID: id, Quote: q, DeleteState: DeleteStateIdle, OpenedAt: now}
}

// SetType changes only the type; lines and totals stay as loaded.
func (s *EditorSession) SetType(t QuoteType) error {
	if !t.Valid() {
		return ErrInvalidQuoteType
	}
	if s.DeleteState == DeleteStateDeleted {
		return ErrInvalidDeleteTransition
	}
	s.Quote.Type = t
	return nil
}

func (s *EditorSession) RequestDelete() error {
	if s.DeleteState != DeleteStateIdle {
		return ErrInvalidDeleteTransition
	}
	s.DeleteState = DeleteStatePending
	return nil
}

func (s *EditorSession) CancelDelete() error {
	if s.DeleteState != DeleteStatePending {
		return ErrInvalidDeleteTransition
	}
	s.DeleteState = DeleteStateIdle
	return nil
}

// CheckConfirmDelete fails unless a delete is waiting for confirmation.
func (s EditorSession) CheckConfirmDelete() error {
	if s.DeleteState != DeleteStatePending {
		return ErrInvalidDeleteTransition
	}
	return nil
}

// DeleteFailed returns to idle editing; the confirmation has to be requested again.
func (s *EditorSession) DeleteFailed() {
	s.DeleteState = DeleteStateIdle
}

func (s *EditorSession) MarkDeleted() {
	s.DeleteState = DeleteStateDeleted
}
