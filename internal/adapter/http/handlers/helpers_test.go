package handlers

import (
	"net/http/httptest"
	"time"
)

func fixedTime() time.Time {
	return time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)
}

// streamRecorder adds the CloseNotify gin's Stream needs.
type streamRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newStreamRecorder() *streamRecorder {
	return &streamRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
}

func (r *streamRecorder) CloseNotify() <-chan bool {
	return r.closed
}
