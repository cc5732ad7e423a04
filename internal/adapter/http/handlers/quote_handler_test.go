package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mecanica_rff/internal/adapter/http/handlers/mocks"
	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/quotes", h.ListQuotes)
	r.GET("/v1/quotes/stream", h.StreamQuotes)
	r.GET("/v1/quotes/:id", h.GetQuote)
	r.GET("/v1/quotes/:id/print", h.PrintQuote)
	return r
}

func TestQuoteHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

		w := doJSON(r, http.MethodGet, "/v1/quotes", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("empty list is an array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/quotes", "")
		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestQuoteHandler_GetAndPrint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "q-x").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := doJSON(r, http.MethodGet, "/v1/quotes/q-x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Client: entities.ClientSnapshot{Name: "Ana"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/quotes/q-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		client, _ := decodeBody(t, w)["client"].(map[string]any)
		if client["name"] != "Ana" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("print", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().Print(gomock.Any(), "q-1").Return([]byte("%PDF-1.3"), nil)

		w := doJSON(r, http.MethodGet, "/v1/quotes/q-1/print", "")
		if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "application/pdf" {
			t.Fatalf("unexpected response %d %v", w.Code, w.Header())
		}
	})
}

func TestQuoteHandler_Stream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	r := newQuoteRouter(NewQuoteHandler(uc))

	ch := make(chan []entities.Quote, 1)
	ch <- []entities.Quote{{ID: "q-1", Date: "19/10/2026"}}
	close(ch)
	cancelled := false
	uc.EXPECT().Subscribe().Return((<-chan []entities.Quote)(ch), func() { cancelled = true })

	w := newStreamRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/stream", nil))

	if !cancelled {
		t.Fatalf("expected subscription to be cancelled")
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "event:snapshot") || !strings.Contains(body, `"id":"q-1"`) {
		t.Fatalf("unexpected stream body: %s", body)
	}
}
