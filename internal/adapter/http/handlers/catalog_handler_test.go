package handlers

import (
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

func newCatalogRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/clients", h.ListClients)
	r.POST("/v1/clients", h.CreateClient)
	r.GET("/v1/clients/stream", h.StreamClients)
	r.GET("/v1/clients/:id", h.GetClient)
	r.GET("/v1/parts", h.ListParts)
	r.POST("/v1/parts", h.CreatePart)
	r.GET("/v1/parts/stream", h.StreamParts)
	r.GET("/v1/parts/:id", h.GetPart)
	return r
}

func TestCatalogHandler_Clients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().ListClients(gomock.Any()).Return([]entities.Client{{ID: "c-1", Name: "Ana"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/clients", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"name":"Ana"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("create without name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/clients", `{"city":"Ijuí"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().CreateClient(gomock.Any(), entities.Client{Name: "Ana", TaxID: "123"}).
			Return(entities.Client{ID: "c-1", Name: "Ana", TaxID: "123"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/clients", `{"name":"Ana","tax_id":"123"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["id"] != "c-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().GetClient(gomock.Any(), "c-x").Return(entities.Client{}, usecase.ErrClientNotFound)

		w := doJSON(r, http.MethodGet, "/v1/clients/c-x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("stream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		ch := make(chan []entities.Client, 1)
		ch <- []entities.Client{{ID: "c-1", Name: "Ana"}}
		close(ch)
		uc.EXPECT().SubscribeClients().Return((<-chan []entities.Client)(ch), func() {})

		w := newStreamRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/clients/stream", nil))
		if !strings.Contains(w.Body.String(), `"name":"Ana"`) {
			t.Fatalf("unexpected stream body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_Parts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create negative stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/parts", `{"name":"Bico","stock":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create rejected by usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().CreatePart(gomock.Any(), gomock.Any()).Return(entities.Part{}, usecase.ErrInvalidPart)

		w := doJSON(r, http.MethodPost, "/v1/parts", `{"name":"  x "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().GetPart(gomock.Any(), "p1").Return(entities.Part{ID: "p1", Name: "Bico", Stock: 4}, nil)

		w := doJSON(r, http.MethodGet, "/v1/parts/p1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["stock"] != float64(4) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().ListParts(gomock.Any()).Return([]entities.Part{{ID: "p1"}, {ID: "p2"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/parts", "")
		if w.Code != http.StatusOK || strings.Count(w.Body.String(), `"id"`) != 2 {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
