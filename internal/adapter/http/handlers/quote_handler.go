package handlers

import (
	"fmt"
	"net/http"

	response "mecanica_rff/internal/adapter/http/dto/response"
	"mecanica_rff/internal/usecase"
	"mecanica_rff/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves the saved quotes list, single records and their PDF.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ListQuotes godoc
// @Summary      List saved quotes and orders, newest first
// @Tags         quotes
// @Produce      json
// @Success      200  {array}   response.QuoteResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	qs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(qs))
}

// StreamQuotes godoc
// @Summary      Live quote list (server-sent events)
// @Tags         quotes
// @Produce      text/event-stream
// @Success      200
// @Router       /quotes/stream [get]
func (h *QuoteHandler) StreamQuotes(c *gin.Context) {
	ch, cancel := h.usecase.Subscribe()
	streamSnapshots(c, ch, cancel, response.FromQuotes)
}

// GetQuote godoc
// @Summary      Get a saved quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// PrintQuote godoc
// @Summary      Render a saved quote as a PDF
// @Tags         quotes
// @Produce      application/pdf
// @Param        id   path  string  true  "Quote ID"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/print [get]
func (h *QuoteHandler) PrintQuote(c *gin.Context) {
	id := c.Param("id")
	pdf, err := h.usecase.Print(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	writePDF(c, fmt.Sprintf("orcamento-%s.pdf", id), pdf)
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr, ok := mapLookupError(err); ok {
		return appErr
	}
	return internalError(msgInternal, err)
}
