package handlers

import (
	"fmt"
	"net/http"

	request "mecanica_rff/internal/adapter/http/dto/request"
	response "mecanica_rff/internal/adapter/http/dto/response"
	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase"
	"mecanica_rff/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DraftHandler exposes the quote builder. Every mutation answers with the
// whole draft, totals included.
type DraftHandler struct {
	usecase usecase.IQuoteBuilderUseCase
}

func NewDraftHandler(uc usecase.IQuoteBuilderUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

// CreateDraft godoc
// @Summary      Start a new draft
// @Tags         drafts
// @Produce      json
// @Success      201  {object}  response.DraftResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /drafts [post]
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	d, err := h.usecase.NewDraft(c.Request.Context())
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDraft(d))
}

// GetDraft godoc
// @Summary      Get a draft
// @Tags         drafts
// @Produce      json
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  response.DraftResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /drafts/{id} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	d, err := h.usecase.GetDraft(c.Request.Context(), c.Param("id"))
	h.respond(c, d, err)
}

// SelectClient godoc
// @Summary      Select or clear the draft's client
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Draft ID"
// @Param        payload  body      request.SelectClientRequest  true  "Client"
// @Success      200      {object}  response.DraftResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /drafts/{id}/client [put]
func (h *DraftHandler) SelectClient(c *gin.Context) {
	var payload request.SelectClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	d, err := h.usecase.SelectClient(c.Request.Context(), c.Param("id"), payload.ClientID)
	h.respond(c, d, err)
}

// AddLine godoc
// @Summary      Append an empty part line
// @Tags         drafts
// @Produce      json
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  response.DraftResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /drafts/{id}/lines [post]
func (h *DraftHandler) AddLine(c *gin.Context) {
	d, err := h.usecase.AddLine(c.Request.Context(), c.Param("id"))
	h.respond(c, d, err)
}

// SelectPart godoc
// @Summary      Pick the part of a line
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Draft ID"
// @Param        index    path      int                         true  "Zero-based line index"
// @Param        payload  body      request.SelectPartRequest  true  "Part"
// @Success      200      {object}  response.DraftResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /drafts/{id}/lines/{index}/part [put]
func (h *DraftHandler) SelectPart(c *gin.Context) {
	index, err := request.ParseLineIndex(c.Param("index"))
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	var payload request.SelectPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	d, err := h.usecase.SelectPartForLine(c.Request.Context(), c.Param("id"), index, payload.PartID)
	h.respond(c, d, err)
}

// SetQuantity godoc
// @Summary      Change the quantity of a line
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Draft ID"
// @Param        index    path      int                          true  "Zero-based line index"
// @Param        payload  body      request.SetQuantityRequest  true  "Quantity"
// @Success      200      {object}  response.DraftResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /drafts/{id}/lines/{index}/quantity [put]
func (h *DraftHandler) SetQuantity(c *gin.Context) {
	index, err := request.ParseLineIndex(c.Param("index"))
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	var payload request.SetQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapDraftError(entities.ErrInvalidQuantity))
		return
	}
	d, err := h.usecase.SetQuantity(c.Request.Context(), c.Param("id"), index, payload.Quantity)
	h.respond(c, d, err)
}

// RemoveLine godoc
// @Summary      Remove a line
// @Tags         drafts
// @Produce      json
// @Param        id     path      string  true  "Draft ID"
// @Param        index  path      int     true  "Zero-based line index"
// @Success      200    {object}  response.DraftResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /drafts/{id}/lines/{index} [delete]
func (h *DraftHandler) RemoveLine(c *gin.Context) {
	index, err := request.ParseLineIndex(c.Param("index"))
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	d, err := h.usecase.RemoveLine(c.Request.Context(), c.Param("id"), index)
	h.respond(c, d, err)
}

// SetType godoc
// @Summary      Switch between Pedido (0) and Orçamento (1)
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Draft ID"
// @Param        payload  body      request.SetTypeRequest  true  "Type"
// @Success      200      {object}  response.DraftResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /drafts/{id}/type [put]
func (h *DraftHandler) SetType(c *gin.Context) {
	var payload request.SetTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidType)
		return
	}
	t, err := payload.ResolveType()
	if err != nil {
		writeError(c, errInvalidType)
		return
	}
	d, err := h.usecase.SetType(c.Request.Context(), c.Param("id"), t)
	h.respond(c, d, err)
}

// SaveDraft godoc
// @Summary      Save the draft as a quote or order
// @Description  Orders re-check and decrement stock in one transaction. The draft is reset on success.
// @Tags         drafts
// @Produce      json
// @Param        id   path      string  true  "Draft ID"
// @Success      201  {object}  response.SaveResultResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /drafts/{id}/save [post]
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	draftID := c.Param("id")
	q, err := h.usecase.Save(c.Request.Context(), draftID)
	if err != nil {
		log.Warn().Str("draft_id", draftID).Err(err).Msg("[builder][handler] save failed")
		writeError(c, mapDraftError(err))
		return
	}
	msg := msgSaved
	if q.Type.IsOrder() {
		msg = msgOrderSaved
	}
	c.JSON(http.StatusCreated, response.SaveResultResponse{Message: msg, Quote: response.FromQuote(q)})
}

// DiscardDraft godoc
// @Summary      Discard a draft
// @Tags         drafts
// @Param        id   path  string  true  "Draft ID"
// @Success      204
// @Router       /drafts/{id} [delete]
func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// PrintDraft godoc
// @Summary      Render the draft as a PDF
// @Tags         drafts
// @Produce      application/pdf
// @Param        id   path  string  true  "Draft ID"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Router       /drafts/{id}/print [get]
func (h *DraftHandler) PrintDraft(c *gin.Context) {
	draftID := c.Param("id")
	pdf, err := h.usecase.Print(c.Request.Context(), draftID)
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	writePDF(c, fmt.Sprintf("rascunho-%s.pdf", draftID), pdf)
}

func (h *DraftHandler) respond(c *gin.Context, d entities.Draft, err error) {
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func mapDraftError(err error) *pkg.AppError {
	if appErr, ok := mapEntityError(err); ok {
		return appErr
	}
	if appErr, ok := mapLookupError(err); ok {
		return appErr
	}
	return internalError(msgSaveFailed, err)
}

func writePDF(c *gin.Context, filename string, pdf []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
