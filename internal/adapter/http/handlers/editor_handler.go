package handlers

import (
	"errors"
	"net/http"

	request "mecanica_rff/internal/adapter/http/dto/request"
	response "mecanica_rff/internal/adapter/http/dto/response"
	"mecanica_rff/internal/usecase"
	"mecanica_rff/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// EditorHandler exposes the edit/delete flow of a saved quote.
type EditorHandler struct {
	usecase usecase.IQuoteEditorUseCase
}

func NewEditorHandler(uc usecase.IQuoteEditorUseCase) *EditorHandler {
	return &EditorHandler{usecase: uc}
}

// OpenEditor godoc
// @Summary      Open a saved quote for editing
// @Tags         editors
// @Accept       json
// @Produce      json
// @Param        payload  body      request.OpenEditorRequest  true  "Quote"
// @Success      201      {object}  response.EditorResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /editors [post]
func (h *EditorHandler) OpenEditor(c *gin.Context) {
	var payload request.OpenEditorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	s, err := h.usecase.Open(c.Request.Context(), payload.QuoteID)
	if err != nil {
		writeError(c, mapEditorError(err, msgInternal))
		return
	}
	c.JSON(http.StatusCreated, response.FromEditor(s))
}

// GetEditor godoc
// @Summary      Get an editor session
// @Tags         editors
// @Produce      json
// @Param        id   path      string  true  "Editor ID"
// @Success      200  {object}  response.EditorResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /editors/{id} [get]
func (h *EditorHandler) GetEditor(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEditorError(err, msgInternal))
		return
	}
	c.JSON(http.StatusOK, response.FromEditor(s))
}

// SetType godoc
// @Summary      Change the type of the quote being edited
// @Tags         editors
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Editor ID"
// @Param        payload  body      request.SetTypeRequest  true  "Type"
// @Success      200      {object}  response.EditorResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /editors/{id}/type [put]
func (h *EditorHandler) SetType(c *gin.Context) {
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
	s, err := h.usecase.SetType(c.Request.Context(), c.Param("id"), t)
	if err != nil {
		writeError(c, mapEditorError(err, msgInternal))
		return
	}
	c.JSON(http.StatusOK, response.FromEditor(s))
}

// SaveEditor godoc
// @Summary      Replace the stored quote with the edited copy
// @Description  The editor is closed only when the save succeeds.
// @Tags         editors
// @Produce      json
// @Param        id   path      string  true  "Editor ID"
// @Success      200  {object}  response.SaveResultResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /editors/{id}/save [post]
func (h *EditorHandler) SaveEditor(c *gin.Context) {
	editorID := c.Param("id")
	q, err := h.usecase.Save(c.Request.Context(), editorID)
	if err != nil {
		log.Warn().Str("editor_id", editorID).Err(err).Msg("[editor][handler] save failed")
		writeError(c, mapEditorError(err, msgEditorSaveFailed))
		return
	}
	c.JSON(http.StatusOK, response.SaveResultResponse{Message: msgSaved, Quote: response.FromQuote(q)})
}

// RequestDelete godoc
// @Summary      Ask for delete confirmation
// @Tags         editors
// @Produce      json
// @Param        id   path      string  true  "Editor ID"
// @Success      200  {object}  response.EditorResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /editors/{id}/delete [post]
func (h *EditorHandler) RequestDelete(c *gin.Context) {
	s, err := h.usecase.RequestDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEditorError(err, msgInternal))
		return
	}
	c.JSON(http.StatusOK, response.FromEditor(s))
}

// CancelDelete godoc
// @Summary      Return to editing without deleting
// @Tags         editors
// @Produce      json
// @Param        id   path      string  true  "Editor ID"
// @Success      200  {object}  response.EditorResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /editors/{id}/delete/cancel [post]
func (h *EditorHandler) CancelDelete(c *gin.Context) {
	s, err := h.usecase.CancelDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEditorError(err, msgInternal))
		return
	}
	c.JSON(http.StatusOK, response.FromEditor(s))
}

// ConfirmDelete godoc
// @Summary      Delete the quote being edited
// @Tags         editors
// @Produce      json
// @Param        id   path      string  true  "Editor ID"
// @Success      200  {object}  response.DeleteResultResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /editors/{id}/delete/confirm [post]
func (h *EditorHandler) ConfirmDelete(c *gin.Context) {
	editorID := c.Param("id")
	id, err := h.usecase.ConfirmDelete(c.Request.Context(), editorID)
	if err != nil {
		log.Warn().Str("editor_id", editorID).Err(err).Msg("[editor][handler] delete failed")
		writeError(c, mapEditorError(err, msgDeleteFailed))
		return
	}
	c.JSON(http.StatusOK, response.DeleteResultResponse{Message: msgDeleted, ID: id})
}

// CloseEditor godoc
// @Summary      Close an editor without saving
// @Tags         editors
// @Param        id   path  string  true  "Editor ID"
// @Success      204
// @Router       /editors/{id} [delete]
func (h *EditorHandler) CloseEditor(c *gin.Context) {
	if err := h.usecase.Close(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapEditorError(err, msgInternal))
		return
	}
	c.Status(http.StatusNoContent)
}

// mapEditorError uses fallback as the message of unexpected store errors.
func mapEditorError(err error, fallback string) *pkg.AppError {
	if errors.Is(err, usecase.ErrMissingQuoteID) {
		return pkg.NewDomainError("MISSING_QUOTE_ID", msgMissingQuoteID, err, http.StatusBadRequest)
	}
	if appErr, ok := mapEntityError(err); ok {
		return appErr
	}
	if appErr, ok := mapLookupError(err); ok {
		return appErr
	}
	return internalError(fallback, err)
}
