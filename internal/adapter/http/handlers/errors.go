package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase"
	"mecanica_rff/internal/usecase/interfaces"
	"mecanica_rff/pkg"

	"github.com/gin-gonic/gin"
)

// User-facing messages shown by the shop's screens.
const (
	msgSaved             = "Orçamento/Pedido salvo com sucesso!"
	msgOrderSaved        = "Pedido gerado e estoque atualizado com sucesso!"
	msgDeleted           = "Orçamento/Pedido excluído com sucesso!"
	msgSaveFailed        = "Ocorreu um erro ao salvar o orçamento/pedido."
	msgEditorSaveFailed  = "Ocorreu um erro ao salvar. Tente novamente."
	msgDeleteFailed      = "Ocorreu um erro ao excluir. Tente novamente."
	msgSelectClientParts = "Por favor, selecione um cliente e pelo menos uma peça."
	msgSelectValidParts  = "Por favor, selecione uma peça válida para todas as linhas."
	msgSelectPartFirst   = "Por favor, selecione uma peça antes de adicionar outra."
	msgMissingQuoteID    = "ID do orçamento não encontrado."
	msgInternal          = "Ocorreu um erro inesperado. Tente novamente."
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	errInvalidType    = pkg.NewDomainErrorSimple("INVALID_QUOTE_TYPE", "Tipo inválido: use 0 (Pedido) ou 1 (Orçamento)", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapEntityError maps the draft and editor validation errors. ok is false when
// err is none of them.
func mapEntityError(err error) (*pkg.AppError, bool) {
	var stockErr *entities.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		msg := fmt.Sprintf("Estoque insuficiente para a peça: %s. Quantidade disponível: %d", stockErr.PartName, stockErr.Available)
		return pkg.NewDomainError("INSUFFICIENT_STOCK", msg, err, http.StatusConflict), true
	case errors.Is(err, entities.ErrClientNotSelected), errors.Is(err, entities.ErrNoLines):
		return pkg.NewDomainErrorSimple("INCOMPLETE_DRAFT", msgSelectClientParts, http.StatusBadRequest), true
	case errors.Is(err, entities.ErrIncompleteLine):
		return pkg.NewDomainErrorSimple("INCOMPLETE_LINE", msgSelectValidParts, http.StatusBadRequest), true
	case errors.Is(err, entities.ErrInvalidLineIndex):
		return pkg.NewDomainErrorSimple("INVALID_LINE_INDEX", "Linha de peça inválida", http.StatusBadRequest), true
	case errors.Is(err, entities.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "A quantidade deve ser um número inteiro maior que zero", http.StatusBadRequest), true
	case errors.Is(err, entities.ErrInvalidQuoteType):
		return errInvalidType, true
	case errors.Is(err, entities.ErrTooManyParts):
		return pkg.NewDomainErrorSimple("TOO_MANY_PARTS", fmt.Sprintf("Um pedido aceita no máximo %d peças diferentes", entities.MaxOrderParts), http.StatusBadRequest), true
	case errors.Is(err, entities.ErrInvalidDeleteTransition):
		return pkg.NewDomainErrorSimple("INVALID_DELETE_TRANSITION", "Operação de exclusão inválida neste momento", http.StatusConflict), true
	case errors.Is(err, interfaces.ErrStockConflict):
		return pkg.NewDomainError("STOCK_CONFLICT", "O estoque mudou durante o salvamento. Tente novamente.", err, http.StatusConflict), true
	}
	return nil, false
}

// mapLookupError maps the not-found and invalid-id errors shared by all resources.
func mapLookupError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID), errors.Is(err, usecase.ErrInvalidEditorID),
		errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidPartID):
		return errInvalidRequest, true
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Rascunho não encontrado", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrEditorNotFound):
		return pkg.NewDomainErrorSimple("EDITOR_NOT_FOUND", "Edição não encontrada", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Orçamento/Pedido não encontrado", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Cliente não encontrado", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Peça não encontrada", http.StatusNotFound), true
	}
	return nil, false
}

func internalError(message string, err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", message, err, http.StatusInternalServerError)
}
