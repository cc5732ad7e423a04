package handlers

import (
	"errors"
	request "mecanica_rff/internal/adapter/http/dto/request"
	response "mecanica_rff/internal/adapter/http/dto/response"
	"mecanica_rff/internal/usecase"
	"mecanica_rff/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// QuotePaymentHandler handles HTTP requests for order payments.
type QuotePaymentHandler struct {
	usecase usecase.IQuotePaymentUseCase
}

func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase) *QuotePaymentHandler {
	return &QuotePaymentHandler{usecase: uc}
}

// PayOrder charges a saved order through Mercado Pago.
//
// @Summary      Pay an order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Quote ID"
// @Param        payload  body      request.PayOrderRequest  true  "Payment"
// @Success      201      {object}  response.QuotePaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /quotes/{id}/payments [post]
func (h *QuotePaymentHandler) PayOrder(c *gin.Context) {
	quoteID := c.Param("id")
	log.Info().Str("quote_id", quoteID).Msg("[payment][handler] pay start")

	var payload request.PayOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Warn().Str("quote_id", quoteID).Err(err).Msg("[payment][handler] invalid payload")
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Pay(c.Request.Context(), quoteID, payload.ToInput())
	if err != nil {
		log.Warn().Str("quote_id", quoteID).Err(err).Msg("[payment][handler] pay failed")
		writeError(c, mapQuotePaymentError(err))
		return
	}
	log.Info().Str("quote_id", quoteID).Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("[payment][handler] pay success")

	c.JSON(http.StatusCreated, response.FromQuotePayment(created))
}

// ListPayments returns every payment of a quote, oldest first.
//
// @Summary      List payments of an order
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {array}   response.QuotePaymentResponse
// @Router       /quotes/{id}/payments [get]
func (h *QuotePaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuotePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayments(payments))
}

func mapQuotePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Forma de pagamento inválida: use avista ou parcelado", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInstallments):
		return pkg.NewDomainErrorSimple("INVALID_INSTALLMENTS", "Parcelado em até 10X SEM JUROS", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotOrder):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ORDER", "Somente pedidos podem ser pagos", http.StatusConflict)
	}
	if appErr, ok := mapLookupError(err); ok {
		return appErr
	}
	return internalError(msgInternal, err)
}
