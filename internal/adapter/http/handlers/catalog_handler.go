package handlers

import (
	"errors"
	"net/http"

	request "mecanica_rff/internal/adapter/http/dto/request"
	response "mecanica_rff/internal/adapter/http/dto/response"
	"mecanica_rff/internal/usecase"
	"mecanica_rff/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the client and part pickers.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListClients godoc
// @Summary      List clients by name
// @Tags         clients
// @Produce      json
// @Success      200  {array}   response.ClientResponse
// @Router       /clients [get]
func (h *CatalogHandler) ListClients(c *gin.Context) {
	cs, err := h.usecase.ListClients(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(cs))
}

// GetClient godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  response.ClientResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{id} [get]
func (h *CatalogHandler) GetClient(c *gin.Context) {
	cl, err := h.usecase.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(cl))
}

// CreateClient godoc
// @Summary      Register a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateClientRequest  true  "Client"
// @Success      201      {object}  response.ClientResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /clients [post]
func (h *CatalogHandler) CreateClient(c *gin.Context) {
	var payload request.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	cl, err := h.usecase.CreateClient(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(cl))
}

// StreamClients godoc
// @Summary      Live client list (server-sent events)
// @Tags         clients
// @Produce      text/event-stream
// @Success      200
// @Router       /clients/stream [get]
func (h *CatalogHandler) StreamClients(c *gin.Context) {
	ch, cancel := h.usecase.SubscribeClients()
	streamSnapshots(c, ch, cancel, response.FromClients)
}

// ListParts godoc
// @Summary      List parts by name
// @Tags         parts
// @Produce      json
// @Success      200  {array}   response.PartResponse
// @Router       /parts [get]
func (h *CatalogHandler) ListParts(c *gin.Context) {
	ps, err := h.usecase.ListParts(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromParts(ps))
}

// GetPart godoc
// @Summary      Get a part with its current stock
// @Tags         parts
// @Produce      json
// @Param        id   path      string  true  "Part ID"
// @Success      200  {object}  response.PartResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /parts/{id} [get]
func (h *CatalogHandler) GetPart(c *gin.Context) {
	p, err := h.usecase.GetPart(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPart(p))
}

// CreatePart godoc
// @Summary      Register a part
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreatePartRequest  true  "Part"
// @Success      201      {object}  response.PartResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /parts [post]
func (h *CatalogHandler) CreatePart(c *gin.Context) {
	var payload request.CreatePartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	p, err := h.usecase.CreatePart(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPart(p))
}

// StreamParts godoc
// @Summary      Live part list (server-sent events)
// @Tags         parts
// @Produce      text/event-stream
// @Success      200
// @Router       /parts/stream [get]
func (h *CatalogHandler) StreamParts(c *gin.Context) {
	ch, cancel := h.usecase.SubscribeParts()
	streamSnapshots(c, ch, cancel, response.FromParts)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClient):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT", "Dados do cliente inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPart):
		return pkg.NewDomainErrorSimple("INVALID_PART", "Dados da peça inválidos", http.StatusBadRequest)
	}
	if appErr, ok := mapLookupError(err); ok {
		return appErr
	}
	return internalError(msgInternal, err)
}
