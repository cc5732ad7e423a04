package routes

import (
	"mecanica_rff/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing    = "/ping"
	PathClients = "/clients"
	PathParts   = "/parts"
	PathDrafts  = "/drafts"
	PathQuotes  = "/quotes"
	PathEditors = "/editors"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.ListClients)
		clients.POST("", h.CreateClient)
		clients.GET("/stream", h.StreamClients)
		clients.GET("/:id", h.GetClient)
	}

	parts := rg.Group(PathParts)
	{
		parts.GET("", h.ListParts)
		parts.POST("", h.CreatePart)
		parts.GET("/stream", h.StreamParts)
		parts.GET("/:id", h.GetPart)
	}
}

func addDraftRoutes(rg *gin.RouterGroup, h *handlers.DraftHandler) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", h.CreateDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.DELETE("/:id", h.DiscardDraft)
		drafts.PUT("/:id/client", h.SelectClient)
		drafts.POST("/:id/lines", h.AddLine)
		drafts.PUT("/:id/lines/:index/part", h.SelectPart)
		drafts.PUT("/:id/lines/:index/quantity", h.SetQuantity)
		drafts.DELETE("/:id/lines/:index", h.RemoveLine)
		drafts.PUT("/:id/type", h.SetType)
		drafts.POST("/:id/save", h.SaveDraft)
		drafts.GET("/:id/print", h.PrintDraft)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler, payments *handlers.QuotePaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.ListQuotes)
		quotes.GET("/stream", h.StreamQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.GET("/:id/print", h.PrintQuote)
		quotes.POST("/:id/payments", payments.PayOrder)
		quotes.GET("/:id/payments", payments.ListPayments)
	}
}

func addEditorRoutes(rg *gin.RouterGroup, h *handlers.EditorHandler) {
	editors := rg.Group(PathEditors)
	{
		editors.POST("", h.OpenEditor)
		editors.GET("/:id", h.GetEditor)
		editors.DELETE("/:id", h.CloseEditor)
		editors.PUT("/:id/type", h.SetType)
		editors.POST("/:id/save", h.SaveEditor)
		editors.POST("/:id/delete", h.RequestDelete)
		editors.POST("/:id/delete/confirm", h.ConfirmDelete)
		editors.POST("/:id/delete/cancel", h.CancelDelete)
	}
}
