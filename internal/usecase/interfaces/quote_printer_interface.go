package interfaces

import "mecanica_rff/internal/domain/entities"

// IQuotePrinter renders a quote or a draft preview as a printable document.
//
//go:generate mockgen -source=quote_printer_interface.go -destination=mocks/mock_quote_printer.go -package=mock_interfaces
type IQuotePrinter interface {
	Render(q entities.Quote) ([]byte, error)
}
