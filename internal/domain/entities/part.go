package entities

import "strings"

// Part is a catalog entry from the "peca" collection. Stock is the only field
// this service ever writes, and only when an order is saved.
type Part struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
	FreightPrice  float64 `json:"freight_price"`
	Stock         int     `json:"stock"`
}

// PartLine is one row of a draft or of a saved quote. Name and prices are
// copied from the part when it is selected.
type PartLine struct {
	PartID        string  `json:"part_id"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
	FreightPrice  float64 `json:"freight_price"`
	Quantity      int     `json:"quantity"`
}

func (l PartLine) HasPart() bool {
	return strings.TrimSpace(l.PartID) != ""
}

// StockReservation is the total quantity an order takes from one part.
type StockReservation struct {
	PartID   string
	PartName string
	Quantity int
}
