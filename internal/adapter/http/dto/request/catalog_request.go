package request

import (
	"mecanica_rff/internal/domain/entities"
	"strings"
)

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	Vehicle string `json:"vehicle"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
	Plate   string `json:"plate"`
}

func (r CreateClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    strings.TrimSpace(r.Name),
		Address: strings.TrimSpace(r.Address),
		City:    strings.TrimSpace(r.City),
		Vehicle: strings.TrimSpace(r.Vehicle),
		TaxID:   strings.TrimSpace(r.TaxID),
		Phone:   strings.TrimSpace(r.Phone),
		Plate:   strings.ToUpper(strings.TrimSpace(r.Plate)),
	}
}

type CreatePartRequest struct {
	Name          string  `json:"name" binding:"required"`
	PurchasePrice float64 `json:"purchase_price" binding:"gte=0"`
	FreightPrice  float64 `json:"freight_price" binding:"gte=0"`
	Stock         int     `json:"stock" binding:"gte=0"`
}

func (r CreatePartRequest) ToEntity() entities.Part {
	return entities.Part{
		Name:          strings.TrimSpace(r.Name),
		PurchasePrice: r.PurchasePrice,
		FreightPrice:  r.FreightPrice,
		Stock:         r.Stock,
	}
}
