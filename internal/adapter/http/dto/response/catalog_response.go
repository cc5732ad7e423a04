package response

import "mecanica_rff/internal/domain/entities"

type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Vehicle string `json:"vehicle"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
	Plate   string `json:"plate"`
}

type PartResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
	FreightPrice  float64 `json:"freight_price"`
	Stock         int     `json:"stock"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		Address: c.Address,
		City:    c.City,
		Vehicle: c.Vehicle,
		TaxID:   c.TaxID,
		Phone:   c.Phone,
		Plate:   c.Plate,
	}
}

func FromClients(cs []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClient(c))
	}
	return out
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		ID:            p.ID,
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		FreightPrice:  p.FreightPrice,
		Stock:         p.Stock,
	}
}

func FromParts(ps []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPart(p))
	}
	return out
}
