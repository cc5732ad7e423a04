package entities

// Client is read-only reference data from the "cliente" collection.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Vehicle string `json:"vehicle"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
	Plate   string `json:"plate"`
}

// ClientSnapshot is the copy of a client's fields frozen into a quote at save
// time. Later edits to the client do not reach existing quotes.
type ClientSnapshot struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Vehicle string `json:"vehicle"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
	Plate   string `json:"plate"`
}

func (c Client) Snapshot() ClientSnapshot {
	return ClientSnapshot{
		Name:    c.Name,
		Address: c.Address,
		City:    c.City,
		Vehicle: c.Vehicle,
		TaxID:   c.TaxID,
		Phone:   c.Phone,
		Plate:   c.Plate,
	}
}
