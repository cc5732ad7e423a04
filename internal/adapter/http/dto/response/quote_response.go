package response

import "mecanica_rff/internal/domain/entities"

type LineResponse struct {
	Key           string  `json:"key,omitempty"`
	PartID        string  `json:"part_id"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
	FreightPrice  float64 `json:"freight_price"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	LineTotal     float64 `json:"line_total"`
}

type ClientSnapshotResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Vehicle string `json:"vehicle"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
	Plate   string `json:"plate"`
}

type QuoteResponse struct {
	ID               string                 `json:"id"`
	Type             int                    `json:"type"`
	TypeLabel        string                 `json:"type_label"`
	Client           ClientSnapshotResponse `json:"client"`
	Lines            []LineResponse         `json:"lines"`
	CashTotal        float64                `json:"cash_total"`
	InstallmentTotal float64                `json:"installment_total"`
	Date             string                 `json:"date"`
}

type DraftResponse struct {
	ID               string          `json:"id"`
	Type             int             `json:"type"`
	TypeLabel        string          `json:"type_label"`
	Client           *ClientResponse `json:"client"`
	Lines            []LineResponse  `json:"lines"`
	CashTotal        float64         `json:"cash_total"`
	InstallmentTotal float64         `json:"installment_total"`
	CanAddLine       bool            `json:"can_add_line"`
}

type EditorResponse struct {
	ID          string        `json:"id"`
	DeleteState string        `json:"delete_state"`
	Quote       QuoteResponse `json:"quote"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SaveResultResponse struct {
	Message string        `json:"message"`
	Quote   QuoteResponse `json:"quote"`
}

type DeleteResultResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func FromLine(key string, l entities.PartLine) LineResponse {
	return LineResponse{
		Key:           key,
		PartID:        l.PartID,
		Name:          l.Name,
		PurchasePrice: l.PurchasePrice,
		FreightPrice:  l.FreightPrice,
		Quantity:      l.Quantity,
		UnitPrice:     entities.UnitCashPrice(l),
		LineTotal:     entities.LineCashTotal(l),
	}
}

func FromQuote(q entities.Quote) QuoteResponse {
	keys := q.OrderedLineKeys()
	lines := make([]LineResponse, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, FromLine(k, q.Lines[k]))
	}
	c := q.Client
	return QuoteResponse{
		ID:        q.ID,
		Type:      int(q.Type),
		TypeLabel: q.Type.Label(),
		Client: ClientSnapshotResponse{
			Name:    c.Name,
			Address: c.Address,
			City:    c.City,
			Vehicle: c.Vehicle,
			TaxID:   c.TaxID,
			Phone:   c.Phone,
			Plate:   c.Plate,
		},
		Lines:            lines,
		CashTotal:        q.CashTotal,
		InstallmentTotal: q.InstallmentTotal,
		Date:             q.Date,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

func FromDraft(d entities.Draft) DraftResponse {
	lines := make([]LineResponse, 0, len(d.Lines))
	canAdd := true
	for _, l := range d.Lines {
		lines = append(lines, FromLine("", l))
		if !l.HasPart() {
			canAdd = false
		}
	}
	totals := d.Totals()
	res := DraftResponse{
		ID:               d.ID,
		Type:             int(d.Type),
		TypeLabel:        d.Type.Label(),
		Lines:            lines,
		CashTotal:        totals.Cash,
		InstallmentTotal: totals.Installment,
		CanAddLine:       canAdd,
	}
	if d.Client != nil {
		c := FromClient(*d.Client)
		res.Client = &c
	}
	return res
}

func FromEditor(s entities.EditorSession) EditorResponse {
	return EditorResponse{
		ID:          s.ID,
		DeleteState: string(s.DeleteState),
		Quote:       FromQuote(s.Quote),
	}
}
