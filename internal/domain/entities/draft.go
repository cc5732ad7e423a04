package entities

import "time"

// MaxOrderParts bounds the distinct parts of one order: the stock decrements
// and the quote write share a single store transaction.
const MaxOrderParts = 99

// Draft is the in-progress quote of the builder. It lives in the session store
// until it is saved (and reset) or discarded.
type Draft struct {
	ID        string     `json:"id"`
	Client    *Client    `json:"client,omitempty"`
	Lines     []PartLine `json:"lines"`
	Type      QuoteType  `json:"type"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewDraft returns an empty orçamento draft with no client and no lines.
func NewDraft(id string, now time.Time) Draft {
	return Draft{
		ID:        id,
		Lines:     []PartLine{},
		Type:      QuoteTypeOrcamento,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SelectClient sets the active client; nil clears the selection.
func (d *Draft) SelectClient(c *Client) {
	d.Client = c
}

// AddLine appends an empty line with quantity 1. At most one incomplete line
// may exist at a time.
func (d *Draft) AddLine() error {
	for _, l := range d.Lines {
		if !l.HasPart() {
			return ErrIncompleteLine
		}
	}
	d.Lines = append(d.Lines, PartLine{Quantity: 1})
	return nil
}

// SelectPartForLine copies the part's name and prices into the line. A
// quantity already set on the line is kept.
func (d *Draft) SelectPartForLine(index int, p Part) error {
	if !d.validIndex(index) {
		return ErrInvalidLineIndex
	}
	qty := d.Lines[index].Quantity
	if qty < 1 {
		qty = 1
	}
	d.Lines[index] = PartLine{
		PartID:        p.ID,
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		FreightPrice:  p.FreightPrice,
		Quantity:      qty,
	}
	return nil
}

// SetQuantity sets the quantity of a line; values below 1 are rejected.
func (d *Draft) SetQuantity(index, qty int) error {
	if !d.validIndex(index) {
		return ErrInvalidLineIndex
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}
	d.Lines[index].Quantity = qty
	return nil
}

// RemoveLine deletes a line, shifting the following ones up.
func (d *Draft) RemoveLine(index int) error {
	if !d.validIndex(index) {
		return ErrInvalidLineIndex
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	return nil
}

// SetType switches the draft between pedido and orçamento.
func (d *Draft) SetType(t QuoteType) error {
	if !t.Valid() {
		return ErrInvalidQuoteType
	}
	d.Type = t
	return nil
}

// Validate checks everything save needs before touching the store.
func (d Draft) Validate() error {
	if d.Client == nil {
		return ErrClientNotSelected
	}
	if len(d.Lines) == 0 {
		return ErrNoLines
	}
	for _, l := range d.Lines {
		if !l.HasPart() {
			return ErrIncompleteLine
		}
		if l.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	if d.Type.IsOrder() && len(d.Reservations()) > MaxOrderParts {
		return ErrTooManyParts
	}
	return nil
}

// Totals prices the current lines.
func (d Draft) Totals() Totals {
	return ComputeTotals(d.Lines)
}

// Reservations sums the quantities per part, in order of first appearance.
func (d Draft) Reservations() []StockReservation {
	idx := make(map[string]int, len(d.Lines))
	out := make([]StockReservation, 0, len(d.Lines))
	for _, l := range d.Lines {
		if !l.HasPart() {
			continue
		}
		if i, ok := idx[l.PartID]; ok {
			out[i].Quantity += l.Quantity
			continue
		}
		idx[l.PartID] = len(out)
		out = append(out, StockReservation{PartID: l.PartID, PartName: l.Name, Quantity: l.Quantity})
	}
	return out
}

// ToQuote builds the record that save persists. The ID is left for the store.
func (d Draft) ToQuote(date string) Quote {
	q := Quote{
		Type:  d.Type,
		Lines: make(map[string]PartLine, len(d.Lines)),
		Date:  date,
	}
	if d.Client != nil {
		q.Client = d.Client.Snapshot()
		q.UIDUser = d.Client.TaxID
	}
	for i, l := range d.Lines {
		q.Lines[LineKey(i)] = l
	}
	totals := d.Totals()
	q.CashTotal = totals.Cash
	q.InstallmentTotal = totals.Installment
	return q
}

// Reset clears the draft after a successful save: no client, no lines, and the
// type back to orçamento.
func (d *Draft) Reset() {
	d.Client = nil
	d.Lines = []PartLine{}
	d.Type = QuoteTypeOrcamento
}

func (d Draft) validIndex(index int) bool {
	return index >= 0 && index < len(d.Lines)
}
