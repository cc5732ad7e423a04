package entities

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// QuoteType distinguishes a committed order (pedido) from a price estimate
// (orçamento). The numeric values are the ones stored in the "tipo" field.
type QuoteType int

const (
	QuoteTypePedido    QuoteType = 0
	QuoteTypeOrcamento QuoteType = 1
)

// Collection names of the document store.
const (
	CollectionClientes   = "cliente"
	CollectionPecas      = "peca"
	CollectionOrcamentos = "orcamento"
)

// Valid reports whether t is one of the stored tipo values.
func (t QuoteType) Valid() bool {
	return t == QuoteTypePedido || t == QuoteTypeOrcamento
}

// IsOrder reports whether saving t reserves stock.
func (t QuoteType) IsOrder() bool {
	return t == QuoteTypePedido
}

// Label is the display name used in lists and printouts.
func (t QuoteType) Label() string {
	if t == QuoteTypePedido {
		return "Pedido"
	}
	return "Orçamento"
}

// Quote is a persisted quote or order (collection "orcamento").
//
// Storage model (DynamoDB):
//   - PK: id
//
// Lines are keyed "peca1".."pecaN" in selection order. Prices inside the lines
// and both totals are a snapshot taken at creation; nothing here is ever
// recomputed from the live catalog. Date is the pt-BR day shown to users;
// CreatedAt orders records written on the same day.
type Quote struct {
	ID               string              `json:"id"`
	Type             QuoteType           `json:"type"`
	Client           ClientSnapshot      `json:"client"`
	UIDUser          string              `json:"uid_user"`
	Lines            map[string]PartLine `json:"lines"`
	CashTotal        float64             `json:"cash_total"`
	InstallmentTotal float64             `json:"installment_total"`
	Date             string              `json:"date"`
	CreatedAt        time.Time           `json:"created_at"`
}

// LineKey returns the stored key of the line at index, starting at "peca1".
func LineKey(index int) string {
	return fmt.Sprintf("peca%d", index+1)
}

// OrderedLineKeys returns the line keys sorted by their numeric suffix, so
// "peca10" comes after "peca9".
func (q Quote) OrderedLineKeys() []string {
	keys := make([]string, 0, len(q.Lines))
	for k := range q.Lines {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, okI := lineKeyNumber(keys[i])
		nj, okJ := lineKeyNumber(keys[j])
		if okI && okJ && ni != nj {
			return ni < nj
		}
		if okI != okJ {
			return okI
		}
		return keys[i] < keys[j]
	})
	return keys
}

func (q Quote) OrderedLines() []PartLine {
	keys := q.OrderedLineKeys()
	lines := make([]PartLine, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, q.Lines[k])
	}
	return lines
}

// HasValidLine reports whether at least one line references a part.
func (q Quote) HasValidLine() bool {
	for _, l := range q.Lines {
		if l.HasPart() {
			return true
		}
	}
	return false
}

func lineKeyNumber(key string) (int, bool) {
	if !strings.HasPrefix(key, "peca") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(key, "peca"))
	if err != nil {
		return 0, false
	}
	return n, true
}
