package usecase

//go:generate mockgen -source=quote_builder_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_builder_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrDraftNotFound   = errors.New("draft not found")
	ErrInvalidDraftID  = errors.New("invalid draft id")
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidClientID = errors.New("invalid client id")
	ErrPartNotFound    = errors.New("part not found")
	ErrInvalidPartID   = errors.New("invalid part id")
)

// dateLayout is the pt-BR short date stored in dataOrcamento.
const dateLayout = "02/01/2006"

// IQuoteBuilderUseCase turns an operator's selections into one persisted quote
// or order. Every operation works on a draft kept in the session store.
type IQuoteBuilderUseCase interface {
	NewDraft(ctx context.Context) (entities.Draft, error)
	GetDraft(ctx context.Context, draftID string) (entities.Draft, error)
	SelectClient(ctx context.Context, draftID, clientID string) (entities.Draft, error)
	AddLine(ctx context.Context, draftID string) (entities.Draft, error)
	SelectPartForLine(ctx context.Context, draftID string, index int, partID string) (entities.Draft, error)
	SetQuantity(ctx context.Context, draftID string, index, quantity int) (entities.Draft, error)
	RemoveLine(ctx context.Context, draftID string, index int) (entities.Draft, error)
	SetType(ctx context.Context, draftID string, t entities.QuoteType) (entities.Draft, error)
	Save(ctx context.Context, draftID string) (entities.Quote, error)
	Discard(ctx context.Context, draftID string) error
	Print(ctx context.Context, draftID string) ([]byte, error)
}

type QuoteBuilderUseCase struct {
	drafts   interfaces.IDraftRepository
	clients  interfaces.IClientRepository
	parts    interfaces.IPartRepository
	quotes   interfaces.IQuoteRepository
	notifier interfaces.ICollectionNotifier
	printer  interfaces.IQuotePrinter
	location *time.Location
	now      func() time.Time
}

var _ IQuoteBuilderUseCase = (*QuoteBuilderUseCase)(nil)

func NewQuoteBuilderUseCase(
	drafts interfaces.IDraftRepository,
	clients interfaces.IClientRepository,
	parts interfaces.IPartRepository,
	quotes interfaces.IQuoteRepository,
	notifier interfaces.ICollectionNotifier,
	printer interfaces.IQuotePrinter,
	location *time.Location,
) *QuoteBuilderUseCase {
	if location == nil {
		location = time.UTC
	}
	return &QuoteBuilderUseCase{
		drafts:   drafts,
		clients:  clients,
		parts:    parts,
		quotes:   quotes,
		notifier: notifier,
		printer:  printer,
		location: location,
		now:      time.Now,
	}
}

func (u *QuoteBuilderUseCase) NewDraft(ctx context.Context) (entities.Draft, error) {
	d := entities.NewDraft(uuid.NewString(), u.now().UTC())
	if err := u.drafts.Save(ctx, d); err != nil {
		log.Error().Err(err).Msg("[builder][usecase] draft create failed")
		return entities.Draft{}, err
	}
	log.Info().Str("draft_id", d.ID).Msg("[builder][usecase] draft created")
	return d, nil
}

func (u *QuoteBuilderUseCase) GetDraft(ctx context.Context, draftID string) (entities.Draft, error) {
	return u.load(ctx, draftID)
}

// SelectClient sets the draft's client. An empty client id clears it.
func (u *QuoteBuilderUseCase) SelectClient(ctx context.Context, draftID, clientID string) (entities.Draft, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.Draft{}, err
	}

	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		d.SelectClient(nil)
		return u.store(ctx, d)
	}

	c, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Draft{}, err
	}
	if c.ID == "" {
		return entities.Draft{}, ErrClientNotFound
	}
	d.SelectClient(&c)
	return u.store(ctx, d)
}

func (u *QuoteBuilderUseCase) AddLine(ctx context.Context, draftID string) (entities.Draft, error) {
	return u.mutate(ctx, draftID, func(d *entities.Draft) error {
		return d.AddLine()
	})
}

func (u *QuoteBuilderUseCase) SelectPartForLine(ctx context.Context, draftID string, index int, partID string) (entities.Draft, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.Draft{}, err
	}
	if index < 0 || index >= len(d.Lines) {
		return entities.Draft{}, entities.ErrInvalidLineIndex
	}

	partID = strings.TrimSpace(partID)
	if partID == "" {
		return entities.Draft{}, ErrInvalidPartID
	}
	p, err := u.parts.GetByID(ctx, partID)
	if err != nil {
		return entities.Draft{}, err
	}
	if p.ID == "" {
		return entities.Draft{}, ErrPartNotFound
	}

	if err := d.SelectPartForLine(index, p); err != nil {
		return entities.Draft{}, err
	}
	return u.store(ctx, d)
}

func (u *QuoteBuilderUseCase) SetQuantity(ctx context.Context, draftID string, index, quantity int) (entities.Draft, error) {
	return u.mutate(ctx, draftID, func(d *entities.Draft) error {
		return d.SetQuantity(index, quantity)
	})
}

func (u *QuoteBuilderUseCase) RemoveLine(ctx context.Context, draftID string, index int) (entities.Draft, error) {
	return u.mutate(ctx, draftID, func(d *entities.Draft) error {
		return d.RemoveLine(index)
	})
}

func (u *QuoteBuilderUseCase) SetType(ctx context.Context, draftID string, t entities.QuoteType) (entities.Draft, error) {
	return u.mutate(ctx, draftID, func(d *entities.Draft) error {
		return d.SetType(t)
	})
}

// Save validates the draft, reserves stock for orders and creates the record.
//
// Validation and the stock check finish before any write. For orders the
// decrements and the record are committed together by CreateOrder, so a save
// either lands completely or leaves the store untouched. The draft is reset
// only after the commit.
func (u *QuoteBuilderUseCase) Save(ctx context.Context, draftID string) (entities.Quote, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Info().Str("draft_id", d.ID).Int("tipo", int(d.Type)).Int("lines", len(d.Lines)).Msg("[builder][usecase] save start")

	if err := d.Validate(); err != nil {
		log.Warn().Str("draft_id", d.ID).Err(err).Msg("[builder][usecase] save rejected")
		return entities.Quote{}, err
	}

	var reservations []entities.StockReservation
	if d.Type.IsOrder() {
		reservations = d.Reservations()
		if err := u.checkStock(ctx, reservations); err != nil {
			log.Warn().Str("draft_id", d.ID).Err(err).Msg("[builder][usecase] stock check failed")
			return entities.Quote{}, err
		}
	}

	now := u.now()
	q := d.ToQuote(now.In(u.location).Format(dateLayout))
	q.CreatedAt = now.UTC()

	var created entities.Quote
	if d.Type.IsOrder() {
		created, err = u.quotes.CreateOrder(ctx, q, reservations)
		if errors.Is(err, interfaces.ErrStockConflict) {
			log.Warn().Str("draft_id", d.ID).Msg("[builder][usecase] stock changed during commit")
			if stockErr := u.checkStock(ctx, reservations); stockErr != nil {
				return entities.Quote{}, stockErr
			}
		}
	} else {
		created, err = u.quotes.Create(ctx, q)
	}
	if err != nil {
		log.Error().Str("draft_id", d.ID).Err(err).Msg("[builder][usecase] quote create failed")
		return entities.Quote{}, err
	}

	d.Reset()
	d.UpdatedAt = u.now().UTC()
	if err := u.drafts.Save(ctx, d); err != nil {
		log.Warn().Str("draft_id", d.ID).Err(err).Msg("[builder][usecase] draft reset not persisted")
	}

	u.notify(entities.CollectionOrcamentos)
	if created.Type.IsOrder() {
		u.notify(entities.CollectionPecas)
	}
	log.Info().Str("draft_id", d.ID).Str("quote_id", created.ID).Float64("cash_total", created.CashTotal).
		Float64("installment_total", created.InstallmentTotal).Msg("[builder][usecase] save success")
	return created, nil
}

func (u *QuoteBuilderUseCase) Discard(ctx context.Context, draftID string) error {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return ErrInvalidDraftID
	}
	return u.drafts.Delete(ctx, draftID)
}

// Print renders the draft as it would be saved right now.
func (u *QuoteBuilderUseCase) Print(ctx context.Context, draftID string) ([]byte, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return u.printer.Render(d.ToQuote(u.now().In(u.location).Format(dateLayout)))
}

// checkStock re-reads every reserved part and fails on the first one that
// cannot cover its quantity.
func (u *QuoteBuilderUseCase) checkStock(ctx context.Context, reservations []entities.StockReservation) error {
	for _, r := range reservations {
		p, err := u.parts.GetByID(ctx, r.PartID)
		if err != nil {
			return err
		}
		if p.ID == "" {
			return fmt.Errorf("%w: %s", ErrPartNotFound, r.PartID)
		}
		if p.Stock < r.Quantity {
			name := p.Name
			if name == "" {
				name = r.PartName
			}
			return &entities.InsufficientStockError{
				PartID:    p.ID,
				PartName:  name,
				Available: p.Stock,
				Requested: r.Quantity,
			}
		}
	}
	return nil
}

func (u *QuoteBuilderUseCase) load(ctx context.Context, draftID string) (entities.Draft, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return entities.Draft{}, ErrInvalidDraftID
	}
	d, err := u.drafts.Get(ctx, draftID)
	if err != nil {
		return entities.Draft{}, err
	}
	if d.ID == "" {
		return entities.Draft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *QuoteBuilderUseCase) mutate(ctx context.Context, draftID string, apply func(d *entities.Draft) error) (entities.Draft, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.Draft{}, err
	}
	if err := apply(&d); err != nil {
		return entities.Draft{}, err
	}
	return u.store(ctx, d)
}

func (u *QuoteBuilderUseCase) store(ctx context.Context, d entities.Draft) (entities.Draft, error) {
	d.UpdatedAt = u.now().UTC()
	if err := u.drafts.Save(ctx, d); err != nil {
		return entities.Draft{}, err
	}
	return d, nil
}

func (u *QuoteBuilderUseCase) notify(collection string) {
	if u.notifier != nil {
		u.notifier.Notify(collection)
	}
}
