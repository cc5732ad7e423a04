package usecase

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/mock_catalog_usecase.go -package=mocks

import (
	"context"
	"errors"
	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase/interfaces"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidClient = errors.New("invalid client")
	ErrInvalidPart   = errors.New("invalid part")
)

// ICatalogUseCase exposes the clients and parts the builder picks from.
type ICatalogUseCase interface {
	ListClients(ctx context.Context) ([]entities.Client, error)
	GetClient(ctx context.Context, id string) (entities.Client, error)
	CreateClient(ctx context.Context, c entities.Client) (entities.Client, error)
	SubscribeClients() (<-chan []entities.Client, func())

	ListParts(ctx context.Context) ([]entities.Part, error)
	GetPart(ctx context.Context, id string) (entities.Part, error)
	CreatePart(ctx context.Context, p entities.Part) (entities.Part, error)
	SubscribeParts() (<-chan []entities.Part, func())
}

type CatalogUseCase struct {
	clients     interfaces.IClientRepository
	parts       interfaces.IPartRepository
	clientsFeed interfaces.ISnapshotSource[entities.Client]
	partsFeed   interfaces.ISnapshotSource[entities.Part]
	notifier    interfaces.ICollectionNotifier
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(
	clients interfaces.IClientRepository,
	parts interfaces.IPartRepository,
	clientsFeed interfaces.ISnapshotSource[entities.Client],
	partsFeed interfaces.ISnapshotSource[entities.Part],
	notifier interfaces.ICollectionNotifier,
) *CatalogUseCase {
	return &CatalogUseCase{
		clients:     clients,
		parts:       parts,
		clientsFeed: clientsFeed,
		partsFeed:   partsFeed,
		notifier:    notifier,
	}
}

func (u *CatalogUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	return u.clients.List(ctx)
}

func (u *CatalogUseCase) GetClient(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *CatalogUseCase) CreateClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClient
	}
	created, err := u.clients.Create(ctx, c)
	if err != nil {
		log.Error().Err(err).Msg("[catalog][usecase] client create failed")
		return entities.Client{}, err
	}
	u.notify(entities.CollectionClientes)
	log.Info().Str("client_id", created.ID).Msg("[catalog][usecase] client created")
	return created, nil
}

// SubscribeClients streams the client list. The caller must call the returned
// cancel function when it stops reading.
func (u *CatalogUseCase) SubscribeClients() (<-chan []entities.Client, func()) {
	return u.clientsFeed.Subscribe()
}

func (u *CatalogUseCase) ListParts(ctx context.Context) ([]entities.Part, error) {
	return u.parts.List(ctx)
}

func (u *CatalogUseCase) GetPart(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}
	p, err := u.parts.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) CreatePart(ctx context.Context, p entities.Part) (entities.Part, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.PurchasePrice < 0 || p.FreightPrice < 0 || p.Stock < 0 {
		return entities.Part{}, ErrInvalidPart
	}
	created, err := u.parts.Create(ctx, p)
	if err != nil {
		log.Error().Err(err).Msg("[catalog][usecase] part create failed")
		return entities.Part{}, err
	}
	u.notify(entities.CollectionPecas)
	log.Info().Str("part_id", created.ID).Int("estoque", created.Stock).Msg("[catalog][usecase] part created")
	return created, nil
}

// SubscribeParts streams the part list, stock included.
func (u *CatalogUseCase) SubscribeParts() (<-chan []entities.Part, func()) {
	return u.partsFeed.Subscribe()
}

func (u *CatalogUseCase) notify(collection string) {
	if u.notifier != nil {
		u.notifier.Notify(collection)
	}
}
