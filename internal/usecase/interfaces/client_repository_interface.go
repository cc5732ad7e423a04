package interfaces

import (
	"context"
	"mecanica_rff/internal/domain/entities"
)

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/mock_client_repository.go -package=mock_interfaces
type IClientRepository interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
}
