package interfaces

import (
	"context"
	"mecanica_rff/internal/domain/entities"
)

// IPartRepository abstracts the "peca" catalog. GetByID is a consistent read
// and is what the order stock check relies on.
//
//go:generate mockgen -source=part_repository_interface.go -destination=mocks/mock_part_repository.go -package=mock_interfaces
type IPartRepository interface {
	List(ctx context.Context) ([]entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
}
