package repository

import (
	"context"
	"sort"
	"strings"

	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type partItem struct {
	ID          string  `dynamodbav:"id"`
	Nome        string  `dynamodbav:"nome"`
	PrecoCompra float64 `dynamodbav:"precoCompra"`
	PrecoFrete  float64 `dynamodbav:"precoFrete"`
	Estoque     int     `dynamodbav:"estoque"`
}

// PartDynamoRepository persists Part entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// estoque is only decremented through QuoteDynamoRepository.CreateOrder.
type PartDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb DynamoAPI, tableName string) *PartDynamoRepository {
	if tableName == "" {
		tableName = entities.CollectionPecas
	}
	return &PartDynamoRepository{ddb: ddb, tableName: tableName}
}

// List returns every part ordered by name.
func (r *PartDynamoRepository) List(ctx context.Context) ([]entities.Part, error) {
	items, err := scanAll[partItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Part, 0, len(items))
	for _, it := range items {
		out = append(out, fromPartItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// GetByID is a consistent read, so stock checks see the latest estoque.
func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	var it partItem
	ok, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	p.ID = uuid.NewString()
	if err := putNew(ctx, r.ddb, r.tableName, toPartItem(p)); err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func toPartItem(p entities.Part) partItem {
	return partItem{
		ID:          p.ID,
		Nome:        p.Name,
		PrecoCompra: p.PurchasePrice,
		PrecoFrete:  p.FreightPrice,
		Estoque:     p.Stock,
	}
}

func fromPartItem(it partItem) entities.Part {
	return entities.Part{
		ID:            it.ID,
		Name:          it.Nome,
		PurchasePrice: it.PrecoCompra,
		FreightPrice:  it.PrecoFrete,
		Stock:         it.Estoque,
	}
}
