package repository

import (
	"context"
	"sort"
	"strings"

	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type clientItem struct {
	ID        string `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome"`
	Endereco  string `dynamodbav:"endereco"`
	Cidade    string `dynamodbav:"cidade"`
	Carro     string `dynamodbav:"carro"`
	CpfCnpj   string `dynamodbav:"cpfcnpj"`
	Telefone1 string `dynamodbav:"telefone1"`
	Placa     string `dynamodbav:"placa"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ClientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tableName string) *ClientDynamoRepository {
	if tableName == "" {
		tableName = entities.CollectionClientes
	}
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

// List returns every client ordered by name.
func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	items, err := scanAll[clientItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	ok, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.ID = uuid.NewString()
	if err := putNew(ctx, r.ddb, r.tableName, toClientItem(c)); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:        c.ID,
		Nome:      c.Name,
		Endereco:  c.Address,
		Cidade:    c.City,
		Carro:     c.Vehicle,
		CpfCnpj:   c.TaxID,
		Telefone1: c.Phone,
		Placa:     c.Plate,
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:      it.ID,
		Name:    it.Nome,
		Address: it.Endereco,
		City:    it.Cidade,
		Vehicle: it.Carro,
		TaxID:   it.CpfCnpj,
		Phone:   it.Telefone1,
		Plate:   it.Placa,
	}
}
