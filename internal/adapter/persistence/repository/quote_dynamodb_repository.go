package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type lineItem struct {
	UID         string  `dynamodbav:"uid"`
	Nome        string  `dynamodbav:"nome"`
	PrecoCompra float64 `dynamodbav:"precoCompra"`
	PrecoFrete  float64 `dynamodbav:"precoFrete"`
	Quantidade  int     `dynamodbav:"quantidade"`
}

// quoteItem keeps the field names of the orcamento documents: the client is
// flattened into the record and lines are a map keyed peca1..pecaN.
type quoteItem struct {
	ID             string              `dynamodbav:"id"`
	Tipo           int                 `dynamodbav:"tipo"`
	Nome           string              `dynamodbav:"nome"`
	Endereco       string              `dynamodbav:"endereco"`
	Cidade         string              `dynamodbav:"cidade"`
	Carro          string              `dynamodbav:"carro"`
	CpfCnpj        string              `dynamodbav:"cpfcnpj"`
	Telefone1      string              `dynamodbav:"telefone1"`
	Placa          string              `dynamodbav:"placa"`
	UIDUser        string              `dynamodbav:"uidUser"`
	Pecas          map[string]lineItem `dynamodbav:"pecas"`
	DataOrcamento  string              `dynamodbav:"dataOrcamento"`
	ValorAvista    float64             `dynamodbav:"ValorAvista"`
	ValorParcelado float64             `dynamodbav:"ValorParcelado"`
	CriadoEm       string              `dynamodbav:"criadoEm,omitempty"`
}

// QuoteDynamoRepository persists quotes and orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Orders are written together with their stock decrements on the parts table
// in a single transaction.
type QuoteDynamoRepository struct {
	ddb        DynamoAPI
	tableName  string
	partsTable string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName, partsTable string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = entities.CollectionOrcamentos
	}
	if partsTable == "" {
		partsTable = entities.CollectionPecas
	}
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName, partsTable: partsTable}
}

// List returns every record, newest first. criadoEm orders records of the same
// day; records written without it fall back to the dataOrcamento day.
func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	items, err := scanAll[quoteItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := sortTime(out[i]), sortTime(out[j])
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var it quoteItem
	ok, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.ID = uuid.NewString()
	if err := putNew(ctx, r.ddb, r.tableName, toQuoteItem(q)); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// CreateOrder decrements estoque for every reservation and stores the order in
// one TransactWriteItems call. Each decrement is conditioned on the part having
// enough stock; if any condition fails nothing is written and
// interfaces.ErrStockConflict is returned.
func (r *QuoteDynamoRepository) CreateOrder(ctx context.Context, q entities.Quote, reservations []entities.StockReservation) (entities.Quote, error) {
	if len(reservations) > entities.MaxOrderParts {
		return entities.Quote{}, entities.ErrTooManyParts
	}

	q.ID = uuid.NewString()
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	writes := make([]types.TransactWriteItem, 0, len(reservations)+1)
	for _, res := range reservations {
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.partsTable),
				Key:                 idKey(res.PartID),
				UpdateExpression:    aws.String("SET #estoque = #estoque - :qty"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #estoque >= :qty"),
				ExpressionAttributeNames: map[string]string{
					"#id":      "id",
					"#estoque": "estoque",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":qty": &types.AttributeValueMemberN{Value: strconv.Itoa(res.Quantity)},
				},
			},
		})
	}
	writes = append(writes, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems:      writes,
		ClientRequestToken: aws.String(q.ID),
	})
	if err != nil {
		if isStockConflict(err, len(reservations)) {
			return entities.Quote{}, interfaces.ErrStockConflict
		}
		return entities.Quote{}, err
	}
	return q, nil
}

// Replace overwrites the stored record wholesale. A record that no longer
// exists yields a zero Quote.
func (r *QuoteDynamoRepository) Replace(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// isStockConflict reports whether a cancelled transaction failed on one of the
// first n items, the stock decrements.
func isStockConflict(err error, n int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for i, reason := range tce.CancellationReasons {
		if i < n && aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toQuoteItem(q entities.Quote) quoteItem {
	pecas := make(map[string]lineItem, len(q.Lines))
	for k, l := range q.Lines {
		pecas[k] = lineItem{
			UID:         l.PartID,
			Nome:        l.Name,
			PrecoCompra: l.PurchasePrice,
			PrecoFrete:  l.FreightPrice,
			Quantidade:  l.Quantity,
		}
	}
	return quoteItem{
		ID:             q.ID,
		Tipo:           int(q.Type),
		Nome:           q.Client.Name,
		Endereco:       q.Client.Address,
		Cidade:         q.Client.City,
		Carro:          q.Client.Vehicle,
		CpfCnpj:        q.Client.TaxID,
		Telefone1:      q.Client.Phone,
		Placa:          q.Client.Plate,
		UIDUser:        q.UIDUser,
		Pecas:          pecas,
		DataOrcamento:  q.Date,
		ValorAvista:    q.CashTotal,
		ValorParcelado: q.InstallmentTotal,
		CriadoEm:       formatCreatedAt(q.CreatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	lines := make(map[string]entities.PartLine, len(it.Pecas))
	for k, l := range it.Pecas {
		lines[k] = entities.PartLine{
			PartID:        l.UID,
			Name:          l.Nome,
			PurchasePrice: l.PrecoCompra,
			FreightPrice:  l.PrecoFrete,
			Quantity:      l.Quantidade,
		}
	}
	return entities.Quote{
		ID:   it.ID,
		Type: entities.QuoteType(it.Tipo),
		Client: entities.ClientSnapshot{
			Name:    it.Nome,
			Address: it.Endereco,
			City:    it.Cidade,
			Vehicle: it.Carro,
			TaxID:   it.CpfCnpj,
			Phone:   it.Telefone1,
			Plate:   it.Placa,
		},
		UIDUser:          it.UIDUser,
		Lines:            lines,
		CashTotal:        it.ValorAvista,
		InstallmentTotal: it.ValorParcelado,
		Date:             it.DataOrcamento,
		CreatedAt:        parseCreatedAt(it.CriadoEm),
	}
}

// parseQuoteDate reads dataOrcamento; unparsable dates sort last.
func parseQuoteDate(s string) time.Time {
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func sortTime(q entities.Quote) time.Time {
	if !q.CreatedAt.IsZero() {
		return q.CreatedAt
	}
	return parseQuoteDate(q.Date)
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseCreatedAt(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
