package repository

import (
	"context"
	"sort"
	"time"

	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotePaymentsTableName = "quote_payments"
	quotePaymentsQuoteIDIndex     = "quote_id-index"
)

type quotePaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	QuoteID            string                 `dynamodbav:"quote_id"`
	Method             string                 `dynamodbav:"method"`
	Installments       int                    `dynamodbav:"installments"`
	Amount             float64                `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// QuotePaymentDynamoRepository persists QuotePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
type QuotePaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuotePaymentRepository = (*QuotePaymentDynamoRepository)(nil)

func NewQuotePaymentDynamoRepository(ddb DynamoAPI, tableName string) *QuotePaymentDynamoRepository {
	if tableName == "" {
		tableName = defaultQuotePaymentsTableName
	}
	return &QuotePaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuotePaymentDynamoRepository) Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toQuotePaymentItem(p)); err != nil {
		return entities.QuotePayment{}, err
	}
	return p, nil
}

// ListByQuoteID returns the payments of one order, oldest first.
func (r *QuotePaymentDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotePaymentsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})

	items := make([]entities.QuotePayment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quotePaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuotePaymentItem(it))
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return items, nil
}

func toQuotePaymentItem(p entities.QuotePayment) quotePaymentItem {
	return quotePaymentItem{
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		Method:             string(p.Method),
		Installments:       p.Installments,
		Amount:             p.Amount,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromQuotePaymentItem(it quotePaymentItem) entities.QuotePayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.QuotePayment{
		ID:                 it.ID,
		QuoteID:            it.QuoteID,
		Method:             entities.PaymentMethod(it.Method),
		Installments:       it.Installments,
		Amount:             it.Amount,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
