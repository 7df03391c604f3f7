package repository

import (
	"context"
	"sort"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "os_payments"

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	OrderID           string `dynamodbav:"order_id"`
	Amount            int64  `dynamodbav:"amount"`
	Status            string `dynamodbav:"status"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	Date              string `dynamodbav:"date"`
}

// PaymentDynamoRepository persists approved-budget charges.
//
// Table requirements:
//   - PK: id
//   - GSI order_id-index: order_id

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OS_PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(paymentItem{
		ID:                p.ID,
		OrderID:           p.OrderID,
		Amount:            int64(p.Amount),
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		Date:              p.Date.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	payments := []entities.Payment{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(orderIDIndex),
			KeyConditionExpression: aws.String("#order_id = :order_id"),
			ExpressionAttributeNames: map[string]string{
				"#order_id": "order_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":order_id": &types.AttributeValueMemberS{Value: orderID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			date, _ := time.Parse(time.RFC3339Nano, it.Date)
			payments = append(payments, entities.Payment{
				ID:                it.ID,
				OrderID:           it.OrderID,
				Amount:            entities.Money(it.Amount),
				Status:            entities.PaymentStatus(it.Status),
				ProviderPaymentID: it.ProviderPaymentID,
				Date:              date,
			})
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].Date.Before(payments[j].Date) })
	return payments, nil
}
