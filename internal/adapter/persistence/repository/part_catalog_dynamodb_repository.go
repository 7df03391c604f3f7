package repository

import (
	"context"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPartsTableName = "parts"

type partItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"name"`
	Price  int64  `dynamodbav:"price"`
	Stock  int    `dynamodbav:"stock"`
	Active bool   `dynamodbav:"active"`
}

// PartCatalogDynamoRepository reads the parts catalog. The stock decrement is
// not here: it rides the order-creation transaction so the part line and the
// decrement commit as one unit (see ServiceOrderDynamoRepository).

type PartCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartCatalog = (*PartCatalogDynamoRepository)(nil)

func NewPartCatalogDynamoRepository(ddb *dynamodb.Client) *PartCatalogDynamoRepository {
	return &PartCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *PartCatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Part{}, err
	}
	if len(out.Item) == 0 {
		return entities.Part{}, nil
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Part{}, err
	}
	return entities.Part{
		ID:     it.ID,
		Name:   it.Name,
		Price:  entities.Money(it.Price),
		Stock:  it.Stock,
		Active: it.Active,
	}, nil
}
