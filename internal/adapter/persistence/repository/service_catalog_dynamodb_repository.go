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

const defaultServicesTableName = "services"

type catalogServiceItem struct {
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name"`
	Price            int64  `dynamodbav:"price"`
	EstimatedMinutes int    `dynamodbav:"estimated_minutes"`
	Active           bool   `dynamodbav:"active"`
}

type ServiceCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceCatalog = (*ServiceCatalogDynamoRepository)(nil)

func NewServiceCatalogDynamoRepository(ddb *dynamodb.Client) *ServiceCatalogDynamoRepository {
	return &ServiceCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceCatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogService, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.CatalogService{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogService{}, nil
	}

	var it catalogServiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogService{}, err
	}
	return entities.CatalogService{
		ID:               it.ID,
		Name:             it.Name,
		Price:            entities.Money(it.Price),
		EstimatedMinutes: it.EstimatedMinutes,
		Active:           it.Active,
	}, nil
}
