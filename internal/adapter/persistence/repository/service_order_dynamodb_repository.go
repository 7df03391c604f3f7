package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName       = "service_orders"
	defaultServiceOrderItemsTableName   = "service_order_items"
	defaultServiceOrderPartsTableName   = "service_order_parts"
	defaultServiceOrderHistoryTableName = "service_order_history"

	orderNumberIndex = "order_number-index"
	customerIDIndex  = "customer_id-index"
	vehicleIDIndex   = "vehicle_id-index"
	createdYearIndex = "created_year-index"
	orderIDIndex     = "order_id-index"
)

type serviceOrderItem struct {
	ID                    string  `dynamodbav:"id"`
	OrderNumber           string  `dynamodbav:"order_number"`
	CustomerID            string  `dynamodbav:"customer_id"`
	VehicleID             string  `dynamodbav:"vehicle_id"`
	MechanicID            string  `dynamodbav:"mechanic_id,omitempty"`
	Description           string  `dynamodbav:"description,omitempty"`
	Status                string  `dynamodbav:"status"`
	TotalServicePrice     int64   `dynamodbav:"total_service_price"`
	TotalPartsPrice       int64   `dynamodbav:"total_parts_price"`
	TotalPrice            int64   `dynamodbav:"total_price"`
	EstimatedHours        float64 `dynamodbav:"estimated_hours"`
	EstimatedCompletionAt string  `dynamodbav:"estimated_completion_at"`
	StartedAt             string  `dynamodbav:"started_at,omitempty"`
	CompletedAt           string  `dynamodbav:"completed_at,omitempty"`
	DeliveredAt           string  `dynamodbav:"delivered_at,omitempty"`
	ApprovedAt            string  `dynamodbav:"approved_at,omitempty"`
	CreatedAt             string  `dynamodbav:"created_at"`
	UpdatedAt             string  `dynamodbav:"updated_at"`
	CreatedYear           int     `dynamodbav:"created_year"`
}

type orderServiceLineItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	ServiceID string `dynamodbav:"service_id"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice int64  `dynamodbav:"unit_price"`
	LineTotal int64  `dynamodbav:"line_total"`
}

type orderPartLineItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	PartID    string `dynamodbav:"part_id"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice int64  `dynamodbav:"unit_price"`
	LineTotal int64  `dynamodbav:"line_total"`
}

type historyItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	Status    string `dynamodbav:"status"`
	Notes     string `dynamodbav:"notes,omitempty"`
	Actor     string `dynamodbav:"actor,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ServiceOrderDynamoRepository persists the OS aggregate in DynamoDB.
//
// Table requirements:
//   - service_orders: PK id; GSIs order_number-index, customer_id-index,
//     vehicle_id-index, created_year-index
//   - service_order_items / service_order_parts / service_order_history:
//     PK id; GSI order_id-index
//
// The creation flow crosses into the parts table: the whole order plus every
// stock decrement goes through one TransactWriteItems call.

type ServiceOrderDynamoRepository struct {
	ddb          *dynamodb.Client
	ordersTable  string
	itemsTable   string
	partsLines   string
	historyTable string
	partsCatalog string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:          ddb,
		ordersTable:  getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
		itemsTable:   getenvDefault("SERVICE_ORDER_ITEMS_TABLE", defaultServiceOrderItemsTableName),
		partsLines:   getenvDefault("SERVICE_ORDER_PARTS_TABLE", defaultServiceOrderPartsTableName),
		historyTable: getenvDefault("SERVICE_ORDER_HISTORY_TABLE", defaultServiceOrderHistoryTableName),
		partsCatalog: getenvDefault("PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *ServiceOrderDynamoRepository) CreateWithLines(
	ctx context.Context,
	o entities.ServiceOrder,
	items []entities.ServiceOrderItem,
	parts []entities.ServiceOrderPart,
) error {
	orderAV, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return err
	}

	tx := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.ordersTable),
			Item:                orderAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}

	for _, item := range items {
		av, err := attributevalue.MarshalMap(orderServiceLineItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			UnitPrice: int64(item.UnitPrice),
			LineTotal: int64(item.LineTotal),
		})
		if err != nil {
			return err
		}
		tx = append(tx, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.itemsTable), Item: av},
		})
	}

	for _, part := range parts {
		av, err := attributevalue.MarshalMap(orderPartLineItem{
			ID:        part.ID,
			OrderID:   part.OrderID,
			PartID:    part.PartID,
			Quantity:  part.Quantity,
			UnitPrice: int64(part.UnitPrice),
			LineTotal: int64(part.LineTotal),
		})
		if err != nil {
			return err
		}
		// The part line and its stock decrement commit together, and the
		// decrement is guarded so the stock can never go negative.
		tx = append(tx,
			types.TransactWriteItem{
				Put: &types.Put{TableName: aws.String(r.partsLines), Item: av},
			},
			types.TransactWriteItem{
				Update: &types.Update{
					TableName: aws.String(r.partsCatalog),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: part.PartID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #active = :true AND #stock >= :qty"),
					UpdateExpression:    aws.String("SET #stock = #stock - :qty"),
					ExpressionAttributeNames: map[string]string{
						"#id":     "id",
						"#active": "active",
						"#stock":  "stock",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":true": &types.AttributeValueMemberBOOL{Value: true},
						":qty":  &types.AttributeValueMemberN{Value: strconv.Itoa(part.Quantity)},
					},
				},
			},
		)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return fmt.Errorf("create service order %s: %w", o.ID, interfaces.ErrConditionalCheckFailed)
				}
			}
		}
		return err
	}
	return nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.ordersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.ordersTable),
		IndexName:              aws.String(orderNumberIndex),
		KeyConditionExpression: aws.String("#order_number = :order_number"),
		ExpressionAttributeNames: map[string]string{
			"#order_number": "order_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_number": &types.AttributeValueMemberS{Value: orderNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) ListAll(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders := []entities.ServiceOrder{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.ordersTable),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) })
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceOrder, error) {
	return r.queryOrdersByIndex(ctx, customerIDIndex, "customer_id", customerID)
}

func (r *ServiceOrderDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.ServiceOrder, error) {
	return r.queryOrdersByIndex(ctx, vehicleIDIndex, "vehicle_id", vehicleID)
}

func (r *ServiceOrderDynamoRepository) queryOrdersByIndex(ctx context.Context, index, attr, value string) ([]entities.ServiceOrder, error) {
	orders := []entities.ServiceOrder{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.ordersTable),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#attr = :value"),
			ExpressionAttributeNames: map[string]string{
				"#attr": attr,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":value": &types.AttributeValueMemberS{Value: value},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) })
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) UpdateStatus(
	ctx context.Context,
	id string,
	from, to entities.OrderStatus,
	stamps interfaces.StatusStamps,
) (entities.ServiceOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :to, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}

	addStamp := func(attr string, t *time.Time) {
		if t == nil {
			return
		}
		placeholder := ":" + attr
		expr += ", #" + attr + " = " + placeholder
		names["#"+attr] = attr
		values[placeholder] = &types.AttributeValueMemberS{Value: t.UTC().Format(time.RFC3339Nano)}
	}
	addStamp("started_at", stamps.StartedAt)
	addStamp("completed_at", stamps.CompletedAt)
	addStamp("delivered_at", stamps.DeliveredAt)
	addStamp("approved_at", stamps.ApprovedAt)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.ordersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		// Compare-and-set on the current status: a concurrent transition
		// loses the condition instead of overwriting.
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, fmt.Errorf("update status of %s: %w", id, interfaces.ErrConditionalCheckFailed)
		}
		return entities.ServiceOrder{}, err
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) CountCreatedInYear(ctx context.Context, year int) (int, error) {
	total := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.ordersTable),
			IndexName:              aws.String(createdYearIndex),
			KeyConditionExpression: aws.String("#created_year = :year"),
			ExpressionAttributeNames: map[string]string{
				"#created_year": "created_year",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":year": &types.AttributeValueMemberN{Value: strconv.Itoa(year)},
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return total, nil
}

func (r *ServiceOrderDynamoRepository) ListItems(ctx context.Context, orderID string) ([]entities.ServiceOrderItem, error) {
	items := []entities.ServiceOrderItem{}
	err := r.queryLines(ctx, r.itemsTable, orderID, func(raw map[string]types.AttributeValue) error {
		var it orderServiceLineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		items = append(items, entities.ServiceOrderItem{
			ID:        it.ID,
			OrderID:   it.OrderID,
			ServiceID: it.ServiceID,
			Quantity:  it.Quantity,
			UnitPrice: entities.Money(it.UnitPrice),
			LineTotal: entities.Money(it.LineTotal),
		})
		return nil
	})
	return items, err
}

func (r *ServiceOrderDynamoRepository) ListParts(ctx context.Context, orderID string) ([]entities.ServiceOrderPart, error) {
	parts := []entities.ServiceOrderPart{}
	err := r.queryLines(ctx, r.partsLines, orderID, func(raw map[string]types.AttributeValue) error {
		var it orderPartLineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		parts = append(parts, entities.ServiceOrderPart{
			ID:        it.ID,
			OrderID:   it.OrderID,
			PartID:    it.PartID,
			Quantity:  it.Quantity,
			UnitPrice: entities.Money(it.UnitPrice),
			LineTotal: entities.Money(it.LineTotal),
		})
		return nil
	})
	return parts, err
}

func (r *ServiceOrderDynamoRepository) queryLines(ctx context.Context, table, orderID string, collect func(map[string]types.AttributeValue) error) error {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(table),
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
			return err
		}
		for _, raw := range out.Items {
			if err := collect(raw); err != nil {
				return err
			}
		}
		if out.LastEvaluatedKey == nil {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ServiceOrderDynamoRepository) AppendHistory(ctx context.Context, e entities.StatusHistoryEntry) error {
	av, err := attributevalue.MarshalMap(historyItem{
		ID:        e.ID,
		OrderID:   e.OrderID,
		Status:    string(e.Status),
		Notes:     e.Notes,
		Actor:     e.Actor,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.historyTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *ServiceOrderDynamoRepository) ListHistory(ctx context.Context, orderID string) ([]entities.StatusHistoryEntry, error) {
	entries := []entities.StatusHistoryEntry{}
	err := r.queryLines(ctx, r.historyTable, orderID, func(raw map[string]types.AttributeValue) error {
		var it historyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		entries = append(entries, entities.StatusHistoryEntry{
			ID:        it.ID,
			OrderID:   it.OrderID,
			Status:    entities.OrderStatus(it.Status),
			Notes:     it.Notes,
			Actor:     it.Actor,
			CreatedAt: createdAt,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.Before(entries[j].CreatedAt) })
	return entries, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:                    o.ID,
		OrderNumber:           o.OrderNumber,
		CustomerID:            o.CustomerID,
		VehicleID:             o.VehicleID,
		Description:           o.Description,
		Status:                string(o.Status),
		TotalServicePrice:     int64(o.TotalServicePrice),
		TotalPartsPrice:       int64(o.TotalPartsPrice),
		TotalPrice:            int64(o.TotalPrice),
		EstimatedHours:        o.EstimatedHours,
		EstimatedCompletionAt: o.EstimatedCompletionAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:             o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             o.UpdatedAt.UTC().Format(time.RFC3339Nano),
		CreatedYear:           o.CreatedAt.UTC().Year(),
	}
	if o.MechanicID != nil {
		it.MechanicID = *o.MechanicID
	}
	it.StartedAt = formatTimePtr(o.StartedAt)
	it.CompletedAt = formatTimePtr(o.CompletedAt)
	it.DeliveredAt = formatTimePtr(o.DeliveredAt)
	it.ApprovedAt = formatTimePtr(o.ApprovedAt)
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	estimatedCompletionAt, _ := time.Parse(time.RFC3339Nano, it.EstimatedCompletionAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	o := entities.ServiceOrder{
		ID:                    it.ID,
		OrderNumber:           it.OrderNumber,
		CustomerID:            it.CustomerID,
		VehicleID:             it.VehicleID,
		Description:           it.Description,
		Status:                entities.OrderStatus(it.Status),
		TotalServicePrice:     entities.Money(it.TotalServicePrice),
		TotalPartsPrice:       entities.Money(it.TotalPartsPrice),
		TotalPrice:            entities.Money(it.TotalPrice),
		EstimatedHours:        it.EstimatedHours,
		EstimatedCompletionAt: estimatedCompletionAt,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
	if it.MechanicID != "" {
		mechanicID := it.MechanicID
		o.MechanicID = &mechanicID
	}
	o.StartedAt = parseTimePtr(it.StartedAt)
	o.CompletedAt = parseTimePtr(it.CompletedAt)
	o.DeliveredAt = parseTimePtr(it.DeliveredAt)
	o.ApprovedAt = parseTimePtr(it.ApprovedAt)
	return o
}
