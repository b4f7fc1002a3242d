package repository

import (
	"context"
	"strconv"
	"time"

	"sealed_letters/internal/domain/entities"
	"sealed_letters/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID          string `dynamodbav:"id"`
	AmountPaise int64  `dynamodbav:"amount_paise"`
	Currency    string `dynamodbav:"currency"`
	Tier        string `dynamodbav:"tier"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists the order ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string, gateway order id)
//
// The status attribute is written here exactly once ("created"); the flip to
// "paid" belongs to the session commit transaction and nothing else.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// orderStatusUpdate builds the transact element that flips an order from
// created to paid. Used only by SessionDynamoRepository.CommitSession.
func (r *OrderDynamoRepository) orderStatusUpdate(orderID string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: orderID},
			},
			UpdateExpression:    aws.String("SET #status = :paid"),
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :created"),
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":paid":    &types.AttributeValueMemberS{Value: string(entities.OrderStatusPaid)},
				":created": &types.AttributeValueMemberS{Value: string(entities.OrderStatusCreated)},
			},
		},
	}
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:          o.ID,
		AmountPaise: o.AmountPaise,
		Currency:    o.Currency,
		Tier:        string(o.Tier),
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Order{
		ID:          it.ID,
		AmountPaise: it.AmountPaise,
		Currency:    it.Currency,
		Tier:        entities.Tier(it.Tier),
		Status:      entities.OrderStatus(it.Status),
		CreatedAt:   createdAt,
	}
}

func intToString(v int) string {
	return strconv.Itoa(v)
}
