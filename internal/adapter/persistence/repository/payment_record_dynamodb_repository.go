package repository

import (
	"context"
	"time"

	"sealed_letters/internal/domain/entities"
	"sealed_letters/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

type paymentRecordItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id,omitempty"`
	AmountPaise int64  `dynamodbav:"amount_paise"`
	Tier        string `dynamodbav:"tier"`
	SessionKey  string `dynamodbav:"session_key"`
	VerifiedAt  string `dynamodbav:"verified_at"`
}

// PaymentRecordDynamoRepository reads payment records in DynamoDB.
//
// Table requirements:
//   - PK: id (string, gateway payment id)
//
// There is intentionally no Create here: payment records are only born inside
// the session commit transaction, conditioned on the id not existing.

type PaymentRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb *dynamodb.Client) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

// paymentRecordPut builds the transact element inserting the payment record.
// The attribute_not_exists condition is the last line of defense against two
// sessions ever being committed for one payment id.
func (r *PaymentRecordDynamoRepository) paymentRecordPut(p entities.PaymentRecord) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(p))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}, nil
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:          p.ID,
		OrderID:     p.OrderID,
		AmountPaise: p.AmountPaise,
		Tier:        string(p.Tier),
		SessionKey:  p.SessionKey,
		VerifiedAt:  p.VerifiedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	verifiedAt, _ := time.Parse(time.RFC3339Nano, it.VerifiedAt)
	return entities.PaymentRecord{
		ID:          it.ID,
		OrderID:     it.OrderID,
		AmountPaise: it.AmountPaise,
		Tier:        entities.Tier(it.Tier),
		SessionKey:  it.SessionKey,
		VerifiedAt:  verifiedAt,
	}
}
