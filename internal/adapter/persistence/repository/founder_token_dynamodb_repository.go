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

const defaultFounderTokensTableName = "founder_tokens"

type founderTokenItem struct {
	Token     string `dynamodbav:"token"`
	Tier      string `dynamodbav:"tier"`
	CreatedAt string `dynamodbav:"created_at"`
	Consumed  bool   `dynamodbav:"consumed"`
}

// FounderTokenDynamoRepository persists single-use exchange tokens in DynamoDB.
//
// Table requirements:
//   - PK: token (string, uuid)

type FounderTokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFounderTokenRepository = (*FounderTokenDynamoRepository)(nil)

func NewFounderTokenDynamoRepository(ddb *dynamodb.Client) *FounderTokenDynamoRepository {
	return &FounderTokenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FOUNDER_TOKENS_TABLE", defaultFounderTokensTableName),
	}
}

func (r *FounderTokenDynamoRepository) Create(ctx context.Context, t entities.FounderToken) (entities.FounderToken, error) {
	av, err := attributevalue.MarshalMap(toFounderTokenItem(t))
	if err != nil {
		return entities.FounderToken{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	})
	if err != nil {
		return entities.FounderToken{}, err
	}
	return t, nil
}

// GetByToken reads the token without touching it. Absent tokens come back
// zero-valued with a nil error; consuming is the transaction's job.
func (r *FounderTokenDynamoRepository) GetByToken(ctx context.Context, token string) (entities.FounderToken, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
	})
	if err != nil {
		return entities.FounderToken{}, err
	}
	if len(out.Item) == 0 {
		return entities.FounderToken{}, nil
	}

	var it founderTokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FounderToken{}, err
	}
	return fromFounderTokenItem(it), nil
}

// tokenConsumeUpdate builds the transact element that flips the token to
// consumed, conditioned on it still being unspent. Bundled into the session
// commit so the flip and the session land or fail together.
func (r *FounderTokenDynamoRepository) tokenConsumeUpdate(token string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"token": &types.AttributeValueMemberS{Value: token},
			},
			UpdateExpression:    aws.String("SET #consumed = :true"),
			ConditionExpression: aws.String("attribute_exists(#token) AND #consumed = :false"),
			ExpressionAttributeNames: map[string]string{
				"#token":    "token",
				"#consumed": "consumed",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":true":  &types.AttributeValueMemberBOOL{Value: true},
				":false": &types.AttributeValueMemberBOOL{Value: false},
			},
		},
	}
}

func toFounderTokenItem(t entities.FounderToken) founderTokenItem {
	return founderTokenItem{
		Token:     t.Token,
		Tier:      string(t.Tier),
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
		Consumed:  t.Consumed,
	}
}

func fromFounderTokenItem(it founderTokenItem) entities.FounderToken {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.FounderToken{
		Token:     it.Token,
		Tier:      entities.Tier(it.Tier),
		CreatedAt: createdAt,
		Consumed:  it.Consumed,
	}
}
