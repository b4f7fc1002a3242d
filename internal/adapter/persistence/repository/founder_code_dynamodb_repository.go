package repository

import (
	"context"
	"errors"
	"time"

	"sealed_letters/internal/domain/entities"
	"sealed_letters/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFounderCodesTableName = "founder_codes"

type founderCodeItem struct {
	Code       string `dynamodbav:"code"`
	MaxUses    int    `dynamodbav:"max_uses"`
	Used       int    `dynamodbav:"used"`
	Active     bool   `dynamodbav:"active"`
	Tier       string `dynamodbav:"tier"`
	ExpiresAt  string `dynamodbav:"expires_at,omitempty"`
	RedeemedAt string `dynamodbav:"redeemed_at,omitempty"`
}

// FounderCodeDynamoRepository persists founder codes in DynamoDB.
//
// Table requirements:
//   - PK: code (string)
//
// ConsumeUse is the only mutation and it is a compare-and-swap: the update
// carries the used count the caller observed, so a concurrent redeemer that
// got there first makes the condition fail instead of being overwritten.

type FounderCodeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFounderCodeRepository = (*FounderCodeDynamoRepository)(nil)

func NewFounderCodeDynamoRepository(ddb *dynamodb.Client) *FounderCodeDynamoRepository {
	return &FounderCodeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FOUNDER_CODES_TABLE", defaultFounderCodesTableName),
	}
}

func (r *FounderCodeDynamoRepository) GetByCode(ctx context.Context, code string) (entities.FounderCode, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FounderCode{}, err
	}
	if len(out.Item) == 0 {
		return entities.FounderCode{}, nil
	}

	var it founderCodeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FounderCode{}, err
	}
	return fromFounderCodeItem(it), nil
}

func (r *FounderCodeDynamoRepository) ConsumeUse(ctx context.Context, observed entities.FounderCode, redeemedAt time.Time) (entities.FounderCode, error) {
	next := observed.Used + 1

	updateExpr := "SET #used = :next, #redeemed_at = :redeemed_at"
	values := map[string]types.AttributeValue{
		":next":        &types.AttributeValueMemberN{Value: intToString(next)},
		":observed":    &types.AttributeValueMemberN{Value: intToString(observed.Used)},
		":redeemed_at": &types.AttributeValueMemberS{Value: redeemedAt.UTC().Format(time.RFC3339Nano)},
		":active":      &types.AttributeValueMemberBOOL{Value: true},
	}
	names := map[string]string{
		"#code":        "code",
		"#used":        "used",
		"#active":      "active",
		"#redeemed_at": "redeemed_at",
	}
	if next >= observed.MaxUses {
		updateExpr += ", #active = :exhausted"
		values[":exhausted"] = &types.AttributeValueMemberBOOL{Value: false}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: observed.Code},
		},
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String("attribute_exists(#code) AND #used = :observed AND #active = :active"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Lost the race (or the code changed under us). Caller reloads.
			return entities.FounderCode{}, nil
		}
		return entities.FounderCode{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FounderCode{}, nil
	}

	var it founderCodeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FounderCode{}, err
	}
	return fromFounderCodeItem(it), nil
}

func fromFounderCodeItem(it founderCodeItem) entities.FounderCode {
	c := entities.FounderCode{
		Code:    it.Code,
		MaxUses: it.MaxUses,
		Used:    it.Used,
		Active:  it.Active,
		Tier:    entities.Tier(it.Tier),
	}
	if it.ExpiresAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ExpiresAt); err == nil {
			c.ExpiresAt = &t
		}
	}
	if it.RedeemedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.RedeemedAt); err == nil {
			c.RedeemedAt = &t
		}
	}
	return c
}
