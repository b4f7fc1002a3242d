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

const defaultSessionsTableName = "shared_sessions"

type sessionItem struct {
	SessionKey   string            `dynamodbav:"session_key"`
	Payload      letterPayloadItem `dynamodbav:"payload"`
	Tier         string            `dynamodbav:"tier"`
	ReplyEnabled bool              `dynamodbav:"reply_enabled"`
	Status       string            `dynamodbav:"status"`
	SealedAt     string            `dynamodbav:"sealed_at"`
	PaymentID    string            `dynamodbav:"payment_id"`
	OrderID      string            `dynamodbav:"order_id,omitempty"`
	Reply        string            `dynamodbav:"reply,omitempty"`
}

type letterPayloadItem struct {
	SenderName   string `dynamodbav:"sender_name"`
	PartnerName  string `dynamodbav:"partner_name"`
	Message      string `dynamodbav:"message"`
	SongURL      string `dynamodbav:"song_url,omitempty"`
	PhotoURL     string `dynamodbav:"photo_url,omitempty"`
	DeliveryDate string `dynamodbav:"delivery_date,omitempty"`
}

// SessionDynamoRepository persists sealed sessions in DynamoDB.
//
// Table requirements:
//   - PK: session_key (string)
//
// The commit methods are the only writers and span three tables in one
// TransactWriteItems call, so the session, its payment record and the side
// effect (order status flip, or founder-token consume) become visible
// together or not at all.

type SessionDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	orderRepo   *OrderDynamoRepository
	paymentRepo *PaymentRecordDynamoRepository
	tokenRepo   *FounderTokenDynamoRepository
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client, orderRepo *OrderDynamoRepository, paymentRepo *PaymentRecordDynamoRepository, tokenRepo *FounderTokenDynamoRepository) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		tokenRepo:   tokenRepo,
	}
}

func (r *SessionDynamoRepository) GetByKey(ctx context.Context, sessionKey string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_key": &types.AttributeValueMemberS{Value: sessionKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

// Exists is the collision probe used by the session key generator. It reads
// only the key attribute to keep the probe cheap.
func (r *SessionDynamoRepository) Exists(ctx context.Context, sessionKey string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_key": &types.AttributeValueMemberS{Value: sessionKey},
		},
		ProjectionExpression: aws.String("session_key"),
		ConsistentRead:       aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *SessionDynamoRepository) CommitSession(ctx context.Context, s entities.Session, p entities.PaymentRecord, orderID string) error {
	items, err := r.commitBase(s, p)
	if err != nil {
		return err
	}
	if orderID != "" {
		items = append(items, r.orderRepo.orderStatusUpdate(orderID))
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	return err
}

// CommitFounderSession seals a token-backed session and spends the token in
// the same transaction. If any element fails the token stays unconsumed.
func (r *SessionDynamoRepository) CommitFounderSession(ctx context.Context, s entities.Session, p entities.PaymentRecord, tokenID string) error {
	items, err := r.commitBase(s, p)
	if err != nil {
		return err
	}
	items = append(items, r.tokenRepo.tokenConsumeUpdate(tokenID))

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	return err
}

// commitBase builds the two elements every commit shares: the session put,
// keyed on the session key not existing, and the payment-record put keyed on
// the payment id not existing.
func (r *SessionDynamoRepository) commitBase(s entities.Session, p entities.PaymentRecord) ([]types.TransactWriteItem, error) {
	sessionAV, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return nil, err
	}

	paymentPut, err := r.paymentRepo.paymentRecordPut(p)
	if err != nil {
		return nil, err
	}

	return []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                sessionAV,
				ConditionExpression: aws.String("attribute_not_exists(#sk)"),
				ExpressionAttributeNames: map[string]string{
					"#sk": "session_key",
				},
			},
		},
		paymentPut,
	}, nil
}

func toSessionItem(s entities.Session) sessionItem {
	return sessionItem{
		SessionKey: s.SessionKey,
		Payload: letterPayloadItem{
			SenderName:   s.Payload.SenderName,
			PartnerName:  s.Payload.PartnerName,
			Message:      s.Payload.Message,
			SongURL:      s.Payload.SongURL,
			PhotoURL:     s.Payload.PhotoURL,
			DeliveryDate: s.Payload.DeliveryDate,
		},
		Tier:         string(s.Tier),
		ReplyEnabled: s.ReplyEnabled,
		Status:       string(s.Status),
		SealedAt:     s.SealedAt.UTC().Format(time.RFC3339Nano),
		PaymentID:    s.PaymentID,
		OrderID:      s.OrderID,
		Reply:        s.Reply,
	}
}

func fromSessionItem(it sessionItem) entities.Session {
	sealedAt, _ := time.Parse(time.RFC3339Nano, it.SealedAt)
	return entities.Session{
		SessionKey: it.SessionKey,
		Payload: entities.LetterPayload{
			SenderName:   it.Payload.SenderName,
			PartnerName:  it.Payload.PartnerName,
			Message:      it.Payload.Message,
			SongURL:      it.Payload.SongURL,
			PhotoURL:     it.Payload.PhotoURL,
			DeliveryDate: it.Payload.DeliveryDate,
		},
		Tier:         entities.Tier(it.Tier),
		ReplyEnabled: it.ReplyEnabled,
		Status:       entities.SessionStatus(it.Status),
		SealedAt:     sealedAt,
		PaymentID:    it.PaymentID,
		OrderID:      it.OrderID,
		Reply:        it.Reply,
	}
}
