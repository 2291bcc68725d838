package repository

import (
	"context"
	"errors"
	"time"

	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsReferenceIndex   = "payment_reference-index"
)

type paymentItem struct {
	ID               string                 `dynamodbav:"id"`
	UserID           string                 `dynamodbav:"user_id"`
	Amount           int64                  `dynamodbav:"amount"`
	Currency         string                 `dynamodbav:"currency"`
	Method           string                 `dynamodbav:"payment_method"`
	Reference        string                 `dynamodbav:"payment_reference"`
	Status           string                 `dynamodbav:"status"`
	ProjectID        string                 `dynamodbav:"project_id,omitempty"`
	SubscriptionID   string                 `dynamodbav:"subscription_id,omitempty"`
	ServiceRequestID string                 `dynamodbav:"service_request_id,omitempty"`
	Metadata         map[string]interface{} `dynamodbav:"metadata,omitempty"`
	CreatedAt        string                 `dynamodbav:"created_at"`
	UpdatedAt        string                 `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_reference-index (PK: payment_reference)
//
// References are unique with overwhelming probability (timestamp + random
// suffix); the create condition on id plus that property stand in for a
// uniqueness constraint the GSI cannot enforce.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
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

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByReference(ctx context.Context, reference string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsReferenceIndex),
		KeyConditionExpression: aws.String("payment_reference = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: reference},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// TransitionStatus moves the payment out of pending in a single conditional
// update. When the condition fails the payment is already terminal: the
// current row is returned with transitioned=false and nothing is written.
// That affected-row semantics is the idempotency boundary for at-least-once
// webhook delivery.
func (r *PaymentDynamoRepository) TransitionStatus(ctx context.Context, id string, to entities.PaymentStatus, metadata map[string]interface{}) (entities.Payment, bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :to, #updated_at = :now"
	values := map[string]types.AttributeValue{
		":to":      &types.AttributeValueMemberS{Value: string(to)},
		":now":     &types.AttributeValueMemberS{Value: now},
		":pending": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if metadata != nil {
		md, err := attributevalue.Marshal(metadata)
		if err != nil {
			return entities.Payment{}, false, err
		}
		updateExpr += ", #metadata = :metadata"
		values[":metadata"] = md
		names["#metadata"] = "metadata"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("#status = :pending"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			current, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return entities.Payment{}, false, getErr
			}
			return current, false, nil
		}
		return entities.Payment{}, false, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, false, err
	}
	return fromPaymentItem(it), true, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:               p.ID,
		UserID:           p.UserID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Method:           string(p.Method),
		Reference:        p.Reference,
		Status:           string(p.Status),
		ProjectID:        p.ProjectID,
		SubscriptionID:   p.SubscriptionID,
		ServiceRequestID: p.ServiceRequestID,
		Metadata:         p.Metadata,
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Payment{
		ID:               it.ID,
		UserID:           it.UserID,
		Amount:           it.Amount,
		Currency:         it.Currency,
		Method:           entities.PaymentMethod(it.Method),
		Reference:        it.Reference,
		Status:           entities.PaymentStatus(it.Status),
		ProjectID:        it.ProjectID,
		SubscriptionID:   it.SubscriptionID,
		ServiceRequestID: it.ServiceRequestID,
		Metadata:         it.Metadata,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
