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

const defaultSubscriptionsTableName = "user_subscriptions"

type subscriptionItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	PlanID    string `dynamodbav:"plan_id"`
	Status    string `dynamodbav:"status"`
	StartedAt string `dynamodbav:"started_at,omitempty"`
	ExpiresAt string `dynamodbav:"expires_at,omitempty"`
	PaymentID string `dynamodbav:"payment_id,omitempty"`
	Method    string `dynamodbav:"payment_method,omitempty"`
	Reference string `dynamodbav:"payment_reference,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SubscriptionDynamoRepository persists Subscription entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Subscription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) Activate(ctx context.Context, id string, startedAt, expiresAt time.Time, paymentID string, method entities.PaymentMethod, reference string) (entities.Subscription, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #started_at = :started_at, #expires_at = :expires_at, #payment_id = :payment_id, #payment_method = :payment_method, #payment_reference = :payment_reference, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":            &types.AttributeValueMemberS{Value: string(entities.SubscriptionStatusActive)},
			":started_at":        &types.AttributeValueMemberS{Value: startedAt.UTC().Format(time.RFC3339Nano)},
			":expires_at":        &types.AttributeValueMemberS{Value: expiresAt.UTC().Format(time.RFC3339Nano)},
			":payment_id":        &types.AttributeValueMemberS{Value: paymentID},
			":payment_method":    &types.AttributeValueMemberS{Value: string(method)},
			":payment_reference": &types.AttributeValueMemberS{Value: reference},
			":updated_at":        &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":            "status",
			"#started_at":        "started_at",
			"#expires_at":        "expires_at",
			"#payment_id":        "payment_id",
			"#payment_method":    "payment_method",
			"#payment_reference": "payment_reference",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
}

func (r *SubscriptionDynamoRepository) Cancel(ctx context.Context, id string) (entities.Subscription, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.SubscriptionStatusCancelled)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *SubscriptionDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Subscription, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Subscription{}, nil
		}
		return entities.Subscription{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Subscription{}, nil
	}
	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	startedAt, _ := time.Parse(time.RFC3339Nano, it.StartedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Subscription{
		ID:        it.ID,
		UserID:    it.UserID,
		PlanID:    it.PlanID,
		Status:    entities.SubscriptionStatus(it.Status),
		StartedAt: startedAt,
		ExpiresAt: expiresAt,
		PaymentID: it.PaymentID,
		Method:    entities.PaymentMethod(it.Method),
		Reference: it.Reference,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
