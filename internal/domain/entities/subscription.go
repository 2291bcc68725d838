package entities

import "time"

// SubscriptionStatus represents the lifecycle of a user subscription.
//
// Domain notes:
//   - A subscription is created pending alongside its payment.
//   - It is activated exactly once, by the first completed webhook for the
//     originating payment, and cancelled when that payment fails.

type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription is the user subscription persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id

type Subscription struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	PlanID    string             `json:"plan_id"`
	Status    SubscriptionStatus `json:"status"`
	StartedAt time.Time          `json:"started_at,omitempty"`
	ExpiresAt time.Time          `json:"expires_at,omitempty"`
	PaymentID string             `json:"payment_id,omitempty"`
	Method    PaymentMethod      `json:"payment_method,omitempty"`
	Reference string             `json:"payment_reference,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
