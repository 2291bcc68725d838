package response

import (
	"testing"
	"time"

	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase"
)

func TestFromInitiatePaymentResult(t *testing.T) {
	t.Run("redirect provider fills payment_url", func(t *testing.T) {
		res := FromInitiatePaymentResult(usecase.InitiatePaymentResult{
			Payment: entities.Payment{
				ID:        "pay-1",
				Reference: "CP-1-DEADBEEF",
				Method:    entities.PaymentMethodCinetPay,
			},
			PaymentURL: "https://checkout.test/cp",
		})
		if !res.Success || res.PaymentID != "pay-1" || res.TransactionID != "CP-1-DEADBEEF" {
			t.Fatalf("unexpected response: %+v", res)
		}
		if res.PaymentURL != "https://checkout.test/cp" || res.WaveLaunchURL != "" {
			t.Fatalf("unexpected urls: %+v", res)
		}
	})

	t.Run("wave fills wave_launch_url", func(t *testing.T) {
		res := FromInitiatePaymentResult(usecase.InitiatePaymentResult{
			Payment: entities.Payment{
				ID:        "pay-2",
				Reference: "WAVE-1-DEADBEEF",
				Method:    entities.PaymentMethodWave,
			},
			PaymentURL: "https://pay.wave.com/c/cos-1",
		})
		if res.WaveLaunchURL != "https://pay.wave.com/c/cos-1" || res.PaymentURL != "" {
			t.Fatalf("unexpected urls: %+v", res)
		}
	})

	t.Run("widget provider fills widget", func(t *testing.T) {
		res := FromInitiatePaymentResult(usecase.InitiatePaymentResult{
			Payment: entities.Payment{
				ID:        "pay-3",
				Reference: "KKP-1-DEADBEEF",
				Method:    entities.PaymentMethodKkiapay,
			},
			Widget: map[string]interface{}{"key": "pub", "data": "KKP-1-DEADBEEF"},
		})
		if res.Widget["data"] != "KKP-1-DEADBEEF" {
			t.Fatalf("unexpected widget: %+v", res)
		}
	})
}

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payment{
		ID:        "pay-1",
		UserID:    "user-1",
		Amount:    500,
		Currency:  "XOF",
		Method:    entities.PaymentMethodWave,
		Reference: "WAVE-1-DEADBEEF",
		Status:    entities.PaymentStatusCompleted,
		ProjectID: "proj-1",
		Metadata:  map[string]interface{}{"wave_session_id": "cos-1"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.UserID != "user-1" || res.Amount != 500 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Method != "wave" || res.Reference != "WAVE-1-DEADBEEF" || res.Status != "completed" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
	if res.Metadata["wave_session_id"] != "cos-1" {
		t.Fatalf("unexpected metadata: %+v", res.Metadata)
	}
}

func TestFromPayout(t *testing.T) {
	res := FromPayout(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusCompleted})
	if !res.Success || res.PayoutID != "pay-1" || res.Status != "completed" {
		t.Fatalf("unexpected response: %+v", res)
	}

	res = FromPayout(entities.Payment{ID: "pay-2", Status: entities.PaymentStatusFailed})
	if res.Success {
		t.Fatalf("expected success=false for failed payout: %+v", res)
	}
}
