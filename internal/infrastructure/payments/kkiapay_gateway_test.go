package payments

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase/interfaces"
)

const kkiapaySecret = "kkp-webhook-secret"

func newKkiapayWebhookRequest(t *testing.T, body string, sign bool) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/kkiapay", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if sign {
		req.Header.Set("x-kkiapay-signature", computeHMAC(kkiapaySecret, []byte(body)))
	}
	return req
}

func TestNewKkiapayGateway(t *testing.T) {
	if _, err := NewKkiapayGateway("", "priv", "s", false); !errors.Is(err, ErrKkiapayNotConfigured) {
		t.Fatalf("expected ErrKkiapayNotConfigured, got %v", err)
	}
	if _, err := NewKkiapayGateway("pub", "", "s", false); !errors.Is(err, ErrKkiapayNotConfigured) {
		t.Fatalf("expected ErrKkiapayNotConfigured, got %v", err)
	}
	if _, err := NewKkiapayGateway("pub", "priv", "s", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestKkiapayGateway_CreateCheckout(t *testing.T) {
	g, _ := NewKkiapayGateway("pub", "priv", kkiapaySecret, true)

	sess, err := g.CreateCheckout(context.Background(), interfaces.CheckoutRequest{
		Reference:   "KKP-1-DEADBEEF",
		Amount:      750,
		Description: "Contribution",
		ReturnURL:   "https://app.test/done",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.PaymentURL != "" {
		t.Fatalf("kkiapay is widget based, got payment url %q", sess.PaymentURL)
	}
	if sess.Widget["key"] != "pub" || sess.Widget["sandbox"] != true {
		t.Fatalf("unexpected widget %v", sess.Widget)
	}
	if sess.Widget["data"] != "KKP-1-DEADBEEF" {
		t.Fatalf("widget data must carry the reference, got %v", sess.Widget["data"])
	}
	if sess.Widget["amount"] != int64(750) {
		t.Fatalf("unexpected widget amount %v", sess.Widget["amount"])
	}
}

func TestKkiapayGateway_ParseWebhook(t *testing.T) {
	g, _ := NewKkiapayGateway("pub", "priv", kkiapaySecret, false)

	t.Run("missing signature", func(t *testing.T) {
		req := newKkiapayWebhookRequest(t, `{"data":"KKP-1"}`, false)
		if _, err := g.ParseWebhook(req); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("success flag", func(t *testing.T) {
		body := `{"transactionId":"tx-1","isPaymentSucces":true,"amount":750,"account":"+22997000000","data":"KKP-1-DEADBEEF"}`
		ev, err := g.ParseWebhook(newKkiapayWebhookRequest(t, body, true))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Reference != "KKP-1-DEADBEEF" || ev.Outcome != entities.OutcomeCompleted || ev.Amount != 750 {
			t.Fatalf("unexpected event %+v", ev)
		}
		if ev.Metadata["kkiapay_transaction_id"] != "tx-1" {
			t.Fatalf("expected provider transaction id in metadata, got %v", ev.Metadata)
		}
	})

	t.Run("failure flag", func(t *testing.T) {
		body := `{"transactionId":"tx-2","isPaymentSucces":false,"failureCode":"INSUFFICIENT_FUNDS","data":"KKP-1-DEADBEEF"}`
		ev, err := g.ParseWebhook(newKkiapayWebhookRequest(t, body, true))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Outcome != entities.OutcomeFailed {
			t.Fatalf("expected failed, got %s", ev.Outcome)
		}
		if ev.Metadata["failure_code"] != "INSUFFICIENT_FUNDS" {
			t.Fatalf("expected failure code in metadata, got %v", ev.Metadata)
		}
	})

	t.Run("missing data reference", func(t *testing.T) {
		body := `{"transactionId":"tx-3","isPaymentSucces":true}`
		if _, err := g.ParseWebhook(newKkiapayWebhookRequest(t, body, true)); err == nil {
			t.Fatal("expected error for missing data reference")
		}
	})
}
