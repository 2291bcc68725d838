package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase/interfaces"
)

const cinetpaySecret = "cp-webhook-secret"

func newCinetPayWebhookRequest(t *testing.T, body string, sign bool) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/cinetpay", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if sign {
		req.Header.Set("x-token", computeHMAC(cinetpaySecret, []byte(body)))
	}
	return req
}

func TestNewCinetPayGateway(t *testing.T) {
	if _, err := NewCinetPayGateway("", "site-1", "s"); !errors.Is(err, ErrCinetPayNotConfigured) {
		t.Fatalf("expected ErrCinetPayNotConfigured, got %v", err)
	}
	if _, err := NewCinetPayGateway("key-1", "", "s"); !errors.Is(err, ErrCinetPayNotConfigured) {
		t.Fatalf("expected ErrCinetPayNotConfigured, got %v", err)
	}
	if _, err := NewCinetPayGateway("key-1", "site-1", "s"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCinetPayGateway_CreateCheckout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v2/payment" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			var req cinetpayCheckoutRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decoding request: %v", err)
			}
			if req.TransactionID != "CP-1-DEADBEEF" || req.Channels != "ALL" {
				t.Fatalf("unexpected request %+v", req)
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"code": "201",
				"data": map[string]string{
					"payment_url":   "https://checkout.test/cp",
					"payment_token": "tok-1",
				},
			})
		}))
		defer server.Close()

		g, _ := NewCinetPayGateway("key-1", "site-1", cinetpaySecret)
		g.baseURL = server.URL

		sess, err := g.CreateCheckout(context.Background(), interfaces.CheckoutRequest{
			Reference: "CP-1-DEADBEEF",
			Amount:    500,
			Currency:  "XOF",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.PaymentURL != "https://checkout.test/cp" || sess.ProviderSessionID != "tok-1" {
			t.Fatalf("unexpected session %+v", sess)
		}
	})

	t.Run("rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": "608", "message": "MINIMUM_REQUIRED_FIELDS"})
		}))
		defer server.Close()

		g, _ := NewCinetPayGateway("key-1", "site-1", cinetpaySecret)
		g.baseURL = server.URL

		if _, err := g.CreateCheckout(context.Background(), interfaces.CheckoutRequest{Reference: "CP-1"}); err == nil {
			t.Fatal("expected error for rejected checkout")
		}
	})
}

func TestCinetPayGateway_ParseWebhook(t *testing.T) {
	g, _ := NewCinetPayGateway("key-1", "site-1", cinetpaySecret)

	t.Run("missing signature", func(t *testing.T) {
		req := newCinetPayWebhookRequest(t, `{"cpm_trans_id":"CP-1"}`, false)
		if _, err := g.ParseWebhook(req); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("tampered body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/cinetpay", bytes.NewBufferString(`{"cpm_trans_id":"CP-1","cpm_amount":"9"}`))
		req.Header.Set("x-token", computeHMAC(cinetpaySecret, []byte(`{"cpm_trans_id":"CP-1"}`)))
		if _, err := g.ParseWebhook(req); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("empty secret fails closed", func(t *testing.T) {
		noSecret, _ := NewCinetPayGateway("key-1", "site-1", "")
		body := `{"cpm_trans_id":"CP-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/cinetpay", bytes.NewBufferString(body))
		req.Header.Set("x-token", computeHMAC("", []byte(body)))
		if _, err := noSecret.ParseWebhook(req); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("success code", func(t *testing.T) {
		req := newCinetPayWebhookRequest(t, `{"cpm_trans_id":"CP-1-DEADBEEF","cpm_amount":"500","cpm_result":"00","payment_method":"OM"}`, true)
		ev, err := g.ParseWebhook(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Reference != "CP-1-DEADBEEF" || ev.Outcome != entities.OutcomeCompleted || ev.Amount != 500 {
			t.Fatalf("unexpected event %+v", ev)
		}
		if ev.Metadata["cpm_result"] != "00" {
			t.Fatalf("expected result code in metadata, got %v", ev.Metadata)
		}
	})

	t.Run("cancellation code", func(t *testing.T) {
		req := newCinetPayWebhookRequest(t, `{"cpm_trans_id":"CP-1","cpm_result":"627"}`, true)
		ev, err := g.ParseWebhook(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Outcome != entities.OutcomeCancelled {
			t.Fatalf("expected cancelled, got %s", ev.Outcome)
		}
	})

	t.Run("cancellation message", func(t *testing.T) {
		req := newCinetPayWebhookRequest(t, `{"cpm_trans_id":"CP-1","cpm_result":"600","cpm_error_message":"TRANSACTION_CANCEL"}`, true)
		ev, err := g.ParseWebhook(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Outcome != entities.OutcomeCancelled {
			t.Fatalf("expected cancelled, got %s", ev.Outcome)
		}
	})

	t.Run("other codes fail", func(t *testing.T) {
		req := newCinetPayWebhookRequest(t, `{"cpm_trans_id":"CP-1","cpm_result":"602"}`, true)
		ev, err := g.ParseWebhook(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Outcome != entities.OutcomeFailed {
			t.Fatalf("expected failed, got %s", ev.Outcome)
		}
	})

	t.Run("missing reference", func(t *testing.T) {
		req := newCinetPayWebhookRequest(t, `{"cpm_result":"00"}`, true)
		if _, err := g.ParseWebhook(req); err == nil {
			t.Fatal("expected error for missing cpm_trans_id")
		}
	})
}
