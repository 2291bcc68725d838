package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase/interfaces"
)

var ErrWaveNotConfigured = errors.New("wave gateway not configured")

const defaultWaveBaseURL = "https://api.wave.com"

// WaveGateway integrates the Wave checkout and payout APIs (mobile-money
// peer-to-peer transfers).
//
// Webhook contract: Wave emits typed events; the session carries our
// client_reference. Authenticity is the Wave-Signature header,
// "t=<timestamp>,v1=<hmac>", where the HMAC-SHA256 is computed over
// timestamp + raw body.

type WaveGateway struct {
	apiKey        string
	webhookSecret string
	baseURL       string
	client        *http.Client
}

var (
	_ interfaces.ICheckoutGateway = (*WaveGateway)(nil)
	_ interfaces.IPayoutGateway   = (*WaveGateway)(nil)
)

func NewWaveGateway(apiKey, webhookSecret string) (*WaveGateway, error) {
	if apiKey == "" {
		return nil, ErrWaveNotConfigured
	}
	return &WaveGateway{
		apiKey:        apiKey,
		webhookSecret: webhookSecret,
		baseURL:       defaultWaveBaseURL,
		client:        &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type waveCheckoutRequest struct {
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	ClientReference string `json:"client_reference"`
	SuccessURL      string `json:"success_url,omitempty"`
	ErrorURL        string `json:"error_url,omitempty"`
}

type waveCheckoutResponse struct {
	ID            string `json:"id"`
	WaveLaunchURL string `json:"wave_launch_url"`
}

func (g *WaveGateway) CreateCheckout(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	body, err := json.Marshal(waveCheckoutRequest{
		Amount:          strconv.FormatInt(req.Amount, 10),
		Currency:        req.Currency,
		ClientReference: req.Reference,
		SuccessURL:      req.ReturnURL,
		ErrorURL:        req.ReturnURL,
	})
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}

	out := waveCheckoutResponse{}
	if err := g.post(ctx, "/v1/checkout/sessions", "", body, &out); err != nil {
		return interfaces.CheckoutSession{}, err
	}
	if out.WaveLaunchURL == "" {
		return interfaces.CheckoutSession{}, errors.New("wave response missing wave_launch_url")
	}

	return interfaces.CheckoutSession{
		Reference:         req.Reference,
		ProviderSessionID: out.ID,
		PaymentURL:        out.WaveLaunchURL,
	}, nil
}

type wavePayoutRequest struct {
	Currency        string `json:"currency"`
	ReceiveAmount   string `json:"receive_amount"`
	Mobile          string `json:"mobile"`
	Name            string `json:"name,omitempty"`
	ClientReference string `json:"client_reference"`
	PaymentReason   string `json:"payment_reason,omitempty"`
}

type wavePayoutResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreatePayout performs a synchronous transfer. Wave deduplicates on
// client_reference, which is also sent as the idempotency key, so a retried
// call cannot double-send funds.
func (g *WaveGateway) CreatePayout(ctx context.Context, req interfaces.PayoutRequest) (interfaces.PayoutResult, error) {
	body, err := json.Marshal(wavePayoutRequest{
		Currency:        req.Currency,
		ReceiveAmount:   strconv.FormatInt(req.Amount, 10),
		Mobile:          req.RecipientPhone,
		Name:            req.RecipientName,
		ClientReference: req.Reference,
		PaymentReason:   req.Description,
	})
	if err != nil {
		return interfaces.PayoutResult{}, err
	}

	out := wavePayoutResponse{}
	if err := g.post(ctx, "/v1/payout", req.Reference, body, &out); err != nil {
		return interfaces.PayoutResult{}, err
	}

	return interfaces.PayoutResult{
		ProviderPayoutID: out.ID,
		Status:           wavePayoutStatus(out.Status),
		Raw: map[string]interface{}{
			"wave_payout_id": out.ID,
			"wave_status":    out.Status,
		},
	}, nil
}

func (g *WaveGateway) post(ctx context.Context, path, idempotencyKey string, body []byte, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("calling wave: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("wave rejected request: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return json.Unmarshal(raw, out)
}

func wavePayoutStatus(status string) entities.PaymentStatus {
	switch strings.ToLower(status) {
	case "succeeded", "success":
		return entities.PaymentStatusCompleted
	default:
		return entities.PaymentStatusFailed
	}
}

type waveWebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		ID              string `json:"id"`
		ClientReference string `json:"client_reference"`
		PaymentStatus   string `json:"payment_status"`
		Amount          string `json:"amount"`
		Currency        string `json:"currency"`
		TransactionID   string `json:"transaction_id"`
		WhenCompleted   string `json:"when_completed"`
	} `json:"data"`
}

// ParseWebhook verifies Wave-Signature and maps the event type onto the
// shared outcome. Event types outside the checkout session lifecycle are
// acknowledged but ignored.
func (g *WaveGateway) ParseWebhook(r *http.Request) (entities.ReconciliationEvent, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return entities.ReconciliationEvent{}, err
	}
	if !g.verifySignature(r.Header.Get("Wave-Signature"), body) {
		return entities.ReconciliationEvent{}, ErrInvalidSignature
	}

	var event waveWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return entities.ReconciliationEvent{}, fmt.Errorf("decoding wave webhook: %w", err)
	}

	var outcome entities.ReconciliationOutcome
	switch event.Type {
	case "checkout.session.completed":
		if strings.ToLower(event.Data.PaymentStatus) == "succeeded" {
			outcome = entities.OutcomeCompleted
		} else {
			outcome = entities.OutcomeFailed
		}
	case "checkout.session.payment_failed":
		outcome = entities.OutcomeFailed
	case "checkout.session.expired":
		outcome = entities.OutcomeCancelled
	default:
		return entities.ReconciliationEvent{}, fmt.Errorf("%w: %s", ErrIgnoredEvent, event.Type)
	}

	if event.Data.ClientReference == "" {
		return entities.ReconciliationEvent{}, errors.New("wave webhook missing client_reference")
	}

	amount, _ := strconv.ParseInt(event.Data.Amount, 10, 64)
	metadata := map[string]interface{}{
		"wave_event_id":   event.ID,
		"wave_event_type": event.Type,
		"wave_session_id": event.Data.ID,
	}
	if event.Data.TransactionID != "" {
		metadata["wave_transaction_id"] = event.Data.TransactionID
	}
	if event.Data.WhenCompleted != "" {
		metadata["payment_date"] = event.Data.WhenCompleted
	}

	return entities.ReconciliationEvent{
		Reference: event.Data.ClientReference,
		Outcome:   outcome,
		Amount:    amount,
		Metadata:  metadata,
	}, nil
}

// verifySignature checks "t=<ts>,v1=<hmac>" where the HMAC covers ts+body.
func (g *WaveGateway) verifySignature(header string, body []byte) bool {
	if g.webhookSecret == "" || header == "" {
		return false
	}
	var timestamp string
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return false
	}
	expected := computeHMAC(g.webhookSecret, append([]byte(timestamp), body...))
	for _, sig := range signatures {
		if sig == expected {
			return true
		}
	}
	return false
}
