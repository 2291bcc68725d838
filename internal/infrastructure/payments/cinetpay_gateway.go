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

var ErrCinetPayNotConfigured = errors.New("cinetpay gateway not configured")

const defaultCinetPayBaseURL = "https://api-checkout.cinetpay.com"

// CinetPayGateway integrates the CinetPay checkout API (aggregator for card
// and mobile-money collection).
//
// Webhook contract: CinetPay notifies with the transaction id we supplied
// (our payment reference) and a two-digit result code. "00" is the only
// success code; everything else is a failure except the explicit
// cancellation codes. Authenticity is an HMAC-SHA256 of the raw body
// carried in the x-token header.

type CinetPayGateway struct {
	apiKey        string
	siteID        string
	webhookSecret string
	baseURL       string
	client        *http.Client
}

var _ interfaces.ICheckoutGateway = (*CinetPayGateway)(nil)

func NewCinetPayGateway(apiKey, siteID, webhookSecret string) (*CinetPayGateway, error) {
	if apiKey == "" || siteID == "" {
		return nil, ErrCinetPayNotConfigured
	}
	return &CinetPayGateway{
		apiKey:        apiKey,
		siteID:        siteID,
		webhookSecret: webhookSecret,
		baseURL:       defaultCinetPayBaseURL,
		client:        &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type cinetpayCheckoutRequest struct {
	APIKey        string `json:"apikey"`
	SiteID        string `json:"site_id"`
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Description   string `json:"description"`
	NotifyURL     string `json:"notify_url,omitempty"`
	ReturnURL     string `json:"return_url,omitempty"`
	Channels      string `json:"channels"`
	Metadata      string `json:"metadata,omitempty"`
}

type cinetpayCheckoutResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
	Data        struct {
		PaymentURL   string `json:"payment_url"`
		PaymentToken string `json:"payment_token"`
	} `json:"data"`
}

func (g *CinetPayGateway) CreateCheckout(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	body, err := json.Marshal(cinetpayCheckoutRequest{
		APIKey:        g.apiKey,
		SiteID:        g.siteID,
		TransactionID: req.Reference,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Description:   req.Description,
		NotifyURL:     req.NotifyURL,
		ReturnURL:     req.ReturnURL,
		Channels:      "ALL",
		Metadata:      req.Reference,
	})
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v2/payment", bytes.NewReader(body))
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return interfaces.CheckoutSession{}, fmt.Errorf("calling cinetpay: %w", err)
	}
	defer resp.Body.Close()

	var out cinetpayCheckoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return interfaces.CheckoutSession{}, fmt.Errorf("decoding cinetpay response: %w", err)
	}
	if out.Code != "201" || out.Data.PaymentURL == "" {
		return interfaces.CheckoutSession{}, fmt.Errorf("cinetpay rejected checkout: code=%s message=%s %s", out.Code, out.Message, out.Description)
	}

	return interfaces.CheckoutSession{
		Reference:         req.Reference,
		ProviderSessionID: out.Data.PaymentToken,
		PaymentURL:        out.Data.PaymentURL,
	}, nil
}

type cinetpayWebhookPayload struct {
	TransID      string      `json:"cpm_trans_id"`
	SiteID       string      `json:"cpm_site_id"`
	Amount       json.Number `json:"cpm_amount"`
	Currency     string      `json:"cpm_currency"`
	Result       string      `json:"cpm_result"`
	ErrorMessage string      `json:"cpm_error_message"`
	PayMethod    string      `json:"payment_method"`
	PaymentDate  string      `json:"cpm_payment_date"`
	Phone        string      `json:"cel_phone_num"`
}

// ParseWebhook verifies the x-token HMAC over the raw body, then maps the
// two-digit result code onto the shared outcome.
func (g *CinetPayGateway) ParseWebhook(r *http.Request) (entities.ReconciliationEvent, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return entities.ReconciliationEvent{}, err
	}
	if !verifyHMAC(g.webhookSecret, r.Header.Get("x-token"), body) {
		return entities.ReconciliationEvent{}, ErrInvalidSignature
	}

	var payload cinetpayWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return entities.ReconciliationEvent{}, fmt.Errorf("decoding cinetpay webhook: %w", err)
	}
	if payload.TransID == "" {
		return entities.ReconciliationEvent{}, errors.New("cinetpay webhook missing cpm_trans_id")
	}

	amount, _ := strconv.ParseInt(payload.Amount.String(), 10, 64)

	metadata := map[string]interface{}{
		"cpm_result":     payload.Result,
		"payment_method": payload.PayMethod,
	}
	if payload.ErrorMessage != "" {
		metadata["cpm_error_message"] = payload.ErrorMessage
	}
	if payload.PaymentDate != "" {
		metadata["payment_date"] = payload.PaymentDate
	}
	if payload.Phone != "" {
		metadata["phone"] = payload.Phone
	}

	return entities.ReconciliationEvent{
		Reference: payload.TransID,
		Outcome:   cinetpayOutcome(payload.Result, payload.ErrorMessage),
		Amount:    amount,
		Metadata:  metadata,
	}, nil
}

func cinetpayOutcome(result, errorMessage string) entities.ReconciliationOutcome {
	if result == "00" {
		return entities.OutcomeCompleted
	}
	// 627 is the explicit user cancellation code; providers also flag it in
	// the error message on some channels.
	if result == "627" || strings.Contains(strings.ToUpper(errorMessage), "CANCEL") {
		return entities.OutcomeCancelled
	}
	return entities.OutcomeFailed
}
