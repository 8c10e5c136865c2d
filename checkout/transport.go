package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"creamery/models"
)

// HTTPTransport posts payloads to the order endpoint.
type HTTPTransport struct {
	BaseURL string
	Token   string // session bearer token, optional
	Client  *http.Client
}

func NewHTTPTransport(baseURL, token string) *HTTPTransport {
	return &HTTPTransport{
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type orderReply struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

func (t *HTTPTransport) SubmitOrder(ctx context.Context, payload models.OrderPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL+"/api/order", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.Token != "" {
		req.Header.Set("Authorization", "Bearer "+t.Token)
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	var reply orderReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode == http.StatusCreated && reply.Success {
		return reply.OrderID, nil
	}
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return "", &Rejected{Message: reply.Message}
	}
	return "", &TransportError{Err: &Rejected{Message: reply.Message}}
}
