package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"creamery/models"
)

func payload() models.OrderPayload {
	return models.OrderPayload{
		Customer: models.Customer{FullName: "Noa Levi"},
		Items:    []models.OrderItem{{ProductID: "GarlicHerb", Quantity: 1, Price: 29, LineTotal: 29}},
		Total:    29,
	}
}

func TestHTTPTransportSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/order" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var got models.OrderPayload
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "orderId": "123456"})
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL, "tok")
	orderID, err := tr.SubmitOrder(context.Background(), payload())
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if orderID != "123456" {
		t.Fatalf("orderID = %q", orderID)
	}
}

func TestHTTPTransportRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Invalid order payload"})
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL, "")
	_, err := tr.SubmitOrder(context.Background(), payload())

	var rej *Rejected
	if !errors.As(err, &rej) {
		t.Fatalf("err = %v, want Rejected", err)
	}
	if rej.Message != "Invalid order payload" {
		t.Fatalf("message = %q", rej.Message)
	}
}

func TestHTTPTransportServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"success": false})
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL, "")
	_, err := tr.SubmitOrder(context.Background(), payload())

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
}

func TestHTTPTransportUnreachable(t *testing.T) {
	tr := NewHTTPTransport("http://127.0.0.1:1", "")
	_, err := tr.SubmitOrder(context.Background(), payload())

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
}
