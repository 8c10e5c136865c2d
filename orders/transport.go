package orders

import (
	"context"
	"errors"

	"creamery/checkout"
	"creamery/models"
	"creamery/validate"
)

// LocalTransport places orders in-process, for the single-binary
// deployment where the checkout flow and the order store share a
// database. Refusals surface the same way the HTTP transport reports a
// 4xx reply.
type LocalTransport struct{}

func NewLocalTransport() *LocalTransport { return &LocalTransport{} }

func (t *LocalTransport) SubmitOrder(ctx context.Context, payload models.OrderPayload) (string, error) {
	orderID, err := Place(ctx, payload)

	var ferr *validate.FieldError
	switch {
	case err == nil:
		return orderID, nil
	case errors.Is(err, ErrEmptyOrder), errors.As(err, &ferr):
		return "", &checkout.Rejected{Message: err.Error()}
	default:
		return "", &checkout.TransportError{Err: err}
	}
}
