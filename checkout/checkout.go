package checkout

import (
	"context"
	"log"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"creamery/cart"
	"creamery/localstore"
	"creamery/models"
	"creamery/validate"
)

const checkoutForm = "checkout-form"

var cardLast4Re = regexp.MustCompile(`^\d{4}$`)

// Transport hands a finished payload to the order endpoint and reports
// the assigned order id.
type Transport interface {
	SubmitOrder(ctx context.Context, payload models.OrderPayload) (orderID string, err error)
}

// Form is everything the checkout page collects: contact fields plus
// the bits that never leave the client (card digits, terms flag).
type Form struct {
	models.Customer
	CardLast4     string `json:"cardLast4"`
	AcceptedTerms bool   `json:"acceptedTerms"`
}

// Submitter drives the checkout flow: validate, build the payload, hand
// it to the transport, and clear local state on confirmed success.
type Submitter struct {
	Carts     *cart.Manager
	Drafts    localstore.Store
	Transport Transport

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewSubmitter(carts *cart.Manager, drafts localstore.Store, transport Transport) *Submitter {
	return &Submitter{
		Carts:     carts,
		Drafts:    drafts,
		Transport: transport,
		inFlight:  make(map[string]bool),
	}
}

// ValidateForm applies the checkout rules and returns the first failing
// field's reason, or nil.
func ValidateForm(form Form) error {
	if ferr := validate.Customer(form.Customer); ferr != nil {
		return ferr
	}
	if card := strings.TrimSpace(form.CardLast4); card != "" && !cardLast4Re.MatchString(card) {
		return &validate.FieldError{Field: "card-last4", Reason: "Card last 4 digits must be exactly 4 numbers."}
	}
	if !form.AcceptedTerms {
		return ErrTermsNotAccepted
	}
	return nil
}

// BuildPayload derives the immutable order snapshot from the cart.
// Lines are ordered by product id so the payload is deterministic.
func BuildPayload(c models.Cart, customer models.Customer, now time.Time) models.OrderPayload {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]models.OrderItem, 0, len(ids))
	for _, id := range ids {
		line := c[id]
		items = append(items, models.OrderItem{
			ProductID: id,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			LineTotal: cart.LineTotal(line),
		})
	}

	return models.OrderPayload{
		Customer:  customer,
		Items:     items,
		Total:     cart.OrderTotal(c),
		CreatedAt: now,
	}
}

// Submit runs the whole flow for one session. Validation failures and
// an empty cart abort before the network; a transport failure leaves
// the cart untouched; confirmed success clears the cart and the
// checkout draft and returns the assigned order id.
func (s *Submitter) Submit(ctx context.Context, sessionID string, form Form) (string, error) {
	if !s.begin(sessionID) {
		return "", ErrSubmitInFlight
	}
	defer s.end(sessionID)

	c, err := s.Carts.Load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if cart.ItemCount(c) == 0 {
		return "", ErrEmptyCart
	}
	if err := ValidateForm(form); err != nil {
		return "", err
	}

	payload := BuildPayload(c, form.Customer, time.Now())

	orderID, err := s.Transport.SubmitOrder(ctx, payload)
	if err != nil {
		return "", err
	}

	if err := s.Carts.Clear(ctx, sessionID); err != nil {
		log.Println("checkout: cart clear after order error:", err)
	}
	if s.Drafts != nil {
		if err := s.Drafts.Delete(ctx, localstore.DraftKey(sessionID, checkoutForm)); err != nil {
			log.Println("checkout: draft clear after order error:", err)
		}
	}

	return orderID, nil
}

func (s *Submitter) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *Submitter) end(sessionID string) {
	s.mu.Lock()
	delete(s.inFlight, sessionID)
	s.mu.Unlock()
}
