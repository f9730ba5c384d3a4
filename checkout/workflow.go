package checkout

import (
	"context"
	"errors"

	"github.com/qimma-sa/kitchens-api/cart"
	"github.com/qimma-sa/kitchens-api/validation"
)

// State of a submission workflow as the customer perceives it. A failed
// submission returns to Editing with the message retained, so the customer
// can resubmit without re-entering anything.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSucceeded
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	default:
		return "editing"
	}
}

var (
	// ErrEmptyCart guards checkout entry: nothing to order yet.
	ErrEmptyCart = errors.New("السلة فارغة")
	// ErrSubmissionInFlight rejects a second submit while one is pending.
	ErrSubmissionInFlight = errors.New("هناك طلب قيد الإرسال")
)

// GenericErrorMessage is shown for failures that carry no server message.
const GenericErrorMessage = "حدث خطأ، يرجى المحاولة مرة أخرى"

// CheckoutWorkflow snapshots the cart into an immutable order and submits
// it. Single-writer: it is driven by one UI event loop, so at most one
// submission is ever in flight.
type CheckoutWorkflow struct {
	api  *Client
	cart *cart.Store

	Form validation.CheckoutForm

	state       State
	fieldErrors validation.Errors
	message     string
	orderID     uint
}

func NewCheckoutWorkflow(api *Client, cartStore *cart.Store) *CheckoutWorkflow {
	return &CheckoutWorkflow{api: api, cart: cartStore}
}

func (w *CheckoutWorkflow) State() State { return w.state }

// OrderID is the confirmation number of the accepted order, zero until a
// submission succeeds.
func (w *CheckoutWorkflow) OrderID() uint { return w.orderID }

// FieldErrors holds the field-scoped messages from the last client-side
// validation pass.
func (w *CheckoutWorkflow) FieldErrors() validation.Errors { return w.fieldErrors }

// ErrorMessage is the inline error from the last failed submission.
func (w *CheckoutWorkflow) ErrorMessage() string { return w.message }

// CanEnter reports whether the checkout page may be shown: either the cart
// has items, or a prior order succeeded (the confirmation display state —
// not the cart-empty error).
func (w *CheckoutWorkflow) CanEnter() bool {
	return w.cart.ItemCount() > 0 || w.orderID != 0
}

// Submit validates the form, builds the immutable order payload and sends
// it. On success the cart is cleared — the only side effect beyond
// persistence. On any failure the cart and form are left untouched.
func (w *CheckoutWorkflow) Submit(ctx context.Context) error {
	if w.state == StateSubmitting {
		return ErrSubmissionInFlight
	}
	if w.cart.ItemCount() == 0 && w.orderID == 0 {
		return ErrEmptyCart
	}

	if errs := validation.ValidateCheckout(w.Form); errs != nil {
		w.fieldErrors = errs
		w.state = StateEditing
		return errs
	}
	w.fieldErrors = nil

	payload := BuildOrderPayload(w.Form, w.cart)

	w.state = StateSubmitting
	conf, err := w.api.CreateOrder(ctx, payload)
	if err != nil {
		w.state = StateEditing
		w.message = messageFor(err)
		return err
	}

	w.orderID = conf.ID
	w.cart.Clear()
	w.message = ""
	w.state = StateSucceeded
	return nil
}

// BuildOrderPayload freezes the current cart lines into order item
// snapshots and attaches the aggregate subtotal from the pricing rules.
func BuildOrderPayload(form validation.CheckoutForm, c *cart.Store) OrderPayload {
	lines := c.Lines()
	items := make([]OrderItemPayload, 0, len(lines))
	for _, line := range lines {
		item := OrderItemPayload{
			ProductID:        line.ProductID,
			Meters:           line.Meters,
			TitleSnapshotAr:  line.TitleAr,
			MaterialSnapshot: line.MaterialType,
		}
		if line.PricePerMeter != nil {
			p := *line.PricePerMeter
			item.PricePerMeter = &p
		}
		if lt, ok := cart.LineTotal(line); ok {
			item.LineTotal = &lt
		}
		items = append(items, item)
	}

	subtotal := c.Total()
	return OrderPayload{
		CheckoutForm:   form,
		Items:          items,
		SubtotalAmount: &subtotal,
	}
}

func messageFor(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenericErrorMessage
}
