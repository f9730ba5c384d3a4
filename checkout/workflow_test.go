package checkout

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/qimma-sa/kitchens-api/cart"
	"github.com/qimma-sa/kitchens-api/validation"
	"github.com/shopspring/decimal"
)

// fakeAPI records requests and replies with a fixed status and body.
type fakeAPI struct {
	server   *httptest.Server
	status   int
	body     string
	requests int64
	lastBody []byte
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	f := &fakeAPI{status: status, body: body}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&f.requests, 1)
		f.lastBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		w.Write([]byte(f.body))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) client() *Client { return NewClient(f.server.URL) }

func (f *fakeAPI) requestCount() int64 { return atomic.LoadInt64(&f.requests) }

func validForm() validation.CheckoutForm {
	return validation.CheckoutForm{
		FullName: "محمد العتيبي",
		Phone:    "0512345678",
		City:     "الرياض",
		District: "النرجس",
		Address:  "شارع الملك فهد، مبنى 12",
	}
}

func cartWithPricedLine(t *testing.T) (*cart.Store, *cart.MemoryStorage) {
	t.Helper()
	storage := cart.NewMemoryStorage()
	c := cart.NewStore(storage)
	price := decimal.RequireFromString("150.00")
	c.AddItem(cart.Line{
		ProductID:     1,
		TitleAr:       "مطبخ ألمنيوم عصري",
		MaterialType:  "ألمنيوم",
		PricePerMeter: &price,
		Meters:        decimal.RequireFromString("2"),
	})
	return c, storage
}

func TestSubmit_EmptyCart(t *testing.T) {
	api := newFakeAPI(t, http.StatusCreated, `{"id":1}`)
	w := NewCheckoutWorkflow(api.client(), cart.NewStore(cart.NewMemoryStorage()))
	w.Form = validForm()

	if w.CanEnter() {
		t.Error("expected CanEnter to be false for an empty cart")
	}
	if err := w.Submit(context.Background()); err != ErrEmptyCart {
		t.Errorf("expected ErrEmptyCart, got %v", err)
	}
	if api.requestCount() != 0 {
		t.Errorf("expected no request for an empty cart, got %d", api.requestCount())
	}
}

func TestSubmit_ClientValidationFailure(t *testing.T) {
	api := newFakeAPI(t, http.StatusCreated, `{"id":1}`)
	c, _ := cartWithPricedLine(t)
	w := NewCheckoutWorkflow(api.client(), c)
	w.Form = validForm()
	w.Form.Phone = "123"

	err := w.Submit(context.Background())
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if api.requestCount() != 0 {
		t.Errorf("expected validation to fail before the network, got %d requests", api.requestCount())
	}
	if w.State() != StateEditing {
		t.Errorf("expected editing state, got %s", w.State())
	}
	errs := w.FieldErrors()
	if len(errs) != 1 || errs[0].Field != "Phone" {
		t.Errorf("expected a Phone field error, got %v", errs)
	}
	if c.ItemCount() != 1 {
		t.Error("expected the cart to be untouched")
	}
}

func TestSubmit_SuccessClearsCart(t *testing.T) {
	api := newFakeAPI(t, http.StatusCreated, `{"id":12}`)
	c, storage := cartWithPricedLine(t)
	w := NewCheckoutWorkflow(api.client(), c)
	w.Form = validForm()

	if err := w.Submit(context.Background()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if w.State() != StateSucceeded {
		t.Errorf("expected succeeded state, got %s", w.State())
	}
	if w.OrderID() != 12 {
		t.Errorf("expected order id 12, got %d", w.OrderID())
	}
	if c.ItemCount() != 0 {
		t.Error("expected the cart to be cleared on success")
	}
	if cart.NewStore(storage).ItemCount() != 0 {
		t.Error("expected the cleared cart to be persisted")
	}
	// Confirmation display stays reachable after the cart empties.
	if !w.CanEnter() {
		t.Error("expected CanEnter to remain true after a successful order")
	}
}

func TestSubmit_FailureKeepsCartAndForm(t *testing.T) {
	api := newFakeAPI(t, http.StatusInternalServerError, `{"error":"حدث خطأ في إنشاء الطلب"}`)
	c, _ := cartWithPricedLine(t)
	w := NewCheckoutWorkflow(api.client(), c)
	w.Form = validForm()

	err := w.Submit(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.StatusCode)
	}
	if w.State() != StateEditing {
		t.Errorf("expected editing state after failure, got %s", w.State())
	}
	if w.ErrorMessage() != "حدث خطأ في إنشاء الطلب" {
		t.Errorf("expected the server message, got %q", w.ErrorMessage())
	}
	if c.ItemCount() != 1 {
		t.Error("expected the cart to be untouched on failure")
	}
	if w.Form != validForm() {
		t.Error("expected the form to be retained on failure")
	}
}

func TestSubmit_FailureWithoutServerMessage(t *testing.T) {
	api := newFakeAPI(t, http.StatusBadGateway, "")
	c, _ := cartWithPricedLine(t)
	w := NewCheckoutWorkflow(api.client(), c)
	w.Form = validForm()

	if err := w.Submit(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if w.ErrorMessage() != GenericErrorMessage {
		t.Errorf("expected the generic message, got %q", w.ErrorMessage())
	}
}

func TestSubmit_RetryAfterFailureSucceeds(t *testing.T) {
	api := newFakeAPI(t, http.StatusInternalServerError, `{"error":"خطأ"}`)
	c, _ := cartWithPricedLine(t)
	w := NewCheckoutWorkflow(api.client(), c)
	w.Form = validForm()

	if err := w.Submit(context.Background()); err == nil {
		t.Fatal("expected the first submit to fail")
	}

	api.status = http.StatusCreated
	api.body = `{"id":7}`
	if err := w.Submit(context.Background()); err != nil {
		t.Fatalf("expected the retry to succeed, got %v", err)
	}
	if w.OrderID() != 7 {
		t.Errorf("expected order id 7, got %d", w.OrderID())
	}
	if w.ErrorMessage() != "" {
		t.Errorf("expected the error message to clear on success, got %q", w.ErrorMessage())
	}
}

func TestSubmit_SendsFrozenSnapshots(t *testing.T) {
	api := newFakeAPI(t, http.StatusCreated, `{"id":3}`)
	c, _ := cartWithPricedLine(t)
	w := NewCheckoutWorkflow(api.client(), c)
	w.Form = validForm()

	if err := w.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	var sent struct {
		FullName       string `json:"fullName"`
		SubtotalAmount string `json:"subtotalAmount"`
		Items          []struct {
			ProductID        uint    `json:"productId"`
			Meters           string  `json:"meters"`
			PricePerMeter    *string `json:"pricePerMeter"`
			LineTotal        *string `json:"lineTotal"`
			TitleSnapshotAr  string  `json:"titleSnapshotAr"`
			MaterialSnapshot string  `json:"materialSnapshot"`
		} `json:"items"`
	}
	if err := json.Unmarshal(api.lastBody, &sent); err != nil {
		t.Fatalf("decode sent payload: %v", err)
	}

	if sent.FullName != "محمد العتيبي" {
		t.Errorf("unexpected fullName %q", sent.FullName)
	}
	if sent.SubtotalAmount != "300.00" {
		t.Errorf("expected subtotal \"300.00\", got %q", sent.SubtotalAmount)
	}
	if len(sent.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(sent.Items))
	}
	item := sent.Items[0]
	if item.ProductID != 1 || item.Meters != "2" {
		t.Errorf("unexpected item %+v", item)
	}
	if item.LineTotal == nil || *item.LineTotal != "300.00" {
		t.Errorf("expected line total \"300.00\", got %v", item.LineTotal)
	}
	if item.TitleSnapshotAr != "مطبخ ألمنيوم عصري" || item.MaterialSnapshot != "ألمنيوم" {
		t.Errorf("expected display snapshots to be carried, got %+v", item)
	}
}

func TestBuildOrderPayload_CustomPriceLine(t *testing.T) {
	storage := cart.NewMemoryStorage()
	c := cart.NewStore(storage)
	c.AddItem(cart.Line{
		ProductID:     2,
		TitleAr:       "مطبخ خشب زان طبيعي",
		MaterialType:  "خشب",
		IsCustomPrice: true,
		Meters:        decimal.RequireFromString("3"),
	})

	payload := BuildOrderPayload(validForm(), c)
	if len(payload.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(payload.Items))
	}
	if payload.Items[0].LineTotal != nil {
		t.Error("expected no line total for a custom-price line")
	}
	if payload.SubtotalAmount == nil || !payload.SubtotalAmount.IsZero() {
		t.Errorf("expected zero subtotal, got %v", payload.SubtotalAmount)
	}
}

func TestBuildOrderPayload_ImmutableAfterCartMutation(t *testing.T) {
	c, _ := cartWithPricedLine(t)
	payload := BuildOrderPayload(validForm(), c)

	c.UpdateMeters(1, decimal.RequireFromString("5"))

	if !payload.Items[0].Meters.Equal(decimal.RequireFromString("2")) {
		t.Errorf("expected the frozen payload to keep meters 2, got %s", payload.Items[0].Meters)
	}
	if !payload.SubtotalAmount.Equal(decimal.RequireFromString("300.00")) {
		t.Errorf("expected the frozen subtotal 300.00, got %s", payload.SubtotalAmount)
	}
}

func TestVisitSubmit_SuccessResetsForm(t *testing.T) {
	api := newFakeAPI(t, http.StatusCreated, `{"id":5}`)
	w := NewVisitWorkflow(api.client())
	w.Form = validation.VisitRequestForm{
		FullName:     "محمد العتيبي",
		Phone:        "0512345678",
		City:         "الرياض",
		District:     "النرجس",
		Address:      "شارع الملك فهد، مبنى 12",
		MaterialType: "ألمنيوم",
		ApproxMeters: "12.5",
	}

	if err := w.Submit(context.Background()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if w.State() != StateSucceeded {
		t.Errorf("expected succeeded state, got %s", w.State())
	}
	if w.Form != (validation.VisitRequestForm{}) {
		t.Errorf("expected the form to reset on success, got %+v", w.Form)
	}
}

func TestVisitSubmit_FailureRetainsForm(t *testing.T) {
	api := newFakeAPI(t, http.StatusInternalServerError, `{"error":"حدث خطأ في إرسال الطلب"}`)
	w := NewVisitWorkflow(api.client())
	form := validation.VisitRequestForm{
		FullName:     "محمد العتيبي",
		Phone:        "0512345678",
		City:         "الرياض",
		District:     "النرجس",
		Address:      "شارع الملك فهد، مبنى 12",
		MaterialType: "خشب",
	}
	w.Form = form

	if err := w.Submit(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if w.State() != StateEditing {
		t.Errorf("expected editing state, got %s", w.State())
	}
	if w.Form != form {
		t.Error("expected the form to be retained on failure")
	}
	if w.ErrorMessage() != "حدث خطأ في إرسال الطلب" {
		t.Errorf("expected the server message, got %q", w.ErrorMessage())
	}
}

func TestVisitSubmit_ValidationFailureSkipsNetwork(t *testing.T) {
	api := newFakeAPI(t, http.StatusCreated, `{"id":5}`)
	w := NewVisitWorkflow(api.client())
	w.Form = validation.VisitRequestForm{
		FullName:     "محمد العتيبي",
		Phone:        "0512345678",
		City:         "الرياض",
		District:     "النرجس",
		Address:      "شارع الملك فهد، مبنى 12",
		MaterialType: "زجاج",
	}

	if err := w.Submit(context.Background()); err == nil {
		t.Fatal("expected a validation error")
	}
	if api.requestCount() != 0 {
		t.Errorf("expected no request, got %d", api.requestCount())
	}
	errs := w.FieldErrors()
	if len(errs) != 1 || errs[0].Field != "MaterialType" {
		t.Errorf("expected a MaterialType error, got %v", errs)
	}
}
