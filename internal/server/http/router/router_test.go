package router

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/checkout/internal/adapter/cart"
	"github.com/polkiloo/checkout/internal/adapter/gateway"
	"github.com/polkiloo/checkout/internal/app"
	"github.com/polkiloo/checkout/internal/server/http/dto"
	"github.com/polkiloo/checkout/internal/server/http/middleware"
	"github.com/polkiloo/checkout/internal/storage/memory"
	testhelpers "github.com/polkiloo/checkout/internal/test"
	"github.com/polkiloo/checkout/internal/usecase"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	logger := testhelpers.DiscardLogger()
	store := memory.New(logger)
	settings := usecase.CheckoutSettings{Currency: "CAD", GatewayTimeout: time.Second, TransactionIDAttempts: 5}

	facade := app.NewCheckoutFacade(
		usecase.NewCheckoutUseCase(store, cart.NewDefault(), gateway.NewSimulated(0), usecase.NewRandomTransactionIDs(), settings, logger),
		usecase.NewPaymentUseCase(store.Payments()),
		usecase.NewOrderUseCase(store.Orders(), store.OrderItems(), store.Payments()),
		usecase.NewUserUseCase(store.Users(), store.Orders(), testhelpers.HasherStub{}),
	)
	return Setup(facade, logger)
}

func do(engine *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestCheckoutFlow(t *testing.T) {
	engine := newEngine(t)

	resp := do(engine, http.MethodPost, "/api/payments/process", []byte(`{"paymentMethod":"credit_card"}`))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatal("expected request id header")
	}

	var processed dto.ProcessResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &processed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !processed.Success {
		t.Fatal("expected success=true")
	}
	if processed.Payment.Amount != 94.49 || processed.Payment.Currency != "CAD" || processed.Payment.Status != "completed" {
		t.Fatalf("unexpected payment %+v", processed.Payment)
	}
	if processed.Order.Total != 94.49 || processed.Order.Status != "completed" {
		t.Fatalf("unexpected order %+v", processed.Order)
	}

	resp = do(engine, http.MethodGet, "/api/payments/"+strconv.FormatInt(processed.Payment.ID, 10), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for lookup, got %d", resp.Code)
	}
	var lookup dto.PaymentLookupResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &lookup); err != nil {
		t.Fatalf("decode lookup: %v", err)
	}
	if lookup.Payment.OrderID != processed.Order.ID || lookup.Payment.PaymentMethod != "credit_card" {
		t.Fatalf("unexpected lookup %+v", lookup.Payment)
	}
	if !regexp.MustCompile(`^TR-\d{6}$`).MatchString(lookup.Payment.TransactionID) {
		t.Fatalf("unexpected transaction id %q", lookup.Payment.TransactionID)
	}

	again := do(engine, http.MethodGet, "/api/payments/"+strconv.FormatInt(processed.Payment.ID, 10), nil)
	if !bytes.Equal(resp.Body.Bytes(), again.Body.Bytes()) {
		t.Fatalf("expected idempotent lookup, got %s then %s", resp.Body.String(), again.Body.String())
	}

	resp = do(engine, http.MethodGet, "/api/orders/"+strconv.FormatInt(processed.Order.ID, 10), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for order, got %d", resp.Code)
	}
	var order dto.OrderDetailsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if len(order.Items) != 1 || order.Items[0].ProductName != "Produit exemple" || len(order.Payments) != 1 {
		t.Fatalf("unexpected order details %+v", order)
	}
	if order.Order.Subtotal != 89.99 || order.Order.Tax != 4.5 || order.Order.Total != 94.49 {
		t.Fatalf("unexpected totals %+v", order.Order)
	}
}

func TestOrderIDsIncreaseAcrossRequests(t *testing.T) {
	engine := newEngine(t)

	var last int64
	for i := 0; i < 3; i++ {
		resp := do(engine, http.MethodPost, "/api/payments/process", []byte(`{"paymentMethod":"paypal"}`))
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}
		var processed dto.ProcessResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &processed); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if processed.Order.ID <= last {
			t.Fatalf("expected order id above %d, got %d", last, processed.Order.ID)
		}
		last = processed.Order.ID
	}
}

func TestMissingPaymentMethod(t *testing.T) {
	engine := newEngine(t)

	resp := do(engine, http.MethodPost, "/api/payments/process", []byte(`{"email":"jane@example.com"}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || len(body.Errors) != 1 || body.Errors[0].Path != "paymentMethod" {
		t.Fatalf("unexpected validation body %+v", body)
	}
}

func TestPaymentLookupErrors(t *testing.T) {
	engine := newEngine(t)

	cases := map[string]int{
		"/api/payments/abc":   http.StatusBadRequest,
		"/api/payments/99999": http.StatusNotFound,
		"/api/orders/xyz":     http.StatusBadRequest,
		"/api/orders/99999":   http.StatusNotFound,
		"/api/unknown":        http.StatusNotFound,
	}
	for target, want := range cases {
		resp := do(engine, http.MethodGet, target, nil)
		if resp.Code != want {
			t.Fatalf("%s: expected status %d, got %d", target, want, resp.Code)
		}
		var body dto.ErrorResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", target, err)
		}
		if body.Success || body.Message == "" {
			t.Fatalf("%s: unexpected body %+v", target, body)
		}
	}
}

func TestGzipRequestAndResponse(t *testing.T) {
	engine := newEngine(t)

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write([]byte(`{"paymentMethod":"debit_card"}`)); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/payments/process", &compressed)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got %q", resp.Header().Get("Content-Encoding"))
	}

	zr, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	var processed dto.ProcessResponse
	if err := json.NewDecoder(zr).Decode(&processed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if processed.Payment.Amount != 94.49 {
		t.Fatalf("unexpected amount %v", processed.Payment.Amount)
	}
}
