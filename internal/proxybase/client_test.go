package proxybase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(url string) *Client {
	return NewClient(url, 2*time.Second)
}

func TestClientStripsTrailingSlash(t *testing.T) {
	c := newTestClient("http://example.com/")
	if c.baseURL != "http://example.com" {
		t.Errorf("expected trailing slash stripped, got %q", c.baseURL)
	}

	c = newTestClient("http://example.com")
	if c.baseURL != "http://example.com" {
		t.Errorf("base URL without slash should be unchanged, got %q", c.baseURL)
	}
}

func TestRegisterAgentUnauthenticated(t *testing.T) {
	var gotMethod, gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		w.Write([]byte(`{"api_key":"pk_new"}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).RegisterAgent(context.Background())
	if err != nil {
		t.Fatalf("register agent: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/v1/agents" {
		t.Errorf("expected POST /v1/agents, got %s %s", gotMethod, gotPath)
	}
	if gotKey != "" {
		t.Errorf("register_agent must not send an API key, got %q", gotKey)
	}

	body, ok := result.(map[string]interface{})
	if !ok || body["api_key"] != "pk_new" {
		t.Errorf("unexpected result %#v", result)
	}
}

func TestListPackagesSendsAPIKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		w.Write([]byte(`{"packages":[]}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).ListPackages(context.Background(), "pk_test"); err != nil {
		t.Fatalf("list packages: %v", err)
	}
	if gotKey != "pk_test" {
		t.Errorf("expected X-API-Key 'pk_test', got %q", gotKey)
	}
}

func TestCreateOrderOmitsAbsentOptionalFields(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(`{"order_id":"ord_1"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.CreateOrder(context.Background(), "pk_test", "us_residential_1gb", "", ""); err != nil {
		t.Fatalf("create order: %v", err)
	}

	if gotBody["package_id"] != "us_residential_1gb" {
		t.Errorf("expected package_id in body, got %#v", gotBody)
	}
	if _, present := gotBody["pay_currency"]; present {
		t.Error("pay_currency must be omitted when not supplied")
	}
	if _, present := gotBody["callback_url"]; present {
		t.Error("callback_url must be omitted when not supplied")
	}
}

func TestCreateOrderIncludesSuppliedOptionalFields(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"order_id":"ord_2"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.CreateOrder(context.Background(), "pk_test", "us_residential_1gb", "btc", "https://hooks.example.com/x")
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if gotBody["pay_currency"] != "btc" {
		t.Errorf("expected pay_currency 'btc', got %#v", gotBody)
	}
	if gotBody["callback_url"] != "https://hooks.example.com/x" {
		t.Errorf("expected callback_url, got %#v", gotBody)
	}
}

func TestOrderPathsInterpolateOrderID(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	ctx := context.Background()

	if _, err := c.CheckOrderStatus(ctx, "pk_test", "ord_9"); err != nil {
		t.Fatalf("check order status: %v", err)
	}
	if _, err := c.TopupOrder(ctx, "pk_test", "ord_9", "us_residential_1gb", ""); err != nil {
		t.Fatalf("topup order: %v", err)
	}
	if _, err := c.RotateProxy(ctx, "pk_test", "ord_9"); err != nil {
		t.Fatalf("rotate proxy: %v", err)
	}

	want := []string{
		"GET /v1/orders/ord_9/status",
		"POST /v1/orders/ord_9/topup",
		"POST /v1/orders/ord_9/rotate",
	}
	if len(paths) != len(want) {
		t.Fatalf("expected %d requests, got %d: %v", len(want), len(paths), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("request %d: expected %q, got %q", i, want[i], paths[i])
		}
	}
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"insufficient funds"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListPackages(context.Background(), "pk_test")
	if err == nil {
		t.Fatal("expected error for 402 response")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "API error (402") {
		t.Errorf("expected status embedded in message, got %q", msg)
	}
	if !strings.Contains(msg, "insufficient funds") {
		t.Errorf("expected body embedded in message, got %q", msg)
	}
}

func TestNonJSONBodyBecomesParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListCurrencies(context.Background(), "pk_test")
	if err == nil {
		t.Fatal("expected error for non-JSON body")
	}
	if !strings.HasPrefix(err.Error(), "Parse error:") {
		t.Errorf("expected parse error, got %q", err.Error())
	}
}

func TestTransportFailureBecomesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).RegisterAgent(context.Background())
	if err == nil {
		t.Fatal("expected error for unreachable backend")
	}
	if !strings.HasPrefix(err.Error(), "HTTP error:") {
		t.Errorf("expected HTTP error, got %q", err.Error())
	}
}
