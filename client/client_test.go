package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"udoo-web/models"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL), srv
}

func TestCallSetsBearerHeader(t *testing.T) {
	var gotAuth, gotAccept string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"status":true,"data":[]}`))
	})
	defer srv.Close()

	if _, err := c.Products(context.Background(), "tok-123"); err != nil {
		t.Fatalf("Products: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestEnvelopeFalseBecomesAPIError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false,"message":"Stok tidak mencukupi"}`))
	})
	defer srv.Close()

	err := c.Checkout(context.Background(), "tok", models.CheckoutRequest{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %v", err)
	}
	if apiErr.Message != "Stok tidak mencukupi" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestHTTPErrorFallsBackToStatusLine(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := c.Cart(context.Background(), "tok")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Message == "" {
		t.Error("Expected fallback message from status line")
	}
}

func TestManagedPrefix(t *testing.T) {
	tests := []struct {
		role models.Role
		want string
	}{
		{models.RoleAdmin, "/admin/products"},
		{models.RoleSeller, "/seller/products"},
		{models.RoleViewer, "/products"},
		{models.Role("unknown"), "/products"},
	}
	for _, tt := range tests {
		if got := managedPrefix(tt.role); got != tt.want {
			t.Errorf("managedPrefix(%s) = %s, want %s", tt.role, got, tt.want)
		}
	}
}

func TestProductPriceDecodesFromStringAndNumber(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":[
			{"id":1,"name":"A","price":"10000.00","stock":2},
			{"id":2,"name":"B","price":5000,"stock":1}
		]}`))
	})
	defer srv.Close()

	products, err := c.Products(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(products))
	}
	if products[0].Price.StringFixed(0) != "10000" {
		t.Errorf("Price A = %s", products[0].Price)
	}
	if products[1].Price.StringFixed(0) != "5000" {
		t.Errorf("Price B = %s", products[1].Price)
	}
}

func TestMutateDeduplicatesConcurrentWrites(t *testing.T) {
	var hits int64
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`{"status":true}`))
	})
	defer srv.Close()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.DeleteProduct(context.Background(), "tok", models.RoleSeller, 7); err != nil {
				t.Errorf("DeleteProduct: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt64(&hits); n != 1 {
		t.Errorf("Expected 1 upstream request for duplicate delete, got %d", n)
	}

	// Mutasi dengan kunci berbeda tidak boleh dilebur.
	if err := c.DeleteProduct(context.Background(), "tok", models.RoleSeller, 8); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if n := atomic.LoadInt64(&hits); n != 2 {
		t.Errorf("Expected 2 upstream requests total, got %d", n)
	}
}

func TestLoginReturnsAccessToken(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"status":true,"data":{"access_token":"tok-abc","token_type":"bearer"}}`))
	})
	defer srv.Close()

	token, err := c.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "rahasia1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "tok-abc" {
		t.Errorf("token = %q", token)
	}
}
