package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, WithTokenProvider(func() string { return token }))
}

func TestClient_BearerInterceptor(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	})

	t.Run("token attached when present", func(t *testing.T) {
		c := newTestClient(t, handler, "tok123")
		_, err := c.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok123", gotAuth)
	})

	t.Run("no header when anonymous", func(t *testing.T) {
		c := newTestClient(t, handler, "")
		_, err := c.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClient_ListProducts(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/quanly/khohang/sanpham/conban" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"maSP":"P1","tenSP":"Ao Thun","phanLoai":"Thoi Trang","giaBan":100000,"soLuongTon":12},
			{"maSP":"P2","tenSP":"Ao So Mi","phanLoai":"Thoi Trang","giaBan":150000,"soLuongTon":8}
		]`))
	})
	c := newTestClient(t, handler, "")

	got, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "P1", got[0].Code)
	assert.Equal(t, "Ao Thun", got[0].Name)
	assert.True(t, got[0].SalePrice.Equal(decimal.NewFromInt(100000)),
		"price should decode exactly, got %s", got[0].SalePrice)
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Run("server error becomes RequestError with status", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "khong tim thay", http.StatusNotFound)
		})
		c := newTestClient(t, handler, "")

		_, err := c.ListOrders(context.Background())
		require.Error(t, err)

		var reqErr *RequestError
		require.True(t, errors.As(err, &reqErr))
		assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
		assert.True(t, reqErr.NotFound())
		assert.Contains(t, reqErr.Message, "khong tim thay")
	})

	t.Run("network error becomes RequestError with cause", func(t *testing.T) {
		c := New("http://127.0.0.1:1") // nothing listens here
		_, err := c.ListOrders(context.Background())
		require.Error(t, err)

		var reqErr *RequestError
		require.True(t, errors.As(err, &reqErr))
		assert.Zero(t, reqErr.StatusCode)
		assert.Error(t, reqErr.Err)
	})
}

func TestClient_StringEndpoints(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"raw text token", `eyJtoken`, "eyJtoken"},
		{"json-quoted token", `"eyJtoken"`, "eyJtoken"},
		{"surrounding whitespace", "  NV01\n", "NV01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			c := newTestClient(t, handler, "")

			got, err := c.Login(context.Background(), "admin", "secret")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_LoginPayload(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		// The backend expects the password under its own key.
		assert.Contains(t, string(body), `"matkhau":"secret"`)
		assert.Contains(t, string(body), `"username":"admin"`)
		_, _ = w.Write([]byte("tok"))
	})
	c := newTestClient(t, handler, "")

	_, err := c.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
}

func TestClient_TopCustomersRanked(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"A","total_spent":500},
			{"name":"B","total_spent":400},
			{"name":"C","total_spent":300}
		]`))
	})
	c := newTestClient(t, handler, "")

	got, err := c.GetTopCustomers(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, row := range got {
		assert.Equal(t, i+1, row.Rank)
	}
}

func TestSampleOrderLines(t *testing.T) {
	// Fallback detail rows must keep the total invariant so screens built on
	// them still add up.
	for _, code := range []string{"1", "42"} {
		lines := SampleOrderLines(code)
		for _, l := range lines {
			want := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
			if !l.LineTotal.Equal(want) {
				t.Errorf("order %s line %s: total %s != %s", code, l.Code, l.LineTotal, want)
			}
		}
	}
}
