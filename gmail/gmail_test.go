package gmail_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Molefas/ghost-writer/mock"
)

// memStore returns a mock.Store backed by a map.
func memStore(t *testing.T) (*mock.Store, map[string][]byte) {
	t.Helper()
	var mu sync.Mutex
	data := make(map[string][]byte)
	s := &mock.Store{
		GetFn: func(_ context.Context, key string) ([]byte, error) {
			mu.Lock()
			defer mu.Unlock()
			return data[key], nil
		},
		SetFn: func(_ context.Context, key string, value []byte) error {
			mu.Lock()
			defer mu.Unlock()
			data[key] = value
			return nil
		},
	}
	return s, data
}

// tokenServer serves OAuth2 token responses and records the grant types it saw.
func tokenServer(t *testing.T, resp map[string]any) (*httptest.Server, *[]string) {
	t.Helper()
	var grants []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		grants = append(grants, r.Form.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &grants
}
