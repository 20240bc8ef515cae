package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
	"time"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]vehicleRecord
}

func (m *memoryCache) Get(ctx context.Context, key string, dest any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	records, ok := m.data[key]
	if !ok {
		return ErrCacheMiss
	}
	*dest.(*[]vehicleRecord) = records
	return nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = map[string][]vehicleRecord{}
	}
	m.data[key] = value.([]vehicleRecord)
	return nil
}

const catalogBody = `{"results":[
	{"make":"Toyota","model":"Innova"},
	{"make":"Toyota","model":"Innova"},
	{"make":"Toyota","model":"Fortuner"},
	{"make":"Maruti","model":"Ertiga"},
	{"make":"","model":"Ghost"}
]}`

func TestMakesAndModels(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, &memoryCache{})

	makes, err := c.Makes(context.Background())
	if err != nil {
		t.Fatalf("Makes error: %v", err)
	}
	if !reflect.DeepEqual(makes, []string{"Maruti", "Toyota"}) {
		t.Fatalf("makes = %v", makes)
	}

	mods, err := c.Models(context.Background(), "toyota")
	if err != nil {
		t.Fatalf("Models error: %v", err)
	}
	if !reflect.DeepEqual(mods, []string{"Fortuner", "Innova"}) {
		t.Fatalf("models = %v", mods)
	}

	none, err := c.Models(context.Background(), "Tesla")
	if err != nil || len(none) != 0 {
		t.Fatalf("unknown make should yield empty list, got %v (%v)", none, err)
	}

	if hits != 1 {
		t.Fatalf("dataset should be fetched once and cached, got %d hits", hits)
	}
}

func TestNilCacheFetchesEveryTime(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(catalogBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, nil)
	if _, err := c.Makes(context.Background()); err != nil {
		t.Fatalf("Makes error: %v", err)
	}
	if _, err := c.Makes(context.Background()); err != nil {
		t.Fatalf("Makes error: %v", err)
	}
	if hits != 2 {
		t.Fatalf("nil cache should fetch per call, got %d hits", hits)
	}
}
