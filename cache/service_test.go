package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type mockCacheService struct {
	result any
	err    error
	calls  int
}

func (m *mockCacheService) GetOrFetch(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	m.calls++
	if m.result != nil || m.err != nil {
		return m.result, m.err
	}
	return fetch(ctx)
}

func (m *mockCacheService) InvalidateKeys(ctx context.Context, keys []string) error { return nil }

func TestGetOrFetch_PassesThroughFetch(t *testing.T) {
	mock := &mockCacheService{}
	got, err := GetOrFetch(context.Background(), mock, "k", func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	if err != nil {
		t.Fatalf("GetOrFetch: %v", err)
	}
	if len(got) != 2 || got[1] != "b" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestGetOrFetch_NilResultReturnsZero(t *testing.T) {
	type Lookup interface{ Name() string }

	mock := &mockCacheService{}
	got, err := GetOrFetch[Lookup](context.Background(), mock, "k", func(ctx context.Context) (Lookup, error) {
		return nil, nil
	})
	if err != nil {
		t.Fatalf("GetOrFetch: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestGetOrFetch_InvalidResultType(t *testing.T) {
	mock := &mockCacheService{result: 42}
	_, err := GetOrFetch(context.Background(), mock, "k", func(ctx context.Context) (string, error) {
		return "never", nil
	})

	var tagged *goerrors.Error
	if !goerrors.As(err, &tagged) {
		t.Fatalf("expected tagged error, got %v", err)
	}
	if tagged.TextCode != ErrInvalidResultType.TextCode {
		t.Errorf("expected %s, got %s", ErrInvalidResultType.TextCode, tagged.TextCode)
	}
}

func TestGetOrFetch_PropagatesError(t *testing.T) {
	want := errors.New("boom")
	mock := &mockCacheService{err: want}
	_, err := GetOrFetch(context.Background(), mock, "k", func(ctx context.Context) (int, error) {
		return 0, nil
	})
	if !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}

func TestConfig_DisabledIsAlwaysValid(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled config should be valid: %v", err)
	}

	cfg.Enabled = true
	if err := cfg.Validate(); err == nil {
		t.Error("enabled empty config should be invalid")
	}
}

func TestNewCacheService(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.TTL = time.Minute

	svc, err := NewCacheService(cfg)
	if err != nil {
		t.Fatalf("NewCacheService: %v", err)
	}

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}
	for i := 0; i < 2; i++ {
		if _, err := GetOrFetch(context.Background(), svc, "k", fetch); err != nil {
			t.Fatalf("GetOrFetch: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected one fetch, got %d", calls)
	}

	if _, err := NewCacheService(Config{}); err == nil {
		t.Error("expected error for zero config")
	}
}

func TestGetOrFetch_SturdycKeepsFetchError(t *testing.T) {
	type Lookup interface{ Name() string }

	cfg := DefaultConfig()
	cfg.Enabled = true
	svc, err := NewCacheService(cfg)
	if err != nil {
		t.Fatalf("NewCacheService: %v", err)
	}

	want := errors.New("store unavailable")
	_, err = GetOrFetch[Lookup](context.Background(), svc, "lookup", func(ctx context.Context) (Lookup, error) {
		return nil, want
	})
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}

	got, err := GetOrFetch[Lookup](context.Background(), svc, "lookup", func(ctx context.Context) (Lookup, error) {
		return nil, nil
	})
	if err != nil {
		t.Fatalf("GetOrFetch: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestConfig_EarlyRefresh(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	if cfg.toInternal().EarlyRefresh != nil {
		t.Fatal("early refresh should be off by default")
	}

	cfg.EarlyRefresh = EarlyRefresh{
		Enabled:        true,
		MinAsync:       time.Second,
		MaxAsync:       2 * time.Second,
		Sync:           10 * time.Second,
		RetryBaseDelay: 100 * time.Millisecond,
	}
	er := cfg.toInternal().EarlyRefresh
	if er == nil {
		t.Fatal("expected early refresh settings")
	}
	if er.MinAsyncRefreshTime != time.Second || er.MaxAsyncRefreshTime != 2*time.Second {
		t.Errorf("unexpected async window: %+v", er)
	}
	if er.SyncRefreshTime != 10*time.Second || er.RetryBaseDelay != 100*time.Millisecond {
		t.Errorf("unexpected sync settings: %+v", er)
	}
	if _, err := NewCacheService(cfg); err != nil {
		t.Fatalf("NewCacheService: %v", err)
	}

	cfg.EarlyRefresh.MaxAsync = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected inverted refresh window to be rejected")
	}
}
