package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *[]time.Duration) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(ClientConfig{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		MaxRetries: 3,
		RetryDelay: 5 * time.Second,
	}, zap.NewNop().Sugar())

	var sleeps []time.Duration
	c.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	return c, &sleeps
}

func candidatesResponse(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
}

func TestGenerate_Success(t *testing.T) {
	var gotKey string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		fmt.Fprint(w, candidatesResponse("hello"))
	})

	text, err := c.Generate(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "test-key", gotKey)
}

func TestGenerate_RetriesOn503(t *testing.T) {
	// Три подряд 503: ровно 3 вызова, задержки 5s и 10s, ошибка
	var calls int
	c, sleeps := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Generate(context.Background(), "system", "user")
	require.Error(t, err)

	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second}, *sleeps)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestGenerate_RecoversAfterRetry(t *testing.T) {
	var calls int
	c, sleeps := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, candidatesResponse("recovered"))
	})

	text, err := c.Generate(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []time.Duration{5 * time.Second}, *sleeps)
}

func TestGenerate_FatalOn400(t *testing.T) {
	// 400 — дефект запроса: один вызов, без задержек
	var calls int
	c, sleeps := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.Generate(context.Background(), "system", "user")
	require.Error(t, err)

	assert.Equal(t, 1, calls)
	assert.Empty(t, *sleeps)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.False(t, apiErr.Retryable())
}

func TestGenerate_SchemaDrift(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "canonical candidates", body: candidatesResponse("a"), want: "a"},
		{name: "output field", body: `{"output":"b"}`, want: "b"},
		{name: "result field", body: `{"result":"c"}`, want: "c"},
		{name: "text field", body: `{"text":"d"}`, want: "d"},
		{name: "response field", body: `{"response":"e"}`, want: "e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			})
			text, err := c.Generate(context.Background(), "s", "u")
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestGenerate_UnknownResponseShape(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"something":"else"}`)
	})

	_, err := c.Generate(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestGenerate_ContextCancelled(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Generate(ctx, "s", "u")
	assert.Error(t, err)
}
