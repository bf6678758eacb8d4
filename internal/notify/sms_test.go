package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankajyadav-dev/ocean/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSMSSender_Send(t *testing.T) {
	var got smsRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	sender := NewSMSSender(config.SMSConfig{
		APIURL: srv.URL,
		Token:  "secret-token",
		From:   "+12025550100",
	}, time.Second, discardLogger())

	ok := sender.Send(context.Background(), "+12025550199", Message{Body: "hazard nearby"})

	assert.True(t, ok)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "+12025550199", got.To)
	assert.Equal(t, "+12025550100", got.From)
	assert.Equal(t, "hazard nearby", got.Body)
}

func TestSMSSender_ProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid destination", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	sender := NewSMSSender(config.SMSConfig{APIURL: srv.URL, Token: "t"}, time.Second, discardLogger())

	assert.False(t, sender.Send(context.Background(), "+12025550199", Message{Body: "x"}))
}

func TestSMSSender_Unconfigured(t *testing.T) {
	sender := NewSMSSender(config.SMSConfig{}, time.Second, discardLogger())

	assert.False(t, sender.Configured())
	// Must short-circuit without any network I/O.
	assert.False(t, sender.Send(context.Background(), "+12025550199", Message{Body: "x"}))
}

func TestSMSSender_EmptyDestination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for empty destination")
	}))
	defer srv.Close()

	sender := NewSMSSender(config.SMSConfig{APIURL: srv.URL, Token: "t"}, time.Second, discardLogger())

	assert.False(t, sender.Send(context.Background(), "", Message{Body: "x"}))
}

func TestSMSSender_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	sender := NewSMSSender(config.SMSConfig{APIURL: srv.URL, Token: "t"}, time.Second, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.False(t, sender.Send(ctx, "+12025550199", Message{Body: "x"}))
}
