package discord

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	commandCounter.Store(0)
	RecordCommand()
	RecordCommand()

	t.Run("healthy when gateway and API are up", func(t *testing.T) {
		tc.Session.DataReady = true
		srv := NewHTTPServer("0", &Bot{Session: tc.Session, Client: tc.APIClient})

		rec := httptest.NewRecorder()
		srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var status HealthStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, int64(2), status.CommandsReceived)
		assert.NotNil(t, status.LastCommandTime)
		assert.False(t, status.EventsConnected)
	})

	t.Run("degraded when gateway is down", func(t *testing.T) {
		tc.Session.DataReady = false
		srv := NewHTTPServer("0", &Bot{Session: tc.Session, Client: tc.APIClient})

		rec := httptest.NewRecorder()
		srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"degraded"`)
	})

	t.Run("degraded when API is unreachable", func(t *testing.T) {
		tc.Session.DataReady = true
		srv := NewHTTPServer("0", &Bot{Session: tc.Session, Client: NewAPIClient("http://127.0.0.1:1", "")})

		rec := httptest.NewRecorder()
		srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandleAnnounce(t *testing.T) {
	tc := SetupTestContext(t)

	var posted []string
	tc.DiscordMocks.RoundTripFunc = func(req *http.Request) (*http.Response, error) {
		posted = append(posted, req.Method+" "+req.URL.Path)
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("{}")),
			Header:     make(http.Header),
		}, nil
	}

	withChannel := NewHTTPServer("0", &Bot{Session: tc.Session, notificationChanID: "chan-1"})
	noChannel := NewHTTPServer("0", &Bot{Session: tc.Session})

	tests := []struct {
		name   string
		srv    *HTTPServer
		method string
		body   string
		want   int
	}{
		{"posts embed", withChannel, http.MethodPost, `{"title":"Harvest festival","description":"Double gold today"}`, http.StatusOK},
		{"rejects GET", withChannel, http.MethodGet, "", http.StatusMethodNotAllowed},
		{"rejects missing title", withChannel, http.MethodPost, `{"description":"no title"}`, http.StatusBadRequest},
		{"rejects bad JSON", withChannel, http.MethodPost, `{`, http.StatusBadRequest},
		{"no channel configured", noChannel, http.MethodPost, `{"title":"Hello"}`, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/admin/announce", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			tt.srv.server.Handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	require.Len(t, posted, 1)
	assert.True(t, strings.HasPrefix(posted[0], http.MethodPost+" "))
	assert.True(t, strings.HasSuffix(posted[0], "/channels/chan-1/messages"))
}
