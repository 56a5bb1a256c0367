package server_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/farm"
	"github.com/Owennied/HimmyGames/internal/logger"
	"github.com/Owennied/HimmyGames/internal/server"
	"github.com/Owennied/HimmyGames/mocks"
)

// captureLogs routes the default logger into a buffer for the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var records []map[string]interface{}
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var rec map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &rec))
		records = append(records, rec)
	}
	return records
}

func findRecord(records []map[string]interface{}, msg string) map[string]interface{} {
	for _, r := range records {
		if r[slog.MessageKey] == msg {
			return r
		}
	}
	return nil
}

func TestRouter_LogsFarmRequestsWithoutSecrets(t *testing.T) {
	buf := captureLogs(t)

	svc := mocks.NewMockFarmService(t)
	svc.On("View", mock.Anything).Return(&farm.View{FarmName: domain.DefaultFarmName})
	router := server.NewRouter(server.Options{
		APIKey:      "secret-key-123",
		FarmService: svc,
		Readiness:   healthy(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/farm", nil)
	req.Header.Set(server.HeaderAPIKey, "secret-key-123")
	req.Header.Set(server.HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "FarmBot/1.0")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	out := buf.String()
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, server.RedactedValue)
	assert.Contains(t, out, "FarmBot/1.0")

	records := logRecords(t, buf)
	started := findRecord(records, server.LogMsgRequestStarted)
	completed := findRecord(records, server.LogMsgRequestCompleted)
	require.NotNil(t, started)
	require.NotNil(t, completed)

	assert.Equal(t, "/api/v1/farm", completed["path"])
	assert.Equal(t, float64(http.StatusOK), completed["status"])
	assert.NotEmpty(t, completed[logger.AttrKeyRequestID])
	assert.Equal(t, started[logger.AttrKeyRequestID], completed[logger.AttrKeyRequestID], "one request id per request")
}

func TestRouter_HealthChecksAreNotLogged(t *testing.T) {
	buf := captureLogs(t)

	router := server.NewRouter(server.Options{
		FarmService: mocks.NewMockFarmService(t),
		Readiness:   healthy(),
	})
	buf.Reset()

	for _, path := range []string{server.PathHealthz, server.PathReadyz} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	assert.Nil(t, findRecord(logRecords(t, buf), server.LogMsgRequestStarted))
}
