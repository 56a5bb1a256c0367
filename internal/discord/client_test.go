package discord

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Owennied/HimmyGames/internal/domain"
)

func TestAPIClient_DecodesErrorBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/plots/buy", func(w http.ResponseWriter, r *http.Request) {
		WriteAPIError(w, http.StatusConflict, apiNoticeNotEnoughMoney)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewAPIClient(server.URL, "")
	_, err := client.BuyPlot()
	require.Error(t, err)
	assert.True(t, IsAPIError(err, http.StatusConflict))
	assert.Equal(t, "API error: "+apiNoticeNotEnoughMoney, err.Error())
}

func TestAPIClient_StatusWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := NewAPIClient(server.URL, "").GetFarm()
	require.Error(t, err)
	assert.True(t, IsAPIError(err, http.StatusUnauthorized))
	assert.Equal(t, "API returned status: 401", err.Error())
}

func TestAPIClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		WriteJSON(w, []domain.Crop{{ID: domain.CropCarrot, Name: "Carrot"}})
	}))
	defer server.Close()

	crops, err := NewAPIClient(server.URL, "").GetCrops()
	require.NoError(t, err)
	assert.Len(t, crops, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestAPIClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/healthz", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	client := NewAPIClient(server.URL, "")
	assert.True(t, client.Ping())

	server.Close()
	assert.False(t, client.Ping())
}
