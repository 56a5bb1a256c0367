package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error(LogMsgEncodeFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed farm action and writes the mapped notice
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgRequestFailed, opName), "error", err)
	} else {
		log.Info(fmt.Sprintf(LogMsgRequestRejected, opName), "reason", err.Error())
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps farm rejections to an HTTP status and a
// notice the player can act on. Rejections conflict with the current farm
// (409) unless they name something that doesn't exist (404) or the input
// itself is malformed (400).
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var unknownCrop *domain.UnknownCropError
	switch {
	case errors.As(err, &unknownCrop) && unknownCrop.Suggestion != "":
		return http.StatusNotFound, fmt.Sprintf(ErrMsgUnknownCropSuggestFmt, unknownCrop.Suggestion)
	case errors.Is(err, domain.ErrUnknownCrop):
		return http.StatusNotFound, ErrMsgUnknownCropNotice
	case errors.Is(err, domain.ErrFarmerNotFound):
		return http.StatusNotFound, ErrMsgFarmerNotFoundNotice
	case errors.Is(err, domain.ErrUnknownVariant):
		return http.StatusBadRequest, ErrMsgUnknownVariantNotice
	case errors.Is(err, domain.ErrInvalidName):
		return http.StatusBadRequest, ErrMsgInvalidNameNotice
	case errors.Is(err, domain.ErrInvalidPlot):
		return http.StatusConflict, ErrMsgInvalidPlotNotice
	case errors.Is(err, domain.ErrPlotOccupied):
		return http.StatusConflict, ErrMsgPlotOccupiedNotice
	case errors.Is(err, domain.ErrPlotEmpty):
		return http.StatusConflict, ErrMsgPlotEmptyNotice
	case errors.Is(err, domain.ErrNotReady):
		return http.StatusConflict, ErrMsgNotReadyNotice
	case errors.Is(err, domain.ErrPlotTaken):
		return http.StatusConflict, ErrMsgPlotTakenNotice
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict, ErrMsgNotEnoughMoneyNotice
	case errors.Is(err, domain.ErrInventoryEmpty):
		return http.StatusConflict, ErrMsgNothingToSellNotice
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
