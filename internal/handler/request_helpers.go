package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Owennied/HimmyGames/internal/farm"
	"github.com/Owennied/HimmyGames/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req PlantRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgRequestDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecoded, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// handleAction decodes REQ, runs the farm action and writes its result
func handleAction[REQ any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	action func(context.Context, REQ) (*farm.ActionResult, error),
) {
	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}
	respondAction(w, r, opName, func(ctx context.Context) (*farm.ActionResult, error) {
		return action(ctx, req)
	})
}

// respondAction runs a bodiless farm action and writes its result
func respondAction(
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	action func(context.Context) (*farm.ActionResult, error),
) {
	res, err := action(r.Context())
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	logger.FromContext(r.Context()).Info(fmt.Sprintf(LogMsgRequestSucceeded, opName), "message", res.Message)
	respondJSON(w, http.StatusOK, res)
}
