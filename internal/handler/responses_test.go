package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Owennied/HimmyGames/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{domain.ErrUnknownCrop, http.StatusNotFound, ErrMsgUnknownCropNotice},
		{&domain.UnknownCropError{Input: "parrot", Suggestion: "Carrot"}, http.StatusNotFound, "Unknown crop. Did you mean Carrot?"},
		{&domain.UnknownCropError{Input: "potato"}, http.StatusNotFound, ErrMsgUnknownCropNotice},
		{domain.ErrFarmerNotFound, http.StatusNotFound, ErrMsgFarmerNotFoundNotice},
		{domain.ErrUnknownVariant, http.StatusBadRequest, ErrMsgUnknownVariantNotice},
		{domain.ErrInvalidName, http.StatusBadRequest, ErrMsgInvalidNameNotice},
		{domain.ErrInvalidPlot, http.StatusConflict, ErrMsgInvalidPlotNotice},
		{domain.ErrPlotOccupied, http.StatusConflict, ErrMsgPlotOccupiedNotice},
		{domain.ErrPlotEmpty, http.StatusConflict, ErrMsgPlotEmptyNotice},
		{domain.ErrNotReady, http.StatusConflict, ErrMsgNotReadyNotice},
		{domain.ErrPlotTaken, http.StatusConflict, ErrMsgPlotTakenNotice},
		{domain.ErrInsufficientFunds, http.StatusConflict, ErrMsgNotEnoughMoneyNotice},
		{domain.ErrInventoryEmpty, http.StatusConflict, ErrMsgNothingToSellNotice},
		{fmt.Errorf("plant: %w", domain.ErrPlotOccupied), http.StatusConflict, ErrMsgPlotOccupiedNotice},
		{domain.ErrStorageFailed, http.StatusInternalServerError, ErrMsgGenericServerError},
		{nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, msg)
		})
	}
}
