package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Plot errors
	ErrMsgInvalidPlot  = "no such plot"
	ErrMsgPlotOccupied = "plot is already planted"
	ErrMsgPlotEmpty    = "plot is empty"
	ErrMsgNotReady     = "crop is not ready yet"
	ErrMsgPlotTaken    = "plot already has a farmer"

	// Catalog errors
	ErrMsgUnknownCrop    = "unknown crop"
	ErrMsgUnknownVariant = "unknown variant"

	// Economy errors
	ErrMsgInsufficientFunds = "not enough money"
	ErrMsgInventoryEmpty    = "nothing to sell"

	// Farmer errors
	ErrMsgFarmerNotFound = "farmer not found"

	// Farm errors
	ErrMsgInvalidName = "invalid farm name"

	// Storage errors
	ErrMsgStorageFailed = "storage error"
)

// Rejections returned by farm operations.
// A rejected operation leaves the farm state unchanged.
var (
	ErrInvalidPlot  = errors.New(ErrMsgInvalidPlot)
	ErrPlotOccupied = errors.New(ErrMsgPlotOccupied)
	ErrPlotEmpty    = errors.New(ErrMsgPlotEmpty)
	ErrNotReady     = errors.New(ErrMsgNotReady)
	ErrPlotTaken    = errors.New(ErrMsgPlotTaken)

	ErrUnknownCrop    = errors.New(ErrMsgUnknownCrop)
	ErrUnknownVariant = errors.New(ErrMsgUnknownVariant)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInventoryEmpty    = errors.New(ErrMsgInventoryEmpty)

	ErrFarmerNotFound = errors.New(ErrMsgFarmerNotFound)

	ErrInvalidName = errors.New(ErrMsgInvalidName)

	ErrStorageFailed = errors.New(ErrMsgStorageFailed)
)

// UnknownCropError rejects crop input that names no catalog crop. Suggestion
// holds the display name of a close match, if any.
type UnknownCropError struct {
	Input      string
	Suggestion string
}

func (e *UnknownCropError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("%s %q", ErrMsgUnknownCrop, e.Input)
	}
	return fmt.Sprintf("%s %q, did you mean %s", ErrMsgUnknownCrop, e.Input, e.Suggestion)
}

func (e *UnknownCropError) Unwrap() error {
	return ErrUnknownCrop
}

// IsRejection reports whether err is one of the farm rejections above
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var rejections = []error{
	ErrInvalidPlot, ErrPlotOccupied, ErrPlotEmpty, ErrNotReady, ErrPlotTaken,
	ErrUnknownCrop, ErrUnknownVariant,
	ErrInsufficientFunds, ErrInventoryEmpty,
	ErrFarmerNotFound, ErrInvalidName,
}
