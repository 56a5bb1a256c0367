package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgUnauthorized          = "Unauthorized"
)

// User-facing notices for farm rejections
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgInvalidPlotNotice    = "That plot doesn't exist"
	ErrMsgPlotOccupiedNotice   = "That plot is already planted"
	ErrMsgPlotEmptyNotice      = "Nothing is growing on that plot"
	ErrMsgNotReadyNotice       = "That crop is still growing"
	ErrMsgPlotTakenNotice      = "Another farmer already works that plot"
	ErrMsgUnknownCropNotice    = "Unknown crop"
	ErrMsgUnknownVariantNotice = "Unknown variant. Use normal, silver, gold or diamond"
	ErrMsgNotEnoughMoneyNotice = "Not enough money"
	ErrMsgNothingToSellNotice  = "You don't have any of that crop"
	ErrMsgFarmerNotFoundNotice = "No farmer with that number"
	ErrMsgInvalidNameNotice    = "Farm names must be 1-64 characters"

	ErrMsgUnknownCropSuggestFmt = "Unknown crop. Did you mean %s?"
)

// Health messages
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgStorageUnavailable   = "storage check failed"
)

// Log messages
const (
	LogMsgRequestDecodeFailed = "Failed to decode %s request"
	LogMsgRequestDecoded      = "%s request decoded"
	LogMsgRequestRejected     = "%s rejected"
	LogMsgRequestFailed       = "%s failed"
	LogMsgRequestSucceeded    = "%s succeeded"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgReadinessFailed     = "Readiness check failed"
)
