package catalog

import "time"

// Schema registration names
const (
	CropsSchemaName = "crops.schema.json"
)

// Crop name suggestion tuning
const (
	ResolveCacheSize = 128
	ResolveCacheTTL  = 10 * time.Minute
	MinFuzzyLength   = 3
)

// Log messages
const (
	LogMsgCatalogLoaded   = "Crop catalog loaded"
	LogMsgCatalogOverride = "Loading crop catalog override"
	LogMsgCropSuggested   = "Suggested crop name"
)

// Error messages
const (
	ErrMsgReadCatalog      = "failed to read catalog"
	ErrMsgParseCatalog     = "failed to parse catalog"
	ErrMsgInvalidCatalog   = "invalid catalog"
	ErrMsgDuplicateCropID  = "duplicate crop id"
	ErrMsgOddsExceedOne    = "variant odds sum to more than 1"
	ErrMsgUnknownOddsTier  = "odds may only name silver, gold or diamond"
	ErrMsgNonPositiveGrow  = "grow_seconds must be positive"
	ErrMsgNegativeEconomic = "price and seed_cost must not be negative"
)
