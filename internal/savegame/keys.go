package savegame

// Persisted keys. Each holds one JSON document.
const (
	KeyMoney         = "tinyfarm_money_v1"
	KeyPlots         = "tinyfarm_plots_v1"
	KeyInventory     = "tinyfarm_inv_v1"
	KeyName          = "tinyfarm_name_v1"
	KeyFarmers       = "tinyfarm_farmers_v1"
	KeyFarmerCounter = "tinyfarm_farmer_counter_v1"
	KeySchemaVersion = "tinyfarm_schema_version"
)

// AllKeys lists every key written by Save, in write order
var AllKeys = []string{
	KeyMoney,
	KeyPlots,
	KeyInventory,
	KeyName,
	KeyFarmers,
	KeyFarmerCounter,
	KeySchemaVersion,
}

// Schema versions. Saves without a version marker are treated as LegacySchemaVersion.
const (
	LegacySchemaVersion  = 1
	CurrentSchemaVersion = 2
)
