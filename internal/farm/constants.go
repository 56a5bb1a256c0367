package farm

// User-facing messages
const (
	MsgPlanted        = "Planted %s on plot %d"
	MsgHarvested      = "Harvested %s %s from plot %d"
	MsgSold           = "Sold %d %s for $%d"
	MsgPlotBought     = "Bought plot %d for $%d"
	MsgFarmerHired    = "Hired farmer #%d for $%d"
	MsgFarmerFired    = "Fired farmer #%d"
	MsgFarmerAssigned = "Farmer #%d now works plot %d"
	MsgFarmerUnassign = "Farmer #%d is off duty"
	MsgReplantSet     = "Farmer #%d will replant %s"
	MsgReplantCleared = "Farmer #%d will not replant"
	MsgRenamed        = "Farm renamed to %s"
	MsgReset          = "Farm reset"
)

// Log messages
const (
	LogMsgStateLoaded    = "Farm loaded"
	LogMsgSaveFailed     = "Failed to save farm"
	LogMsgPublishFailed  = "Failed to publish farm event"
	LogMsgActionRejected = "Farm action rejected"
	LogMsgActionApplied  = "Farm action applied"
	LogMsgTickApplied    = "Farmers worked their plots"
	LogMsgShuttingDown   = "Farm service shutting down, saving state"
	LogMsgTickJobFailed  = "Farm tick job failed"
)

// Action names used in logs
const (
	ActionPlant    = "plant"
	ActionHarvest  = "harvest"
	ActionSell     = "sell"
	ActionBuyPlot  = "buy_plot"
	ActionHire     = "hire"
	ActionFire     = "fire"
	ActionAssign   = "assign"
	ActionUnassign = "unassign"
	ActionReplant  = "replant"
	ActionRename   = "rename"
	ActionReset    = "reset"
)

// TickJobName identifies the farmer tick in the worker pool
const TickJobName = "farm_tick"
