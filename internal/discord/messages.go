package discord

// Friendly message constants for Discord responses
const (
	MsgNotEnoughMoney = "💸 **Not Enough Money!**\nSell some crops first."
	MsgNothingToSell  = "🧺 **Nothing to Sell**\nHarvest something first."
	MsgStillGrowing   = "🌱 **Still Growing**\nCheck back with /farm."
	MsgUnknownCrop    = "❓ **Unknown Crop**\nMaybe check the spelling?"
	MsgNoSuchPlot     = "🟫 **No Such Plot**\nBuy more with /buyplot."
	MsgNoSuchFarmer   = "👩‍🌾 **No Such Farmer**\nHire one with /hire."

	MsgUnknownCropSuggestFmt = "❓ **Unknown Crop**\nDid you mean **%s**?"

	MsgGenericError     = "❌ Something went wrong."
	MsgAPIUnavailable   = "Error connecting to the farm."
	MsgMissingArguments = "Missing required arguments."
)

// API notices the bot rewrites into friendlier text. They match the
// messages the API sends in its error bodies.
const (
	apiNoticeNotEnoughMoney = "Not enough money"
	apiNoticeNothingToSell  = "You don't have any of that crop"
	apiNoticeNotReady       = "That crop is still growing"
	apiNoticeUnknownCrop    = "Unknown crop"
	apiNoticeDidYouMean     = "Did you mean "
	apiNoticeInvalidPlot    = "That plot doesn't exist"
	apiNoticeFarmerNotFound = "No farmer with that number"
)

// Embed colors
const (
	ColorFarm    = 0x2ecc71
	ColorPlant   = 0x27ae60
	ColorHarvest = 0xf1c40f
	ColorMarket  = 0xf39c12
	ColorFarmer  = 0x3498db
	ColorNotice  = 0x95a5a6
)
