package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/farm"
)

const (
	progressBarWidth = 10
	maxEmbedFields   = 25
)

var titleCaser = cases.Title(language.English)

// titleCase turns ids like "golden_wheat" into "Golden Wheat"
func titleCase(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

func variantEmoji(v domain.Variant) string {
	switch v {
	case domain.VariantSilver:
		return "🥈"
	case domain.VariantGold:
		return "🥇"
	case domain.VariantDiamond:
		return "💎"
	default:
		return ""
	}
}

// variantLabel renders a tier for display. Normal has no badge.
func variantLabel(v domain.Variant) string {
	if v == "" || v == domain.VariantNormal {
		return titleCase(string(domain.VariantNormal))
	}
	return variantEmoji(v) + " " + titleCase(string(v))
}

func progressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * progressBarWidth / 100
	return strings.Repeat("▰", filled) + strings.Repeat("▱", progressBarWidth-filled)
}

func formatMoney(amount int64) string {
	return fmt.Sprintf("💰 %d", amount)
}

// formatActionResult is the description of a successful action embed
func formatActionResult(res *farm.ActionResult) string {
	var b strings.Builder
	b.WriteString(res.Message)
	if res.Variant != "" && res.Variant != domain.VariantNormal {
		fmt.Fprintf(&b, " %s", variantEmoji(res.Variant))
	}
	if res.Farm != nil {
		fmt.Fprintf(&b, "\n\n**Balance:** %s", formatMoney(res.Farm.Money))
	}
	return b.String()
}

func formatPlot(p farm.PlotView) string {
	if p.Empty {
		return "🟫 Empty"
	}
	name := p.CropName
	if name == "" {
		name = titleCase(p.Crop)
	}
	if p.Ready {
		return fmt.Sprintf("🌾 **%s** ready!", name)
	}
	return fmt.Sprintf("🌱 %s %s %d%%", name, progressBar(p.GrowthPercent), p.GrowthPercent)
}

func formatInventory(items []farm.InventoryView) string {
	if len(items) == 0 {
		return "Nothing harvested yet"
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		var tiers []string
		for _, v := range domain.Variants {
			if n := item.ByTier[v]; n > 0 && v != domain.VariantNormal {
				tiers = append(tiers, fmt.Sprintf("%s×%d", variantEmoji(v), n))
			}
		}
		line := fmt.Sprintf("**%s** x%d", item.Name, item.Count)
		if len(tiers) > 0 {
			line += " (" + strings.Join(tiers, " ") + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatFarmers(farmers []farm.FarmerView) string {
	if len(farmers) == 0 {
		return "No farmers hired"
	}
	lines := make([]string, 0, len(farmers))
	for _, f := range farmers {
		plot := "idle"
		if f.AssignedPlot != nil {
			plot = fmt.Sprintf("plot %d", *f.AssignedPlot+1)
		}
		replant := "off"
		if f.AutoReplant != "" {
			replant = titleCase(f.AutoReplant)
		}
		lines = append(lines, fmt.Sprintf("👩‍🌾 #%d · %s · replant: %s", f.ID, plot, replant))
	}
	return strings.Join(lines, "\n")
}

// farmEmbed renders the whole farm. Plot numbers are 1-based.
func farmEmbed(v *farm.View) *discordgo.MessageEmbed {
	embed := createEmbed("🚜 "+v.FarmName, "**Money:** "+formatMoney(v.Money), ColorFarm, "")

	// Leave room for the inventory and farmer fields
	plotFields := maxEmbedFields - 2
	for _, p := range v.Plots {
		if len(embed.Fields) >= plotFields {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Plot %d", p.Index+1),
			Value:  formatPlot(p),
			Inline: true,
		})
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Inventory", Value: formatInventory(v.Inventory)},
		&discordgo.MessageEmbedField{Name: "Farmers", Value: formatFarmers(v.Farmers)},
	)

	embed.Description += fmt.Sprintf("\nNext plot: %s · Farmer: %s", formatMoney(v.NextPlotCost), formatMoney(v.FarmerCost))
	return embed
}

// marketEmbed renders the market listing
func marketEmbed(entries []farm.MarketEntry) *discordgo.MessageEmbed {
	embed := createEmbed("🏪 Market", "Unit prices by tier", ColorMarket, "")
	for _, e := range entries {
		if len(embed.Fields) >= maxEmbedFields {
			break
		}
		prices := make([]string, 0, len(domain.Variants))
		for _, v := range domain.Variants {
			prices = append(prices, fmt.Sprintf("%s %d", variantLabel(v), e.UnitPrices[v]))
		}
		value := fmt.Sprintf("Seed %d · Held %d · Sell all %d\n%s",
			e.SeedCost, e.Held, e.SellAll, strings.Join(prices, " · "))
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  e.Name,
			Value: value,
		})
	}
	return embed
}
