package savegame

import (
	"encoding/json"
	"strings"

	"github.com/Owennied/HimmyGames/internal/domain"
)

// step is one idempotent normalization. apply reports whether it changed anything.
type step struct {
	name  string
	apply func(d *document, crops CropSet) bool
}

// Step names, in the order they run
const (
	StepInventoryUnits     = "inventory_counts_to_units"
	StepRenumberFarmers    = "renumber_farmers"
	StepDropUnknownCrops   = "drop_unknown_crops"
	StepStarterPlot        = "ensure_starter_plot"
	StepStaleAssignments   = "drop_stale_assignments"
	StepClampMoney         = "clamp_money"
	StepDefaultName        = "default_farm_name"
	StepStampSchemaVersion = "stamp_schema_version"
)

var steps = []step{
	{StepInventoryUnits, upgradeInventory},
	{StepRenumberFarmers, renumberFarmers},
	{StepDropUnknownCrops, dropUnknownCrops},
	{StepStarterPlot, ensureStarterPlot},
	{StepStaleAssignments, dropStaleAssignments},
	{StepClampMoney, clampMoney},
	{StepDefaultName, defaultName},
	{StepStampSchemaVersion, stampVersion},
}

// migrate runs every step in order and returns the names of those that changed the document
func migrate(d *document, crops CropSet) []string {
	var applied []string
	for _, s := range steps {
		if s.apply(d, crops) {
			applied = append(applied, s.name)
		}
	}
	return applied
}

// upgradeInventory turns each inventory entry into a list of variant tags.
// Legacy saves stored a plain count, which becomes that many normal units.
// Unrecognized tags are kept as normal.
func upgradeInventory(d *document, _ CropSet) bool {
	changed := false
	inv := make(domain.Inventory, len(d.rawInv))

	for id, raw := range d.rawInv {
		var tags []string
		if err := json.Unmarshal(raw, &tags); err == nil {
			units := make([]domain.Variant, 0, len(tags))
			for _, tag := range tags {
				v, ok := domain.ParseVariant(tag)
				if !ok {
					v = domain.VariantNormal
					changed = true
				}
				units = append(units, v)
			}
			if len(units) > 0 {
				inv[id] = units
			}
			continue
		}

		changed = true
		count, err := decodeInt(raw)
		if err != nil || count <= 0 {
			continue
		}
		if count > MaxLegacyUnits {
			count = MaxLegacyUnits
		}
		units := make([]domain.Variant, count)
		for i := range units {
			units[i] = domain.VariantNormal
		}
		inv[id] = units
	}

	d.inv = inv
	return changed
}

// renumberFarmers rewrites ids to 1..N in list order when they are not already
// dense (older saves used creation timestamps) and keeps the counter at N.
func renumberFarmers(d *document, _ CropSet) bool {
	changed := false
	for i := range d.farmers {
		want := int64(i + 1)
		if d.farmers[i].ID != want {
			d.farmers[i].ID = want
			changed = true
		}
	}
	if n := int64(len(d.farmers)); d.counter != n {
		d.counter = n
		changed = true
	}
	return changed
}

// dropUnknownCrops clears plots, inventory and auto-replant targets naming
// crops the catalog does not have
func dropUnknownCrops(d *document, crops CropSet) bool {
	changed := false
	for i, p := range d.plots {
		if p != nil && !crops.Has(p.PlantID) {
			d.plots[i] = nil
			changed = true
		}
	}
	for id := range d.inv {
		if !crops.Has(id) {
			delete(d.inv, id)
			changed = true
		}
	}
	for i := range d.farmers {
		if r := d.farmers[i].AutoReplant; r != nil && (*r == "" || !crops.Has(*r)) {
			d.farmers[i].AutoReplant = nil
			changed = true
		}
	}
	return changed
}

func ensureStarterPlot(d *document, _ CropSet) bool {
	if len(d.plots) > 0 {
		return false
	}
	d.plots = []*plotRecord{nil}
	return true
}

// dropStaleAssignments unassigns farmers pointing outside the plot list and
// every farmer after the first on a shared plot
func dropStaleAssignments(d *document, _ CropSet) bool {
	changed := false
	taken := make(map[int]bool)
	for i := range d.farmers {
		a := d.farmers[i].AssignedPlot
		if a == nil {
			continue
		}
		if *a < 0 || *a >= len(d.plots) || taken[*a] {
			d.farmers[i].AssignedPlot = nil
			changed = true
			continue
		}
		taken[*a] = true
	}
	return changed
}

func clampMoney(d *document, _ CropSet) bool {
	if d.money >= 0 {
		return false
	}
	d.money = 0
	return true
}

func defaultName(d *document, _ CropSet) bool {
	trimmed := strings.TrimSpace(d.name)
	if trimmed == "" {
		d.name = domain.DefaultFarmName
		return true
	}
	if trimmed != d.name {
		d.name = trimmed
		return true
	}
	return false
}

func stampVersion(d *document, _ CropSet) bool {
	if d.version == CurrentSchemaVersion {
		return false
	}
	d.version = CurrentSchemaVersion
	return true
}
