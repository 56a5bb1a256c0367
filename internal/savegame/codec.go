// Package savegame maps the farm state to and from its persisted keys.
package savegame

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/storage"
)

// CropSet reports which crop ids the running catalog knows
type CropSet interface {
	Has(id string) bool
}

// LoadReport describes what Load had to repair
type LoadReport struct {
	FromVersion int      `json:"from_version"`
	Missing     []string `json:"missing,omitempty"`
	Fallbacks   []string `json:"fallbacks,omitempty"`
	Applied     []string `json:"applied,omitempty"`
}

// plotRecord is the stored shape of an occupied plot. Empty plots are JSON null.
type plotRecord struct {
	PlantID   string `json:"plantId"`
	PlantedAt int64  `json:"plantedAt"`
}

type farmerRecord struct {
	ID           int64   `json:"id"`
	AssignedPlot *int    `json:"assignedPlot"`
	AutoReplant  *string `json:"autoReplant,omitempty"`
}

// document is the decoded but not yet normalized save
type document struct {
	money   int64
	plots   []*plotRecord
	rawInv  map[string]json.RawMessage
	inv     domain.Inventory
	name    string
	farmers []farmerRecord
	counter int64
	version int
}

func newDocument() *document {
	return &document{
		plots:   []*plotRecord{nil},
		rawInv:  map[string]json.RawMessage{},
		inv:     domain.Inventory{},
		name:    domain.DefaultFarmName,
		farmers: []farmerRecord{},
		version: LegacySchemaVersion,
	}
}

// Load reads every key, falls back to defaults for missing or unreadable values,
// and runs the load-time migration. Only store failures are returned as errors.
func Load(ctx context.Context, store storage.Store, crops CropSet) (*domain.State, *LoadReport, error) {
	doc := newDocument()
	report := &LoadReport{}

	for _, key := range AllKeys {
		raw, ok, err := store.Get(ctx, key)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s %s: %w", domain.ErrStorageFailed, ErrMsgReadKey, key, err)
		}
		if !ok {
			report.Missing = append(report.Missing, key)
			continue
		}
		if err := doc.decode(key, raw); err != nil {
			slog.Default().Warn(LogMsgKeyFallback, "key", key, "error", err)
			report.Fallbacks = append(report.Fallbacks, key)
		}
	}

	report.FromVersion = doc.version
	report.Applied = migrate(doc, crops)
	for _, name := range report.Applied {
		slog.Default().Info(LogMsgMigrationApplied, "step", name)
	}

	state := doc.toState()
	slog.Default().Debug(LogMsgStateLoaded,
		"plots", len(state.Plots),
		"farmers", len(state.Farmers),
		"from_version", report.FromVersion)
	return state, report, nil
}

// decode fills one field of the document. On error the field keeps its default.
func (d *document) decode(key string, raw []byte) error {
	switch key {
	case KeyMoney:
		n, err := decodeInt(raw)
		if err != nil {
			return err
		}
		d.money = n
	case KeyPlots:
		var plots []*plotRecord
		if err := json.Unmarshal(raw, &plots); err != nil {
			return err
		}
		d.plots = plots
	case KeyInventory:
		inv := map[string]json.RawMessage{}
		if err := json.Unmarshal(raw, &inv); err != nil {
			return err
		}
		d.rawInv = inv
	case KeyName:
		d.name = decodeName(raw)
	case KeyFarmers:
		var farmers []farmerRecord
		if err := json.Unmarshal(raw, &farmers); err != nil {
			return err
		}
		if farmers == nil {
			farmers = []farmerRecord{}
		}
		d.farmers = farmers
	case KeyFarmerCounter:
		n, err := decodeInt(raw)
		if err != nil {
			return err
		}
		d.counter = n
	case KeySchemaVersion:
		n, err := decodeInt(raw)
		if err != nil {
			return err
		}
		d.version = int(n)
	}
	return nil
}

// decodeInt accepts a JSON number or a quoted number. Fractions are truncated;
// values outside the int64 range are an error.
func decodeInt(raw []byte) (int64, error) {
	text := strings.TrimSpace(string(raw))
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()
	var num json.Number
	if err := dec.Decode(&num); err != nil {
		return 0, err
	}
	if n, err := num.Int64(); err == nil {
		return n, nil
	}
	f, err := num.Float64()
	if err != nil {
		return 0, err
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%s: %s", ErrMsgIntOutOfRange, text)
	}
	return int64(f), nil
}

// decodeName accepts a JSON string or the bare text older saves wrote
func decodeName(raw []byte) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func (d *document) toState() *domain.State {
	state := &domain.State{
		Money:         d.money,
		Plots:         make([]domain.Plot, len(d.plots)),
		Inventory:     d.inv,
		FarmName:      d.name,
		Farmers:       make([]domain.Farmer, 0, len(d.farmers)),
		FarmerCounter: int(d.counter),
	}
	for i, p := range d.plots {
		if p != nil {
			state.Plots[i] = domain.Plot{Crop: p.PlantID, PlantedAt: p.PlantedAt}
		}
	}
	for _, f := range d.farmers {
		farmer := domain.Farmer{ID: int(f.ID)}
		if f.AssignedPlot != nil {
			idx := *f.AssignedPlot
			farmer.AssignedPlot = &idx
		}
		if f.AutoReplant != nil {
			farmer.AutoReplant = *f.AutoReplant
		}
		state.Farmers = append(state.Farmers, farmer)
	}
	return state
}

// Entry is one encoded key
type Entry struct {
	Key   string
	Value []byte
}

// Encode renders the state as the persisted keys, in AllKeys order
func Encode(state *domain.State) ([]Entry, error) {
	plots := make([]*plotRecord, len(state.Plots))
	for i, p := range state.Plots {
		if !p.IsEmpty() {
			plots[i] = &plotRecord{PlantID: p.Crop, PlantedAt: p.PlantedAt}
		}
	}

	inv := make(map[string][]domain.Variant, len(state.Inventory))
	for id, units := range state.Inventory {
		if len(units) > 0 {
			inv[id] = units
		}
	}

	farmers := make([]farmerRecord, 0, len(state.Farmers))
	for _, f := range state.Farmers {
		rec := farmerRecord{ID: int64(f.ID), AssignedPlot: f.AssignedPlot}
		if f.AutoReplant != "" {
			crop := f.AutoReplant
			rec.AutoReplant = &crop
		}
		farmers = append(farmers, rec)
	}

	values := map[string]interface{}{
		KeyMoney:         state.Money,
		KeyPlots:         plots,
		KeyInventory:     inv,
		KeyName:          state.FarmName,
		KeyFarmers:       farmers,
		KeyFarmerCounter: state.FarmerCounter,
		KeySchemaVersion: CurrentSchemaVersion,
	}

	entries := make([]Entry, 0, len(AllKeys))
	for _, key := range AllKeys {
		data, err := json.Marshal(values[key])
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgEncodeKey, key, err)
		}
		entries = append(entries, Entry{Key: key, Value: data})
	}
	return entries, nil
}

// Save writes the full snapshot. Keys are written independently, so a failure
// part way through leaves earlier keys updated.
func Save(ctx context.Context, store storage.Store, state *domain.State) error {
	entries, err := Encode(state)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := store.Set(ctx, e.Key, e.Value); err != nil {
			return fmt.Errorf("%w: %s %s: %w", domain.ErrStorageFailed, ErrMsgWriteKey, e.Key, err)
		}
	}
	return nil
}
