package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/validation"
)

// Sentinel errors for catalog loading
var (
	ErrInvalidCatalog  = errors.New(ErrMsgInvalidCatalog)
	ErrDuplicateCropID = errors.New(ErrMsgDuplicateCropID)
)

//go:embed data/crops.json
var defaultCropsJSON []byte

//go:embed data/crops.schema.json
var cropsSchemaJSON []byte

// Config is the on-disk catalog document
type Config struct {
	Version     string    `json:"version" yaml:"version"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Crops       []CropDef `json:"crops" yaml:"crops"`
}

// CropDef is a single crop definition
type CropDef struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	GrowSeconds int64              `json:"grow_seconds" yaml:"grow_seconds"`
	Price       int64              `json:"price" yaml:"price"`
	SeedCost    int64              `json:"seed_cost,omitempty" yaml:"seed_cost,omitempty"`
	Odds        map[string]float64 `json:"odds,omitempty" yaml:"odds,omitempty"`
}

// Loader reads, validates and builds crop catalogs
type Loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a loader with the crop schema registered
func NewLoader() (*Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.Register(CropsSchemaName, cropsSchemaJSON); err != nil {
		return nil, fmt.Errorf("failed to register crop schema: %w", err)
	}
	return &Loader{schemaValidator: v}, nil
}

// LoadDefault returns the embedded catalog
func (l *Loader) LoadDefault() (*Catalog, error) {
	return l.parse(defaultCropsJSON, false)
}

// Load reads a catalog from path. Files ending in .yaml or .yml are parsed as YAML.
// An empty path returns the embedded catalog.
func (l *Loader) Load(path string) (*Catalog, error) {
	if path == "" {
		return l.LoadDefault()
	}

	slog.Default().Info(LogMsgCatalogOverride, "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadCatalog, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	return l.parse(data, ext == ".yaml" || ext == ".yml")
}

func (l *Loader) parse(data []byte, isYAML bool) (*Catalog, error) {
	jsonData := data
	if isYAML {
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgParseCatalog, err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgParseCatalog, err)
		}
		jsonData = converted
	}

	if err := l.schemaValidator.ValidateBytes(jsonData, CropsSchemaName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseCatalog, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	cat := New(cfg.toCrops())
	slog.Default().Debug(LogMsgCatalogLoaded, "crops", cat.Len())
	return cat, nil
}

// Validate checks rules the schema cannot express: unique ids and odds totals
func Validate(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Crops))
	for _, def := range cfg.Crops {
		if seen[def.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateCropID, def.ID)
		}
		seen[def.ID] = true

		if def.GrowSeconds <= 0 {
			return fmt.Errorf("%w: %s: %s", ErrInvalidCatalog, def.ID, ErrMsgNonPositiveGrow)
		}
		if def.Price < 0 || def.SeedCost < 0 {
			return fmt.Errorf("%w: %s: %s", ErrInvalidCatalog, def.ID, ErrMsgNegativeEconomic)
		}

		total := 0.0
		for tag, p := range def.Odds {
			v, ok := domain.ParseVariant(tag)
			if !ok || v == domain.VariantNormal {
				return fmt.Errorf("%w: %s: %s", ErrInvalidCatalog, def.ID, ErrMsgUnknownOddsTier)
			}
			total += p
		}
		// Small tolerance for decimal odds like 0.15+0.04+0.01
		if total > 1+1e-9 {
			return fmt.Errorf("%w: %s: %s", ErrInvalidCatalog, def.ID, ErrMsgOddsExceedOne)
		}
	}
	return nil
}

func (cfg *Config) toCrops() []domain.Crop {
	crops := make([]domain.Crop, 0, len(cfg.Crops))
	for _, def := range cfg.Crops {
		odds := make(map[domain.Variant]float64, len(def.Odds))
		for tag, p := range def.Odds {
			odds[domain.Variant(tag)] = p
		}
		crops = append(crops, domain.Crop{
			ID:          def.ID,
			Name:        def.Name,
			GrowSeconds: def.GrowSeconds,
			Price:       def.Price,
			SeedCost:    def.SeedCost,
			Odds:        odds,
		})
	}
	return crops
}

// MustDefault returns the embedded catalog and panics if it is malformed.
// The embedded document is covered by tests.
func MustDefault() *Catalog {
	l, err := NewLoader()
	if err != nil {
		panic(err)
	}
	cat, err := l.LoadDefault()
	if err != nil {
		panic(err)
	}
	return cat
}
