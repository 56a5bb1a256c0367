package catalog

import (
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Resolver maps player input to crop ids. Only exact ids and display names
// resolve; near misses ("turnp") come back from Suggest instead.
type Resolver struct {
	catalog *Catalog
	cache   *expirable.LRU[string, string]
}

// NewResolver creates a resolver over the catalog
func NewResolver(c *Catalog) *Resolver {
	return &Resolver{
		catalog: c,
		cache:   expirable.NewLRU[string, string](ResolveCacheSize, nil, ResolveCacheTTL),
	}
}

// Resolve returns the crop id whose id or display name equals input,
// ignoring case and surrounding space
func (r *Resolver) Resolve(input string) (string, bool) {
	key := normalize(input)
	if key == "" {
		return "", false
	}
	for _, crop := range r.catalog.List() {
		if key == crop.ID || key == normalize(crop.Name) {
			return crop.ID, true
		}
	}
	return "", false
}

// Suggest returns the crop id closest to input within the edit-distance
// limit. Ties keep catalog order. Exact matches are suggested too.
func (r *Resolver) Suggest(input string) (string, bool) {
	key := normalize(input)
	if len(key) < MinFuzzyLength {
		return "", false
	}

	if id, ok := r.cache.Get(key); ok {
		return id, true
	}

	id, ok := r.closest(key)
	if !ok {
		return "", false
	}

	r.cache.Add(key, id)
	slog.Default().Debug(LogMsgCropSuggested, "input", input, "crop", id)
	return id, true
}

func (r *Resolver) closest(key string) (string, bool) {
	bestID := ""
	bestDist := -1
	for _, crop := range r.catalog.List() {
		for _, cand := range []string{crop.ID, normalize(crop.Name)} {
			dist := levenshtein.ComputeDistance(key, cand)
			if dist > distanceLimit(len(cand)) {
				continue
			}
			if bestDist < 0 || dist < bestDist {
				bestID, bestDist = crop.ID, dist
			}
		}
	}
	return bestID, bestDist >= 0
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
