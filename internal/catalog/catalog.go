package catalog

import (
	"github.com/Owennied/HimmyGames/internal/domain"
)

// Catalog is the immutable set of plantable crops, keyed by id.
// It is built once at startup and safe for concurrent reads.
type Catalog struct {
	order []string
	crops map[string]domain.Crop
}

// New builds a catalog from crops in the given order.
// Later duplicates are ignored; use Validate to reject them.
func New(crops []domain.Crop) *Catalog {
	c := &Catalog{
		order: make([]string, 0, len(crops)),
		crops: make(map[string]domain.Crop, len(crops)),
	}
	for _, crop := range crops {
		if _, exists := c.crops[crop.ID]; exists {
			continue
		}
		c.order = append(c.order, crop.ID)
		c.crops[crop.ID] = copyCrop(crop)
	}
	return c
}

// Lookup returns the crop with the given id
func (c *Catalog) Lookup(id string) (domain.Crop, bool) {
	crop, ok := c.crops[id]
	if !ok {
		return domain.Crop{}, false
	}
	return copyCrop(crop), true
}

// Has reports whether id is a catalog crop
func (c *Catalog) Has(id string) bool {
	_, ok := c.crops[id]
	return ok
}

// IDs returns crop ids in catalog order
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.order...)
}

// List returns every crop in catalog order
func (c *Catalog) List() []domain.Crop {
	out := make([]domain.Crop, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, copyCrop(c.crops[id]))
	}
	return out
}

// Len returns the number of crops
func (c *Catalog) Len() int {
	return len(c.order)
}

func copyCrop(crop domain.Crop) domain.Crop {
	if crop.Odds != nil {
		odds := make(map[domain.Variant]float64, len(crop.Odds))
		for v, p := range crop.Odds {
			odds[v] = p
		}
		crop.Odds = odds
	}
	return crop
}
