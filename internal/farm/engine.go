// Package farm holds the farm rules (Engine) and the service that owns one farm.
package farm

import (
	"time"

	"github.com/Owennied/HimmyGames/internal/catalog"
	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/variant"
)

// Engine applies farm operations to one owned state.
// It is not safe for concurrent use; Service serializes access.
//
// Every mutating method either succeeds or returns a domain rejection and
// leaves the state untouched.
type Engine struct {
	state   *domain.State
	catalog *catalog.Catalog
	sampler *variant.Sampler
	now     func() time.Time
}

// NewEngine creates an engine over state. A nil state starts a new farm and
// a nil clock uses time.Now.
func NewEngine(state *domain.State, cat *catalog.Catalog, sampler *variant.Sampler, now func() time.Time) *Engine {
	if state == nil {
		state = domain.NewState()
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		state:   state,
		catalog: cat,
		sampler: sampler,
		now:     now,
	}
}

// State returns a deep copy of the current state
func (e *Engine) State() *domain.State {
	return e.state.Clone()
}

// Catalog returns the crop catalog the engine plays with
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Money returns the current balance
func (e *Engine) Money() int64 {
	return e.state.Money
}

func (e *Engine) nowMillis() int64 {
	return e.now().UnixMilli()
}
