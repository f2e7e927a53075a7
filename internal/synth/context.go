package synth

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/anthropics/og/internal/model"
)

// Context carries everything a generator may touch: the profile, the single
// seeded RNG, the scaler, and read-only access to entities emitted by
// earlier layers. All randomness during generation flows through the
// context so that a seed fully determines the produced ids and values.
type Context struct {
	Profile *OrgProfile
	Scaler  *Scaler

	rng     *rand.Rand
	store   map[model.EntityType][]model.Entity
	usedIDs map[string]bool
}

// NewContext builds a generation context around a seeded RNG.
func NewContext(profile *OrgProfile, seed int64) *Context {
	rng := rand.New(rand.NewSource(seed))
	return &Context{
		Profile: profile,
		Scaler:  NewScaler(profile, rng),
		rng:     rng,
		store:   make(map[model.EntityType][]model.Entity),
		usedIDs: make(map[string]bool),
	}
}

// NewID returns a UUID drawn from the seeded RNG, so entity and
// relationship ids repeat across runs with the same seed.
func (c *Context) NewID() string {
	return uuid.Must(uuid.NewRandomFromReader(c.rng)).String()
}

// base wraps model.NewBase and replaces its crypto-random id with a
// deterministic one.
func (c *Context) base(kind model.EntityType, name, description string, tags ...string) model.Base {
	b := model.NewBase(kind, name, description, tags...)
	b.ID = c.NewID()
	return b
}

// Intn returns a value in [0, n). n must be positive.
func (c *Context) Intn(n int) int { return c.rng.Intn(n) }

// IntBetween returns a value in [lo, hi], both ends inclusive.
func (c *Context) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + c.rng.Intn(hi-lo+1)
}

// Uniform returns a value in [lo, hi).
func (c *Context) Uniform(lo, hi float64) float64 {
	return lo + c.rng.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func (c *Context) Chance(p float64) bool { return c.rng.Float64() < p }

// Store records a layer's output for later layers and the weaver.
func (c *Context) Store(kind model.EntityType, entities []model.Entity) {
	c.store[kind] = append(c.store[kind], entities...)
}

// Entities returns the stored entities of one kind in generation order.
func (c *Context) Entities(kind model.EntityType) []model.Entity {
	return c.store[kind]
}

// Total returns the number of stored entities across all kinds.
func (c *Context) Total() int {
	total := 0
	for _, list := range c.store {
		total += len(list)
	}
	return total
}

// employeeID draws an unused six digit employee number.
func (c *Context) employeeID() string {
	for {
		id := "EMP-" + padInt(c.IntBetween(100000, 999999), 6)
		if !c.usedIDs[id] {
			c.usedIDs[id] = true
			return id
		}
	}
}

// dateWithin returns a date up to years in the past, formatted 2006-01-02.
func (c *Context) dateWithin(years int) string {
	days := c.Intn(years*365 + 1)
	return time.Now().AddDate(0, 0, -days).Format("2006-01-02")
}

// dateAhead returns a date up to years in the future.
func (c *Context) dateAhead(years int) string {
	days := c.Intn(years*365 + 1)
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// dateAgoBetween returns a date between minDays and maxDays in the past.
func (c *Context) dateAgoBetween(minDays, maxDays int) string {
	return time.Now().AddDate(0, 0, -c.IntBetween(minDays, maxDays)).Format("2006-01-02")
}

// timeWithin returns an instant up to d in the past.
func (c *Context) timeWithin(d time.Duration) time.Time {
	back := time.Duration(c.rng.Int63n(int64(d)))
	return time.Now().Add(-back)
}

// pick returns one uniformly random element. items must be non-empty.
func pick[T any](c *Context, items []T) T {
	return items[c.rng.Intn(len(items))]
}

// sampleN returns up to n distinct elements in draw order, partial
// Fisher-Yates over a copy.
func sampleN[T any](c *Context, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return nil
	}
	cp := make([]T, len(items))
	copy(cp, items)
	for i := 0; i < n; i++ {
		j := i + c.rng.Intn(len(cp)-i)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[:n]
}

// entitiesAs returns the stored entities of one kind downcast to their
// concrete type.
func entitiesAs[T model.Entity](c *Context, kind model.EntityType) []T {
	src := c.store[kind]
	out := make([]T, 0, len(src))
	for _, e := range src {
		out = append(out, e.(T))
	}
	return out
}
