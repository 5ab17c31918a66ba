package dict

import (
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	strategyCompact = "compact"
	strategyGrow    = "grow"
)

// table is an open-addressing array of slots with linear probing.
//
// length counts live slots, occupied counts live slots and tombstones.
// The capacity policy keeps occupied < len(slots), so every probe sequence
// reaches an empty slot.
type table[V any] struct {
	slots []slot[V]
	mask  uint64

	length   int
	occupied int

	grows       int
	compactions int

	loadHigh float64
	loadLow  float64
	hashFunc HashFunc
	log      logrus.FieldLogger
}

func (t *table[V]) init(cfg Config) {
	t.slots = make([]slot[V], cfg.Capacity)
	t.mask = uint64(cfg.Capacity - 1)
	t.loadHigh = cfg.LoadHigh
	t.loadLow = cfg.LoadLow
	t.hashFunc = cfg.HashFunc
	t.log = cfg.Logger
}

func (t *table[V]) mustBeAlive() {
	if t.slots == nil {
		violation(ErrDestroyed, "dict: use of destroyed table")
	}
}

// locate returns the index of the live slot holding key, or the index of the
// first empty slot on its probe sequence if key is absent.
// Tombstones never terminate the scan.
func (t *table[V]) locate(key string) int {
	idx := t.hashFunc(key) & t.mask

	for {
		s := &t.slots[idx]
		switch s.state {
		case slotEmpty:
			return int(idx)
		case slotLive:
			if s.key == key {
				return int(idx)
			}
		}

		idx = (idx + 1) & t.mask
	}
}

func (t *table[V]) has(key string) bool {
	return t.slots[t.locate(key)].state == slotLive
}

func (t *table[V]) get(key string) V {
	s := &t.slots[t.locate(key)]
	if s.state != slotLive {
		violation(ErrKeyNotFound, "dict: get of absent key %q", key)
	}

	return s.value
}

func (t *table[V]) set(key string, value V, destroy Destructor[V]) {
	idx := t.locate(key)

	// Update in place: counters and the stored key stay as they are.
	if s := &t.slots[idx]; s.state == slotLive {
		s.release()
		s.value = value
		s.destroy = destroy

		return
	}

	if t.needsRebuild() {
		t.resize()
		idx = t.locate(key)
	}

	t.slots[idx] = slot[V]{
		state:   slotLive,
		key:     strings.Clone(key),
		value:   value,
		destroy: destroy,
	}
	t.length++
	t.occupied++
}

func (t *table[V]) remove(key string) V {
	s := &t.slots[t.locate(key)]
	if s.state != slotLive {
		violation(ErrKeyNotFound, "dict: remove of absent key %q", key)
	}

	value := s.value

	// Drop the key and value references but keep the slot non-empty,
	// so the probe chains passing through it stay intact.
	*s = slot[V]{state: slotTombstone}
	t.length--

	return value
}

func (t *table[V]) keys() []string {
	keys := make([]string, 0, t.length)
	for i := range t.slots {
		if t.slots[i].state == slotLive {
			keys = append(keys, t.slots[i].key)
		}
	}

	return keys
}

// needsRebuild reports whether inserting one more entry would bring the
// occupied share of the slots to loadHigh.
func (t *table[V]) needsRebuild() bool {
	return float64(t.occupied+1) >= t.loadHigh*float64(len(t.slots))
}

// shouldCompact reports whether tombstones alone take at least loadLow of
// the slots, so dropping them makes enough room without growing.
func (t *table[V]) shouldCompact() bool {
	return float64(t.occupied-t.length) >= t.loadLow*float64(len(t.slots))
}

func (t *table[V]) resize() {
	capacity, strategy := len(t.slots), strategyCompact
	if t.shouldCompact() {
		t.compactions++
	} else {
		capacity *= 2
		strategy = strategyGrow
		t.grows++
	}

	t.log.WithFields(logrus.Fields{
		"strategy":   strategy,
		"capacity":   capacity,
		"length":     t.length,
		"tombstones": t.occupied - t.length,
	}).Debug("dict: rebuilding table")

	t.rebuild(capacity)
}

// rebuild moves every live slot into a fresh array of the given capacity.
// Tombstones are dropped. Keys are moved, not copied, and the capacity
// policy is not consulted again.
func (t *table[V]) rebuild(capacity int) {
	old := t.slots

	t.slots = make([]slot[V], capacity)
	t.mask = uint64(capacity - 1)

	for i := range old {
		if old[i].state != slotLive {
			continue
		}

		t.slots[t.locate(old[i].key)] = old[i]
	}

	t.occupied = t.length
}

func (t *table[V]) destroy() {
	for i := range t.slots {
		if t.slots[i].state == slotLive {
			t.slots[i].release()
		}
	}

	t.log.WithFields(logrus.Fields{
		"capacity": len(t.slots),
		"length":   t.length,
	}).Debug("dict: table destroyed")

	t.slots = nil
	t.mask = 0
	t.length = 0
	t.occupied = 0
}
