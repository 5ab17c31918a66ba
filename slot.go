package dict

type slotState uint8

const (
	slotEmpty slotState = iota
	slotLive
	// A removed entry. It keeps probe chains running through it intact
	// until the next rebuild.
	slotTombstone
)

type slot[V any] struct {
	state   slotState
	key     string
	value   V
	destroy Destructor[V]
}

// Destructor releases a value owned by the table. It is called exactly once,
// when the value is overwritten or the table is destroyed.
type Destructor[V any] func(V)

func (s *slot[V]) release() {
	if s.destroy != nil {
		s.destroy(s.value)
	}
}
