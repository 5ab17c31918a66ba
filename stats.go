package dict

type Stats struct {
	Length                  int
	Occupied                int
	Tombstones              int
	Capacity                int
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32

	// Number of rebuilds of each kind since New.
	Grows       int
	Compactions int
}

func (t *table[V]) stats() Stats {
	s := Stats{
		Length:      t.length,
		Occupied:    t.occupied,
		Tombstones:  t.occupied - t.length,
		Capacity:    len(t.slots),
		Grows:       t.grows,
		Compactions: t.compactions,
	}

	s.TombstonesCapacityRatio = float32(s.Tombstones) / float32(s.Capacity)
	if s.Length > 0 {
		s.TombstonesSizeRatio = float32(s.Tombstones) / float32(s.Length)
	}

	return s
}

// Returns a snapshot of the table's occupancy.
func (d *Dict[V]) Stats() Stats {
	d.mustBeAlive()
	return d.stats()
}
