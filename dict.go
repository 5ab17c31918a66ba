package dict

// Dict is an open-addressing hash table from string keys to owned values.
//
// Every value may carry a Destructor, which the table calls exactly once when
// the value is overwritten by Set or when the table is destroyed. Removed
// values are handed back to the caller and never destroyed by the table.
//
// Removal leaves a tombstone behind. Tombstones are reclaimed when an insert
// hits the high-water mark: the table then either compacts at the same
// capacity, if tombstones take enough of it, or doubles. Capacity never
// shrinks.
//
// Dict is not safe for concurrent use. Iteration order is unspecified.
type Dict[V any] struct {
	table[V]
}

// Returns a new empty table.
// Panics with ErrInvalidConfig if the options don't validate.
func New[V any](opts ...Option) *Dict[V] {
	var d Dict[V]
	d.init(newConfig(opts...))

	return &d
}

// Creates or updates the entry for key.
// On update, the previous value's destructor is called and the entry
// count doesn't change. destroy may be nil.
func (d *Dict[V]) Set(key string, value V, destroy Destructor[V]) {
	d.mustBeAlive()
	d.set(key, value, destroy)
}

// Checks whether a key is in the table.
func (d *Dict[V]) Has(key string) bool {
	d.mustBeAlive()
	return d.has(key)
}

// Returns the value stored for key.
// The key must be present, check with Has first: Get panics with
// ErrKeyNotFound otherwise.
func (d *Dict[V]) Get(key string) V {
	d.mustBeAlive()
	return d.get(key)
}

// Removes key and returns its value. The caller takes ownership of the value,
// its destructor is not called. Panics with ErrKeyNotFound if key is absent.
func (d *Dict[V]) Remove(key string) V {
	d.mustBeAlive()
	return d.remove(key)
}

// Returns a fresh slice with every key in the table, in slot order.
func (d *Dict[V]) Keys() []string {
	d.mustBeAlive()
	return d.keys()
}

// Number of entries in the table.
func (d *Dict[V]) Len() int {
	d.mustBeAlive()
	return d.length
}

// Destroy calls the destructor of every remaining value and releases the
// slots. The table can't be used afterwards. Calling Destroy on a nil or an
// already destroyed table does nothing.
func (d *Dict[V]) Destroy() {
	if d == nil || d.slots == nil {
		return
	}

	d.destroy()
}
