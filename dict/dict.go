// Package dict provides a hash table built from scratch on chained
// collision buckets, hashed with 64-bit murmur3.
package dict

import (
	"fmt"
	"iter"

	"github.com/spaolacci/murmur3"
)

const (
	// initTableSize is the bucket count of a freshly initialized
	// table. Always a power of two so the hash can be masked instead
	// of divided.
	initTableSize = 4

	// resizeRatio is the entries-per-bucket ratio at which the table
	// doubles.
	resizeRatio = 1
)

// A Dict maps keys to values using a chained hash table. The table
// doubles and rehashes whenever its entry count reaches its bucket
// count. The zero value is an empty Dict ready to use.
//
// Keys are hashed over their printed representation; keys that print
// identically land in the same chain and are told apart by equality.
// A Dict is not safe for concurrent use.
type Dict[K comparable, V any] struct {
	table []*entry[K, V]
	used  int
}

type entry[K comparable, V any] struct {
	key  K
	val  V
	next *entry[K, V]
}

func hash[K comparable](key K) uint64 {
	h := murmur3.New64()
	fmt.Fprint(h, key)
	return h.Sum64()
}

func (d *Dict[K, V]) init() {
	if d.table == nil {
		d.table = make([]*entry[K, V], initTableSize)
	}
}

func (d *Dict[K, V]) bucket(key K) int {
	return int(hash(key) & uint64(len(d.table)-1))
}

// grow doubles the table and rehashes every entry once the resize
// ratio is reached.
func (d *Dict[K, V]) grow() {
	if d.used < len(d.table)*resizeRatio {
		return
	}

	old := d.table
	d.table = make([]*entry[K, V], 2*len(old))
	for _, e := range old {
		for e != nil {
			next := e.next
			i := d.bucket(e.key)
			e.next = d.table[i]
			d.table[i] = e
			e = next
		}
	}
}

// Put maps key to val, replacing any previous value. It reports
// whether key was newly added rather than updated.
func (d *Dict[K, V]) Put(key K, val V) bool {
	d.init()
	d.grow()

	i := d.bucket(key)
	for e := d.table[i]; e != nil; e = e.next {
		if e.key == key {
			e.val = val
			return false
		}
	}

	d.table[i] = &entry[K, V]{key: key, val: val, next: d.table[i]}
	d.used++
	return true
}

// Get returns the value mapped to key and whether key is present.
func (d *Dict[K, V]) Get(key K) (v V, ok bool) {
	if d.used == 0 {
		return v, false
	}

	for e := d.table[d.bucket(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.val, true
		}
	}
	return v, false
}

// Remove deletes key's entry. It reports whether key was present.
func (d *Dict[K, V]) Remove(key K) bool {
	if d.used == 0 {
		return false
	}

	i := d.bucket(key)
	var prev *entry[K, V]
	for e := d.table[i]; e != nil; prev, e = e, e.next {
		if e.key != key {
			continue
		}
		if prev == nil {
			d.table[i] = e.next
		} else {
			prev.next = e.next
		}
		d.used--
		return true
	}
	return false
}

// Len returns the number of entries in the table.
func (d *Dict[K, V]) Len() int { return d.used }

// Keys returns an iterator over the keys of the table in no
// particular order.
func (d *Dict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range d.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// All returns an iterator over the key-value pairs of the table in no
// particular order. The table must not be mutated during iteration.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range d.table {
			for ; e != nil; e = e.next {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}
