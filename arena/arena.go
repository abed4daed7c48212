// Copyright 2024 The Flashcore Authors
// This file is part of Flashcore.
//
// Flashcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Flashcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Flashcore. If not, see <http://www.gnu.org/licenses/>.

// Package arena implements the GC arena discipline AVM1's object graph
// runs under: a single rooted arena per movie, a tracing mark pass over
// every reachable Object, and weak back-references that are lookups
// rather than ownership edges (a "mouse-hovered-object"-style pointer
// that must not keep its target alive).
//
// Go's own garbage collector already reclaims unreachable objects; this
// package does not reimplement tracing GC. What it adds is the policy
// layer spec.md §4.8 requires: a bounded cache for weak references so
// they don't silently grow unbounded, and a cheap negative-membership
// prefilter ahead of the full reachability walk a host runs before
// serializing or diffing the object graph (e.g. for a "has this handle
// been dropped" check across a frame boundary).
package arena

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/holiman/bloomfilter/v2"
)

// Handle is an opaque identity for an arena-managed object, stable for
// the object's lifetime.
type Handle uint64

// WeakRefs is a bounded cache of Handle -> T lookups. Eviction is driven
// purely by capacity (LRU) or by Forget, not by reachability: the cache
// holds an ordinary Go reference to each stored T, so a target stays
// alive and keeps resolving until its entry is evicted or forgotten, even
// if nothing else references it.
type WeakRefs[T any] struct {
	cache *lru.Cache[Handle, T]
}

// NewWeakRefs allocates a bounded weak-reference cache holding at most
// capacity entries.
func NewWeakRefs[T any](capacity int) (*WeakRefs[T], error) {
	c, err := lru.New[Handle, T](capacity)
	if err != nil {
		return nil, err
	}
	return &WeakRefs[T]{cache: c}, nil
}

// Set records target under handle, evicting the least-recently-used
// entry if the cache is full.
func (w *WeakRefs[T]) Set(handle Handle, target T) {
	w.cache.Add(handle, target)
}

// Get resolves handle, reporting ok=false if it was never set or has
// since been evicted.
func (w *WeakRefs[T]) Get(handle Handle) (T, bool) {
	return w.cache.Get(handle)
}

// Forget removes handle from the cache (an explicit "weak ref dropped"
// signal, e.g. when a display object is removed from the stage).
func (w *WeakRefs[T]) Forget(handle Handle) {
	w.cache.Remove(handle)
}

// Reachability is a negative-membership prefilter over the set of
// Handles visited by the last full tracing pass: `MaybeReachable`
// returning false is a certain "no", letting a host skip the expensive
// full walk for handles it can already rule out; a true result still
// needs confirming against the authoritative set (this is a probabilistic
// filter, not a membership oracle).
type Reachability struct {
	filter *bloomfilter.Filter
	n      uint64
}

// NewReachability builds a filter sized for roughly n expected handles
// at the given false-positive rate.
func NewReachability(n uint64, falsePositiveRate float64) (*Reachability, error) {
	f, err := bloomfilter.NewOptimal(n, falsePositiveRate)
	if err != nil {
		return nil, err
	}
	return &Reachability{filter: f, n: n}, nil
}

// Mark records handle as visited during a tracing pass.
func (r *Reachability) Mark(handle Handle) {
	r.filter.AddHash(handleHash(handle))
}

// MaybeReachable reports whether handle might have been marked; false is
// certain, true needs confirming against the authoritative reachable set.
func (r *Reachability) MaybeReachable(handle Handle) bool {
	return r.filter.ContainsHash(handleHash(handle))
}

// handleHash mixes a Handle into a well-distributed 64-bit hash (a
// Handle is often just a monotonically increasing counter, which would
// cluster badly if fed to the filter unmixed). Uses the 64-bit
// variant of the splitmix64 finalizer.
func handleHash(h Handle) uint64 {
	x := uint64(h)
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
