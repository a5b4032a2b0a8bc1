/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package balancer implements a host-regex tablet load balancer: it
// partitions a fleet of tablet servers into named pools by matching
// regular expressions against server host names, pins each table to a
// pool, and delegates per-table balancing to an inner balancer that is
// only ever shown its pool's restricted view of the fleet.
package balancer

import "sort"

// DefaultPoolName is the reserved pool every server falls back to when
// no configured regex matches its resolved host. It must never collide
// with a real table name.
const DefaultPoolName PoolName = "HostTableLoadBalancer.ALL"

// ServerID is the logical identity of a tablet server. Two ServerIDs
// carrying the same Host are not necessarily equal — real
// implementations attach an instance/session component — so ServerID
// is compared only through a Comparator, never through Go's built-in
// equality on the Host field alone.
type ServerID struct {
	// Host is the string a NameResolver and the configured regexes
	// operate on: a DNS name in normal mode, a raw address in IP mode.
	Host string
	// Session disambiguates two servers that have shared a Host across
	// a restart; it has no meaning to the balancer beyond ordering.
	Session string
}

// String renders a ServerID for logging.
func (s ServerID) String() string {
	if s.Session == "" {
		return s.Host
	}
	return s.Host + "#" + s.Session
}

// ServerStatus is opaque liveness/load data the balancer core never
// interprets; it is threaded through untouched for the inner balancer.
type ServerStatus any

// Comparator imposes the total order the caller's server map was built
// with. Pool views must preserve it so an inner balancer sees the same
// ordering it would see over the full fleet.
type Comparator func(a, b ServerID) int

// TableID is the stable identifier of a table, independent of rename.
type TableID string

// TableName is the table's user-facing, possibly-changing name.
type TableName string

// PoolName identifies a pool of tablet servers: either a table's own
// name (when that table has a configured regex) or DefaultPoolName.
type PoolName string

// TabletExtent identifies one tablet: a contiguous key range of a
// table, hosted by exactly one server at a time.
type TabletExtent struct {
	Table    TableID
	StartRow string
	EndRow   string
}

// TabletStat is the per-tablet status reported by a server during an
// OOB scan.
type TabletStat struct {
	Extent TabletExtent
}

// Migration is a proposed (extent, from, to) move. The core only ever
// emits these; it never executes them.
type Migration struct {
	Extent TabletExtent
	From   ServerID
	To     ServerID
}

// ServerEntry is one (ServerID, ServerStatus) pair in a ServerView.
type ServerEntry struct {
	ID     ServerID
	Status ServerStatus
}

// ServerView is an ordered ServerID -> ServerStatus mapping that
// preserves a single Comparator across copies, slices and rebuilds.
// It is the Go realization of spec.md's "ordered server map with
// comparator C": every Pool handed to an inner balancer, and the
// `current` map handed to the core's entry points, is a ServerView.
//
// A ServerView is safe to read concurrently once built; BuildServerView
// and Insert are the only mutating operations and are not safe to call
// concurrently with reads of the same value.
type ServerView struct {
	cmp     Comparator
	entries []ServerEntry
}

// NewServerView returns an empty view ordered by cmp.
func NewServerView(cmp Comparator) *ServerView {
	return &ServerView{cmp: cmp}
}

// BuildServerView sorts entries by cmp and returns a ServerView over a
// defensive copy, so the caller's slice can be reused afterward.
func BuildServerView(cmp Comparator, entries []ServerEntry) *ServerView {
	cp := make([]ServerEntry, len(entries))
	copy(cp, entries)
	sort.Slice(cp, func(i, j int) bool { return cmp(cp[i].ID, cp[j].ID) < 0 })
	return &ServerView{cmp: cmp, entries: cp}
}

// Comparator returns the ordering this view was built with.
func (v *ServerView) Comparator() Comparator { return v.cmp }

// Len returns the number of servers in the view.
func (v *ServerView) Len() int {
	if v == nil {
		return 0
	}
	return len(v.entries)
}

// Insert adds or replaces the entry for id, preserving sort order.
func (v *ServerView) Insert(id ServerID, status ServerStatus) {
	i := v.search(id)
	if i < len(v.entries) && v.cmp(v.entries[i].ID, id) == 0 {
		v.entries[i].Status = status
		return
	}
	v.entries = append(v.entries, ServerEntry{})
	copy(v.entries[i+1:], v.entries[i:])
	v.entries[i] = ServerEntry{ID: id, Status: status}
}

func (v *ServerView) search(id ServerID) int {
	return sort.Search(len(v.entries), func(i int) bool {
		return v.cmp(v.entries[i].ID, id) >= 0
	})
}

// Get returns the status for id and whether it was present.
func (v *ServerView) Get(id ServerID) (ServerStatus, bool) {
	if v == nil {
		return nil, false
	}
	i := v.search(id)
	if i < len(v.entries) && v.cmp(v.entries[i].ID, id) == 0 {
		return v.entries[i].Status, true
	}
	return nil, false
}

// FirstKey returns the first ServerID under the view's comparator. It
// is the deterministic OOB migration destination: load is not
// considered, the inner balancer is expected to rebalance afterward.
func (v *ServerView) FirstKey() (ServerID, bool) {
	if v.Len() == 0 {
		return ServerID{}, false
	}
	return v.entries[0].ID, true
}

// Entries returns the view's (ServerID, ServerStatus) pairs in order.
// The returned slice must not be mutated by the caller.
func (v *ServerView) Entries() []ServerEntry {
	if v == nil {
		return nil
	}
	return v.entries
}

// Keys returns the ordered ServerIDs in the view.
func (v *ServerView) Keys() []ServerID {
	if v == nil {
		return nil
	}
	out := make([]ServerID, len(v.entries))
	for i, e := range v.entries {
		out[i] = e.ID
	}
	return out
}
