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

package balancer

import "time"

// DefaultDelayFloor is the minimum "next tick" delay hint the Balance
// Delegator ever returns, regardless of what inner balancers report.
const DefaultDelayFloor = 5 * time.Second

// InnerBalancer is the per-table balancer the core delegates to. It
// receives only the restricted pool view for its table, never the full
// fleet, and must not assume otherwise.
type InnerBalancer interface {
	// GetAssignments populates out with a destination for each entry
	// in unassigned, choosing only from view.
	GetAssignments(view *ServerView, unassigned map[TabletExtent]ServerID, out map[TabletExtent]ServerID) error

	// Balance proposes migrations among the servers in view, given the
	// extents already in flight, and reports how long to wait before
	// the next tick.
	Balance(view *ServerView, migrations map[TabletExtent]struct{}) (time.Duration, []Migration, error)
}

// Registry is the opaque tableId -> inner balancer lookup; its
// implementation lies outside the core.
type Registry interface {
	// BalancerFor returns the inner balancer registered for table, or
	// false if none is registered.
	BalancerFor(table TableID) (InnerBalancer, bool)
}

// MapRegistry is a Registry backed by a plain map, sufficient for
// embedding contexts that register balancers once at startup.
type MapRegistry map[TableID]InnerBalancer

// BalancerFor implements Registry.
func (m MapRegistry) BalancerFor(table TableID) (InnerBalancer, bool) {
	b, ok := m[table]
	return b, ok
}
