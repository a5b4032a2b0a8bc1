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

var _ InnerBalancer = (*RoundRobinInnerBalancer)(nil)

// RoundRobinInnerBalancer is the reference inner balancer named in
// spec.md §4.8: it exercises the Assignment and Balance Delegators
// end-to-end without pulling in a real tablet-placement algorithm.
// GetAssignments walks view's keys round-robin; Balance never proposes
// a migration and requests the floor delay.
//
// It carries no state across calls beyond a cursor into view's key
// order, so it is safe to share across tables that register the same
// instance, but it is not safe for concurrent calls on the same
// instance without external synchronization — callers here always
// invoke a given table's balancer from a single goroutine per tick.
type RoundRobinInnerBalancer struct {
	cursor int
}

// NewRoundRobinInnerBalancer returns a RoundRobinInnerBalancer.
func NewRoundRobinInnerBalancer() *RoundRobinInnerBalancer {
	return &RoundRobinInnerBalancer{}
}

// GetAssignments assigns each unassigned extent to the next server in
// view's order, wrapping around. Extents are visited in map iteration
// order, which spec.md §4.6 leaves unspecified.
func (b *RoundRobinInnerBalancer) GetAssignments(view *ServerView, unassigned map[TabletExtent]ServerID, out map[TabletExtent]ServerID) error {
	keys := view.Keys()
	if len(keys) == 0 {
		return nil
	}

	for extent := range unassigned {
		out[extent] = keys[b.cursor%len(keys)]
		b.cursor++
	}
	return nil
}

// Balance never proposes migrations; it only asks to be called again
// no sooner than DefaultDelayFloor.
func (b *RoundRobinInnerBalancer) Balance(view *ServerView, migrations map[TabletExtent]struct{}) (time.Duration, []Migration, error) {
	return DefaultDelayFloor, nil, nil
}
