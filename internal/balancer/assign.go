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

import (
	"context"

	"github.com/go-logr/logr"
)

// AssignmentDelegator implements spec.md §4.6: for each unassigned
// tablet, it locates its pool's restricted server view and hands it to
// the inner balancer registered for that tablet's table.
type AssignmentDelegator struct {
	catalog  Catalog
	registry Registry
	log      logr.Logger
	tracer   tracer
}

// NewAssignmentDelegator returns an AssignmentDelegator.
func NewAssignmentDelegator(catalog Catalog, registry Registry, log logr.Logger) *AssignmentDelegator {
	return &AssignmentDelegator{
		catalog:  catalog,
		registry: registry,
		log:      log.WithName("assign"),
		tracer:   newTracer("assign"),
	}
}

// GetAssignments populates out with a destination for every extent in
// unassigned it manages to place. Tablets whose table has no reachable
// pool view remain unassigned this tick; that is logged, not
// escalated (spec.md §7 "Empty pool").
func (d *AssignmentDelegator) GetAssignments(
	ctx context.Context,
	cfg *Config,
	pools map[PoolName]*ServerView,
	tableNames map[TableID]TableName,
	unassigned map[TabletExtent]ServerID,
	out map[TabletExtent]ServerID,
) error {
	ctx, span := d.tracer.start(ctx, "assign.get_assignments")
	defer span.end()

	byTable := partitionByTable(unassigned)

	for tableID, grouped := range byTable {
		tableName, ok := tableNames[tableID]
		if !ok {
			d.log.Info("table unknown to catalog, leaving tablets unassigned this tick", "reason", ReasonCatalogUnavailable, "table", tableID)
			continue
		}

		poolName := cfg.PoolNameForTable(tableName)
		view := pools[poolName]
		if view == nil || view.Len() == 0 {
			view = pools[DefaultPoolName]
		}
		if view == nil || view.Len() == 0 {
			d.log.Error(nil, "no servers available for table's pool or default pool, skipping", "reason", ReasonEmptyPool, "table", tableName, "pool", poolName)
			continue
		}

		inner, ok := d.registry.BalancerFor(tableID)
		if !ok {
			d.log.Error(nil, "no inner balancer registered for table, skipping", "table", tableName)
			continue
		}

		if err := inner.GetAssignments(view, grouped, out); err != nil {
			d.log.Error(err, "inner balancer getAssignments failed", "table", tableName)
		}
	}

	return nil
}

// partitionByTable groups unassigned extents by their table. Result
// ordering is irrelevant (spec.md §4.6 step 2).
func partitionByTable(unassigned map[TabletExtent]ServerID) map[TableID]map[TabletExtent]ServerID {
	out := make(map[TableID]map[TabletExtent]ServerID)
	for extent, lastKnown := range unassigned {
		grouped, ok := out[extent.Table]
		if !ok {
			grouped = make(map[TabletExtent]ServerID)
			out[extent.Table] = grouped
		}
		grouped[extent] = lastKnown
	}
	return out
}
