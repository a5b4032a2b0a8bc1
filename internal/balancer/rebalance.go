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
	"time"

	"github.com/go-logr/logr"
)

// BalanceDelegator implements spec.md §4.7: it runs the OOB Scanner at
// most once per OOB period, then — unless migrations are already in
// flight — hands each table's pool view to its inner balancer and
// collects proposed migrations.
type BalanceDelegator struct {
	grouper  *PoolGrouper
	scanner  *OOBScanner
	catalog  Catalog
	registry Registry
	log      logr.Logger
	tracer   tracer
}

// NewBalanceDelegator returns a BalanceDelegator.
func NewBalanceDelegator(grouper *PoolGrouper, scanner *OOBScanner, catalog Catalog, registry Registry, log logr.Logger) *BalanceDelegator {
	return &BalanceDelegator{
		grouper:  grouper,
		scanner:  scanner,
		catalog:  catalog,
		registry: registry,
		log:      log.WithName("balance"),
		tracer:   newTracer("balance"),
	}
}

// Balance implements spec.md §4.7 steps 1-6. It returns the minimum
// next-tick delay hint across every table balanced, floored at
// DefaultDelayFloor, and appends every proposed migration (OOB and
// per-table) to migrationsOut.
func (d *BalanceDelegator) Balance(
	ctx context.Context,
	cfg *Config,
	current *ServerView,
	migrations map[TabletExtent]struct{},
	migrationsOut *[]Migration,
) time.Duration {
	ctx, span := d.tracer.start(ctx, "balance.run")
	defer span.end()

	tableIDMap, err := d.catalog.TableIDMap(ctx)
	if err != nil {
		d.log.Error(err, "catalog unavailable, returning floor delay", "reason", ReasonCatalogUnavailable)
		recordBalanceDelay(DefaultDelayFloor.Seconds())
		return DefaultDelayFloor
	}
	tableNames := invertTableIDMap(tableIDMap)

	pools := d.grouper.Group(ctx, current)
	recordPoolRebuild(pools)

	if d.scanner.Due() {
		proposals := d.scanner.Scan(ctx, current, pools, tableIDMap, migrations)
		recordOOBMigrations(len(proposals))
		*migrationsOut = append(*migrationsOut, proposals...)
	}

	// Migration gate (spec.md §4.7 step 4): a non-empty migrations set
	// means prior proposals are still executing. Skip per-table
	// balancing entirely rather than compound the in-flight work.
	if len(migrations) > 0 {
		d.log.Info("migrations already in flight, skipping per-table balance this tick", "reason", ReasonBackpressure)
		recordBackpressure()
		recordBalanceDelay(DefaultDelayFloor.Seconds())
		return DefaultDelayFloor
	}

	var minDelay time.Duration
	for tableID, tableName := range tableNames {
		poolName := cfg.PoolNameForTable(tableName)
		view, ok := pools[poolName]
		if !ok || view.Len() == 0 {
			d.log.Info("table's pool missing or empty, skipping balance this tick", "reason", ReasonEmptyPool, "table", tableName, "pool", poolName)
			continue
		}

		inner, ok := d.registry.BalancerFor(tableID)
		if !ok {
			d.log.Info("no inner balancer registered for table, skipping", "table", tableName)
			continue
		}

		delay, proposals, err := inner.Balance(view, migrations)
		if err != nil {
			d.log.Error(err, "inner balancer balance failed", "table", tableName)
			continue
		}
		*migrationsOut = append(*migrationsOut, proposals...)

		if delay < DefaultDelayFloor {
			delay = DefaultDelayFloor
		}
		if minDelay == 0 || delay < minDelay {
			minDelay = delay
		}
	}
	if minDelay == 0 {
		minDelay = DefaultDelayFloor
	}

	recordBalanceDelay(minDelay.Seconds())
	return minDelay
}

func invertTableIDMap(m map[TableName]TableID) map[TableID]TableName {
	out := make(map[TableID]TableName, len(m))
	for name, id := range m {
		out[id] = name
	}
	return out
}
