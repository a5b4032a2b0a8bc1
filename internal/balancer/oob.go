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
	"sync"
	"time"

	"github.com/go-logr/logr"
)

// OOBScanner walks live servers looking for tablets hosted outside
// their table's pool and emits migration proposals for them. It is run
// at most once per OOBPeriod from inside the Balance Delegator.
type OOBScanner struct {
	mu        sync.Mutex
	lastCheck time.Time
	period    time.Duration
	cfg       *Config
	rpc       ServerRPC
	log       logr.Logger
	tracer    tracer
}

// NewOOBScanner returns an OOBScanner bound to cfg's OOB period.
func NewOOBScanner(cfg *Config, rpc ServerRPC, log logr.Logger) *OOBScanner {
	return &OOBScanner{
		period: cfg.OOBPeriod(),
		cfg:    cfg,
		rpc:    rpc,
		log:    log.WithName("oob-scanner"),
		tracer: newTracer("oob-scanner"),
	}
}

// Due reports whether the OOB period has elapsed since the last scan.
func (s *OOBScanner) Due() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastCheck) > s.period || s.lastCheck.IsZero()
}

// Scan walks current once, proposing a migration for every tablet
// found on a server outside its table's pool that is not already
// present in inFlight. lastCheck advances unconditionally on return,
// even if individual servers failed, so a transient RPC storm cannot
// cause continuous full sweeps (spec.md §4.5 step 3).
func (s *OOBScanner) Scan(
	ctx context.Context,
	current *ServerView,
	pools map[PoolName]*ServerView,
	tableIDs map[TableName]TableID,
	inFlight map[TabletExtent]struct{},
) []Migration {
	ctx, span := s.tracer.start(ctx, "oob.scan")
	defer span.end()

	defer func() {
		s.mu.Lock()
		s.lastCheck = time.Now()
		s.mu.Unlock()
	}()

	var out []Migration

	// Per-pass negative cache: once a (server, table) pair is known to
	// host zero tablets of that table this scan, don't ask again this
	// pass. It does not survive across ticks (spec.md §9 open question
	// — additive, doesn't change observable output).
	type negKey struct {
		server ServerID
		table  TableID
	}
	negCache := make(map[negKey]bool)

	for _, entry := range current.Entries() {
		server := entry.ID
		assigned := poolsContaining(pools, server)

		for table, re := range s.cfg.PoolPatterns() {
			poolName := PoolName(table)
			if assigned[poolName] {
				continue // server legitimately hosts this table's tablets
			}
			_ = re // the regex itself was already applied by the Pool Grouper

			tableID, ok := tableIDs[table]
			if !ok {
				s.log.Info("table named in regex config no longer in catalog, skipping", "table", table)
				continue
			}

			if negCache[negKey{server, tableID}] {
				continue
			}

			stats, err := s.fetchTablets(ctx, server, tableID)
			if err != nil {
				s.log.Error(err, "fetching online tablets failed, skipping server this pass", "server", server.String(), "table", table)
				continue
			}
			if len(stats) == 0 {
				negCache[negKey{server, tableID}] = true
				continue
			}

			targetPool, ok := pools[poolName]
			if !ok || targetPool.Len() == 0 {
				s.log.Info("target pool empty or missing, skipping OOB migration", "reason", ReasonEmptyPool, "table", table)
				continue
			}
			dest, ok := targetPool.FirstKey()
			if !ok {
				continue
			}

			for _, stat := range stats {
				if _, inMotion := inFlight[stat.Extent]; inMotion {
					s.log.V(1).Info("skipping OOB candidate, migration already in flight", "reason", ReasonOOBSkipInFlight, "table", table)
					continue
				}
				out = append(out, Migration{Extent: stat.Extent, From: server, To: dest})
				s.log.Info("proposing OOB migration", "reason", ReasonOOBMigration, "table", table, "from", server.String(), "to", dest.String())
			}
		}
	}

	return out
}

func (s *OOBScanner) fetchTablets(ctx context.Context, server ServerID, table TableID) ([]TabletStat, error) {
	ctx, span := s.tracer.start(ctx, "oob.rpc")
	defer span.end()

	start := time.Now()
	stats, err := s.rpc.OnlineTabletsForTable(ctx, server, table)
	observeOOBRPCDuration(time.Since(start).Seconds())
	return stats, err
}

// poolsContaining returns, as a set, every pool name whose view
// contains server. DefaultPoolName is excluded: spec.md §4.5 only
// cares about configured-table pools.
func poolsContaining(pools map[PoolName]*ServerView, server ServerID) map[PoolName]bool {
	out := make(map[PoolName]bool)
	for name, view := range pools {
		if name == DefaultPoolName {
			continue
		}
		if _, ok := view.Get(server); ok {
			out[name] = true
		}
	}
	return out
}
