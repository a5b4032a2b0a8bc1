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

// PoolGrouper derives PoolName -> *ServerView from a live server map,
// caching the result for a recheck period. The cache is time-based
// only (spec.md §4.4): it never detects membership changes in the
// input server map within the window, trading freshness for CPU.
//
// The mutual-exclusion region guards both lastRecheck and the cached
// grouping (spec.md §9's "ambiguity to flag" is resolved here by
// reading pools under the same RWMutex that guards the write, rather
// than leaving the read path unsynchronized), grounded on the
// teacher's DebounceState: an RLock-guarded fast path with a Lock'd
// rebuild on expiry.
type PoolGrouper struct {
	mu            sync.RWMutex
	lastRecheck   time.Time
	cached        map[PoolName]*ServerView
	recheckPeriod time.Duration

	cfg      *Config
	resolver NameResolver
	log      logr.Logger
}

// NewPoolGrouper returns a PoolGrouper that matches cfg's regexes
// against hosts resolved via resolver.
func NewPoolGrouper(cfg *Config, resolver NameResolver, log logr.Logger) *PoolGrouper {
	return &PoolGrouper{
		recheckPeriod: cfg.PoolRecheckPeriod(),
		cfg:           cfg,
		resolver:      resolver,
		log:           log.WithName("pool-grouper"),
	}
}

// Group returns the current PoolName -> *ServerView mapping for
// current, rebuilding it if the recheck period has elapsed. Within the
// period, successive calls return the same cached map reference
// (spec.md §8 "cache honouring").
func (g *PoolGrouper) Group(ctx context.Context, current *ServerView) map[PoolName]*ServerView {
	g.mu.RLock()
	fresh := g.cached != nil && time.Since(g.lastRecheck) < g.recheckPeriod
	cached := g.cached
	g.mu.RUnlock()

	if fresh {
		return cached
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Another goroutine may have rebuilt while we waited for the lock.
	if g.cached != nil && time.Since(g.lastRecheck) < g.recheckPeriod {
		return g.cached
	}

	built := g.build(ctx, current)
	g.cached = built
	g.lastRecheck = time.Now()
	return built
}

// build implements spec.md §4.4 step 2: for each server, compute the
// set of pool names whose regex matches the server's resolved host,
// falling back to [DefaultPoolName] if none match. A server matching
// more than one regex appears in every matching pool (spec.md §3
// invariant), unlike the teacher's overlap.go where multi-pool
// membership is an error condition to report, not an expected state.
func (g *PoolGrouper) build(ctx context.Context, current *ServerView) map[PoolName]*ServerView {
	cmp := current.Comparator()
	builders := make(map[PoolName][]ServerEntry)

	for _, entry := range current.Entries() {
		matched := g.poolsForHost(ctx, entry.ID.Host)
		if len(matched) == 0 {
			matched = []PoolName{DefaultPoolName}
		}
		for _, pn := range matched {
			builders[pn] = append(builders[pn], entry)
		}
	}

	out := make(map[PoolName]*ServerView, len(builders))
	for pn, entries := range builders {
		out[pn] = BuildServerView(cmp, entries)
	}
	if _, ok := out[DefaultPoolName]; !ok {
		out[DefaultPoolName] = NewServerView(cmp)
	}
	return out
}

// poolsForHost returns every pool name whose regex matches host's
// resolved name. Resolution failure is logged at error level and
// treated as "matches nothing" (spec.md §7).
func (g *PoolGrouper) poolsForHost(ctx context.Context, host string) []PoolName {
	name, ok := resolveForMatch(ctx, g.resolver, g.cfg.IsIPBased(), host)
	if !ok {
		g.log.Error(nil, "name resolution failed, treating server as unmatched", "reason", ReasonUnresolvableHost, "host", host)
		return nil
	}

	var matched []PoolName
	for table, re := range g.cfg.PoolPatterns() {
		if re.MatchString(name) {
			matched = append(matched, PoolName(table))
		}
	}
	return matched
}
