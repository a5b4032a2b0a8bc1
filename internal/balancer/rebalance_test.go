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
	"testing"
	"time"

	"github.com/go-logr/logr/testr"
)

func TestBalanceDelegatorSkipsPerTableWorkWhenMigrationsInFlight(t *testing.T) {
	cfg := testConfig(t, map[string]string{"balancer.host.regex.regex.tbl": ".*"})
	catalog := &fakeCatalog{tableIDs: map[TableName]TableID{"tbl": "1"}}
	spy := &spyInnerBalancer{}
	registry := MapRegistry{"1": spy}
	grouper := NewPoolGrouper(cfg, &fakeResolver{}, testr.New(t))
	scanner := NewOOBScanner(cfg, &fakeServerRPC{}, testr.New(t))
	d := NewBalanceDelegator(grouper, scanner, catalog, registry, testr.New(t))

	current := buildCurrent("h1")
	migrations := map[TabletExtent]struct{}{{Table: "1"}: {}}
	var out []Migration

	delay := d.Balance(context.Background(), cfg, current, migrations, &out)

	if delay != DefaultDelayFloor {
		t.Errorf("delay = %v, want floor %v", delay, DefaultDelayFloor)
	}
	if spy.balanceCalls != 0 {
		t.Errorf("inner balancer Balance called %d times, want 0 while migrations are in flight", spy.balanceCalls)
	}
}

func TestBalanceDelegatorOOBScanStillRunsUnderBackpressure(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"balancer.host.regex.regex.table_a": "^a-.*",
		"balancer.host.regex.oob.period":    "0",
	})
	catalog := &fakeCatalog{tableIDs: map[TableName]TableID{"table_a": "1"}}
	extent := TabletExtent{Table: "1", EndRow: "m"}
	wrongServer := ServerID{Host: "b-01"}
	rightServer := ServerID{Host: "a-01"}
	rpc := &fakeServerRPC{tablets: map[ServerID]map[TableID][]TabletStat{
		wrongServer: {"1": {{Extent: extent}}},
	}}
	grouper := NewPoolGrouper(cfg, &fakeResolver{names: map[string]string{"a-01": "a-01", "b-01": "b-01"}}, testr.New(t))
	scanner := NewOOBScanner(cfg, rpc, testr.New(t))
	registry := MapRegistry{"1": &spyInnerBalancer{}}
	d := NewBalanceDelegator(grouper, scanner, catalog, registry, testr.New(t))

	current := buildCurrent("a-01", "b-01")
	// Unrelated migration already in flight triggers the gate, but the
	// OOB pass (due immediately given a zero period) must still run and
	// contribute its own proposal (spec.md §4.7 step 4's exception).
	migrations := map[TabletExtent]struct{}{{Table: "99", EndRow: "z"}: {}}
	var out []Migration

	d.Balance(context.Background(), cfg, current, migrations, &out)

	if len(out) != 1 {
		t.Fatalf("migrationsOut has %d entries, want 1 from the OOB scan despite backpressure", len(out))
	}
}

func TestBalanceDelegatorSkipsTableWithEmptyPool(t *testing.T) {
	cfg := testConfig(t, map[string]string{"balancer.host.regex.regex.tbl": "^nomatch-.*"})
	catalog := &fakeCatalog{tableIDs: map[TableName]TableID{"tbl": "1"}}
	spy := &spyInnerBalancer{}
	registry := MapRegistry{"1": spy}
	grouper := NewPoolGrouper(cfg, &fakeResolver{names: map[string]string{"h1": "h1"}}, testr.New(t))
	scanner := NewOOBScanner(cfg, &fakeServerRPC{}, testr.New(t))
	d := NewBalanceDelegator(grouper, scanner, catalog, registry, testr.New(t))

	current := buildCurrent("h1")
	var out []Migration

	d.Balance(context.Background(), cfg, current, nil, &out)

	if spy.balanceCalls != 0 {
		t.Errorf("inner balancer Balance called %d times, want 0 for a table whose pool has no members", spy.balanceCalls)
	}
}

func TestBalanceDelegatorFloorsAndMinimizesDelay(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"balancer.host.regex.regex.table_a": "^a-.*",
		"balancer.host.regex.regex.table_b": "^b-.*",
	})
	catalog := &fakeCatalog{tableIDs: map[TableName]TableID{"table_a": "1", "table_b": "2"}}
	registry := MapRegistry{
		"1": &spyInnerBalancer{delay: 1 * time.Millisecond},
		"2": &spyInnerBalancer{delay: 1 * time.Hour},
	}
	grouper := NewPoolGrouper(cfg, &fakeResolver{names: map[string]string{"a-01": "a-01", "b-01": "b-01"}}, testr.New(t))
	scanner := NewOOBScanner(cfg, &fakeServerRPC{}, testr.New(t))
	d := NewBalanceDelegator(grouper, scanner, catalog, registry, testr.New(t))

	current := buildCurrent("a-01", "b-01")
	var out []Migration

	delay := d.Balance(context.Background(), cfg, current, nil, &out)

	if delay != DefaultDelayFloor {
		t.Errorf("delay = %v, want floor %v (table_a's requested delay is below the floor)", delay, DefaultDelayFloor)
	}
}

type spyInnerBalancer struct {
	balanceCalls int
	delay        time.Duration
}

func (s *spyInnerBalancer) GetAssignments(view *ServerView, unassigned map[TabletExtent]ServerID, out map[TabletExtent]ServerID) error {
	return nil
}

func (s *spyInnerBalancer) Balance(view *ServerView, migrations map[TabletExtent]struct{}) (time.Duration, []Migration, error) {
	s.balanceCalls++
	return s.delay, nil, nil
}
