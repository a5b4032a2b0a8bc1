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

	"github.com/go-logr/logr/testr"
)

type fakeCatalog struct {
	tableIDs map[TableName]TableID
	props    map[TableName]map[string]string
	err      error
}

func (c *fakeCatalog) TableIDMap(ctx context.Context) (map[TableName]TableID, error) {
	return c.tableIDs, c.err
}

func (c *fakeCatalog) PropertiesWithPrefix(ctx context.Context, table TableName, prefix string) (map[string]string, error) {
	return c.props[table], nil
}

func TestAssignmentDelegatorUsesTablesOwnPool(t *testing.T) {
	catalog := &fakeCatalog{tableIDs: map[TableName]TableID{"tbl": "1"}}
	registry := MapRegistry{"1": NewRoundRobinInnerBalancer()}
	d := NewAssignmentDelegator(catalog, registry, testr.New(t))

	pools := map[PoolName]*ServerView{
		PoolName("tbl"): BuildServerView(hostCmp, []ServerEntry{{ID: ServerID{Host: "srv"}}}),
		DefaultPoolName:  NewServerView(hostCmp),
	}
	tableNames := map[TableID]TableName{"1": "tbl"}
	unassigned := map[TabletExtent]ServerID{{Table: "1", EndRow: "m"}: {}}
	out := map[TabletExtent]ServerID{}

	cfg := testConfig(t, map[string]string{"balancer.host.regex.regex.tbl": ".*"})
	if err := d.GetAssignments(context.Background(), cfg, pools, tableNames, unassigned, out); err != nil {
		t.Fatalf("GetAssignments: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
}

func TestAssignmentDelegatorFallsBackToDefaultPool(t *testing.T) {
	catalog := &fakeCatalog{tableIDs: map[TableName]TableID{"tbl": "1"}}
	registry := MapRegistry{"1": NewRoundRobinInnerBalancer()}
	d := NewAssignmentDelegator(catalog, registry, testr.New(t))

	pools := map[PoolName]*ServerView{
		DefaultPoolName: BuildServerView(hostCmp, []ServerEntry{{ID: ServerID{Host: "srv"}}}),
	}
	tableNames := map[TableID]TableName{"1": "tbl"}
	unassigned := map[TabletExtent]ServerID{{Table: "1", EndRow: "m"}: {}}
	out := map[TabletExtent]ServerID{}

	cfg := testConfig(t, nil) // no regex configured for "tbl" -> PoolNameForTable returns DefaultPoolName already
	if err := d.GetAssignments(context.Background(), cfg, pools, tableNames, unassigned, out); err != nil {
		t.Fatalf("GetAssignments: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1 (should have fallen back to the default pool)", len(out))
	}
}

func TestAssignmentDelegatorSkipsUnknownTable(t *testing.T) {
	catalog := &fakeCatalog{tableIDs: map[TableName]TableID{}}
	registry := MapRegistry{}
	d := NewAssignmentDelegator(catalog, registry, testr.New(t))

	unassigned := map[TabletExtent]ServerID{{Table: "unknown", EndRow: "m"}: {}}
	out := map[TabletExtent]ServerID{}
	cfg := testConfig(t, nil)

	if err := d.GetAssignments(context.Background(), cfg, map[PoolName]*ServerView{}, map[TableID]TableName{}, unassigned, out); err != nil {
		t.Fatalf("GetAssignments: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0 for a tablet whose table the catalog doesn't know", len(out))
	}
}

func TestAssignmentDelegatorSkipsWhenNoInnerBalancerRegistered(t *testing.T) {
	catalog := &fakeCatalog{tableIDs: map[TableName]TableID{"tbl": "1"}}
	registry := MapRegistry{}
	d := NewAssignmentDelegator(catalog, registry, testr.New(t))

	pools := map[PoolName]*ServerView{
		DefaultPoolName: BuildServerView(hostCmp, []ServerEntry{{ID: ServerID{Host: "srv"}}}),
	}
	tableNames := map[TableID]TableName{"1": "tbl"}
	unassigned := map[TabletExtent]ServerID{{Table: "1", EndRow: "m"}: {}}
	out := map[TabletExtent]ServerID{}
	cfg := testConfig(t, nil)

	if err := d.GetAssignments(context.Background(), cfg, pools, tableNames, unassigned, out); err != nil {
		t.Fatalf("GetAssignments: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0 when no inner balancer is registered for the table", len(out))
	}
}
