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

import "testing"

func TestMapRegistryBalancerFor(t *testing.T) {
	inner := NewRoundRobinInnerBalancer()
	reg := MapRegistry{"t1": inner}

	got, ok := reg.BalancerFor("t1")
	if !ok || got != inner {
		t.Fatalf("BalancerFor(t1) = (%v, %v), want (%v, true)", got, ok, inner)
	}

	if _, ok := reg.BalancerFor("missing"); ok {
		t.Error("BalancerFor(missing) = true, want false")
	}
}

func TestRoundRobinInnerBalancerDistributesAssignments(t *testing.T) {
	view := BuildServerView(hostCmp, []ServerEntry{
		{ID: ServerID{Host: "a"}},
		{ID: ServerID{Host: "b"}},
	})
	b := NewRoundRobinInnerBalancer()

	unassigned := map[TabletExtent]ServerID{
		{Table: "1", EndRow: "m"}: {},
		{Table: "1", StartRow: "m"}: {},
	}
	out := map[TabletExtent]ServerID{}
	if err := b.GetAssignments(view, unassigned, out); err != nil {
		t.Fatalf("GetAssignments: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	for extent, dest := range out {
		if dest.Host != "a" && dest.Host != "b" {
			t.Errorf("extent %v assigned to unknown server %v", extent, dest)
		}
	}
}

func TestRoundRobinInnerBalancerEmptyView(t *testing.T) {
	view := NewServerView(hostCmp)
	b := NewRoundRobinInnerBalancer()

	unassigned := map[TabletExtent]ServerID{{Table: "1"}: {}}
	out := map[TabletExtent]ServerID{}
	if err := b.GetAssignments(view, unassigned, out); err != nil {
		t.Fatalf("GetAssignments: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0 on an empty pool view", len(out))
	}
}

func TestRoundRobinInnerBalancerBalanceReturnsFloor(t *testing.T) {
	view := NewServerView(hostCmp)
	b := NewRoundRobinInnerBalancer()

	delay, migrations, err := b.Balance(view, nil)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if delay != DefaultDelayFloor {
		t.Errorf("delay = %v, want floor %v", delay, DefaultDelayFloor)
	}
	if migrations != nil {
		t.Errorf("migrations = %v, want nil", migrations)
	}
}
