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
	"fmt"
	"time"

	"github.com/go-logr/logr"
)

// propertyPrefix is the common prefix every recognized config key is
// read under (spec.md §4.1/§6).
const propertyPrefix = "balancer.host.regex."

// HostRegexTabletLoadBalancer is the control loop: the two externally
// invoked operations getAssignments and balance, sequenced against the
// Pool Grouper, OOB Scanner, and the two delegators. Fields mirror the
// teacher's *Reconciler struct — components assembled once in New and
// never replaced (internal/controller/machineconfigpool_controller.go's
// "struct of components" shape), rather than deep-copied per call.
type HostRegexTabletLoadBalancer struct {
	cfg      *Config
	catalog  Catalog
	registry Registry

	grouper *PoolGrouper
	scanner *OOBScanner
	assign  *AssignmentDelegator
	balance *BalanceDelegator

	log logr.Logger
}

// New performs spec.md §6's init(config): it loads properties, builds
// every internal component, and fails fatally if the catalog cannot be
// reached (spec.md §7 "Configuration error").
func New(ctx context.Context, properties map[string]string, catalog Catalog, resolver NameResolver, rpc ServerRPC, registry Registry, log logr.Logger) (*HostRegexTabletLoadBalancer, error) {
	cfg, err := LoadConfig(properties, propertyPrefix)
	if err != nil {
		return nil, fmt.Errorf("hostregexbalancer: loading config: %w", err)
	}

	if _, err := catalog.TableIDMap(ctx); err != nil {
		return nil, fmt.Errorf("hostregexbalancer: catalog unavailable at init: %w", err)
	}

	grouper := NewPoolGrouper(cfg, resolver, log)
	scanner := NewOOBScanner(cfg, rpc, log)

	return &HostRegexTabletLoadBalancer{
		cfg:      cfg,
		catalog:  catalog,
		registry: registry,
		grouper:  grouper,
		scanner:  scanner,
		assign:   NewAssignmentDelegator(catalog, registry, log),
		balance:  NewBalanceDelegator(grouper, scanner, catalog, registry, log),
		log:      log.WithName("hostregexbalancer"),
	}, nil
}

// GetAssignments implements spec.md §4.6 / §6's exposed
// getAssignments(current, unassigned, outAssignments).
func (b *HostRegexTabletLoadBalancer) GetAssignments(
	ctx context.Context,
	current *ServerView,
	unassigned map[TabletExtent]ServerID,
	outAssignments map[TabletExtent]ServerID,
) error {
	tableIDMap, err := b.catalog.TableIDMap(ctx)
	if err != nil {
		return fmt.Errorf("hostregexbalancer: catalog unavailable: %w", err)
	}
	tableNames := invertTableIDMap(tableIDMap)

	pools := b.grouper.Group(ctx, current)
	recordPoolRebuild(pools)

	return b.assign.GetAssignments(ctx, b.cfg, pools, tableNames, unassigned, outAssignments)
}

// Balance implements spec.md §4.7 / §6's exposed
// balance(current, migrations, outMigrations) -> delayMs.
func (b *HostRegexTabletLoadBalancer) Balance(
	ctx context.Context,
	current *ServerView,
	migrations map[TabletExtent]struct{},
	outMigrations *[]Migration,
) time.Duration {
	return b.balance.Balance(ctx, b.cfg, current, migrations, outMigrations)
}

// Config exposes the loaded Config View, mainly for tests and callers
// that want to inspect derived pool names without running a tick.
func (b *HostRegexTabletLoadBalancer) Config() *Config { return b.cfg }
