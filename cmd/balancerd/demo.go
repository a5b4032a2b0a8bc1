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

package main

import (
	"context"
	"os"
	"strings"

	"github.com/tablestore/host-regex-balancer/internal/balancer"
)

// staticCatalog is a fixed-membership Catalog stand-in for the demo
// harness, also holding the fixed server view the loop ticks over: no
// real tablet server or metadata table backs it, it only demonstrates
// wiring a Catalog into the control loop. A real deployment supplies
// its own implementations talking to its storage cluster.
type staticCatalog struct {
	tableIDs map[balancer.TableName]balancer.TableID
	props    map[balancer.TableName]map[string]string
	servers  *balancer.ServerView
}

func newStaticCatalog() *staticCatalog {
	cmp := func(a, b balancer.ServerID) int { return strings.Compare(a.String(), b.String()) }
	view := balancer.NewServerView(cmp)
	for _, host := range []string{"tablet-01.demo:9997", "tablet-02.demo:9997", "tablet-03.demo:9997"} {
		view.Insert(balancer.ServerID{Host: host}, nil)
	}

	return &staticCatalog{
		tableIDs: map[balancer.TableName]balancer.TableID{
			"demo_table": "1",
		},
		props: map[balancer.TableName]map[string]string{
			"demo_table": {
				"balancer.host.regex.regex.demo_table": "tablet-0[12].*",
			},
		},
		servers: view,
	}
}

func (c *staticCatalog) TableIDMap(ctx context.Context) (map[balancer.TableName]balancer.TableID, error) {
	return c.tableIDs, nil
}

func (c *staticCatalog) PropertiesWithPrefix(ctx context.Context, table balancer.TableName, prefix string) (map[string]string, error) {
	out := map[string]string{}
	for k, v := range c.props[table] {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	return out, nil
}

// noOpServerRPC reports every server as hosting zero tablets, so the
// demo harness never proposes OOB migrations against servers nothing
// backs.
type noOpServerRPC struct{}

func newNoOpServerRPC() *noOpServerRPC { return &noOpServerRPC{} }

func (*noOpServerRPC) OnlineTabletsForTable(ctx context.Context, server balancer.ServerID, table balancer.TableID) ([]balancer.TabletStat, error) {
	return nil, nil
}

// loadPropertiesFromEnv reads BALANCER_HOST_REGEX_* environment variables into
// the property map the real catalog's PropertiesWithPrefix would
// otherwise supply, translating BALANCER_HOST_REGEX_OOB_PERIOD-style
// names to the dotted property keys Config expects.
func loadPropertiesFromEnv() map[string]string {
	props := map[string]string{}
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || !strings.HasPrefix(parts[0], "BALANCER_HOST_REGEX_") {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], "BALANCER_HOST_REGEX_"))
		props["balancer.host.regex."+strings.ReplaceAll(key, "_", ".")] = parts[1]
	}
	return props
}
