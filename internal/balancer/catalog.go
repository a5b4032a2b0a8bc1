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

import "context"

// Catalog is the table-metadata service the core consumes. It is an
// external collaborator: the balancer never persists or caches beyond
// what the Pool Grouper's own recheck window requires, and a catalog
// that can't be reached at Init is a fatal configuration error.
type Catalog interface {
	// TableIDMap returns the current table name -> table ID mapping.
	TableIDMap(ctx context.Context) (map[TableName]TableID, error)

	// PropertiesWithPrefix returns table's custom properties whose key
	// starts with prefix, keyed by the full property key.
	PropertiesWithPrefix(ctx context.Context, table TableName, prefix string) (map[string]string, error)
}

// ServerRPC is the per-server tablet-statistics collaborator the OOB
// Scanner calls into. A single server's RPC failure must not abort a
// scan; callers log and continue.
type ServerRPC interface {
	// OnlineTabletsForTable lists the online tablets of table hosted
	// by server.
	OnlineTabletsForTable(ctx context.Context, server ServerID, table TableID) ([]TabletStat, error)
}

// NameResolver maps a server's host string to the string regexes are
// matched against.
type NameResolver interface {
	// Resolve returns the matchable name for host. In IP-based mode
	// callers should bypass this entirely rather than call it with a
	// no-op implementation, so resolver call counts stay a meaningful
	// test signal (spec.md §8 scenario 6).
	Resolve(ctx context.Context, host string) (string, error)
}
