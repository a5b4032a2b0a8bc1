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

// Log reasons attached to logr.Logger calls throughout this package via
// a "reason" field. The teacher records equivalent lifecycle moments as
// corev1.Event reasons (internal/controller/events.go); this balancer
// has no Kubernetes object to attach events to, so the same taxonomy is
// carried as structured log fields instead.
const (
	// ReasonPoolRebuild indicates the Pool Grouper's cache expired and
	// pools were regrouped from the current server view.
	ReasonPoolRebuild = "PoolRebuild"

	// ReasonUnresolvableHost indicates name resolution failed for a
	// server; it was grouped into the default pool only.
	ReasonUnresolvableHost = "UnresolvableHost"

	// ReasonOOBMigration indicates the OOB scanner proposed a migration
	// for a tablet found outside its pool's servers.
	ReasonOOBMigration = "OOBMigration"

	// ReasonOOBSkipInFlight indicates an out-of-bounds tablet was left
	// alone because a migration for it was already in progress.
	ReasonOOBSkipInFlight = "OOBSkipInFlight"

	// ReasonEmptyPool indicates a table's configured pool had no
	// members this tick, so assignment or balancing was skipped.
	ReasonEmptyPool = "EmptyPool"

	// ReasonBackpressure indicates balance returned the floor delay
	// because migrations were already in flight.
	ReasonBackpressure = "Backpressure"

	// ReasonCatalogUnavailable indicates a catalog call failed; the
	// caller fell back to the floor delay or skipped the tick.
	ReasonCatalogUnavailable = "CatalogUnavailable"
)
