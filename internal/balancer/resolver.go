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
	"net"
	"strings"
)

// Compile-time interface compliance check, grounded on the teacher's
// pkg/client convention of asserting each adapter against its small
// interface at package scope.
var _ NameResolver = (*DNSResolver)(nil)

// DNSResolver resolves a host to its canonical DNS name using the
// standard resolver. It does not cache: spec.md §4.3 allows caching
// but warns it must never mask a server moving to a new IP across
// rechecks, and an implementation that does not cache is conformant.
type DNSResolver struct{}

// NewDNSResolver returns a DNSResolver.
func NewDNSResolver() *DNSResolver { return &DNSResolver{} }

// Resolve implements NameResolver.
func (r *DNSResolver) Resolve(ctx context.Context, host string) (string, error) {
	var resolver net.Resolver
	cname, err := resolver.LookupCNAME(ctx, host)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(cname, "."), nil
}

// resolveForMatch returns the string to regex-match against: host
// itself in IP mode (no resolver call at all, so a fake resolver used
// in tests can assert zero calls per spec.md §8 scenario 6), or the
// resolver's result otherwise. A resolution failure is treated as "no
// regex matches" and logged by the caller, never propagated as a fatal
// error (spec.md §7).
func resolveForMatch(ctx context.Context, resolver NameResolver, isIPBased bool, host string) (name string, resolvable bool) {
	if isIPBased {
		return host, true
	}
	resolved, err := resolver.Resolve(ctx, host)
	if err != nil {
		return "", false
	}
	return resolved, true
}
