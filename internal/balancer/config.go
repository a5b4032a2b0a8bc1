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
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Recognized property keys, read under a common caller-supplied prefix
// (e.g. "balancer.host.regex."). Unknown keys under the prefix are
// ignored.
const (
	propRegexPrefix    = "regex."
	propOOBPeriod      = "oob.period"
	propPoolCheck      = "pool.check"
	propIsIP           = "is.ip"
	defaultOOBPeriod   = 5 * time.Minute
	defaultPoolCheck   = time.Minute
	defaultIsIPBased   = false
	minPoolCheckPeriod = time.Second
)

// Config is the read-only snapshot of operator-set properties the core
// consumes. All fields are populated once at Init and never mutated
// afterward, so reads need no synchronization.
type Config struct {
	poolPatterns      map[TableName]*regexp.Regexp
	oobPeriod         time.Duration
	poolRecheckPeriod time.Duration
	isIPBased         bool
}

// LoadConfig parses properties under prefix into a Config. Per-table
// regexes are read from "<prefix>regex.<tableName>"; the remaining
// recognized keys are documented on the package constants above.
//
// Durations accept "<integer><unit>" where unit is one of s, m, h, d
// (seconds, minutes, hours, days); an absent unit means milliseconds.
func LoadConfig(properties map[string]string, prefix string) (*Config, error) {
	c := &Config{
		poolPatterns:      make(map[TableName]*regexp.Regexp),
		oobPeriod:         defaultOOBPeriod,
		poolRecheckPeriod: defaultPoolCheck,
		isIPBased:         defaultIsIPBased,
	}

	for key, val := range properties {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		suffix := key[len(prefix):]

		switch {
		case suffix == propOOBPeriod:
			d, err := parseDuration(val)
			if err != nil {
				return nil, fmt.Errorf("balancer: invalid %s: %w", key, err)
			}
			c.oobPeriod = d
		case suffix == propPoolCheck:
			d, err := parseDuration(val)
			if err != nil {
				return nil, fmt.Errorf("balancer: invalid %s: %w", key, err)
			}
			if d < minPoolCheckPeriod {
				d = minPoolCheckPeriod
			}
			c.poolRecheckPeriod = d
		case suffix == propIsIP:
			b, err := strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("balancer: invalid %s: %w", key, err)
			}
			c.isIPBased = b
		case strings.HasPrefix(suffix, propRegexPrefix):
			name := TableName(suffix[len(propRegexPrefix):])
			if name == "" {
				continue
			}
			re, err := regexp.Compile(val)
			if err != nil {
				return nil, fmt.Errorf("balancer: invalid regex for table %q: %w", name, err)
			}
			c.poolPatterns[name] = re
		}
	}

	return c, nil
}

// PoolPattern returns the compiled regex configured for table, if any.
func (c *Config) PoolPattern(table TableName) (*regexp.Regexp, bool) {
	re, ok := c.poolPatterns[table]
	return re, ok
}

// PoolPatterns returns a snapshot of all configured (table, regex)
// pairs. The returned map must not be mutated.
func (c *Config) PoolPatterns() map[TableName]*regexp.Regexp {
	return c.poolPatterns
}

// OOBPeriod is the interval between out-of-bounds scans.
func (c *Config) OOBPeriod() time.Duration { return c.oobPeriod }

// PoolRecheckPeriod is the interval between pool-membership
// re-derivations.
func (c *Config) PoolRecheckPeriod() time.Duration { return c.poolRecheckPeriod }

// IsIPBased reports whether regexes match the raw host string instead
// of a resolved DNS name.
func (c *Config) IsIPBased() bool { return c.isIPBased }

// PoolNameForTable derives a table's pool name: its own name if a
// regex is configured for it, otherwise DefaultPoolName.
func (c *Config) PoolNameForTable(table TableName) PoolName {
	if _, ok := c.poolPatterns[table]; ok {
		return PoolName(table)
	}
	return DefaultPoolName
}

// parseDuration parses "<integer><unit>" with unit in {s,m,h,d} and an
// absent unit meaning milliseconds. time.ParseDuration is not used
// directly because it has no day unit and rejects a bare integer.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	unit := time.Millisecond
	numeric := s

	switch s[len(s)-1] {
	case 's':
		unit = time.Second
		numeric = s[:len(s)-1]
	case 'm':
		unit = time.Minute
		numeric = s[:len(s)-1]
	case 'h':
		unit = time.Hour
		numeric = s[:len(s)-1]
	case 'd':
		unit = 24 * time.Hour
		numeric = s[:len(s)-1]
	}

	n, err := strconv.ParseInt(numeric, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	return time.Duration(n) * unit, nil
}
