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

// Package main is a demo harness for the host-regex tablet load
// balancer: it drives Init/GetAssignments/Balance against a fixed
// in-memory Catalog, a no-op ServerRPC, the DNS NameResolver and a
// MapRegistry of round-robin inner balancers, on a tick, and serves
// /metrics.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/metrics"

	"github.com/tablestore/host-regex-balancer/internal/balancer"
)

var setupLog = ctrl.Log.WithName("setup")

func main() {
	var metricsAddr string
	var tickInterval time.Duration
	flag.StringVar(&metricsAddr, "metrics-bind-address", ":8080", "Address the /metrics endpoint binds to")
	flag.DurationVar(&tickInterval, "tick-interval", 10*time.Second, "Interval between control-loop ticks")

	opts := zap.Options{Development: true}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))
	setupLog.Info("starting balancerd", "tickInterval", tickInterval, "metricsAddr", metricsAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := newStaticCatalog()
	resolver := balancer.NewDNSResolver()
	rpc := newNoOpServerRPC()
	registry := balancer.MapRegistry{}

	properties := loadPropertiesFromEnv()

	lb, err := balancer.New(ctx, properties, catalog, resolver, rpc, registry, ctrl.Log)
	if err != nil {
		setupLog.Error(err, "unable to initialize balancer")
		os.Exit(1)
	}

	for table := range catalog.tableIDs {
		registry[catalog.tableIDs[table]] = balancer.NewRoundRobinInnerBalancer()
	}

	go serveMetrics(metricsAddr)

	runLoop(ctx, lb, catalog, tickInterval)
	setupLog.Info("balancerd shutdown complete")
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
		setupLog.Error(err, "metrics server failed")
	}
}

func runLoop(ctx context.Context, lb *balancer.HostRegexTabletLoadBalancer, catalog *staticCatalog, tickInterval time.Duration) {
	migrations := map[balancer.TabletExtent]struct{}{}
	unassigned := map[balancer.TabletExtent]balancer.ServerID{}
	assignments := map[balancer.TabletExtent]balancer.ServerID{}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := lb.GetAssignments(ctx, catalog.servers, unassigned, assignments); err != nil {
			setupLog.Error(err, "getAssignments failed this tick")
			continue
		}

		var proposals []balancer.Migration
		delay := lb.Balance(ctx, catalog.servers, migrations, &proposals)
		setupLog.Info("tick complete", "nextDelay", delay, "proposedMigrations", len(proposals))

		ticker.Reset(delay)
	}
}
