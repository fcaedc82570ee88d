// Package inventory merges installed-package listings across every package
// manager present on a host into one normalized table.
package inventory

import (
	"context"
	"sync"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/m-217/packup/logger"
	pm "github.com/m-217/packup/packup/packagemanager"
	"github.com/m-217/packup/packup/probe"
)

// Inventory is a multiset of installed entries. The same package legitimately
// appears once per manager that installed it; no cross-manager identity
// merging is attempted.
type Inventory []pm.InstalledPackage

// ByManager groups the inventory by manager name, preserving each manager's
// internal listing order.
func (inv Inventory) ByManager() map[string][]pm.InstalledPackage {
	grouped := make(map[string][]pm.InstalledPackage)
	for _, entry := range inv {
		grouped[entry.Manager] = append(grouped[entry.Manager], entry)
	}
	return grouped
}

// Aggregator queries ListInstalled on every available backend.
type Aggregator struct {
	backends []pm.Backend
	prober   probe.Prober
	log      logger.Logger
}

func New(backends []pm.Backend, prober probe.Prober, log logger.Logger) *Aggregator {
	if log == nil {
		log = logger.Nop{}
	}
	return &Aggregator{backends: backends, prober: prober, log: log}
}

// Collect lists every available backend in parallel and unions the results.
// Each backend spawns its own external process and shares nothing, so the
// fan-out is safe. A backend whose listing fails contributes zero entries;
// its error is accumulated and returned alongside the partial inventory
// rather than aborting the others. Ordering across backends follows the
// backend priority order, with each backend's internal order preserved.
func (a *Aggregator) Collect(ctx context.Context) (Inventory, error) {
	type listing struct {
		packages []pm.InstalledPackage
		err      error
	}

	listings := make([]listing, len(a.backends))
	var wg sync.WaitGroup

	for i, backend := range a.backends {
		if !a.prober.Available(backend.Executable()) {
			a.log.Debug("skipping unavailable backend", "backend", backend.Name())
			continue
		}

		wg.Add(1)
		go func(i int, backend pm.Backend) {
			defer wg.Done()
			packages, err := backend.ListInstalled(ctx)
			listings[i] = listing{packages: packages, err: err}
		}(i, backend)
	}
	wg.Wait()

	var inventory Inventory
	var errs *multierror.Error
	for i, backend := range a.backends {
		if listings[i].err != nil {
			a.log.Warn("listing failed", "backend", backend.Name(), "error", listings[i].err)
			errs = multierror.Append(errs, listings[i].err)
			continue
		}
		inventory = append(inventory, listings[i].packages...)
	}
	return inventory, errs.ErrorOrNil()
}
