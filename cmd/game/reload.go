package main

import (
	"github.com/natac13/top-down-cartoon-game/internal/infrastructure/config"
)

// watch returns a pre-update hook that applies catalog edits between
// battles. Other config files are only picked up on restart.
func (a *app) watch(w *config.Watcher) func() error {
	return func() error {
		a.changed(w.Drain())

		select {
		case err := <-w.Errors:
			a.ctx.Logger.Warn("config watcher", "err", err)
		default:
		}
		return nil
	}
}

// changed records edited files and reloads once no battle is running
func (a *app) changed(names []string) {
	for _, name := range names {
		if config.IsCatalogFile(name) {
			a.reloadPending = true
		} else {
			a.ctx.Logger.Info("config changed, restart to apply", "file", name)
		}
	}

	if a.reloadPending && !a.ctx.Session.Initiated {
		a.reloadCatalog()
	}
}

// reloadCatalog swaps in a fresh catalog. A broken edit keeps the old one.
func (a *app) reloadCatalog() {
	a.reloadPending = false

	catalog, err := a.loader.LoadCatalog()
	if err != nil {
		a.ctx.Logger.Warn("catalog reload failed", "err", err)
		return
	}

	prev := a.catalog
	a.catalog = catalog
	if _, _, err := a.combatants(); err != nil {
		a.catalog = prev
		a.ctx.Logger.Warn("catalog reload rejected", "err", err)
		return
	}

	a.ctx.Logger.Info("catalog reloaded",
		"attacks", len(catalog.Attacks),
		"monsters", len(catalog.Monsters),
	)
}
