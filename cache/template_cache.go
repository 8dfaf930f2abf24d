package template_cache

import (
	"sync"
	"time"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

const TTL = 5 * time.Minute

// ── Published template cache ─────────────────────────────────────────────────
// Stores the published template per store. The live storefront page renderer
// reads from this; builder saves invalidate it.

type templateEntry struct {
	template  *models.Template
	fetchedAt time.Time
}

var (
	tplMu    sync.RWMutex
	tplCache = make(map[string]*templateEntry)
)

func Get(storeID string) (*models.Template, bool) {
	tplMu.RLock()
	defer tplMu.RUnlock()
	if entry, ok := tplCache[storeID]; ok && time.Since(entry.fetchedAt) < TTL {
		return entry.template, true
	}
	return nil, false
}

func Set(storeID string, tpl *models.Template) {
	tplMu.Lock()
	defer tplMu.Unlock()
	tplCache[storeID] = &templateEntry{template: tpl, fetchedAt: time.Now()}
}

// ── Invalidate one store (call on any template save/publish) ─────────────────

func Invalidate(storeID string) {
	tplMu.Lock()
	delete(tplCache, storeID)
	tplMu.Unlock()
}

// InvalidateAll drops every cached template.
func InvalidateAll() {
	tplMu.Lock()
	tplCache = make(map[string]*templateEntry)
	tplMu.Unlock()
}
