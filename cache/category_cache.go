package category_cache

import (
	"sync"
	"time"

	"github.com/novamart-commerce/novamart-backoffice/models"
)

const TTL = 5 * time.Minute

// memo holds one cached value behind its own lock. Entries expire by age;
// writers simply replace the value.
type memo[T any] struct {
	mu        sync.RWMutex
	value     T
	fetchedAt time.Time
}

func (m *memo[T]) get(ttl time.Duration) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.fetchedAt.IsZero() && time.Since(m.fetchedAt) < ttl {
		return m.value, true
	}
	var zero T
	return zero, false
}

func (m *memo[T]) set(value T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	m.fetchedAt = time.Now()
}

func (m *memo[T]) clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	m.value = zero
	m.fetchedAt = time.Time{}
}

// Category listings back every storefront page, so the full tree (parents
// with children preloaded, plus per-category product counts) and the flat
// sub-category list are each memoized for a short window.

type categoryTree struct {
	parents       []models.Category
	productCounts map[string]int
}

var (
	tree memo[categoryTree]
	subs memo[[]models.Category]
)

func GetTree() ([]models.Category, map[string]int, bool) {
	cached, ok := tree.get(TTL)
	if !ok {
		return nil, nil, false
	}
	return cached.parents, cached.productCounts, true
}

func SetTree(parents []models.Category, productCounts map[string]int) {
	tree.set(categoryTree{parents: parents, productCounts: productCounts})
}

func GetSubs() ([]models.Category, bool) {
	return subs.get(TTL)
}

func SetSubs(data []models.Category) {
	subs.set(data)
}

// Invalidate drops both category caches. Called on any category write.
func Invalidate() {
	tree.clear()
	subs.clear()
}
