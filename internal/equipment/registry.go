// Package equipment keeps the fixed pool of bookable machines and their
// advisory status flag.
package equipment

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/models"
)

type Registry struct {
	mu    sync.RWMutex
	items []models.Equipment
}

func NewRegistry(items []models.Equipment) *Registry {
	return &Registry{items: append([]models.Equipment(nil), items...)}
}

// ListAll returns a snapshot of every item in seed order.
func (r *Registry) ListAll() []models.Equipment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Equipment(nil), r.items...)
}

func (r *Registry) Get(code string) (models.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(code)
	if i < 0 {
		return models.Equipment{}, fmt.Errorf("equipment %q: %w", code, common.ErrorNotFound)
	}
	return r.items[i], nil
}

// SetStatus overwrites the advisory status of an item unconditionally.
func (r *Registry) SetStatus(code string, status models.EquipmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(code)
	if i < 0 {
		return fmt.Errorf("equipment %q: %w", code, common.ErrorNotFound)
	}
	r.items[i].Status = status
	return nil
}

func (r *Registry) indexOf(code string) int {
	for i := range r.items {
		if r.items[i].Code == code {
			return i
		}
	}
	return -1
}
