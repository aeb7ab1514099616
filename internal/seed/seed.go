// Package seed provides the fixed user and equipment sets the system starts with.
package seed

import (
	"fmt"

	"github.com/dmitrijs2005/macreserve/internal/models"
)

var labels = []string{"MacBook Pro", "iMac", "Mac Studio", "Mac Mini", "MacBook Air", "Mac Pro"}

// Users returns the accounts allowed to log in.
func Users() []models.User {
	return []models.User{
		{Username: "acxell", Password: "1234"},
		{Username: "daniel", Password: "4321"},
		{Username: "renato", Password: "5678"},
	}
}

// Equipment returns MAC-1..MAC-6, all available.
func Equipment() []models.Equipment {
	items := make([]models.Equipment, 0, len(labels))
	for i, label := range labels {
		items = append(items, models.Equipment{
			Code:   fmt.Sprintf("MAC-%d", i+1),
			Label:  label,
			Status: models.EquipmentAvailable,
		})
	}
	return items
}
