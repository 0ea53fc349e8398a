package store

import (
	"fmt"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
)

// SeedSampleData fills an empty store with a few demo tasks so a fresh
// install has something to show. Seeding a non-empty store is a no-op.
func (s *Store) SeedSampleData() error {
	if !s.Empty() {
		return nil
	}

	year := s.now().Year()
	drafts := []Draft{
		{
			OrderNumber: fmt.Sprintf("%d/001", year),
			Title:       "Pick spare parts for line 3",
			Description: "Rush order for the assembly line",
			Priority:    models.PriorityUrgent,
			Type:        models.TypePicking,
			Positions: []models.Position{
				{SKU: "BRG-6204", Name: "Bearing 6204", Quantity: 12, Completed: 0},
				{SKU: "BLT-M8x40", Name: "Bolt M8x40", Quantity: 200, Completed: 0},
			},
		},
		{
			OrderNumber: fmt.Sprintf("%d/002", year),
			Title:       "Ship pallets to customer dock",
			Priority:    models.PriorityNormal,
			Type:        models.TypeShipment,
		},
		{
			OrderNumber: fmt.Sprintf("%d/003", year),
			Title:       "Write off damaged packaging",
			Priority:    models.PriorityLow,
			Type:        models.TypeWriteoff,
		},
	}

	for _, d := range drafts {
		if _, err := s.Create(d); err != nil {
			return err
		}
	}
	return nil
}
