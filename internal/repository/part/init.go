package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/Bryan-Quispe/Computer-Parts/internal/model"
)

type BatchCreator interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, parts []*model.Part) error
}

// PartsBootstrap fills an empty collection with a small demo catalogue.
// A collection that already holds documents is left untouched.
func PartsBootstrap(ctx context.Context, c BatchCreator) error {
	n, err := c.Count(ctx)
	if err != nil {
		return fmt.Errorf("repository.PartsBootstrap: %w", err)
	}
	if n > 0 {
		return nil
	}

	return c.CreateBatch(ctx, DemoParts())
}

func DemoParts() []*model.Part {
	return []*model.Part{
		{
			ID:          "P001",
			Name:        "RAM 16GB DDR4 3200MHz",
			Brand:       "Corsair",
			Price:       59.99,
			Stock:       10,
			Description: lo.ToPtr("Vengeance LPX dual channel kit, 2x8GB."),
		},
		{
			ID:          "P002",
			Name:        "SSD NVMe 1TB",
			Brand:       "Samsung",
			Price:       89.5,
			Stock:       25,
			Description: lo.ToPtr("970 EVO Plus, M.2 2280, PCIe 3.0 x4."),
		},
		{
			ID:    "P003",
			Name:  "GeForce RTX 4070",
			Brand: "NVIDIA",
			Price: 599,
			Stock: 0,
		},
		{
			ID:          "P004",
			Name:        "Ryzen 7 7800X3D",
			Brand:       "AMD",
			Price:       449,
			Stock:       4,
			Description: lo.ToPtr("8 cores, 16 threads, AM5 socket."),
		},
		{
			ID:    "P005",
			Name:  "Power Supply 750W 80+ Gold",
			Brand: "Seasonic",
			Price: 119.9,
			Stock: 12,
		},
	}
}
