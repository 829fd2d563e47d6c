package service

import (
	"context"

	"github.com/lojadosgeeks/catalog-api/internal/platform/logger"
	"github.com/lojadosgeeks/catalog-api/internal/product/domain"
)

const (
	msgAlreadySeeded = "Dados já existem"
	msgSeedSuccess   = "Dados de exemplo criados com sucesso!"
)

// SeedSampleData populates the demo catalog once. The mutex serializes
// concurrent callers of this instance, so the check-then-insert cannot
// double-seed in-process; across instances the bounded existence check is
// the only gate.
func (s *productServiceImpl) SeedSampleData(ctx context.Context) (*domain.SeedResult, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	exists, err := s.repo.HasProducts(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return &domain.SeedResult{Message: msgAlreadySeeded}, nil
	}

	catalog := sampleCatalog()
	if err := s.repo.CreateProducts(ctx, catalog); err != nil {
		return nil, err
	}

	logger.Info("Seeded %d sample products", len(catalog))
	return &domain.SeedResult{Message: msgSeedSuccess}, nil
}

// sampleCatalog builds the fixed demo products, each with a fresh id and
// creation timestamp.
func sampleCatalog() []domain.Product {
	inputs := []domain.ProductCreate{
		{
			Name:          "Camiseta Star Wars",
			Description:   "Camiseta 100% algodão com estampa dos filmes Star Wars",
			Price:         45.99,
			Category:      "geeks",
			ImageURL:      "https://images.unsplash.com/photo-1657812159075-7f0abd98f7b8?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzF8MHwxfHNlYXJjaHwxfHxlLWNvbW1lcmNlfGVufDB8fHx8MTc1MzcwMTQwOHww&ixlib=rb-4.1.0&q=85",
			StockQuantity: 50,
		},
		{
			Name:          "Mousepad Gamer RGB",
			Description:   "Mousepad com iluminação RGB e base antiderrapante",
			Price:         89.90,
			Category:      "geeks",
			ImageURL:      "https://images.unsplash.com/photo-1658297063569-162817482fb6?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzF8MHwxfHNlYXJjaHwzfHxlLWNvbW1lcmNlfGVufDB8fHx8MTc1MzcwMTQwOHww&ixlib=rb-4.1.0&q=85",
			StockQuantity: 30,
		},
		{
			Name:          "Caneca Marvel",
			Description:   "Caneca temática dos heróis da Marvel com 350ml",
			Price:         25.50,
			Category:      "geeks",
			ImageURL:      "https://images.unsplash.com/photo-1713646778050-2213b4140e6b?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NjZ8MHwxfHNlYXJjaHwxfHxvbmxpbmUlMjBzaG9wcGluZ3xlbnwwfHx8fDE3NTM3MDE0MTN8MA&ixlib=rb-4.1.0&q=85",
			StockQuantity: 75,
		},
		{
			Name:          "Gel Anti-inflamatório 60g",
			Description:   "Gel para alívio de dores musculares e articulares",
			Price:         18.99,
			Category:      "gel-dor",
			ImageURL:      "https://images.unsplash.com/photo-1539278383962-a7774385fa02?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NjZ8MHwxfHNlYXJjaHwyfHxvbmxpbmUlMjBzaG9wcGluZ3xlbnwwfHx8fDE3NTM3MDE0MTN8MA&ixlib=rb-4.1.0&q=85",
			StockQuantity: 100,
		},
		{
			Name:          "Gel Relaxante Muscular 120g",
			Description:   "Gel com mentol para relaxamento muscular profundo",
			Price:         32.50,
			Category:      "gel-dor",
			ImageURL:      "https://images.pexels.com/photos/230544/pexels-photo-230544.jpeg",
			StockQuantity: 80,
		},
		{
			Name:          "Organizador de Mesa",
			Description:   "Organizador de mesa em madeira com compartimentos",
			Price:         67.90,
			Category:      "diversos",
			ImageURL:      "https://images.unsplash.com/photo-1657812159075-7f0abd98f7b8?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzF8MHwxfHNlYXJjaHwxfHxlLWNvbW1lcmNlfGVufDB8fHx8MTc1MzcwMTQwOHww&ixlib=rb-4.1.0&q=85",
			StockQuantity: 25,
		},
		{
			Name:          "Lanterna LED Recarregável",
			Description:   "Lanterna LED potente com carregador USB",
			Price:         45.99,
			Category:      "diversos",
			ImageURL:      "https://images.unsplash.com/photo-1658297063569-162817482fb6?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzF8MHwxfHNlYXJjaHwzfHxlLWNvbW1lcmNlfGVufDB8fHx8MTc1MzcwMTQwOHww&ixlib=rb-4.1.0&q=85",
			StockQuantity: 40,
		},
	}

	catalog := make([]domain.Product, 0, len(inputs))
	for _, in := range inputs {
		catalog = append(catalog, *domain.NewProduct(in))
	}
	return catalog
}
