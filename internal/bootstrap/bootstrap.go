package bootstrap

import (
	"context"
	"fmt"

	"localmarket/internal/domains/category/model"
	"localmarket/internal/domains/category/repository"

	"github.com/rs/zerolog/log"
)

// DefaultCategories is the fixed category catalogue. Seeding skips ids that
// already exist, so redeploys never duplicate or overwrite rows.
var DefaultCategories = []model.Category{
	{ID: "bike-repair", Name: "Bike Repair", Icon: "🚲"},
	{ID: "moving", Name: "Moving Help", Icon: "📦"},
	{ID: "cleaning", Name: "Cleaning", Icon: "🧽"},
	{ID: "gardening", Name: "Gardening", Icon: "🌱"},
	{ID: "pet-care", Name: "Pet Care", Icon: "🐕"},
	{ID: "tutoring", Name: "Tutoring", Icon: "📚"},
	{ID: "music", Name: "Music Lessons", Icon: "🎵"},
	{ID: "photography", Name: "Photography", Icon: "📸"},
}

type Bootstrap struct {
	categoryRepo repository.Category
}

func New(categoryRepo repository.Category) Bootstrap {
	return Bootstrap{
		categoryRepo: categoryRepo,
	}
}

func (b *Bootstrap) Run(ctx context.Context) error {
	if err := b.categoryRepo.Seed(ctx, DefaultCategories); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	log.Info().Int("categories", len(DefaultCategories)).Msg("Database seed completed")

	return nil
}
