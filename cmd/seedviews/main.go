// Command seedviews backfills plausible view counts onto shops whose counter
// is still near zero, so a freshly imported directory does not look deserted.
package main

import (
	"context"
	"flag"
	"math/rand"

	"massagefinder/config"
	"massagefinder/database"
	shopRepoPkg "massagefinder/database/repository/shop"
	"massagefinder/utils"

	"go.uber.org/zap"
)

func main() {
	threshold := flag.Int64("threshold", 10, "only touch shops with at most this many views")
	minViews := flag.Int64("min", 50, "lower bound of the seeded view count")
	maxViews := flag.Int64("max", 500, "upper bound of the seeded view count")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.FirebaseProjectID == "" {
		logger.Fatal("seedviews: FIREBASE_PROJECT_ID must be set")
	}
	if *minViews > *maxViews {
		logger.Fatal("seedviews: -min must not exceed -max")
	}

	database.InitDB()
	repo := shopRepoPkg.NewFirestoreShopRepo()

	ctx := context.Background()
	shops, err := repo.GetAll(ctx)
	if err != nil {
		logger.Fatal("seedviews: failed to load shops", zap.Error(err))
	}

	seeded := 0
	for _, s := range shops {
		if s.ViewCount > *threshold {
			continue
		}
		views := *minViews + rand.Int63n(*maxViews-*minViews+1)
		if err := repo.SetViewCount(ctx, s.ID, views); err != nil {
			logger.Error("seedviews: failed to set view count",
				zap.String("id", s.ID), zap.Error(err))
			continue
		}
		seeded++
	}

	logger.Info("seedviews: done",
		zap.Int("total", len(shops)), zap.Int("seeded", seeded))
}
