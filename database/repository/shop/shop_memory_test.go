package shopRepo

import (
	"context"
	"testing"

	"massagefinder/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedShop(t *testing.T, r *MemoryShopRepo) string {
	t.Helper()
	shop := &models.Shop{Name: "Lotus Spa", Description: "calm", Address: "Seoul"}
	require.NoError(t, r.Create(context.Background(), shop))
	return shop.ID
}

func TestMemoryRepoReadsDoNotMutateStore(t *testing.T) {
	r := NewMemoryShopRepo()
	ctx := context.Background()

	shop := &models.Shop{
		Name:        "Lotus Spa",
		Description: "calm",
		Address:     "Seoul",
		DetailedServices: []models.Service{
			{Name: "", Price: ""},
			{Name: "Foot", Price: "30000"},
		},
	}
	require.NoError(t, r.Create(ctx, shop))

	want := []models.Service{{Name: "Foot", Price: "30000"}}

	// Repeated reads must keep returning the same normalized view; the
	// stored document must not change underneath them.
	for i := 0; i < 3; i++ {
		got, err := r.GetByID(ctx, shop.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got.DetailedServices, "read %d", i+1)

		all, err := r.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, want, all[0].DetailedServices, "listing read %d", i+1)
	}

	stored := r.shops[shop.ID].shop
	assert.Equal(t, []models.Service{
		{Name: "", Price: ""},
		{Name: "Foot", Price: "30000"},
	}, stored.DetailedServices)
}

func TestDeleteRemovesReviews(t *testing.T) {
	r := NewMemoryShopRepo()
	ctx := context.Background()
	shopID := seedShop(t, r)

	for i := 0; i < 2; i++ {
		_, err := r.AddReview(ctx, shopID, &models.Review{AuthorName: "mina", Rating: 4, Comment: "good"})
		require.NoError(t, err)
	}
	reviews, err := r.GetReviews(ctx, shopID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	require.NoError(t, r.Delete(ctx, shopID))

	_, err = r.GetReviews(ctx, shopID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, r.reviews, shopID)
	assert.NotContains(t, r.shops, shopID)
}
