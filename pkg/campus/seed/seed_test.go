package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/campus-content/pkg/campus"
	"github.com/tendant/campus-content/pkg/campus/repo/memory"
	"github.com/tendant/campus-content/pkg/campus/seed"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	require.NoError(t, seed.Load(ctx, repo))

	programs, err := repo.ListPrograms(ctx)
	require.NoError(t, err)
	assert.Len(t, programs, 3)

	events, err := repo.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 6)

	management, err := repo.ListManagement(ctx)
	require.NoError(t, err)
	require.Len(t, management, 6)
	assert.Equal(t, "Rector", management[0].Position)
	require.NotNil(t, management[0].SocialLinks)
	assert.Equal(t, "rector@fedpolyede.edu.ng", *management[0].SocialLinks.Email)

	testimonials, err := repo.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, 3)

	achievements, err := repo.ListAchievements(ctx)
	require.NoError(t, err)
	assert.Len(t, achievements, 4)

	facilities, err := repo.ListFacilities(ctx)
	require.NoError(t, err)
	assert.Len(t, facilities, 6)

	alumni, err := repo.ListAlumni(ctx)
	require.NoError(t, err)
	assert.Len(t, alumni, 3)

	news, err := repo.ListNews(ctx)
	require.NoError(t, err)
	assert.Len(t, news, 5)
	featured, err := repo.ListFeaturedNews(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 2)

	stats, err := repo.ListInstitutionalData(ctx)
	require.NoError(t, err)
	assert.Len(t, stats, 10)

	setting, err := repo.GetSetting(ctx, "site_name")
	require.NoError(t, err)
	assert.Equal(t, seed.SiteName, setting.Value)
}

func TestIfEmpty(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	loaded, err := seed.IfEmpty(ctx, repo)
	require.NoError(t, err)
	assert.True(t, loaded)

	loaded, err = seed.IfEmpty(ctx, repo)
	require.NoError(t, err)
	assert.False(t, loaded)

	programs, err := repo.ListPrograms(ctx)
	require.NoError(t, err)
	assert.Len(t, programs, 3)
}

func TestIfEmptySkipsPopulatedRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	_, err := repo.CreateProgram(ctx, &campus.Program{Title: "Existing"})
	require.NoError(t, err)

	loaded, err := seed.IfEmpty(ctx, repo)
	require.NoError(t, err)
	assert.False(t, loaded)

	events, err := repo.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestUpcomingEventsFollowClock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	repo := memory.New(memory.WithClock(func() time.Time { return now }))
	require.NoError(t, seed.Load(ctx, repo))

	upcoming, err := repo.ListUpcomingEvents(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 3)
	assert.Equal(t, "Annual Cultural Festival", upcoming[0].Title)
}

func TestDataIsFreshOnEachCall(t *testing.T) {
	a := seed.Programs()
	a[0].Title = "changed"
	assert.Equal(t, "Engineering Technology", seed.Programs()[0].Title)
}
