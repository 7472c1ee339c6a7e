package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/campus-content/pkg/campus"
	"github.com/tendant/campus-content/pkg/campus/repo/memory"
	"github.com/tendant/campus-content/pkg/campus/repo/repotest"
)

func TestRepositoryContract(t *testing.T) {
	repotest.Run(t, func(t *testing.T, clock campus.Clock) campus.Repository {
		return memory.New(memory.WithClock(clock))
	})
}

func TestRepository_IsolatedInstances(t *testing.T) {
	ctx := context.Background()
	a := memory.New()
	b := memory.New()

	_, err := a.CreateProgram(ctx, &campus.Program{Title: "Only in a"})
	require.NoError(t, err)

	list, err := b.ListPrograms(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	image := "poster.jpg"
	in := &campus.Event{Title: "Hackathon", Image: &image}
	created, err := repo.CreateEvent(ctx, in)
	require.NoError(t, err)

	// mutate everything the caller holds
	in.Title = "changed"
	image = "changed.jpg"
	created.Title = "changed"
	*created.Image = "changed.jpg"

	got, err := repo.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hackathon", got.Title)
	require.NotNil(t, got.Image)
	assert.Equal(t, "poster.jpg", *got.Image)
}

func TestRepository_IDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	first, err := repo.CreateNews(ctx, &campus.News{Title: "a"})
	require.NoError(t, err)
	ok, err := repo.DeleteNews(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, ok)

	second, err := repo.CreateNews(ctx, &campus.News{Title: "b"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}
