package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/campus-content/pkg/campus"
	"github.com/tendant/campus-content/pkg/campus/config"
	"github.com/tendant/campus-content/pkg/campus/repo/memory"
)

func TestRunNeedsPostgres(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	err = run(context.Background(), cfg, false, false)
	assert.ErrorIs(t, err, errNotPostgres)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	require.NoError(t, load(ctx, repo, false))
	require.NoError(t, load(ctx, repo, false))
	assert.Len(t, programs(t, repo), 3)

	require.NoError(t, load(ctx, repo, true))
	assert.Len(t, programs(t, repo), 6)
}

func programs(t *testing.T, repo campus.Repository) []*campus.Program {
	t.Helper()
	list, err := repo.ListPrograms(context.Background())
	require.NoError(t, err)
	return list
}
