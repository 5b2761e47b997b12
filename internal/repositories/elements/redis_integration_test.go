package elements

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
	"github.com/KirkDiggler/trigger-overlay/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClient(t, nil)
	repo := NewRedis(client)
	ctx := context.Background()

	dots := testElement("dots")
	procs := testElement("procs")
	procs.Name = "Procs"

	require.NoError(t, repo.Create(ctx, dots))
	require.NoError(t, repo.Create(ctx, procs))
	assert.True(t, overlayerr.IsAlreadyExists(repo.Create(ctx, dots)))

	got, err := repo.Get(ctx, "dots")
	require.NoError(t, err)
	assert.Equal(t, dots.Template, got.Template)
	assert.Equal(t, "Status: Dia", got.Triggers.Entries[0].Trigger.Label())

	got.Template = "[name.4]"
	require.NoError(t, repo.Update(ctx, got))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "[name.4]", list[0].Template)
	assert.Equal(t, "Procs", list[1].Name)

	require.NoError(t, repo.Delete(ctx, "dots"))
	_, err = repo.Get(ctx, "dots")
	assert.True(t, overlayerr.IsNotFound(err))
}
