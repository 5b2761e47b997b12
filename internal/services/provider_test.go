package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/textformat"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate/replay"
	"github.com/KirkDiggler/trigger-overlay/internal/layout"
	"github.com/KirkDiggler/trigger-overlay/internal/repositories/elements"
	"github.com/KirkDiggler/trigger-overlay/internal/services"
)

func newLoadedProvider(t *testing.T, logger logrus.FieldLogger) (*services.Provider, elements.Repository) {
	t.Helper()
	ctx := context.Background()

	gameState, err := replay.Load(filepath.Join("..", "gamestate", "replay", "testdata", "snapshot.json"))
	require.NoError(t, err)

	els, err := layout.NewLoader(nil).Load(filepath.Join("..", "layout", "testdata", "layout.yaml"))
	require.NoError(t, err)

	repo := elements.NewInMemoryRepository()
	require.NoError(t, layout.Seed(ctx, repo, els))

	provider := services.NewProvider(&services.ProviderConfig{
		GameState:         gameState,
		ElementRepository: repo,
		Rounding:          textformat.RoundTruncate,
		Logger:            logger,
	})
	require.NoError(t, provider.OverlayService.Load(ctx))
	return provider, repo
}

func TestNewProvider_EditPinReachesOverlay(t *testing.T) {
	ctx := context.Background()
	logger, hook := test.NewNullLogger()
	provider, _ := newLoadedProvider(t, logger)

	cond, err := provider.EditorService.AddCondition(ctx, "dia")
	require.NoError(t, err)
	_, err = provider.EditorService.CommitThreshold(ctx, "dia", cond.ID, "100")
	require.NoError(t, err)
	require.NoError(t, provider.EditorService.OpenCondition(ctx, "dia", cond.ID))
	assert.True(t, provider.Registry.IsOpenForEdit(cond.ID))

	for _, res := range provider.OverlayService.Tick() {
		if res.ElementID != "dia" {
			continue
		}
		assert.True(t, res.Visible)
		assert.Equal(t, cond.ID, res.ConditionID, "the open condition wins although 21.3 > 100 fails")
	}

	shown := false
	for _, entry := range hook.AllEntries() {
		if entry.Message == "element shown" {
			shown = true
		}
	}
	assert.True(t, shown, "transitions reach the logging listener")
}

func TestNewProvider_SaveKeepsEditorChanges(t *testing.T) {
	ctx := context.Background()
	logger, _ := test.NewNullLogger()
	provider, repo := newLoadedProvider(t, logger)

	before, err := repo.Get(ctx, "dia")
	require.NoError(t, err)

	cond, err := provider.EditorService.AddCondition(ctx, "dia")
	require.NoError(t, err)

	var running int
	for _, el := range provider.OverlayService.Elements() {
		if el.ID == "dia" {
			running = el.Chain().Len()
		}
	}
	assert.Equal(t, before.Chain().Len()+1, running, "the running loop sees the new condition")

	provider.OverlayService.TogglePreview()
	require.NoError(t, provider.OverlayService.Save(ctx, "dia"))

	after, err := repo.Get(ctx, "dia")
	require.NoError(t, err)
	assert.Equal(t, before.Chain().Len()+1, after.Chain().Len())
	_, ok := after.Chain().Get(cond.ID)
	assert.True(t, ok, "saving the running element keeps the editor's condition")
	assert.False(t, after.Preview, "preview is not saved")
}
