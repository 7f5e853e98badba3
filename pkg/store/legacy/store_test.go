package legacy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/wakestate/pkg/store/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		s, err := NewStore("")
		assert.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("missing file is empty", func(t *testing.T) {
		s, err := NewStore(filepath.Join(t.TempDir(), "absent.ini"))
		require.NoError(t, err)

		_, err = s.Get(context.Background(), "wakestate_checkins")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})
}

func TestStore_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.ini")
	content := "[wakestate]\n" +
		`wakestate_settings = {"showContextByDefault":true,"theme":"deep-ocean"}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := NewStore(path)
	require.NoError(t, err)

	got, err := s.Get(context.Background(), "wakestate_settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"showContextByDefault":true,"theme":"deep-ocean"}`, string(got))
}

func TestStore_SetSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.ini")
	ctx := context.Background()
	value := `[{"id":"c1","note":"coffee; then a #walk"}]`

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "wakestate_checkins", []byte(value)))

	reloaded, err := NewStore(path)
	require.NoError(t, err)
	got, err := reloaded.Get(ctx, "wakestate_checkins")
	require.NoError(t, err)
	assert.JSONEq(t, value, string(got))

	require.NoError(t, reloaded.Delete(ctx, "wakestate_checkins"))
	_, err = reloaded.Get(ctx, "wakestate_checkins")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}
