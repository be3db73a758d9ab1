package sound

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedManager(t *testing.T) *Manager {
	t.Helper()
	mgr := newManager(CommonSampleRate)
	require.NoError(t, mgr.LoadSamples(""))
	return mgr
}

func TestBuiltinSamples(t *testing.T) {
	mgr := loadedManager(t)
	for _, name := range []string{TISSUE, ALLERGEN, SNEEZE, BACKGROUND} {
		require.True(t, mgr.Has(name), name)
		assert.Positive(t, mgr.samples[name].Len(), name)
	}
	// The sneeze ends with a long noise burst.
	assert.Greater(t, mgr.samples[SNEEZE].Len(), mgr.samples[TISSUE].Len())
}

func TestPlayAndStop(t *testing.T) {
	mgr := loadedManager(t)

	require.NoError(t, mgr.Play(TISSUE))
	require.NoError(t, mgr.PlayLoop(BACKGROUND))
	assert.True(t, mgr.Playing(TISSUE))
	assert.True(t, mgr.Playing(BACKGROUND))

	mgr.StopListed(BACKGROUND, "never-played.wav")
	assert.False(t, mgr.Playing(BACKGROUND))
	assert.True(t, mgr.Playing(TISSUE))

	mgr.StopAll()
	assert.False(t, mgr.Playing(TISSUE))

	assert.Error(t, mgr.Play("missing.wav"))
}

func TestMute(t *testing.T) {
	mgr := loadedManager(t)
	require.NoError(t, mgr.PlayLoop(BACKGROUND))

	mgr.Mute()
	assert.True(t, mgr.Muted())
	assert.False(t, mgr.Playing(BACKGROUND), "mute stops playback")

	require.NoError(t, mgr.Play(SNEEZE))
	assert.False(t, mgr.Playing(SNEEZE), "nothing starts while muted")

	mgr.Unmute()
	require.NoError(t, mgr.Play(SNEEZE))
	assert.True(t, mgr.Playing(SNEEZE))
}

func TestNilManager(t *testing.T) {
	var mgr *Manager
	assert.NoError(t, mgr.Play(TISSUE))
	assert.NoError(t, mgr.PlayLoop(BACKGROUND))
	assert.False(t, mgr.Playing(TISSUE))
	assert.True(t, mgr.Muted())
	assert.Error(t, mgr.LoadSamples(""))
	mgr.StopAll()
	mgr.Mute()
	mgr.Close()
}

func TestLoadSamplesMissingDir(t *testing.T) {
	mgr := newManager(CommonSampleRate)
	err := mgr.LoadSamples(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadSamplesBrokenWAV(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SNEEZE), []byte("not a wav"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("ignored"), 0o644))

	mgr := newManager(CommonSampleRate)
	err := mgr.LoadSamples(dir)
	assert.ErrorContains(t, err, SNEEZE)
}

// TestSoundOutput plays through the real audio device. Set SNEEZE_AUDIO=1 to run it.
func TestSoundOutput(t *testing.T) {
	if os.Getenv("SNEEZE_AUDIO") != "1" {
		t.Skip("audio device test, set SNEEZE_AUDIO=1")
	}
	mgr, err := NewManager(CommonSampleRate)
	require.NoError(t, err)
	defer mgr.Close()
	require.NoError(t, mgr.LoadSamples(""))

	for _, name := range []string{TISSUE, ALLERGEN, SNEEZE} {
		require.NoError(t, mgr.Play(name))
		time.Sleep(800 * time.Millisecond)
	}
}
