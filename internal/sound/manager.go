// Package sound manages playback of audio samples with support for interrupting,
// resampling to a unified format, and avoiding overlapping playback of the same sample.
package sound

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/wav"
)

// Sound names. A WAV file with the same name in the sounds directory replaces the built-in sample.
const (
	TISSUE     = "tissue.wav"
	ALLERGEN   = "allergen.wav"
	SNEEZE     = "sneeze.wav"
	BACKGROUND = "background.wav"
)

const CommonSampleRate = beep.SampleRate(44100) // Common sample rate for normalization for all sounds

// backend feeds the master volume streamer to an audio device.
type backend interface {
	lock()
	unlock()
	close()
}

// Manager controls the loading and playback of audio samples.
// A nil Manager is valid and plays nothing.
type Manager struct {
	mu         sync.Mutex
	samples    map[string]*beep.Buffer
	ctrl       map[string]*beep.Ctrl
	mix        *beep.Mixer
	format     beep.Format
	muted      bool
	vol        *effects.Volume    // master volume
	sampleVols map[string]float64 // per-sample volume in dB
	backend    backend
}

// NewManager initializes the audio system and creates a new Manager.
func NewManager(sampleRate beep.SampleRate) (*Manager, error) {
	mgr := newManager(sampleRate)
	bufferSize := sampleRate.N(time.Second / 10)
	if err := mgr.initBackend(sampleRate, bufferSize); err != nil {
		return nil, fmt.Errorf("audio backend: %w", err)
	}
	return mgr, nil
}

// newManager builds a manager that is not attached to any device.
func newManager(sampleRate beep.SampleRate) *Manager {
	mgr := &Manager{
		samples:    make(map[string]*beep.Buffer),
		ctrl:       make(map[string]*beep.Ctrl),
		mix:        &beep.Mixer{},
		format:     beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2},
		sampleVols: map[string]float64{BACKGROUND: -2},
	}
	mgr.vol = &effects.Volume{
		Streamer: mgr.mix,
		Base:     2,
		Volume:   0, // 0 dB
		Silent:   false,
	}
	return mgr
}

// LoadSamples synthesizes the built-in samples and then replaces them with
// the WAV files found in dir. An empty dir keeps the built-in set. A dir that
// cannot be read or holds a broken WAV is an error.
func (mgr *Manager) LoadSamples(dir string) error {
	if mgr == nil {
		return errors.New("sound manager is nil")
	}
	for name, s := range synthesize(mgr.format.SampleRate) {
		buf := beep.NewBuffer(mgr.format)
		buf.Append(s)
		mgr.mu.Lock()
		mgr.samples[name] = buf
		mgr.mu.Unlock()
	}
	if dir == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read sounds directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("read %s: %w", e.Name(), err)
		}
		if err := mgr.LoadWAV(strings.ToLower(e.Name()), data); err != nil {
			return fmt.Errorf("decode %s: %w", e.Name(), err)
		}
		log.Printf("sound: loaded %s from %s", e.Name(), dir)
	}
	return nil
}

// LoadWAV loads and resamples a WAV sample into memory.
func (mgr *Manager) LoadWAV(name string, data []byte) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	stream, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer stream.Close()

	// Resample to match manager format
	resampled := beep.Resample(3, format.SampleRate, mgr.format.SampleRate, stream)
	buf := beep.NewBuffer(mgr.format)
	buf.Append(resampled)

	mgr.samples[name] = buf
	return nil
}

// Has reports whether a sample with the name is loaded.
func (mgr *Manager) Has(name string) bool {
	if mgr == nil {
		return false
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	_, ok := mgr.samples[name]
	return ok
}

// playInternal plays the sample by name, optionally looping it.
func (mgr *Manager) playInternal(name string, loop bool) error {
	if mgr == nil {
		return nil
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	buf, ok := mgr.samples[name]
	if !ok {
		return errors.New("sample not loaded: " + name)
	}
	if mgr.muted {
		return nil
	}

	mgr.lockBackend()
	defer mgr.unlockBackend()

	// Interrupt previous if exists
	if ctrl, exists := mgr.ctrl[name]; exists {
		ctrl.Streamer = nil
	}

	var stream beep.Streamer
	if loop {
		stream = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	} else {
		stream = buf.Streamer(0, buf.Len())
	}

	// Wrap with per-sample volume
	vol := &effects.Volume{
		Streamer: stream,
		Base:     2,
		Volume:   mgr.sampleVols[name], // default 0 if not set
		Silent:   false,
	}

	ctrl := &beep.Ctrl{Streamer: vol, Paused: false}
	mgr.mix.Add(ctrl)
	mgr.ctrl[name] = ctrl
	return nil
}

// Play stops current playback of the sample (if any) and plays it from the start.
func (mgr *Manager) Play(name string) error {
	return mgr.playInternal(name, false)
}

// PlayLoop plays the sample in a continuous loop until stopped.
func (mgr *Manager) PlayLoop(name string) error {
	return mgr.playInternal(name, true)
}

// Playing reports whether the sample was started and not stopped since.
func (mgr *Manager) Playing(name string) bool {
	if mgr == nil {
		return false
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	_, ok := mgr.ctrl[name]
	return ok
}

// StopListed stops playback of the specified samples by name.
// If a sample is not currently playing, it is ignored.
func (mgr *Manager) StopListed(names ...string) {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.stopLocked(names...)
}

func (mgr *Manager) stopLocked(names ...string) {
	mgr.lockBackend()
	defer mgr.unlockBackend()
	for _, name := range names {
		if ctrl, ok := mgr.ctrl[name]; ok {
			ctrl.Paused = true
			ctrl.Streamer = nil
			delete(mgr.ctrl, name)
		}
	}
}

// StopAll halts playback of all currently playing samples.
func (mgr *Manager) StopAll() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	for name := range mgr.ctrl {
		mgr.stopLocked(name)
	}
}

// Mute disables all audio output and stops what is playing.
func (mgr *Manager) Mute() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = true
	for name := range mgr.ctrl {
		mgr.stopLocked(name)
	}
}

// Unmute enables audio output.
func (mgr *Manager) Unmute() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = false
}

// Muted reports the mute state. A nil manager is always muted.
func (mgr *Manager) Muted() bool {
	if mgr == nil {
		return true
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.muted
}

// Close stops the audio device and frees resources.
func (mgr *Manager) Close() {
	if mgr == nil || mgr.backend == nil {
		return
	}
	mgr.backend.close()
}

func (mgr *Manager) lockBackend() {
	if mgr.backend != nil {
		mgr.backend.lock()
	}
}

func (mgr *Manager) unlockBackend() {
	if mgr.backend != nil {
		mgr.backend.unlock()
	}
}
