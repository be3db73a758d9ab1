//go:build linux

package sound

import (
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/jfreymuth/pulse"
)

type pulseBackend struct {
	mu     sync.Mutex
	client *pulse.Client
	stream *pulse.PlaybackStream
}

// beepToFloat32Func returns a func([]float32) (int, error) that pulls
// interleaved stereo frames from a beep.Streamer.
func (pb *pulseBackend) beepToFloat32Func(s beep.Streamer) func([]float32) (int, error) {
	buf := make([][2]float64, 512)
	return func(out []float32) (int, error) {
		frames := len(out) / 2
		if frames > len(buf) {
			frames = len(buf)
		}
		pb.mu.Lock()
		n, ok := s.Stream(buf[:frames])
		pb.mu.Unlock()
		if !ok {
			return 0, pulse.EndOfData
		}
		idx := 0
		for i := 0; i < n; i++ {
			out[idx] = float32(buf[i][0])
			out[idx+1] = float32(buf[i][1])
			idx += 2
		}
		return idx, nil
	}
}

// initBackend initializes PulseAudio instead of beep/speaker.
func (mgr *Manager) initBackend(sampleRate beep.SampleRate, bufferSize int) error {
	client, err := pulse.NewClient(pulse.ClientApplicationName("sneeze"))
	if err != nil {
		return err
	}

	pb := &pulseBackend{client: client}
	stream, err := client.NewPlayback(
		pulse.Float32Reader(pb.beepToFloat32Func(mgr.vol)),
		pulse.PlaybackStereo,
		pulse.PlaybackSampleRate(int(sampleRate)),
		pulse.PlaybackBufferSize(bufferSize),
		pulse.PlaybackLatency(0.03), // ~30ms latency for low delay
	)
	if err != nil {
		client.Close()
		return err
	}
	stream.Start()
	pb.stream = stream
	mgr.backend = pb
	return nil
}

func (pb *pulseBackend) lock()   { pb.mu.Lock() }
func (pb *pulseBackend) unlock() { pb.mu.Unlock() }

// close cleans up PulseAudio.
func (pb *pulseBackend) close() {
	pb.stream.Stop()
	pb.stream.Close()
	pb.client.Close()
}
