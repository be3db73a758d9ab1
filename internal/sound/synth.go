package sound

import (
	"log"
	"math/rand"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
)

// note is one tone of a built-in sample. A zero freq is white noise.
type note struct {
	freq     float64
	duration time.Duration
	square   bool
}

var melodies = map[string][]note{
	TISSUE:   {{freq: 880, duration: 70 * time.Millisecond}, {freq: 1318.51, duration: 110 * time.Millisecond}},
	ALLERGEN: {{freq: 110, duration: 220 * time.Millisecond, square: true}, {freq: 98, duration: 160 * time.Millisecond, square: true}},
	SNEEZE: {
		{freq: 392, duration: 120 * time.Millisecond},
		{freq: 523.25, duration: 180 * time.Millisecond},
		{freq: 0, duration: 380 * time.Millisecond},
	},
	BACKGROUND: {
		{freq: 261.63, duration: 220 * time.Millisecond},
		{freq: 329.63, duration: 220 * time.Millisecond},
		{freq: 392.00, duration: 220 * time.Millisecond},
		{freq: 329.63, duration: 220 * time.Millisecond},
		{freq: 293.66, duration: 220 * time.Millisecond},
		{freq: 349.23, duration: 220 * time.Millisecond},
		{freq: 440.00, duration: 220 * time.Millisecond},
		{freq: 349.23, duration: 220 * time.Millisecond},
	},
}

// synthesize renders the built-in samples as finite streamers.
func synthesize(sr beep.SampleRate) map[string]beep.Streamer {
	out := make(map[string]beep.Streamer, len(melodies))
	for name, notes := range melodies {
		var parts []beep.Streamer
		for _, n := range notes {
			s, err := tone(sr, n)
			if err != nil {
				log.Printf("sound: skip note %.2fHz of %s: %v", n.freq, name, err)
				continue
			}
			parts = append(parts, s)
		}
		out[name] = beep.Seq(parts...)
	}
	return out
}

func tone(sr beep.SampleRate, n note) (beep.Streamer, error) {
	var (
		src beep.Streamer
		err error
	)
	switch {
	case n.freq == 0:
		src = noise{}
	case n.square:
		src, err = generators.SquareTone(sr, n.freq)
	default:
		src, err = generators.SineTone(sr, n.freq)
	}
	if err != nil {
		return nil, err
	}
	total := sr.N(n.duration)
	shaped := newEnvelope(beep.Take(total, src), total, sr.N(5*time.Millisecond), total/2)
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: -1.5}, nil
}

// noise is endless white noise.
type noise struct{}

func (noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := rand.Float64()*2 - 1
		samples[i][0], samples[i][1] = v, v
	}
	return len(samples), true
}

func (noise) Err() error { return nil }

// envelope applies linear attack and release ramps to a finite stream.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; left < e.release {
			gain = float64(left) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
