package sound

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/frogger/internal/object"
)

// drain streams s to the end and returns the number of samples and the
// largest absolute sample value.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if v < 0 {
					v = -v
				}
				peak = max(peak, v)
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestCollisionBuzz(t *testing.T) {
	s, err := Streamer(EffectCollision, SampleRate)
	require.NoError(t, err)

	n, peak := drain(t, s)
	assert.Equal(t, SampleRate.N(buzzDuration), n)
	assert.InDelta(t, 0.5, peak, 1e-9)
}

func TestCollisionBuzzNeedsNyquistRate(t *testing.T) {
	_, err := Streamer(EffectCollision, beep.SampleRate(2*buzzFrequency))
	assert.Error(t, err)
}

func TestCrossingChirp(t *testing.T) {
	s, err := Streamer(EffectCrossing, SampleRate)
	require.NoError(t, err)

	n, peak := drain(t, s)
	assert.Equal(t, SampleRate.N(chirpLow)+SampleRate.N(chirpHigh), n)
	assert.LessOrEqual(t, peak, 0.5+1e-9)
	assert.Greater(t, peak, 0.0)
}

func TestUnknownEffect(t *testing.T) {
	_, err := Streamer(Effect(42), SampleRate)
	assert.ErrorIs(t, err, ErrUnknownEffect)
}

func TestSilentPlayer(t *testing.T) {
	p := NewPlayer(nil)
	assert.NotPanics(t, func() {
		p.Notify(object.Event{Kind: object.EventCrossing})
		p.Notify(object.Event{Kind: object.EventCollision})
		p.Notify(object.Event{Kind: object.EventEnemyRespawn})
		p.Close()
	})
}

func TestPlayerIsEventSink(t *testing.T) {
	var _ object.EventSink = NewPlayer(nil)
}
