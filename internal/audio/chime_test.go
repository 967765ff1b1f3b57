package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneSequenceLength(t *testing.T) {
	streamer, err := toneSequence()
	require.NoError(t, err)

	want := 2*sampleRate.N(toneLength) + sampleRate.N(toneGap)
	samples := make([][2]float64, 512)
	total := 0
	for {
		n, ok := streamer.Stream(samples)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, want, total)
}

func TestNotReadyChimeIsSilent(t *testing.T) {
	var nilChime *Chime
	assert.NotPanics(t, nilChime.Chime)
	assert.NotPanics(t, (&Chime{}).Chime)
	assert.NotPanics(t, Silent{}.Chime)
}
