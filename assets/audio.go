package assets

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/propertyanimation/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// LoadSFX returns a new player for the sound each time. Tones are rendered once
// and cached for instant playback.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, bool) {
	pcm, ok := l.sfxCache[id]
	if !ok {
		tone, found := cfg.Sound.Tones[id]
		if !found {
			return nil, false
		}
		pcm = SynthesizeTone(l.context.SampleRate(), tone)
		l.sfxCache[id] = pcm
	}
	return l.context.NewPlayerFromBytes(pcm), true
}

// SynthesizeTone renders tone as 16-bit little-endian stereo PCM, the format
// ebiten's audio players consume.
func SynthesizeTone(sampleRate int, tone cfg.Tone) []byte {
	n := int(tone.Duration.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := tone.Freq + (tone.EndFreq-tone.Freq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		// fade out so the tone ends without a click
		amp := tone.Volume * (1 - progress)
		v := int16(math.Sin(phase) * amp * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
