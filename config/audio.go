package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// SoundTrigger plays when a button starts an animation
	SoundTrigger
	// SoundShower plays when a star starts to fall
	SoundShower
)

// Tone is a synthesized sweep from Freq to EndFreq with a linear fade out
type Tone struct {
	Freq     float64 // Hz
	EndFreq  float64 // Hz
	Duration time.Duration
	Volume   float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Muted         bool
}

// SoundConfig maps sound IDs to the tones they are synthesized from
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundTrigger: {Freq: 880, EndFreq: 660, Duration: 60 * time.Millisecond, Volume: 0.6},
			SoundShower:  {Freq: 1760, EndFreq: 440, Duration: 180 * time.Millisecond, Volume: 0.4},
		},
	}
}
