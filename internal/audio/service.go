// Package audio plays the scene's sounds on a fixed set of logical
// channels. Playback is fire-and-forget: callers never wait on it and
// failures never reach the game loop.
package audio

// Channel is a logical playback slot. Starting a sound on a channel
// replaces whatever the channel was playing.
type Channel int

const (
	ChannelAmbient Channel = iota // Looping background ambience
	ChannelMusic                  // Looping fire crackle, halted on capture
	ChannelPursuit                // Ghost cue, panned and attenuated every frame
	ChannelEffect                 // One-shot effects
	numChannels
)

// SoundID names a pre-loaded sound.
type SoundID int

const (
	SoundAmbient SoundID = iota
	SoundFire
	SoundMatch
	SoundGhost
	SoundJumpscare
	numSounds
)

// Service is what the game needs from an audio backend.
type Service interface {
	// Play starts a sound on ch, looping forever when loop is set.
	Play(ch Channel, sound SoundID, loop bool)
	// Stop silences ch.
	Stop(ch Channel)
	// StopAll silences every channel.
	StopAll()
	// SetVolume sets the level of ch in [0, 1].
	SetVolume(ch Channel, volume float64)
	// SetPan sets the left and right levels of ch, each in [0, 1].
	SetPan(ch Channel, left, right float64)
}

// Silent discards every request. It stands in when audio is muted or the
// output device cannot be opened.
type Silent struct{}

func (Silent) Play(Channel, SoundID, bool)      {}
func (Silent) Stop(Channel)                     {}
func (Silent) StopAll()                         {}
func (Silent) SetVolume(Channel, float64)       {}
func (Silent) SetPan(Channel, float64, float64) {}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
