package emu

const sampleRate = 48000

// fillSilence appends one frame of silent stereo samples to the audio
// buffer. The joystick core has no sound hardware but frontends pace
// themselves on audio.
func (e *Emulator) fillSilence() {
	n := sampleRate / e.timing.FPS
	for i := 0; i < n; i++ {
		e.audioBuffer = append(e.audioBuffer, 0, 0)
	}
}

// GetAudioSamples returns accumulated audio samples as 16-bit stereo PCM.
func (e *Emulator) GetAudioSamples() []int16 {
	return e.audioBuffer
}
