package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	okToneHz     = 880
	okToneMs     = 50
	errorToneHz  = 220
	errorToneMs  = 120
	audioLatency = time.Second / 10
)

// tonePlayer plays short feedback tones; a disabled or failed player is silent
type tonePlayer struct {
	ready bool
}

func newTonePlayer(enabled bool) (*tonePlayer, error) {
	p := &tonePlayer{}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(audioLatency)); err != nil {
		return p, err
	}
	p.ready = true
	return p, nil
}

func (p *tonePlayer) ok() {
	p.play(okToneHz, okToneMs*time.Millisecond)
}

func (p *tonePlayer) fail() {
	p.play(errorToneHz, errorToneMs*time.Millisecond)
}

func (p *tonePlayer) play(freq int, d time.Duration) {
	if !p.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (p *tonePlayer) close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
