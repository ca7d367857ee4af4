package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

var audioReady bool

func initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		audioReady = true
	}
	return err
}

func playClickSound() {
	if !audioReady {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(50 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, 880)

	speaker.Play(beep.Take(duration, sine))
}

func closeAudio() {
	if audioReady {
		speaker.Close()
	}
}
