package chat

import (
	"context"
	"time"
)

const (
	recognizerDelay      = 3 * time.Second
	recognizerTranscript = "मेरी टमाटर की फसल में पीले पत्ते दिख रहे हैं"
)

// Recognizer converts captured audio into a text transcript.
type Recognizer interface {
	Transcribe(ctx context.Context) (string, error)
}

// SimulatedRecognizer stands in for a real speech-to-text backend. It
// waits the typical capture duration and returns a fixed transcript.
type SimulatedRecognizer struct {
	delay time.Duration
}

func NewSimulatedRecognizer() *SimulatedRecognizer {
	return &SimulatedRecognizer{delay: recognizerDelay}
}

func (r *SimulatedRecognizer) Transcribe(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(r.delay):
		return recognizerTranscript, nil
	}
}
