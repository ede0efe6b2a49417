package signal

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/bryanwahyu/cad-detect/internal/application/schedule"
	"github.com/bryanwahyu/cad-detect/internal/domain/ecg"
)

// LiveConfig is the default shape of a live stream.
type LiveConfig struct {
	Speed         float64
	FrameInterval time.Duration
	Width         int
	Height        int
}

// Service renders the synthetic ECG. A new recording is generated for every
// request and never stored.
type Service struct {
	Params     ecg.Params
	ViewWidth  int
	ViewHeight int
	Live       LiveConfig

	// NewRand seeds the noise source; tests pin it.
	NewRand func() *rand.Rand
	// NewTicker paces live frames; tests swap in a manual ticker.
	NewTicker func(time.Duration) schedule.Ticker
}

// WaveformView is the zoomed signal chart.
type WaveformView struct {
	Params          ecg.Params  `json:"params"`
	Zoom            float64     `json:"zoom"`
	ZoomPercent     string      `json:"zoom_percent"`
	CanZoomIn       bool        `json:"can_zoom_in"`
	CanZoomOut      bool        `json:"can_zoom_out"`
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	Samples         int         `json:"samples"`
	SamplesPerPixel float64     `json:"samples_per_pixel"`
	Values          []float64   `json:"values"`
	Points          []ecg.Point `json:"points"`
}

func (s *Service) rng() *rand.Rand {
	if s.NewRand != nil {
		return s.NewRand()
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Waveform generates a recording and resamples it for a chart width pixels
// wide. A non-positive width uses the configured view width.
func (s *Service) Waveform(zoom float64, width int) (WaveformView, error) {
	if width <= 0 {
		width = s.ViewWidth
	}
	zoom = ecg.ClampZoom(zoom)

	data, err := ecg.Generate(s.Params, s.rng())
	if err != nil {
		return WaveformView{}, fmt.Errorf("generate ecg: %w", err)
	}
	values := ecg.Resample(data, width, zoom)

	return WaveformView{
		Params:          s.Params,
		Zoom:            zoom,
		ZoomPercent:     ecg.ZoomPercent(zoom),
		CanZoomIn:       zoom < ecg.MaxZoom,
		CanZoomOut:      zoom > ecg.MinZoom,
		Width:           width,
		Height:          s.ViewHeight,
		Samples:         len(data),
		SamplesPerPixel: ecg.SamplesPerPixel(len(data), width, zoom),
		Values:          values,
		Points:          ecg.Trace(values, float64(s.ViewHeight)),
	}, nil
}

// LiveOptions override the configured stream shape. Zero fields keep the
// defaults.
type LiveOptions struct {
	Speed  float64
	Width  int
	Height int
}

func (s *Service) liveShape(o LiveOptions) (w, h int, speed float64) {
	w, h, speed = s.Live.Width, s.Live.Height, s.Live.Speed
	if o.Width > 0 {
		w = o.Width
	}
	if o.Height > 0 {
		h = o.Height
	}
	if o.Speed > 0 {
		speed = o.Speed
	}
	return w, h, speed
}

// Stream emits live frames to sink until ctx is cancelled, the task is
// cancelled or sink fails. The first frame is sent right away.
func (s *Service) Stream(ctx context.Context, o LiveOptions, sink func(ecg.Frame) error) (*schedule.Task, error) {
	w, h, speed := s.liveShape(o)
	anim := ecg.NewAnimator(w, h, speed)

	if err := sink(anim.Next()); err != nil {
		return nil, err
	}

	newTicker := s.NewTicker
	if newTicker == nil {
		newTicker = schedule.NewTicker
	}
	return schedule.Start(ctx, newTicker(s.Live.FrameInterval), func(context.Context) (bool, error) {
		if err := sink(anim.Next()); err != nil {
			return false, err
		}
		return true, nil
	}), nil
}

// Preview is a single live frame for server-side rendering before any
// script runs.
func (s *Service) Preview(o LiveOptions) ecg.Frame {
	w, h, _ := s.liveShape(o)
	return ecg.LiveFrame(w, h, 0)
}
