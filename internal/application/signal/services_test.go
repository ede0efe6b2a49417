package signal

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/cad-detect/internal/application/schedule"
	"github.com/bryanwahyu/cad-detect/internal/domain/ecg"
)

func newService(tk *schedule.ManualTicker) *Service {
	return &Service{
		Params:     ecg.DefaultParams(),
		ViewWidth:  800,
		ViewHeight: 400,
		Live:       LiveConfig{Speed: 2, FrameInterval: 16 * time.Millisecond, Width: 120, Height: 60},
		NewRand:    func() *rand.Rand { return rand.New(rand.NewSource(7)) },
		NewTicker:  func(time.Duration) schedule.Ticker { return tk },
	}
}

func TestWaveform_ZoomChangesDensity(t *testing.T) {
	svc := newService(nil)

	base, err := svc.Waveform(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3600, base.Samples)
	assert.Len(t, base.Values, 800)
	assert.Equal(t, "100%", base.ZoomPercent)
	assert.Len(t, base.Points, 800)

	zoomed, err := svc.Waveform(2, 0)
	require.NoError(t, err)
	assert.Len(t, zoomed.Values, 1600)
	assert.Less(t, zoomed.SamplesPerPixel, base.SamplesPerPixel)

	out, err := svc.Waveform(0.1, 0)
	require.NoError(t, err)
	assert.Equal(t, ecg.MinZoom, out.Zoom)
	assert.False(t, out.CanZoomOut)
	assert.True(t, out.CanZoomIn)
}

func TestWaveform_BadParams(t *testing.T) {
	svc := newService(nil)
	svc.Params.SamplingRate = 0
	_, err := svc.Waveform(1, 100)
	assert.ErrorIs(t, err, ecg.ErrSamplingRate)
}

func TestStream_StopsWithContext(t *testing.T) {
	tk := schedule.NewManualTicker()
	svc := newService(tk)

	frames := make(chan ecg.Frame, 8)
	ctx, cancel := context.WithCancel(context.Background())

	task, err := svc.Stream(ctx, LiveOptions{Width: 50}, func(f ecg.Frame) error {
		frames <- f
		return nil
	})
	require.NoError(t, err)

	first := <-frames
	assert.Equal(t, uint64(0), first.Seq)
	assert.Len(t, first.Points, 50)
	assert.Equal(t, 60, first.Height)

	require.True(t, tk.Tick())
	second := <-frames
	assert.Equal(t, 2.0, second.Offset)

	cancel()
	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop")
	}
	assert.False(t, tk.Tick())
}

func TestStream_SinkErrorEndsTask(t *testing.T) {
	tk := schedule.NewManualTicker()
	svc := newService(tk)
	gone := errors.New("client gone")

	n := 0
	task, err := svc.Stream(context.Background(), LiveOptions{}, func(ecg.Frame) error {
		n++
		if n > 1 {
			return gone
		}
		return nil
	})
	require.NoError(t, err)

	require.True(t, tk.Tick())
	assert.ErrorIs(t, task.Wait(), gone)
}

func TestPreview(t *testing.T) {
	svc := newService(nil)
	f := svc.Preview(LiveOptions{Height: 100})
	assert.Len(t, f.Points, 120)
	assert.Equal(t, 115.0, f.Lead.X)
}
