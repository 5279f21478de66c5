package autodiff_test

import (
	"errors"
	"testing"

	"github.com/born-ml/trace/internal/autodiff"
	"github.com/born-ml/trace/internal/backend/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Default(t *testing.T) {
	tr := newTracer()
	assert.True(t, tr.IsRecording())
	assert.Equal(t, autodiff.DefaultConfig(), tr.Config())

	off := autodiff.New(cpu.New(), autodiff.WithConfig(autodiff.Config{EnableBackprop: false}))
	assert.False(t, off.IsRecording())
}

func TestConfig_Nesting(t *testing.T) {
	tr := newTracer()

	outer := tr.NoGrad()
	assert.False(t, tr.IsRecording())

	inner := tr.UsingConfig(autodiff.Config{EnableBackprop: true})
	assert.True(t, tr.IsRecording())

	inner()
	assert.False(t, tr.IsRecording())

	outer()
	assert.True(t, tr.IsRecording())

	// Restoring twice has no further effect.
	outer()
	inner()
	assert.True(t, tr.IsRecording())
}

func TestConfig_OutOfOrderRestore(t *testing.T) {
	tr := newTracer()

	outer := tr.NoGrad()
	inner := tr.NoGrad()

	outer()
	assert.True(t, tr.IsRecording())

	inner()
	assert.True(t, tr.IsRecording(), "a stale inner restore must not reactivate its scope")
}

func TestWithoutRecording(t *testing.T) {
	tr := newTracer()
	x := mustWrap(t, tr, 3.0)

	var y *autodiff.Value
	err := tr.WithoutRecording(func() error {
		assert.False(t, tr.IsRecording())
		var err error
		y, err = tr.Square(x)
		return err
	})
	require.NoError(t, err)
	assert.Nil(t, y.Creator())
	assert.True(t, tr.IsRecording())
}

func TestWithoutRecording_RestoresOnError(t *testing.T) {
	tr := newTracer()
	errBoom := errors.New("boom")

	err := tr.WithoutRecording(func() error { return errBoom })
	require.ErrorIs(t, err, errBoom)
	assert.True(t, tr.IsRecording())
}

func TestWithoutRecording_RestoresOnPanic(t *testing.T) {
	tr := newTracer()

	assert.Panics(t, func() {
		_ = tr.WithoutRecording(func() error {
			panic("boom")
		})
	})
	assert.True(t, tr.IsRecording())
}
