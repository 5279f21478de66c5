package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"version"}, &stdout, &stderr))
	assert.Equal(t, "trace "+version+"\n", stdout.String())
}

func TestRun_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Error(t, run([]string{"train"}, &stdout, &stderr))
}

func TestRun_Grad(t *testing.T) {
	for name := range functions {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run([]string{"grad", "--func", name, "--x", "0.5,1.2"}, &stdout, &stderr)
			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "analytic")
			assert.Contains(t, stderr.String(), "gradient check finished")
		})
	}
}

func TestRun_GradErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Error(t, run([]string{"grad", "--func", "nope"}, &stdout, &stderr))
	require.Error(t, run([]string{"grad", "--x", "1,abc"}, &stdout, &stderr))
}

func TestRun_Snapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.btrc")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"snapshot", "--out", path, "--x", "1,2"}, &stdout, &stderr))

	out := stdout.String()
	assert.Contains(t, out, "data=[1 2] grad=[1 2]")
	assert.Contains(t, out, "data=0.5 grad=5")
}

func TestRun_SnapshotRequiresOut(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Error(t, run([]string{"snapshot"}, &stdout, &stderr))
}

func TestRun_VerboseLogsBackward(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"grad", "-v", "--func", "poly"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "backward pass started")
	assert.Contains(t, stderr.String(), "backward pass finished")
}
