package buildrun_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/katavolt/resistiv/buildrun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExec records invoked step names and returns scripted exit codes.
type fakeExec struct {
	codes  map[string]int
	called []string
}

func (f *fakeExec) run(_ context.Context, step buildrun.Step) int {
	f.called = append(f.called, step.Name)
	return f.codes[step.Name]
}

// newRunner wires DefaultSteps to a fake executor and a capture buffer.
func newRunner(fake *fakeExec) (*buildrun.Runner, *bytes.Buffer) {
	var out bytes.Buffer
	return &buildrun.Runner{
		Steps: buildrun.DefaultSteps(),
		Exec:  fake.run,
		Out:   &out,
	}, &out
}

// TestRun_PreValidationFailure: a failing pre-validation must stop the
// pipeline before build and post-validation, propagating its code.
func TestRun_PreValidationFailure(t *testing.T) {
	fake := &fakeExec{codes: map[string]int{"pre-validate": 3}}
	r, out := newRunner(fake)

	code, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, code, "pre-validation code propagates unchanged")
	assert.Equal(t, []string{"pre-validate"}, fake.called, "build and post-validate must never run")
	assert.Empty(t, out.String(), "no banner on failure")
}

// TestRun_BuildFailure: a failing build must skip post-validation.
func TestRun_BuildFailure(t *testing.T) {
	fake := &fakeExec{codes: map[string]int{"build": 2}}
	r, out := newRunner(fake)

	code, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, code)
	assert.Equal(t, []string{"pre-validate", "build"}, fake.called, "post-validate must never run")
	assert.Empty(t, out.String())
}

// TestRun_PostValidationFailure: the last step's code propagates too.
func TestRun_PostValidationFailure(t *testing.T) {
	fake := &fakeExec{codes: map[string]int{"post-validate": 4}}
	r, out := newRunner(fake)

	code, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, code)
	assert.Equal(t, []string{"pre-validate", "build", "post-validate"}, fake.called)
	assert.Empty(t, out.String())
}

// TestRun_AllStepsSucceed: zero exit and the banner exactly once.
func TestRun_AllStepsSucceed(t *testing.T) {
	fake := &fakeExec{codes: map[string]int{}}
	r, out := newRunner(fake)

	code, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"pre-validate", "build", "post-validate"}, fake.called)
	assert.Equal(t, 1, strings.Count(out.String(), buildrun.Banner), "banner printed exactly once")
}

// TestRun_NoSteps verifies the empty-pipeline sentinel.
func TestRun_NoSteps(t *testing.T) {
	r := &buildrun.Runner{}
	code, err := r.Run(context.Background())
	assert.ErrorIs(t, err, buildrun.ErrNoSteps)
	assert.NotEqual(t, 0, code, "an unrunnable pipeline is not a success")
}

// TestRun_RealExec_MissingScript: the os/exec path maps an unstartable
// step to exit code 127.
func TestRun_RealExec_MissingScript(t *testing.T) {
	var out bytes.Buffer
	r := &buildrun.Runner{
		Steps: []buildrun.Step{{Name: "ghost", Path: "testdata/does-not-exist.sh"}},
		Out:   &out,
	}
	code, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 127, code)
	assert.Empty(t, out.String())
}
