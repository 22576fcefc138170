package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Runner abstracts command execution so probes can be unit-tested
// without the real host tools (ping, sensors, speedtest-cli).
type Runner interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// OSRunner executes commands on the host via os/exec. The context
// bounds each call; an expired context kills the process and returns
// an error like any other tool failure.
type OSRunner struct{}

func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

func (r *OSRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(buf.String())
		if msg != "" {
			return "", errors.New(msg)
		}
		return "", err
	}
	return buf.String(), nil
}
