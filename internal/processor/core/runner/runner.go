package runner

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"syscall"
	"time"

	"fileproc/pkg/errors"
	"fileproc/pkg/logger"
	"fileproc/pkg/platform"
)

const (
	DefaultTimeout        = 2 * time.Minute
	DefaultGracePeriod    = 2 * time.Second
	DefaultMaxOutputBytes = 1024 * 1024
)

// Command is an argv vector. It is never passed through a shell.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Result describes one finished (or killed) command.
type Result struct {
	ExitCode int
	// Output is stdout and stderr interleaved, capped at MaxOutputBytes.
	Output    []byte
	Truncated bool
	Duration  time.Duration
	TimedOut  bool
}

// Success reports a normal zero exit.
func (r Result) Success() bool {
	return r.ExitCode == 0 && !r.TimedOut
}

//counterfeiter:generate . Runner
type Runner interface {
	// Run blocks until the command exits. A non-zero exit is reported in
	// the Result, not as an error. Errors mean the command could not be
	// started, was killed, or ctx ended first.
	Run(ctx context.Context, cmd Command) (Result, error)
}

type Config struct {
	Timeout        time.Duration
	GracePeriod    time.Duration
	MaxOutputBytes int
	// Dir is the working directory of the child; empty inherits ours.
	Dir string
}

// ProcessRunner runs commands as real child processes, each in its own
// process group so the whole tree can be signalled on timeout.
type ProcessRunner struct {
	platform platform.Platform
	config   Config
	logger   *logger.Logger
}

var _ Runner = (*ProcessRunner)(nil)

func NewProcessRunner(p platform.Platform, cfg Config, log *logger.Logger) *ProcessRunner {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.GracePeriod < 0 {
		cfg.GracePeriod = DefaultGracePeriod
	}
	if cfg.MaxOutputBytes <= 0 {
		cfg.MaxOutputBytes = DefaultMaxOutputBytes
	}
	return &ProcessRunner{
		platform: p,
		config:   cfg,
		logger:   log.WithField("component", "command-runner"),
	}
}

func (r *ProcessRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	log := r.logger.WithField("command", cmd.Name)
	start := time.Now()

	runCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	out := newCappedBuffer(r.config.MaxOutputBytes)
	c := r.platform.CreateCommand(cmd.Name, cmd.Args...)
	c.SetStdout(out)
	c.SetStderr(out)
	c.SetSysProcAttr(r.platform.CreateProcessGroup())
	if r.config.Dir != "" {
		c.SetDir(r.config.Dir)
	}

	if err := c.Start(); err != nil {
		log.Warn("command failed to start", "error", err)
		return Result{ExitCode: -1, Duration: time.Since(start)},
			fmt.Errorf("%w: %s: %v", errors.ErrCommandStart, cmd.Name, err)
	}

	pid := c.Process().Pid()
	log.Debug("command started", "pid", pid, "args", cmd.Args)

	done := make(chan error, 1)
	go func() {
		done <- c.Wait()
	}()

	select {
	case waitErr := <-done:
		res := r.result(c, out, start)
		if res.ExitCode < 0 {
			// terminated by a signal we did not send
			return res, fmt.Errorf("command %s terminated abnormally: %w", cmd.Name, waitErr)
		}
		log.Debug("command finished", "exitCode", res.ExitCode, "duration", res.Duration)
		return res, nil

	case <-runCtx.Done():
		r.terminate(log, pid, done)
		res := r.result(c, out, start)

		if ctx.Err() != nil {
			log.Info("command cancelled by caller", "duration", res.Duration)
			return res, fmt.Errorf("command %s cancelled: %w", cmd.Name, ctx.Err())
		}

		res.TimedOut = true
		log.Warn("command timed out", "timeout", r.config.Timeout, "duration", res.Duration)
		return res, fmt.Errorf("%w after %s: %s", errors.ErrCommandTimeout, r.config.Timeout, cmd.Name)
	}
}

func (r *ProcessRunner) result(c platform.Command, out *cappedBuffer, start time.Time) Result {
	output, truncated := out.snapshot()
	return Result{
		ExitCode:  c.ExitCode(),
		Output:    output,
		Truncated: truncated,
		Duration:  time.Since(start),
	}
}

// terminate sends SIGTERM to the process group, waits for the grace period
// and then sends SIGKILL. It returns once Wait has returned.
func (r *ProcessRunner) terminate(log *logger.Logger, pid int, done <-chan error) {
	r.signal(log, pid, syscall.SIGTERM)

	timer := time.NewTimer(r.config.GracePeriod)
	defer timer.Stop()

	select {
	case <-done:
		return
	case <-timer.C:
	}

	log.Warn("process group survived SIGTERM, force killing", "pid", pid)
	r.signal(log, pid, syscall.SIGKILL)
	<-done
}

func (r *ProcessRunner) signal(log *logger.Logger, pid int, sig syscall.Signal) {
	if err := r.platform.Kill(-pid, sig); err != nil {
		log.Debug("failed to signal process group", "signal", sig, "error", err)
		// If the group is gone, try the leader alone
		if err := r.platform.Kill(pid, sig); err != nil {
			log.Debug("failed to signal process", "signal", sig, "error", err)
		}
	}
}

// cappedBuffer keeps the first max bytes written to it and silently drops
// the rest, so a chatty converter never blocks on a full pipe.
type cappedBuffer struct {
	mu        sync.Mutex
	buf       []byte
	max       int
	truncated bool
}

func newCappedBuffer(max int) *cappedBuffer {
	return &cappedBuffer{max: max}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	room := b.max - len(b.buf)
	if room <= 0 {
		b.truncated = b.truncated || len(p) > 0
		return len(p), nil
	}
	if len(p) > room {
		b.buf = append(b.buf, p[:room]...)
		b.truncated = true
		return len(p), nil
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *cappedBuffer) snapshot() ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.buf...), b.truncated
}
