package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	"govex/classify"
	"govex/models"
	"govex/util"

	"go.uber.org/zap"
)

// Stream starts the attempt in streaming mode and returns a live byte
// stream as soon as the process is up. Stderr is watched in the
// background: a failure discovered after streaming began surfaces as
// an error from Read, never as a silently truncated stream. The
// caller owns the handle and must Close it.
func (e *Engine) Stream(ctx context.Context, attempt *models.ExtractionAttempt) (io.ReadCloser, error) {
	timeout := attempt.Timeout
	if timeout == 0 {
		timeout = e.streamTimeout
	}
	streamCtx, cancel := context.WithTimeout(ctx, timeout)

	args := e.BuildArgs(attempt, true)
	zap.S().Debugf("stream attempt %s: %s %v", attempt.ID, e.binPath, args)

	cmd := exec.CommandContext(streamCtx, e.binPath, args...)
	cmd.WaitDelay = time.Second
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		if isSpawnError(err) {
			return nil, fmt.Errorf("%w: %v", util.ErrToolNotFound, err)
		}
		return nil, fmt.Errorf("failed to start extraction tool: %w", err)
	}

	return &processStream{
		pipe:   pipe,
		cmd:    cmd,
		stderr: &stderr,
		ctx:    streamCtx,
		cancel: cancel,
	}, nil
}

// processStream wraps the tool's stdout pipe. On EOF it waits for the
// process and converts a non-zero exit into a classified error so the
// consumer can tell a complete stream from a failed one.
type processStream struct {
	pipe   io.ReadCloser
	cmd    *exec.Cmd
	stderr *bytes.Buffer
	ctx    context.Context
	cancel context.CancelFunc

	waitOnce sync.Once
	waitErr  error
	started  bool
	closed   bool
}

func (s *processStream) Read(p []byte) (int, error) {
	n, err := s.pipe.Read(p)
	if n > 0 {
		s.started = true
	}
	if err == nil {
		return n, nil
	}
	if err == io.EOF {
		if exitErr := s.wait(); exitErr != nil {
			parsed := s.classifyExit()
			zap.S().Warnf("stream ended with tool failure (started=%v): %s", s.started, parsed.Kind)
			return n, parsed
		}
		return n, err
	}
	// a deadline kill closes the pipe out from under us, so the error
	// arrives as a closed file rather than a clean EOF
	if errors.Is(s.ctx.Err(), context.DeadlineExceeded) {
		s.wait()
		return n, timeoutError()
	}
	return n, err
}

func (s *processStream) classifyExit() *models.ParsedError {
	if errors.Is(s.ctx.Err(), context.DeadlineExceeded) {
		return timeoutError()
	}
	return classify.Classify(s.stderr.String(), "")
}

func (s *processStream) Close() error {
	if s.closed {
		return util.ErrStreamClosed
	}
	s.closed = true
	// kill the process if it is still running, then reap it
	s.cancel()
	s.pipe.Close()
	s.wait()
	return nil
}

func (s *processStream) wait() error {
	s.waitOnce.Do(func() {
		s.waitErr = s.cmd.Wait()
	})
	return s.waitErr
}
