package session

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fileproc/internal/audit"
	"fileproc/internal/processor/core/command"
	"fileproc/internal/processor/core/framing"
	"fileproc/internal/processor/core/runner"
	"fileproc/internal/processor/core/scratch"
	"fileproc/internal/processor/domain"
	_errors "fileproc/pkg/errors"
	"fileproc/pkg/logger"

	"github.com/google/uuid"
)

// Observer is told about session and command lifecycles.
//
//counterfeiter:generate . Observer
type Observer interface {
	SessionStarted(op domain.Operation)
	SessionFinished(s *domain.Session)
	CommandFinished(op domain.Operation, res runner.Result, err error)
}

type nopObserver struct{}

func (nopObserver) SessionStarted(domain.Operation)                        {}
func (nopObserver) SessionFinished(*domain.Session)                        {}
func (nopObserver) CommandFinished(domain.Operation, runner.Result, error) {}

// Dependencies groups the collaborators of a Controller. Audit and Observer
// may be nil.
type Dependencies struct {
	Store    *scratch.Store
	Runner   runner.Runner
	Builder  *command.Builder
	Audit    audit.Recorder
	Observer Observer
	Logger   *logger.Logger
}

// Controller drives one stream through Receiving, Transforming and Sending.
// A Controller is shared by all calls; each Run owns its own session.
type Controller struct {
	store     *scratch.Store
	runner    runner.Runner
	builder   *command.Builder
	audit     audit.Recorder
	observer  Observer
	chunkSize int
	newID     func() string
	logger    *logger.Logger
}

func NewController(deps Dependencies, chunkSize int) *Controller {
	if deps.Audit == nil {
		deps.Audit = audit.NopRecorder{}
	}
	if deps.Observer == nil {
		deps.Observer = nopObserver{}
	}
	if deps.Logger == nil {
		deps.Logger = logger.New()
	}
	if chunkSize <= 0 {
		chunkSize = framing.DefaultChunkSize
	}
	return &Controller{
		store:     deps.Store,
		runner:    deps.Runner,
		builder:   deps.Builder,
		audit:     deps.Audit,
		observer:  deps.Observer,
		chunkSize: chunkSize,
		newID:     uuid.NewString,
		logger:    deps.Logger.WithField("component", "session-controller"),
	}
}

// Run handles one call for op. The returned session is terminal. The error
// is non-nil only when the call itself should fail, which happens for
// invalid metadata; every other failure is reported in the status frame.
func (c *Controller) Run(stream domain.Stream, op domain.Operation) (*domain.Session, error) {
	sess := domain.NewSession(c.newID(), op)
	log := c.logger.WithFields("sessionId", sess.ID, "operation", op)

	c.observer.SessionStarted(op)
	defer func() {
		c.store.Release(sess.Paths()...)
		c.finish(sess, log)
	}()

	err := c.execute(stream.Context(), stream, sess, log)
	if err == nil {
		return sess, nil
	}

	c.fail(stream, sess, err, log)
	if kind, _ := domain.KindOf(err); kind == domain.KindInvalidMetadata {
		return sess, err
	}
	return sess, nil
}

func (c *Controller) execute(ctx context.Context, stream domain.Stream, sess *domain.Session, log *logger.Logger) error {
	op := sess.Op

	// Receiving
	reader := framing.NewReader(stream, op)
	md, err := reader.ReadMetadata()
	if err != nil {
		return err
	}
	sess.Metadata = md
	log.Debug("metadata accepted", "metadata", md.String())
	c.audit.Record(audit.LevelInfo, op.String(), md.FileName, "Receiving file")

	alloc, err := c.store.Allocate(sess.ID, md.FileName)
	if err != nil {
		return domain.NewSessionError(domain.KindIOError, op, "failed to create temporary input file", err)
	}
	sess.InputPath = alloc.Path

	received, recvErr := reader.ReceiveContent(ctx, alloc.File)
	sess.BytesIn = received
	if closeErr := alloc.File.Close(); closeErr != nil && recvErr == nil {
		recvErr = domain.NewSessionError(domain.KindIOError, op, "failed to write input", closeErr)
	}
	if recvErr != nil {
		return recvErr
	}
	log.Debug("input received", "bytes", received)

	// Transforming
	if err := sess.Transition(domain.StateTransforming); err != nil {
		return err
	}
	sess.OutputPath = c.store.DeriveOutputPath(sess.InputPath, c.builder.OutputSuffix(md))

	cmd, err := c.builder.Build(md, sess.InputPath, sess.OutputPath)
	if err != nil {
		return domain.NewSessionError(domain.KindTransformFailed, op, "failed to build command", err)
	}

	log.Debug("running converter", "command", cmd.String())
	res, err := c.runner.Run(ctx, cmd)
	c.observer.CommandFinished(op, res, err)
	if err := classifyRun(op, res, err); err != nil {
		return err
	}

	// Sending
	if err := sess.Transition(domain.StateSending); err != nil {
		return err
	}
	out, err := c.store.Open(sess.OutputPath)
	if err != nil {
		return domain.NewSessionError(domain.KindIOError, op, "failed to open converted file", err)
	}
	defer out.Close()

	sent, err := framing.SendContent(ctx, stream, op, out, c.chunkSize)
	sess.BytesOut = sent
	if err != nil {
		return err
	}

	status := domain.Status{
		Success:  true,
		Message:  command.SuccessMessage(op),
		FileName: command.ResultName(md),
	}
	if err := framing.SendStatus(stream, op, status); err != nil {
		return err
	}
	sess.Status = &status

	return sess.Transition(domain.StateDone)
}

// classifyRun maps a runner outcome to a session error, or nil for a clean
// zero exit.
func classifyRun(op domain.Operation, res runner.Result, err error) error {
	switch {
	case errors.Is(err, _errors.ErrCommandTimeout):
		return domain.NewSessionError(domain.KindTimeout, op, "conversion timed out", err)
	case errors.Is(err, context.Canceled):
		return domain.NewSessionError(domain.KindPeerDisconnected, op, "stream cancelled during conversion", err)
	case err != nil:
		return domain.NewSessionError(domain.KindTransformFailed, op, "", err)
	case !res.Success():
		return domain.NewSessionError(domain.KindTransformFailed, op, failureMessage(res), nil)
	}
	return nil
}

func failureMessage(res runner.Result) string {
	msg := strings.TrimSpace(string(res.Output))
	if msg == "" {
		return fmt.Sprintf("exit status %d", res.ExitCode)
	}
	if res.Truncated {
		msg += " (output truncated)"
	}
	return msg
}

// fail moves the session to Failed and, when the peer can still hear us,
// reports the failure in a status frame.
func (c *Controller) fail(stream domain.Stream, sess *domain.Session, err error, log *logger.Logger) {
	sess.Err = err
	if !sess.State.IsTerminal() {
		_ = sess.Transition(domain.StateFailed)
	}

	kind, _ := domain.KindOf(err)
	switch kind {
	case domain.KindInvalidMetadata:
		log.Warn("rejected stream", "error", err)
		return
	case domain.KindPeerDisconnected:
		log.Warn("peer went away", "error", err)
		return
	}

	log.Error("session failed", "kind", kind, "error", err)

	status := domain.Status{Success: false, Message: errorMessage(err)}
	if sendErr := framing.SendStatus(stream, sess.Op, status); sendErr != nil {
		log.Warn("failed to report failure to peer", "error", sendErr)
		return
	}
	sess.Status = &status
}

func errorMessage(err error) string {
	var se *domain.SessionError
	if errors.As(err, &se) {
		return se.Message()
	}
	return err.Error()
}

func (c *Controller) finish(sess *domain.Session, log *logger.Logger) {
	if sess.State == domain.StateDone {
		c.audit.Record(audit.LevelSuccess, sess.Op.String(), sess.Metadata.FileName, sess.Status.Message)
		log.Info("session completed",
			"file", sess.Metadata.FileName,
			"bytesIn", sess.BytesIn,
			"bytesOut", sess.BytesOut,
			"duration", sess.Duration())
	} else {
		c.audit.Record(audit.LevelError, sess.Op.String(), sess.Metadata.FileName, errorMessage(sess.Err))
	}
	c.observer.SessionFinished(sess)
}
