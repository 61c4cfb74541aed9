package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"resume-forge/internal/compiler"
	"resume-forge/internal/domain/resume"
	"resume-forge/internal/latex"
	"resume-forge/internal/repository"
	"resume-forge/internal/storage"

	"github.com/google/uuid"
)

// Failure kinds terminal for a generation request. None are retried
// internally; the caller decides whether to resubmit.
const (
	KindValidationError = "validation_error"
	KindCompileError    = string(compiler.KindCompileError)
	KindTimeout         = string(compiler.KindTimeout)
	KindArtifactMissing = string(compiler.KindArtifactMissing)
	KindUploadError     = "upload_error"
)

// PipelineError is the single structured failure surfaced to the transport
// layer. Message and Detail are safe for the caller: Detail carries compiler
// log text, which reflects only the submitted content.
type PipelineError struct {
	Kind    string
	Message string
	Detail  string
	Cause   error
}

func (e *PipelineError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PipelineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// AsPipelineError unwraps a PipelineError from err, if one is present.
func AsPipelineError(err error) (*PipelineError, bool) {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Notifier receives generation lifecycle events. Implementations must not
// block.
type Notifier interface {
	GenerationStarted(id uuid.UUID, filename string)
	GenerationFinished(id uuid.UUID, filename string, status string, publicURL string)
}

type GenerateResult struct {
	ID       uuid.UUID
	Filename string
	Key      string
	URL      string
}

type GenerateUsecase interface {
	Generate(ctx context.Context, req resume.Request) (GenerateResult, error)
}

// Generator drives one request through
// validate -> assemble -> compile -> upload -> clean up, terminal on the
// first failure. It holds no per-request state, so one instance serves
// concurrent requests.
type Generator struct {
	compiler compiler.Compiler
	store    storage.ObjectStore
	repo     repository.GenerationRepository
	notifier Notifier
	logger   *log.Logger
	now      func() time.Time
}

func NewGenerator(c compiler.Compiler, store storage.ObjectStore, repo repository.GenerationRepository, notifier Notifier, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		compiler: c,
		store:    store,
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (g *Generator) Generate(ctx context.Context, req resume.Request) (GenerateResult, error) {
	started := g.now()
	req = req.Normalized()

	if err := req.Validate(); err != nil {
		return GenerateResult{}, &PipelineError{Kind: KindValidationError, Message: err.Error(), Cause: err}
	}

	id := uuid.New()
	filename := TimestampedName(req.OutputFilename, started)
	g.notifyStarted(id, filename)

	// Pure given validated input; escaping is total.
	document := latex.Document(req)

	localPath, err := g.compiler.Compile(ctx, document, filename)
	if err != nil {
		pe := classifyCompileError(err)
		g.finish(ctx, id, filename, repository.Generation{}, pe, started)
		return GenerateResult{}, pe
	}

	obj, err := g.store.Store(ctx, localPath, "application/pdf")
	if err != nil {
		// The local artifact is deliberately retained here: it must survive
		// an upload failure for resubmission or manual recovery.
		pe := &PipelineError{Kind: KindUploadError, Message: "failed to upload the generated document", Cause: err}
		g.finish(ctx, id, filename, repository.Generation{}, pe, started)
		return GenerateResult{}, pe
	}

	if err := os.Remove(localPath); err != nil {
		// The caller already has the durable URL; a stuck local copy is a
		// warning, not a failure.
		g.logger.Printf("[Pipeline] local artifact cleanup failed | path=%s err=%v", localPath, err)
	}

	g.finish(ctx, id, filename, repository.Generation{ObjectKey: obj.Key, PublicURL: obj.URL}, nil, started)

	return GenerateResult{ID: id, Filename: filename, Key: obj.Key, URL: obj.URL}, nil
}

func classifyCompileError(err error) *PipelineError {
	if f, ok := compiler.AsFailure(err); ok {
		return &PipelineError{
			Kind:    string(f.Kind),
			Message: f.Message,
			Detail:  tailOf(f.Log, 4000),
			Cause:   err,
		}
	}
	return &PipelineError{Kind: KindCompileError, Message: "failed to compile the document", Cause: err}
}

func (g *Generator) finish(ctx context.Context, id uuid.UUID, filename string, obj repository.Generation, pe *PipelineError, started time.Time) {
	status := repository.GenerationStatusSuccess
	errorKind := ""
	publicURL := obj.PublicURL
	if pe != nil {
		status = repository.GenerationStatusFailed
		errorKind = pe.Kind
		publicURL = ""
	}

	if g.repo != nil {
		rec := repository.Generation{
			ID:         id,
			Filename:   filename,
			ObjectKey:  obj.ObjectKey,
			PublicURL:  publicURL,
			Status:     status,
			ErrorKind:  errorKind,
			DurationMS: g.now().Sub(started).Milliseconds(),
			CreatedAt:  started.UTC(),
		}
		if err := g.repo.Record(ctx, rec); err != nil {
			g.logger.Printf("[Pipeline] audit record failed | id=%s err=%v", id, err)
		}
	}

	if g.notifier != nil {
		g.notifier.GenerationFinished(id, filename, status, publicURL)
	}
}

func (g *Generator) notifyStarted(id uuid.UUID, filename string) {
	if g.notifier != nil {
		g.notifier.GenerationStarted(id, filename)
	}
}

// TimestampedName strips a trailing ".pdf", appends a compact timestamp and
// restores the suffix, so sequential requests in one process never collide on
// the local filename.
func TimestampedName(base string, t time.Time) string {
	base = strings.TrimSuffix(strings.TrimSpace(base), ".pdf")
	if base == "" {
		base = "resume"
	}
	return fmt.Sprintf("%s_%s.pdf", base, t.Format("20060102_150405"))
}

func tailOf(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[len(s)-max:]
}
