package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

type FailureKind string

const (
	KindCompileError    FailureKind = "compile_error"
	KindTimeout         FailureKind = "timeout"
	KindArtifactMissing FailureKind = "artifact_missing"
)

// Failure is a classified compiler failure. Log carries the captured
// stdout+stderr of the subprocess; it reflects only the submitted content and
// is safe to surface to the caller.
type Failure struct {
	Kind    FailureKind
	Message string
	Log     string
}

func (f *Failure) Error() string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// AsFailure unwraps a classified Failure from err, if one is present.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Compiler turns a LaTeX document into a local PDF artifact. Implementations
// own the full subprocess boundary so the rest of the pipeline never depends
// on the compiler's command-line shape.
type Compiler interface {
	Compile(ctx context.Context, markup string, outputName string) (string, error)
}

const sourceName = "resume.tex"

// PDFLatex invokes the pdflatex binary in a per-invocation scratch directory.
// Each call spawns exactly one child process under a wall-clock deadline;
// the scratch directory is removed on every exit path and the produced PDF is
// copied into outputDir under outputName before returning.
type PDFLatex struct {
	bin       string
	outputDir string
	timeout   time.Duration
	logger    *log.Logger
}

func NewPDFLatex(bin string, outputDir string, timeout time.Duration, logger *log.Logger) *PDFLatex {
	if bin == "" {
		bin = "pdflatex"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &PDFLatex{bin: bin, outputDir: outputDir, timeout: timeout, logger: logger}
}

func (p *PDFLatex) Compile(ctx context.Context, markup string, outputName string) (string, error) {
	scratch, err := os.MkdirTemp("", "resume-tex-")
	if err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(scratch); rmErr != nil {
			p.logger.Printf("[Compiler] scratch cleanup failed | dir=%s err=%v", scratch, rmErr)
		}
	}()

	texPath := filepath.Join(scratch, sourceName)
	if err := os.WriteFile(texPath, []byte(markup), 0o644); err != nil {
		return "", fmt.Errorf("write source file: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// CommandContext kills the child when the deadline fires, so a timed-out
	// invocation never leaves a dangling process behind.
	cmd := exec.CommandContext(runCtx, p.bin, "-interaction=nonstopmode", "-output-directory", scratch, texPath)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	runErr := cmd.Run()
	if runCtx.Err() != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		// Timeouts signal malformed or oversized input, never transient load;
		// the caller must not retry.
		return "", &Failure{
			Kind:    KindTimeout,
			Message: fmt.Sprintf("compiler exceeded %s deadline", p.timeout),
			Log:     output.String(),
		}
	}
	if runErr != nil {
		return "", &Failure{
			Kind:    KindCompileError,
			Message: "compiler rejected the document: " + runErr.Error(),
			Log:     output.String(),
		}
	}

	pdfPath := filepath.Join(scratch, "resume.pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &Failure{
			Kind:    KindArtifactMissing,
			Message: "compiler exited cleanly but produced no PDF",
			Log:     output.String(),
		}
	}

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	outPath := filepath.Join(p.outputDir, outputName)
	if err := copyFile(pdfPath, outPath); err != nil {
		return "", fmt.Errorf("copy artifact: %w", err)
	}
	return outPath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
