package compiler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fakeBin writes an executable shell script standing in for pdflatex. The
// real invocation is <bin> -interaction=nonstopmode -output-directory <dir>
// <texfile>, so $3 is the scratch directory.
func fakeBin(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-pdflatex")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}
	return path
}

func TestCompile_Success(t *testing.T) {
	bin := fakeBin(t, `echo "This is pdflatex, fake edition"
printf '%%PDF-1.4 fake' > "$3/resume.pdf"
`)
	outputDir := t.TempDir()
	c := NewPDFLatex(bin, outputDir, 5*time.Second, nil)

	got, err := c.Compile(context.Background(), `\documentclass{article}`, "resume_20240101_120000.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := filepath.Join(outputDir, "resume_20240101_120000.pdf")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("artifact not copied: %q", data)
	}
}

func TestCompile_NonzeroExit(t *testing.T) {
	bin := fakeBin(t, `echo "! Undefined control sequence."
exit 1
`)
	c := NewPDFLatex(bin, t.TempDir(), 5*time.Second, nil)

	_, err := c.Compile(context.Background(), "broken", "out.pdf")
	f, ok := AsFailure(err)
	if !ok {
		t.Fatalf("expected Failure, got %v", err)
	}
	if f.Kind != KindCompileError {
		t.Fatalf("expected %s, got %s", KindCompileError, f.Kind)
	}
	if !strings.Contains(f.Log, "Undefined control sequence") {
		t.Fatalf("expected captured log, got %q", f.Log)
	}
}

func TestCompile_Timeout(t *testing.T) {
	bin := fakeBin(t, "sleep 5\n")
	c := NewPDFLatex(bin, t.TempDir(), 100*time.Millisecond, nil)

	_, err := c.Compile(context.Background(), "anything", "out.pdf")
	f, ok := AsFailure(err)
	if !ok {
		t.Fatalf("expected Failure, got %v", err)
	}
	if f.Kind != KindTimeout {
		t.Fatalf("expected %s, got %s", KindTimeout, f.Kind)
	}
}

func TestCompile_ArtifactMissing(t *testing.T) {
	bin := fakeBin(t, `echo "looked fine but wrote nothing"
exit 0
`)
	c := NewPDFLatex(bin, t.TempDir(), 5*time.Second, nil)

	_, err := c.Compile(context.Background(), "anything", "out.pdf")
	f, ok := AsFailure(err)
	if !ok {
		t.Fatalf("expected Failure, got %v", err)
	}
	if f.Kind != KindArtifactMissing {
		t.Fatalf("expected %s, got %s", KindArtifactMissing, f.Kind)
	}
}

func TestCompile_CreatesOutputDir(t *testing.T) {
	bin := fakeBin(t, `printf '%%PDF-1.4' > "$3/resume.pdf"
`)
	outputDir := filepath.Join(t.TempDir(), "nested", "generated_pdfs")
	c := NewPDFLatex(bin, outputDir, 5*time.Second, nil)

	got, err := c.Compile(context.Background(), "doc", "out.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := os.Stat(got); err != nil {
		t.Fatalf("artifact not present: %v", err)
	}
}

func TestCompile_ScratchDirRemoved(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "scratch-path")
	bin := fakeBin(t, `printf '%%PDF-1.4' > "$3/resume.pdf"
echo "$3" > "`+marker+`"
`)
	c := NewPDFLatex(bin, t.TempDir(), 5*time.Second, nil)

	if _, err := c.Compile(context.Background(), "doc", "out.pdf"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	recorded, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("read scratch marker: %v", err)
	}
	scratch := strings.TrimSpace(string(recorded))
	if _, err := os.Stat(scratch); !os.IsNotExist(err) {
		t.Fatalf("scratch dir %s should be removed, stat err=%v", scratch, err)
	}
}
