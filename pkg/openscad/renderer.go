package openscad

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotInstalled is returned when no openscad binary can be found
var ErrNotInstalled = errors.New("openscad not found in PATH, install it from https://openscad.org/")

// Renderer turns exported .scad files into meshes with the openscad binary
type Renderer struct {
	workDir string
	binary  string
}

// NewRenderer creates a renderer resolving relative paths against workDir
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
		binary:  "openscad",
	}
}

// RenderError carries the openscad output of a failed render
type RenderError struct {
	File   string
	Err    error
	Output string
}

func (e *RenderError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("failed to render %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("failed to render %s: %v: %s", e.File, e.Err, e.Output)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func (r *Renderer) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.workDir, path)
}

// RenderToSTL renders scadFile into outputFile. Cancelling ctx kills openscad.
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	bin, err := exec.LookPath(r.binary)
	if err != nil {
		return ErrNotInstalled
	}

	cmd := exec.CommandContext(ctx, bin, "-o", r.abs(outputFile), r.abs(scadFile))
	cmd.Dir = r.workDir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return &RenderError{
			File:   scadFile,
			Err:    err,
			Output: strings.TrimSpace(out.String()),
		}
	}
	return nil
}
