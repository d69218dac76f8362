// Package process implements the Worker port by spawning the external
// worker binary and exchanging one JSON message per request over
// stdio. Document bytes never enter this process; only paths and page
// ranges cross the boundary.
package process

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

// Ensure Worker implements the interface.
var _ driven.Worker = (*Worker)(nil)

// ErrWorkerNotFound is returned when the worker binary is not on PATH.
var ErrWorkerNotFound = errors.New("worker binary not found: install bindery-worker or set worker.binary in the config")

// CommandRunner abstracts command execution for testing.
type CommandRunner interface {
	// Run executes the named binary with stdin supplied and returns
	// its stdout.
	Run(ctx context.Context, name string, stdin []byte, args ...string) ([]byte, error)
}

// execRunner runs commands via os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, stdin []byte, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("%s: %w: %s", name, err, detail)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return stdout.Bytes(), nil
}

// Worker talks to the external worker binary.
type Worker struct {
	binary string
	runner CommandRunner
}

// New creates a worker adapter for the given binary. An empty binary
// falls back to the default worker name resolved via PATH.
func New(binary string) *Worker {
	return NewWithRunner(binary, execRunner{})
}

// NewWithRunner creates a worker adapter with a custom runner.
func NewWithRunner(binary string, runner CommandRunner) *Worker {
	if binary == "" {
		binary = domain.DefaultAppSettings().Worker.Binary
	}
	return &Worker{binary: binary, runner: runner}
}

// CheckAvailable verifies the worker binary can be resolved.
func (w *Worker) CheckAvailable() error {
	if _, err := exec.LookPath(w.binary); err != nil {
		return fmt.Errorf("%w (%s)", ErrWorkerNotFound, w.binary)
	}
	return nil
}

// request is the outbound JSON envelope. The action discriminates;
// unused fields are omitted.
type request struct {
	Action    string   `json:"action"`
	Files     []string `json:"files,omitempty"`
	Output    string   `json:"output,omitempty"`
	File      string   `json:"file,omitempty"`
	Ranges    [][2]int `json:"ranges,omitempty"`
	OutputDir string   `json:"output_dir,omitempty"`
	BaseName  string   `json:"base_name,omitempty"`
}

// response is the inbound JSON envelope, a superset of the per-action
// results.
type response struct {
	Success   bool     `json:"success"`
	Output    string   `json:"output,omitempty"`
	Files     []string `json:"files,omitempty"`
	Pages     int      `json:"pages,omitempty"`
	SizeBytes int64    `json:"size_bytes,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// Merge combines the listed files into a single output file.
func (w *Worker) Merge(ctx context.Context, req driven.MergeRequest) (*driven.WorkerResponse, error) {
	resp, err := w.roundTrip(ctx, request{
		Action: "merge",
		Files:  req.Files,
		Output: req.Output,
	})
	if err != nil {
		return nil, err
	}
	return &driven.WorkerResponse{
		Success: resp.Success,
		Output:  resp.Output,
		Error:   resp.Error,
	}, nil
}

// Split extracts the listed page ranges into one file per range.
func (w *Worker) Split(ctx context.Context, req driven.SplitRequest) (*driven.WorkerResponse, error) {
	resp, err := w.roundTrip(ctx, request{
		Action:    "split",
		File:      req.File,
		Ranges:    req.Ranges,
		OutputDir: req.OutputDir,
		BaseName:  req.BaseName,
	})
	if err != nil {
		return nil, err
	}
	return &driven.WorkerResponse{
		Success: resp.Success,
		Files:   resp.Files,
		Error:   resp.Error,
	}, nil
}

// Metadata resolves page count and byte size for one file.
func (w *Worker) Metadata(ctx context.Context, file string) (*driven.FileMetadata, error) {
	resp, err := w.roundTrip(ctx, request{
		Action: "get_metadata",
		File:   file,
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		// The worker's description reaches the entry's error detail
		// unchanged.
		return nil, errors.New(resp.Error)
	}
	return &driven.FileMetadata{Pages: resp.Pages, SizeBytes: resp.SizeBytes}, nil
}

// roundTrip sends one request and decodes one response.
func (w *Worker) roundTrip(ctx context.Context, req request) (*response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding worker request: %w", err)
	}
	payload = append(payload, '\n')

	logger.Debug("worker request: action=%s", req.Action)

	start := time.Now()
	out, err := w.runner.Run(ctx, w.binary, payload)
	if err != nil {
		return nil, fmt.Errorf("running worker: %w", err)
	}
	logger.Worker(req.Action, time.Since(start))

	var resp response
	if err := json.Unmarshal(bytes.TrimSpace(out), &resp); err != nil {
		return nil, fmt.Errorf("decoding worker response: %w", err)
	}
	return &resp, nil
}
