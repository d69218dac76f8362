package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SessionService = (*Session)(nil)

// Session owns the document collection for the current run. Every
// mutation is funnelled through it: the collection itself is a plain
// state machine, and Session provides the single lock around it plus
// the fire-and-forget metadata resolution and worker dispatch.
type Session struct {
	mu         sync.Mutex
	collection *domain.Collection
	executing  bool

	worker   driven.Worker
	settings driving.SettingsService
	history  driving.HistoryService

	observers map[int]func(driving.CollectionEvent)
	nextObs   int
}

// NewSession creates a session service. history may be nil, which
// disables job recording.
func NewSession(worker driven.Worker, settings driving.SettingsService, history driving.HistoryService) *Session {
	return &Session{
		collection: domain.NewCollection(),
		worker:     worker,
		settings:   settings,
		history:    history,
		observers:  make(map[int]func(driving.CollectionEvent)),
	}
}

// AddPath stats the file and adds it to the collection.
func (s *Session) AddPath(ctx context.Context, path string) (*domain.DocumentEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}

	return s.Add(ctx, domain.Candidate{
		DisplayName: filepath.Base(path),
		SourceRef:   path,
		ByteSize:    info.Size(),
	})
}

// Add inserts a candidate and dispatches page-count resolution.
func (s *Session) Add(_ context.Context, cand domain.Candidate) (*domain.DocumentEntry, error) {
	s.mu.Lock()
	entry, err := s.collection.Add(cand)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.notify(driving.CollectionEvent{Type: driving.EventAdded, EntryID: entry.ID})

	// Fire-and-forget: the callback is tagged with the entry ID at
	// dispatch time and checks liveness before applying. Removal of
	// the entry does not cancel the request.
	go s.resolveMetadata(entry.ID, entry.SourceRef)

	return entry, nil
}

// resolveMetadata asks the worker for the file's page count and
// applies the result if the entry still exists.
func (s *Session) resolveMetadata(id, sourceRef string) {
	ctx, cancel := s.requestContext()
	defer cancel()

	meta, err := s.worker.Metadata(ctx, sourceRef)

	s.mu.Lock()
	var applied bool
	if err != nil {
		applied = s.collection.FailMetadata(id, err.Error())
	} else {
		applied = s.collection.ResolveMetadata(id, meta.Pages)
	}
	s.mu.Unlock()

	if !applied {
		// Entry was removed while the request was in flight.
		logger.Debug("metadata resolution discarded for removed entry %s", id)
		return
	}
	s.notify(driving.CollectionEvent{Type: driving.EventMetadata, EntryID: id})
}

// Remove deletes an entry; unknown IDs are a no-op.
func (s *Session) Remove(id string) bool {
	s.mu.Lock()
	removed := s.collection.Remove(id)
	s.mu.Unlock()

	if removed {
		s.notify(driving.CollectionEvent{Type: driving.EventRemoved, EntryID: id})
	}
	return removed
}

// Clear empties the collection.
func (s *Session) Clear() {
	s.mu.Lock()
	s.collection.Clear()
	s.mu.Unlock()

	s.notify(driving.CollectionEvent{Type: driving.EventCleared})
}

// Entries returns the current entries in display order.
func (s *Session) Entries() []domain.DocumentEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Entries()
}

// Get returns one entry, or nil.
func (s *Session) Get(id string) *domain.DocumentEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Get(id)
}

// Totals returns the collection's aggregate size and page sums under
// one lock, so the preview never mixes two snapshots.
func (s *Session) Totals() driving.CollectionTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	pages, lowerBound := s.collection.KnownPageCount()
	return driving.CollectionTotals{
		FileCount:       s.collection.Len(),
		ByteSize:        s.collection.TotalByteSize(),
		Pages:           pages,
		PagesLowerBound: lowerBound,
	}
}

// Reorder reconciles an observed rendered order into the canonical
// order. The renderer proposes; the collection validates. A stale
// gesture is discarded and the live order returned for re-render.
func (s *Session) Reorder(observed []string) ([]domain.DocumentEntry, bool) {
	s.mu.Lock()
	err := s.collection.ReorderTo(observed)
	entries := s.collection.Entries()
	s.mu.Unlock()

	if err != nil {
		// Normal concurrent flow, not a fault: a remove or add
		// landed mid-gesture. No user-visible error.
		logger.Debug("stale reorder discarded: %v", err)
		return entries, false
	}

	s.notify(driving.CollectionEvent{Type: driving.EventReordered})
	return entries, true
}

// ExecuteMerge sends the collection to the worker, in display order.
func (s *Session) ExecuteMerge(ctx context.Context, naming driving.MergeNaming) (*driving.ExecuteResult, error) {
	s.mu.Lock()
	if s.executing {
		s.mu.Unlock()
		return nil, domain.ErrExecutionInProgress
	}
	if s.collection.Len() == 0 {
		s.mu.Unlock()
		return nil, domain.ErrEmptyCollection
	}

	s.executing = true
	s.collection.SetStatusAll(domain.StatusProcessing)
	files := s.collection.SourceRefs()
	size := s.collection.TotalByteSize()
	pages, _ := s.collection.KnownPageCount()
	s.mu.Unlock()

	finalName := domain.MergeOutputName(naming.Prefix, naming.BaseName, naming.Suffix)
	output := filepath.Join(s.outputDir(), finalName)

	s.notify(driving.CollectionEvent{Type: driving.EventExecution})
	logger.Info("merging %d files into %s", len(files), output)

	resp, err := s.worker.Merge(ctx, driven.MergeRequest{Files: files, Output: output})
	return s.finishExecution(ctx, driven.JobKindMerge, files, resp, err, pages, size)
}

// ExecuteSplit sends one entry and a validated spec to the worker.
func (s *Session) ExecuteSplit(ctx context.Context, entryID string, spec domain.RangeSpec, baseName string) (*driving.ExecuteResult, error) {
	s.mu.Lock()
	if s.executing {
		s.mu.Unlock()
		return nil, domain.ErrExecutionInProgress
	}
	entry := s.collection.Get(entryID)
	if entry == nil {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}

	// Specs parsed before the page count resolved were provisional;
	// re-validate against the resolved count now.
	if res := spec.Validate(entry.PageCount); !res.OK {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s (%s)", domain.ErrInvalidInput, res.Reason, res.Interval)
	}

	s.executing = true
	s.collection.SetStatus(entryID, domain.StatusProcessing)
	s.mu.Unlock()

	s.notify(driving.CollectionEvent{Type: driving.EventExecution})
	logger.Info("splitting %s into %d parts", entry.DisplayName, len(spec.Ranges))

	req := driven.SplitRequest{
		File:      entry.SourceRef,
		Ranges:    spec.Intervals(),
		OutputDir: s.outputDir(),
		BaseName:  baseName,
	}
	resp, err := s.worker.Split(ctx, req)
	return s.finishExecution(ctx, driven.JobKindSplit, []string{entry.SourceRef}, resp, err, len(spec.Expand()), entry.ByteSize)
}

// Executing reports whether an execute request is outstanding.
func (s *Session) Executing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executing
}

// Subscribe registers a change observer.
func (s *Session) Subscribe(fn func(driving.CollectionEvent)) func() {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// finishExecution restores entry statuses, records history, and maps
// the worker response onto a result or a verbatim error.
func (s *Session) finishExecution(ctx context.Context, kind driven.JobKind, inputs []string, resp *driven.WorkerResponse, err error, pages int, size int64) (*driving.ExecuteResult, error) {
	detail := ""
	success := err == nil && resp != nil && resp.Success
	if err != nil {
		detail = err.Error()
	} else if resp != nil && !resp.Success {
		detail = resp.Error
	}

	s.mu.Lock()
	s.executing = false
	s.restoreStatuses(success, detail)
	s.mu.Unlock()

	s.notify(driving.CollectionEvent{Type: driving.EventExecution})

	rec := &driven.JobRecord{
		Kind:       kind,
		Inputs:     inputs,
		Pages:      pages,
		SizeBytes:  size,
		Success:    success,
		Error:      detail,
		FinishedAt: time.Now(),
	}
	if success {
		if resp.Output != "" {
			rec.Outputs = []string{resp.Output}
		}
		rec.Outputs = append(rec.Outputs, resp.Files...)
	}
	if s.history != nil {
		if herr := s.history.Record(ctx, rec); herr != nil {
			logger.Warn("recording job history: %v", herr)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWorkerUnavailable, err)
	}
	if !resp.Success {
		// The worker's description is surfaced to the user verbatim.
		return nil, errors.New(resp.Error)
	}
	return &driving.ExecuteResult{Output: resp.Output, Files: resp.Files}, nil
}

// restoreStatuses resets entries after an execution so the execute
// action is re-enabled either way. Caller holds the lock.
func (s *Session) restoreStatuses(success bool, detail string) {
	for _, e := range s.collection.Entries() {
		if e.Status != domain.StatusProcessing {
			continue
		}
		if !success {
			s.collection.FailMetadata(e.ID, detail)
			continue
		}
		if e.HasPageCount() {
			s.collection.SetStatus(e.ID, domain.StatusReady)
		} else {
			s.collection.SetStatus(e.ID, domain.StatusPending)
		}
	}
}

// notify delivers an event to all observers outside the lock.
func (s *Session) notify(ev driving.CollectionEvent) {
	s.mu.Lock()
	fns := make([]func(driving.CollectionEvent), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// outputDir resolves the configured output directory.
func (s *Session) outputDir() string {
	if s.settings == nil {
		return "."
	}
	settings, err := s.settings.Get()
	if err != nil || settings.Output.Directory == "" {
		return "."
	}
	return settings.Output.Directory
}

// requestContext builds the context for a worker request, honouring
// the configured timeout.
func (s *Session) requestContext() (context.Context, context.CancelFunc) {
	timeout := 0
	if s.settings != nil {
		if settings, err := s.settings.Get(); err == nil {
			timeout = settings.Worker.TimeoutSeconds
		}
	}
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
}
