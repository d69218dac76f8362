package split

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindery-labs/bindery-cli/internal/adapters/driven/storage/memory"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/messages"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/styles"
	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
	"github.com/bindery-labs/bindery-cli/internal/core/services"
)

type stubWorker struct {
	pages int

	splitReqs []driven.SplitRequest
}

func (w *stubWorker) Merge(_ context.Context, req driven.MergeRequest) (*driven.WorkerResponse, error) {
	return &driven.WorkerResponse{Success: true, Output: req.Output}, nil
}

func (w *stubWorker) Split(_ context.Context, req driven.SplitRequest) (*driven.WorkerResponse, error) {
	w.splitReqs = append(w.splitReqs, req)
	files := make([]string, len(req.Ranges))
	for i := range req.Ranges {
		files[i] = req.OutputDir + "/" + req.BaseName + ".pdf"
	}
	return &driven.WorkerResponse{Success: true, Files: files}, nil
}

func (w *stubWorker) Metadata(context.Context, string) (*driven.FileMetadata, error) {
	return &driven.FileMetadata{Pages: w.pages}, nil
}

func newTestView(t *testing.T, pages int) (*View, driving.SessionService, *stubWorker) {
	t.Helper()

	store := memory.NewConfigStore()
	require.NoError(t, store.Set("output.directory", "/out"))
	settings := services.NewSettings(store)
	worker := &stubWorker{pages: pages}
	session := services.NewSession(worker, settings, services.NewHistory(memory.NewJobStore()))

	v := NewView(styles.DefaultStyles(), session, services.NewPreview(session))
	v.Init()
	return v, session, worker
}

func addEntry(t *testing.T, session driving.SessionService, name string) {
	t.Helper()
	_, err := session.Add(context.Background(), domain.Candidate{
		DisplayName: name,
		SourceRef:   "/tmp/" + name,
		ByteSize:    1000,
	})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		for _, e := range session.Entries() {
			if e.Status == domain.StatusPending {
				return false
			}
		}
		return true
	}, time.Second, 5*time.Millisecond)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeString(v *View, s string) *View {
	for _, r := range s {
		v, _ = v.Update(keyMsg(string(r)))
	}
	return v
}

func TestSplitView_EscReturnsToMenu(t *testing.T) {
	v, _, _ := newTestView(t, 10)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, msg.View)
}

func TestSplitView_RangesFlow(t *testing.T) {
	v, session, worker := newTestView(t, 10)
	addEntry(t, session, "report.pdf")
	v, _ = v.Update(messages.CollectionRefreshed{})

	// "r" opens the ranges input for the selected entry.
	v, _ = v.Update(keyMsg("r"))
	v = typeString(v, "1-3,7")

	// The live preview shows the derived names.
	out := v.View()
	assert.Contains(t, out, "report_1-3.pdf")
	assert.Contains(t, out, "report_7.pdf")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	finished, ok := cmd().(messages.ExecutionFinished)
	require.True(t, ok)
	require.NoError(t, finished.Err)
	assert.Len(t, finished.Files, 2)

	require.Len(t, worker.splitReqs, 1)
	assert.Equal(t, [][2]int{{1, 3}, {7, 7}}, worker.splitReqs[0].Ranges)
	assert.Equal(t, "report", worker.splitReqs[0].BaseName)

	v, _ = v.Update(finished)
	assert.Contains(t, v.View(), "Created 2 file(s)")
}

func TestSplitView_OutOfBoundsIsRejected(t *testing.T) {
	v, session, worker := newTestView(t, 5)
	addEntry(t, session, "short.pdf")
	v, _ = v.Update(messages.CollectionRefreshed{})

	v, _ = v.Update(keyMsg("r"))
	v = typeString(v, "4-9")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Error(t, v.Err())
	assert.Empty(t, worker.splitReqs)
}

func TestSplitView_MalformedRangesShownInPreview(t *testing.T) {
	v, session, _ := newTestView(t, 10)
	addEntry(t, session, "report.pdf")
	v, _ = v.Update(messages.CollectionRefreshed{})

	v, _ = v.Update(keyMsg("r"))
	v = typeString(v, "3-1")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Error(t, v.Err())
}

func TestSplitView_EnterWithoutSelectionIsNoop(t *testing.T) {
	v, _, _ := newTestView(t, 10)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "No files yet")
}

func TestSplitView_EscFromRangesReturnsToList(t *testing.T) {
	v, session, _ := newTestView(t, 10)
	addEntry(t, session, "report.pdf")
	v, _ = v.Update(messages.CollectionRefreshed{})

	v, _ = v.Update(keyMsg("r"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	// The list has focus again, so esc now leaves the view.
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, messages.ViewChanged{}, cmd())
}
