package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/messages"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/styles"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/views/menu"
	mergeview "github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/views/merge"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/views/settings"
	splitview "github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/views/split"
)

// refreshInterval is how often the views re-read the collection.
// Asynchronous page-count resolutions land between key presses; the
// poll is what gets them on screen.
const refreshInterval = 400 * time.Millisecond

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// mergeView is the merge workspace.
	mergeView *mergeview.View

	// splitView is the split workspace.
	splitView *splitview.View

	// settingsView is the settings configuration view.
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// refreshTick is the internal poll message.
type refreshTick struct{}

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		mergeView:    mergeview.NewView(s, ports.Session, ports.Preview, ports.Settings),
		splitView:    splitview.NewView(s, ports.Session, ports.Preview),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("bindery - PDF merge & split"),
		a.tickCmd(),
	)
}

// tickCmd arms the next collection poll.
func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshTick{}
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.mergeView.SetDimensions(msg.Width, msg.Height)
		a.splitView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case refreshTick:
		// Convert the poll into a refresh for the active workspace and
		// re-arm it.
		refreshed := messages.CollectionRefreshed{}
		switch a.currentView {
		case messages.ViewMerge:
			a.mergeView, _ = a.mergeView.Update(refreshed)
		case messages.ViewSplit:
			a.splitView, _ = a.splitView.Update(refreshed)
		case messages.ViewMenu, messages.ViewSettings, messages.ViewHelp:
		}
		return a, a.tickCmd()

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewMerge:
			a.mergeView, cmd = a.mergeView.Update(msg)
			a.err = a.mergeView.Err()
			return a, cmd

		case messages.ViewSplit:
			a.splitView, cmd = a.splitView.Update(msg)
			a.err = a.splitView.Err()
			return a, cmd

		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewMerge:
			a.mergeView.Reset()
			return a, a.mergeView.Init()
		case messages.ViewSplit:
			a.splitView.Reset()
			return a, a.splitView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No initialisation needed
		}
		return a, nil

	case messages.ExecutionFinished:
		switch a.currentView {
		case messages.ViewMerge:
			a.mergeView, cmd = a.mergeView.Update(msg)
		case messages.ViewSplit:
			a.splitView, cmd = a.splitView.Update(msg)
		case messages.ViewMenu, messages.ViewSettings, messages.ViewHelp:
		}
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewMerge:
		a.mergeView, cmd = a.mergeView.Update(msg)
	case messages.ViewSplit:
		a.splitView, cmd = a.splitView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewMerge:
		return a.mergeView.View()
	case messages.ViewSplit:
		return a.splitView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Merge:
  a           Add a file
  d/x         Remove the selected file
  J/K         Move the selected file down/up
  n           Edit the output name
  enter       Run the merge

Split:
  a           Add a file
  enter       Enter page ranges / run the split
  esc         Back

[esc] back to menu`
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.mergeView.SetDimensions(width, height)
	a.splitView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
