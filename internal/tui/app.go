package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/privix/internal/config"
	"github.com/jask/privix/internal/export"
	"github.com/jask/privix/internal/fixtures"
	"github.com/jask/privix/internal/session"
	"github.com/jask/privix/internal/state"
)

// App ties together the store, the mounted screen and the shell.
type App struct {
	ctx      context.Context
	cfg      config.Config
	store    *state.Store
	journal  session.Journal
	exporter *export.Exporter
	keys     *KeyRegistry
	save     func(mode string) error

	mode          string
	view          screenView
	mount         int
	galleryCursor int

	viewport  viewport.Model
	help      help.Model
	prompt    textinput.Model
	prompting bool

	pending   []state.Change
	toast     string
	toastSeq  int
	status    string
	statusErr bool
	width     int
	height    int
}

// Options wires the App's collaborators. Nil Journal and Keys fall back to
// a no-op journal and the default key map.
type Options struct {
	Config   config.Config
	Store    *state.Store
	Journal  session.Journal
	Exporter *export.Exporter
	Keys     *KeyRegistry
	// SaveViewMode persists the gallery/interactive toggle.
	SaveViewMode func(mode string) error
}

func New(ctx context.Context, opts Options) *App {
	if opts.Journal == nil {
		opts.Journal = session.Nop{}
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry()
	}
	if opts.Store == nil {
		opts.Store = state.NewStore(state.Initial(opts.Config.UI.InitialScore))
	}
	if opts.Exporter == nil {
		opts.Exporter = export.New(opts.Config.Export.Dir)
	}
	if opts.Config.UI.Clock == "" {
		opts.Config.UI.Clock = "9:41"
	}
	mode := opts.Config.UI.ViewMode
	if mode != config.ViewInteractive {
		mode = config.ViewGallery
	}

	a := &App{
		ctx:      ctx,
		cfg:      opts.Config,
		store:    opts.Store,
		journal:  opts.Journal,
		exporter: opts.Exporter,
		keys:     opts.Keys,
		save:     opts.SaveViewMode,
		mode:     mode,
		help:     help.New(),
		prompt:   newPrompt(),
		status:   "Ready",
		width:    100,
		height:   40,
	}
	a.store.Observe(func(c state.Change) { a.pending = append(a.pending, c) })
	a.viewport = viewport.New(contentWidth, contentHeight(a.store.State().ShowNav()))
	a.galleryCursor = galleryIndex(a.store.State().Screen)
	a.mountView(a.store.State().Screen)
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("Privix")
}

// State exposes the current store value; used by the entry point and tests.
func (a *App) State() state.State { return a.store.State() }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.syncViewport()
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case actionMsg:
		return a.apply([]state.Action(m)...)
	case toastMsg:
		a.toast = string(m)
		a.toastSeq++
		seq := a.toastSeq
		return tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
	case toastExpiredMsg:
		if m.seq == a.toastSeq {
			a.toast = ""
		}
		return nil
	case statusMsg:
		a.status, a.statusErr = string(m), false
		return nil
	case errMsg:
		log.Printf("error: %v", m.error)
		a.status, a.statusErr = "error: "+m.Error(), true
		return nil
	case exportRequestMsg:
		a.status, a.statusErr = "exporting...", false
		return a.exportCmd(m.kind)
	case exportDoneMsg:
		a.status, a.statusErr = "saved "+m.path, false
		return showToast(exportToast(m.kind))
	case resetSessionMsg:
		return a.resetCmd()
	case resetDoneMsg:
		return tea.Batch(showToast("Session history cleared"), a.forward(m))
	case historyRequestMsg:
		return a.historyCmd()
	}

	if mm, ok := msg.(mountedMsg); ok && mm.mountID() != a.mount {
		return nil
	}
	return a.forward(msg)
}

func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.view, cmd = a.view.Update(msg, a.viewContext())
	return cmd
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	if a.prompting {
		return a.handlePromptKey(m)
	}
	scope := a.scope()
	var b *Binding
	if scope == scopeSwitching {
		b = a.keys.lookupInScope(normalizeKeyName(m.String()), scope)
	} else {
		b = a.keys.Lookup(m.String(), scope)
	}
	if b == nil {
		return nil
	}

	switch b.Action {
	case actionQuit:
		return tea.Quit
	case actionToggleView:
		return a.toggleMode()
	case actionCommandMode:
		a.prompting = true
		a.prompt.SetValue("")
		return a.prompt.Focus()
	case actionScrollUp:
		a.viewport.LineUp(max(1, a.viewport.Height/2))
		return nil
	case actionScrollDown:
		a.viewport.LineDown(max(1, a.viewport.Height/2))
		return nil
	case actionNavHome, actionNavAlerts, actionNavReport, actionNavSettings:
		if a.mode != config.ViewInteractive || !a.store.State().ShowNav() {
			return nil
		}
		to, _ := navTarget(b.Action)
		return a.apply(state.Navigate{To: to})
	}

	if a.mode == config.ViewGallery {
		return a.handleGalleryKey(b)
	}
	return a.forward(keyActionMsg{Action: b.Action})
}

func (a *App) handleGalleryKey(b *Binding) tea.Cmd {
	screens := state.Screens()
	switch b.Action {
	case actionCursorUp, actionCursorDown:
		a.galleryCursor = clampStep(a.galleryCursor, len(screens), delta(b.Action))
	case actionGalleryOpen:
		a.mode = config.ViewInteractive
		return tea.Batch(a.apply(state.Navigate{To: screens[a.galleryCursor]}), a.saveModeCmd())
	}
	return nil
}

func (a *App) handlePromptKey(m tea.KeyMsg) tea.Cmd {
	b := a.keys.lookupInScope(normalizeKeyName(m.String()), scopeCommand)
	if b == nil && m.String() == "ctrl+c" {
		return tea.Quit
	}
	if b != nil {
		switch b.Action {
		case actionClose:
			a.closePrompt()
			return nil
		case actionCommandSubmit:
			input := a.prompt.Value()
			a.closePrompt()
			to, err := resolveScreen(input)
			if err != nil {
				a.status, a.statusErr = err.Error(), true
				return nil
			}
			a.galleryCursor = galleryIndex(to)
			cmd := a.apply(state.Navigate{To: to})
			if a.mode == config.ViewGallery {
				a.mode = config.ViewInteractive
				return tea.Batch(cmd, a.saveModeCmd())
			}
			return cmd
		}
	}
	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(m)
	return cmd
}

func (a *App) closePrompt() {
	a.prompting = false
	a.prompt.Blur()
	a.prompt.SetValue("")
}

func (a *App) toggleMode() tea.Cmd {
	if a.mode == config.ViewGallery {
		a.mode = config.ViewInteractive
	} else {
		a.mode = config.ViewGallery
		a.galleryCursor = galleryIndex(a.store.State().Screen)
	}
	return a.saveModeCmd()
}

// apply dispatches actions, remounts the view when the screen changed and
// journals every resulting change.
func (a *App) apply(actions ...state.Action) tea.Cmd {
	before := a.store.State()
	after := a.store.Dispatch(actions...)
	if after.Screen != before.Screen {
		a.mountView(after.Screen)
	}
	changes := a.pending
	a.pending = nil
	return a.recordCmd(changes)
}

func (a *App) mountView(s state.Screen) {
	a.mount++
	a.view = newView(s)
	a.viewport.GotoTop()
}

func (a *App) scope() string {
	if a.prompting {
		return scopeCommand
	}
	if a.mode == config.ViewGallery {
		return scopeGallery
	}
	return a.view.Scope()
}

func (a *App) viewContext() viewContext {
	return viewContext{
		State:          a.store.State(),
		Keys:           a.keys,
		Width:          contentWidth,
		Mount:          a.mount,
		JournalEnabled: a.journal.Enabled(),
	}
}

func (a *App) syncViewport() {
	st := a.store.State()
	a.viewport.Width = contentWidth
	a.viewport.Height = contentHeight(st.ShowNav())
	a.viewport.SetContent(a.view.View(a.viewContext()))
}

// commands

func (a *App) recordCmd(changes []state.Change) tea.Cmd {
	if len(changes) == 0 || !a.journal.Enabled() {
		return nil
	}
	j := a.journal
	ctx := a.ctx
	return func() tea.Msg {
		for _, c := range changes {
			if err := j.Record(ctx, c); err != nil {
				return errMsg{fmt.Errorf("journal: %w", err)}
			}
		}
		return nil
	}
}

func (a *App) exportCmd(kind exportKind) tea.Cmd {
	ex := a.exporter
	score := a.store.State().Score
	return func() tea.Msg {
		var (
			path string
			err  error
		)
		switch kind {
		case exportReport:
			path, err = ex.WeeklyReport(export.BuildReport(score))
		case exportScreenshots:
			path, err = ex.ScreenshotLog(fixtures.Screenshots())
		default:
			err = fmt.Errorf("unknown export %q", kind)
		}
		if err != nil {
			return errMsg{err}
		}
		return exportDoneMsg{kind: kind, path: path}
	}
}

func exportToast(kind exportKind) string {
	if kind == exportScreenshots {
		return "Screenshot log exported"
	}
	return "Report downloaded"
}

func (a *App) historyCmd() tea.Cmd {
	if !a.journal.Enabled() {
		return statusCmd("session journal is off (session.persist = false)")
	}
	j := a.journal
	ctx := a.ctx
	mount := a.mount
	return func() tea.Msg {
		h, err := j.History(ctx)
		if err != nil {
			return errMsg{fmt.Errorf("journal: %w", err)}
		}
		return historyLoadedMsg{mount: mount, history: h}
	}
}

func (a *App) resetCmd() tea.Cmd {
	if !a.journal.Enabled() {
		return statusCmd("session journal is off (session.persist = false)")
	}
	j := a.journal
	ctx := a.ctx
	return func() tea.Msg {
		if err := j.Reset(ctx); err != nil {
			return errMsg{err}
		}
		return resetDoneMsg{}
	}
}

func (a *App) saveModeCmd() tea.Cmd {
	a.cfg.UI.ViewMode = a.mode
	if a.save == nil {
		return nil
	}
	mode := a.mode
	save := a.save
	return func() tea.Msg {
		if err := save(mode); err != nil {
			return errMsg{fmt.Errorf("save config: %w", err)}
		}
		return nil
	}
}

// rendering

func (a *App) View() string {
	var body string
	if a.mode == config.ViewGallery {
		body = a.renderGallery()
	} else {
		body = a.renderInteractive()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, a.renderFooter(), a.renderStatus())
}

func (a *App) renderInteractive() string {
	st := a.store.State()
	phone := renderPhone(a.cfg.UI.Clock, st, a.viewport.View(), a.keys)
	if a.toast != "" {
		offset := 1
		if st.ShowNav() {
			offset += navBarHeight
		}
		phone = overlayBottom(phone, toastStyle.Render("✓ "+a.toast), offset)
	}
	if a.prompting {
		phone = overlayCenter(phone, modalStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left, accentStyle.Render("Jump to screen"), a.prompt.View())))
	}
	header := brandStyle.Render("Privix") + mutedStyle.Render("  "+st.Screen.Title())
	return lipgloss.JoinVertical(lipgloss.Left, header, phone)
}

func (a *App) renderFooter() string {
	scope := a.scope()
	bindings := a.keys.HelpBindings(scope)
	if scope != scopeGlobal && scope != scopeCommand && scope != scopeSwitching {
		for _, b := range a.keys.HelpBindings(scopeGlobal) {
			if a.showGlobalHelp(b) {
				bindings = append(bindings, b)
			}
		}
	}
	return renderBar(footerStyle, max(1, a.width), a.help.ShortHelpView(bindings), colorMantle)
}

func (a *App) showGlobalHelp(b key.Binding) bool {
	switch b.Help().Desc {
	case "quit", "gallery", "jump":
		return true
	}
	return false
}

func (a *App) renderStatus() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	st := a.store.State()
	msg = fmt.Sprintf("score %d · %s · %s", st.Score, a.mode, msg)
	if a.statusErr {
		return renderBar(statusErrBarStyle, max(1, a.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, a.width), msg, colorSurface0)
}
