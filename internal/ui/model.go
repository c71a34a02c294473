package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/kotoba/internal/state"
)

// WordLoader fetches the word list once per session.
type WordLoader interface {
	Load(ctx context.Context) ([]string, error)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Loader    WordLoader
	Presenter *Presenter
	ThemeName string
	Source    string // shown in the header
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	loader    WordLoader
	presenter *Presenter
	source    string

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Components
	input   textinput.Model
	spinner spinner.Model
	results viewport.Model

	// Display state
	output    Output
	status    Status
	result    ResultView
	hasResult bool
}

// New creates a new Bubble Tea model in the loading phase.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	presenter := opts.Presenter
	if presenter == nil {
		presenter = NewPresenter(nil, nil, defaultLocale)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "regular expression, e.g. ^かな"
	ti.CharLimit = 0 // no limit

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		ctx:       ctx,
		loader:    opts.Loader,
		presenter: presenter,
		source:    opts.Source,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     ti,
		spinner:   sp,
		results:   viewport.New(0, 0),
	}
	m.applyOutput(presenter.Loading())
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadCmd(m.ctx, m.loader),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if m.output.Phase != state.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case wordsLoadedMsg:
		return m, m.applyOutput(m.presenter.Loaded(msg.words))

	case loadFailedMsg:
		log.Printf("word list load failed: %v", msg.err)
		return m, m.applyOutput(m.presenter.Failed(msg.err))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if m.output.InputEnabled {
			m.input.Reset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.results.ScrollUp(1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.results.ScrollDown(1)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.results.PageUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.results.PageDown()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageUp):
		m.results.HalfPageUp()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageDown):
		m.results.HalfPageDown()
		return m, nil
	}

	if !m.output.InputEnabled {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the presenter's submit cycle on the current field value.
func (m *Model) submit() {
	instr := m.presenter.OnSubmit(m.input.Value())
	if instr.Ignored {
		return
	}
	m.status = instr.Status
	m.result = instr.Result
	m.hasResult = true
	m.results.SetContent(numberedLines(m.result.Items, m.results.Width))
	m.results.GotoTop()
}

// applyOutput switches the input controls to match a phase output.
func (m *Model) applyOutput(out Output) tea.Cmd {
	m.output = out
	m.status = out.Status
	if !out.InputEnabled {
		m.input.Blur()
		return nil
	}
	if out.Focus {
		return tea.Batch(m.input.Focus(), textinput.Blink)
	}
	return nil
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.input.Cursor.Style = styles.AccentText
	m.spinner.Style = styles.AccentText
	m.results.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.SurfaceAlt))
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

func (m *Model) resize() {
	m.input.Width = max(m.width-8, 1)
	m.help.Width = m.width
	m.results.Width = m.width
	m.results.Height = resultRows(m.height)
	if m.hasResult {
		m.results.SetContent(numberedLines(m.result.Items, m.results.Width))
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n")
	b.WriteString(m.results.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("kotoba", styles.Logo)}
	if m.source != "" {
		parts = append(parts, bg.Render(truncate(m.source, m.width/2), styles.MutedText))
	}
	if !m.output.LoadedAt.IsZero() {
		parts = append(parts, bg.Render("loaded "+m.output.LoadedAt.Format("15:04:05"), styles.FaintText))
	}
	parts = append(parts, bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) renderInput() string {
	styles := m.theme.Styles()
	box := styles.Input
	if !m.output.InputEnabled {
		box = styles.InputDisabled
	}
	return box.Width(max(m.width-2, 1)).Render(m.input.View())
}

func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	text := styles.StatusStyle(m.status.Variant).Render(m.status.Text)
	if m.output.Phase == state.PhaseLoading {
		return " " + m.spinner.View() + " " + text
	}
	return " " + text
}

func (m Model) renderSummary() string {
	if !m.hasResult {
		return ""
	}
	styles := m.theme.Styles()
	count := styles.MutedText.Bold(true)
	if m.result.Total > 0 {
		count = styles.SuccessText
	}
	return " " + count.Render("Hits: "+m.result.Count) +
		"  " + styles.MutedText.Render(m.result.Note)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.View(m.keys))
}

// Messages

type wordsLoadedMsg struct {
	words []string
}

type loadFailedMsg struct {
	err error
}

// Commands

func loadCmd(ctx context.Context, loader WordLoader) tea.Cmd {
	return func() tea.Msg {
		if loader == nil {
			return loadFailedMsg{err: errors.New("no word list loader configured")}
		}
		words, err := loader.Load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return wordsLoadedMsg{words: words}
	}
}

// Run starts the Bubble Tea program. It returns nil when ctx is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
