package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/breedview/internal/breed"
	"github.com/yildizm/breedview/internal/config"
	"github.com/yildizm/breedview/internal/debounce"
	"github.com/yildizm/breedview/internal/emoji"
	"github.com/yildizm/breedview/internal/logger"
	"github.com/yildizm/breedview/internal/monitor"
	"github.com/yildizm/breedview/internal/search"
)

// noticeDuration is how long a status notice stays on screen
const noticeDuration = 3 * time.Second

// Dispatcher is the debounced hand-off for typed text
type Dispatcher interface {
	Call(query string)
	Pending() bool
}

// Options configures the search app
type Options struct {
	Lookup       breed.Lookup
	Limit        int
	Delay        time.Duration
	Timeout      time.Duration
	Placeholder  string
	Theme        string
	Color        bool
	ConfigPath   string
	CustomConfig string // --config value; empty means the layered search
	AutoReload   bool
	Logger       *logger.Logger
	Stats        *monitor.LookupStats
}

// Model is the interactive breed search screen
type Model struct {
	input    textinput.Model
	session  *search.Session
	lookup   breed.Lookup
	dispatch Dispatcher
	limit    int
	timeout  time.Duration
	color    bool
	styles   *Styles
	log      *logger.Logger
	stats    *monitor.LookupStats

	configPath string

	notice     string
	noticeGate debounce.Gate

	// refreshed is the query ctrl+r looked up; cleared by the next edit
	refreshed string

	width    int
	height   int
	quitting bool
}

// NewModel creates the search model. A dispatcher must be attached with
// SetDispatcher before the program starts.
func NewModel(opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	if ti.Placeholder == "" {
		ti.Placeholder = config.DefaultPlaceholder
	}
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 60

	theme, _ := ThemeByName(opts.Theme)

	limit := opts.Limit
	if limit <= 0 {
		limit = search.MaxImages
	}

	log := opts.Logger
	if log == nil {
		log = logger.New("ui", nil)
	}

	stats := opts.Stats
	if stats == nil {
		stats = monitor.NewLookupStats()
	}

	return &Model{
		input:   ti,
		session: search.NewSession(),
		lookup:  opts.Lookup,
		limit:   limit,
		timeout: opts.Timeout,
		color:   opts.Color,
		styles:  NewStyles(theme, opts.Color),
		log:     log,
		stats:   stats,

		configPath: opts.ConfigPath,
	}
}

// SetDispatcher attaches the debounced hand-off for typed text
func (m *Model) SetDispatcher(d Dispatcher) {
	m.dispatch = d
}

// Session exposes the query and display state
func (m *Model) Session() *search.Session {
	return m.session
}

// Stats returns the lookup counters for this session
func (m *Model) Stats() monitor.Snapshot {
	return m.stats.Snapshot()
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+u":
			m.input.SetValue("")
			m.session.SetQuery("")
			m.session.Reset()
			m.refreshed = ""
			// Supersede a countdown left over from earlier typing.
			if m.dispatch != nil {
				m.dispatch.Call("")
			}
			return m, nil

		case "ctrl+r":
			query := m.input.Value()
			m.refreshed = query
			return m, m.startLookup(query)
		}

	case querySettledMsg:
		m.stats.RecordSettle()
		if m.refreshed != "" && msg.query == m.refreshed {
			m.refreshed = ""
			return m, nil
		}
		return m, m.startLookup(msg.query)

	case lookupDoneMsg:
		if !m.session.Apply(msg.seq, msg.display) {
			m.stats.RecordStale()
			m.log.DebugWithFields("dropped stale lookup", []logger.Field{
				logger.F("seq", msg.seq),
				logger.F("query", msg.query),
			})
			return m, nil
		}
		m.stats.RecordLookup(msg.elapsed, msg.display.Kind() == search.KindFailed)
		m.log.DebugWithFields("lookup applied", []logger.Field{
			logger.F("query", msg.query),
			logger.F("kind", msg.display.Kind().String()),
			logger.Count(len(msg.display.Locators())),
			logger.Duration(msg.elapsed),
		})
		return m, nil

	case configReloadedMsg:
		return m, m.applyConfig(msg.config, msg.err)

	case debounce.TickMsg[string]:
		if m.noticeGate.Current(msg.ID) {
			m.notice = ""
		}
		return m, nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != prev {
		m.session.SetQuery(value)
		m.refreshed = ""
		m.stats.RecordKeystroke()
		if m.dispatch != nil {
			m.dispatch.Call(value)
		}
	}

	return m, cmd
}

// startLookup begins a lookup for query. Blank queries reset synchronously
// and never reach the lookup service.
func (m *Model) startLookup(query string) tea.Cmd {
	seq := m.session.Begin()
	if strings.TrimSpace(query) == "" {
		m.session.Apply(seq, search.Idle())
		return nil
	}

	m.log.DebugWithFields("lookup started", []logger.Field{
		logger.F("seq", seq),
		logger.F("query", query),
	})
	return CreateLookupCommand(m.lookup, seq, query, m.limit, m.timeout)
}

func (m *Model) applyConfig(cfg *config.Config, err error) tea.Cmd {
	if err != nil {
		m.log.WarnWithFields("config reload failed", []logger.Field{
			logger.F("path", m.configPath),
			logger.Error(err),
		})
		return m.flash(fmt.Sprintf("%s config reload failed: %v", emoji.GetEmoji("error"), err))
	}

	theme, _ := ThemeByName(cfg.UI.Theme)
	m.styles = NewStyles(theme, m.color && !IsColorDisabled(cfg.UI.ColorMode))
	if cfg.UI.Placeholder != "" {
		m.input.Placeholder = cfg.UI.Placeholder
	}
	if cfg.Lookup.MaxImages > 0 {
		m.limit = cfg.Lookup.MaxImages
	}

	m.log.Info("config reloaded, theme=%s", theme.Name)
	return m.flash(fmt.Sprintf("%s config reloaded (theme: %s)", emoji.GetEmoji("reload"), theme.Name))
}

func (m *Model) flash(notice string) tea.Cmd {
	m.notice = notice
	return debounce.Tick(m.noticeGate.Next(), "", noticeDuration)
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(emoji.GetEmoji("dog") + " Dog breed photos"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(m.statusLine()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Panel.Render(m.renderResults()))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(m.styles.Info.Render(m.notice))
		b.WriteString("\n")
	}

	if summary := m.stats.Snapshot().Summary(); summary != "" {
		b.WriteString(m.styles.Muted.Render(summary))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Muted.Render("esc: quit | ctrl+u: clear | ctrl+r: search now"))

	return b.String()
}

func (m *Model) statusLine() string {
	switch {
	case m.dispatch != nil && m.dispatch.Pending():
		return emoji.GetEmoji("typing") + " typing..."
	case m.session.InFlight():
		return emoji.GetEmoji("loading") + " fetching..."
	default:
		return ""
	}
}

// renderResults draws exactly one of: image list, error line, placeholder
func (m *Model) renderResults() string {
	display := m.session.Display()

	switch display.Kind() {
	case search.KindResults:
		locators := display.Locators()
		if len(locators) == 0 {
			return m.styles.Muted.Render("No images listed for this breed")
		}
		lines := make([]string, 0, len(locators))
		for i, locator := range locators {
			lines = append(lines, fmt.Sprintf("%s %s %s",
				m.styles.Index.Render(fmt.Sprintf("%d.", i+1)),
				emoji.GetEmoji("image"),
				m.styles.Link.Render(locator)))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)

	case search.KindFailed:
		return m.styles.Error.Render(emoji.GetEmoji("error") + " " + display.Message())

	default:
		return m.styles.Muted.Render(fmt.Sprintf("%s Type a breed name to see up to %d photos", emoji.GetEmoji("search"), m.limit))
	}
}

// Run starts the interactive search until the user quits
func Run(opts Options) error {
	model := NewModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen())

	model.SetDispatcher(debounce.New(func(query string) {
		p.Send(querySettledMsg{query: query})
	}, opts.Delay))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.AutoReload && opts.ConfigPath != "" {
		err := config.Watch(ctx, opts.ConfigPath, opts.CustomConfig, func(cfg *config.Config, err error) {
			p.Send(configReloadedMsg{config: cfg, err: err})
		})
		if err != nil {
			model.log.Warn("config auto-reload disabled: %v", err)
		}
	}

	_, err := p.Run()
	model.log.InfoWithFields("search session ended", model.Stats().Fields())
	return err
}
