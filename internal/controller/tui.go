package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mouse-blink/peek/internal/domain"
	m "github.com/mouse-blink/peek/internal/model"
)

// snapshotMsg delivers a controller snapshot into the tea update loop.
// All state changes become visible only through this single path.
type snapshotMsg struct {
	snapshot domain.Snapshot
}

// pulseMsg advances the highlight blink phase.
type pulseMsg struct{}

// Panel is the interactive inspector shell. It owns a Bubble Tea program
// around panelModel and bridges controller snapshots into it.
type Panel struct {
	ctrl     *domain.Controller
	settings domain.SettingsStore
	updates  chan domain.Snapshot
	preview  func(panelPresented bool) string
	onClose  func()
}

// PanelOption configures the interactive panel.
type PanelOption func(*Panel)

// WithPreview adds a host-rendered preview block above the property list,
// letting the demo show broadcaster decorations next to the list.
func WithPreview(render func(panelPresented bool) string) PanelOption {
	return func(p *Panel) {
		p.preview = render
	}
}

// WithOnClose registers a hook invoked when the user dismisses the panel,
// before the program exits. Broadcasters react to dismissal through it.
func WithOnClose(fn func()) PanelOption {
	return func(p *Panel) {
		p.onClose = fn
	}
}

// NewPanel creates the interactive shell for a controller.
func NewPanel(ctrl *domain.Controller, settings domain.SettingsStore, options ...PanelOption) *Panel {
	p := &Panel{
		ctrl:     ctrl,
		settings: settings,
		updates:  make(chan domain.Snapshot, 8),
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Push hands a published snapshot to the panel. Safe to call from the
// controller's debounce timer or the host's evaluation loop; the snapshot
// becomes visible only when the tea loop drains it. A full channel drops
// the oldest pending snapshot, newer state supersedes older.
func (p *Panel) Push(snapshot domain.Snapshot) {
	for {
		select {
		case p.updates <- snapshot:
			return
		default:
			select {
			case <-p.updates:
			default:
			}
		}
	}
}

// Run starts the interactive panel and blocks until the user closes it.
func (p *Panel) Run(ctx context.Context) error {
	model := newPanelModel(p)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("inspector panel failed: %w", err)
	}

	if p.onClose != nil {
		p.onClose()
	}

	return nil
}

// panelModel is the Bubble Tea model of the inspector panel.
type panelModel struct {
	panel    *Panel
	snapshot domain.Snapshot
	input    textinput.Model
	keys     KeyMap
	help     help.Model
	cursor   int
	offset   int
	width    int
	height   int
}

func newPanelModel(p *Panel) panelModel {
	input := textinput.New()
	input.Placeholder = "search value, type or location"
	input.Prompt = "/ "
	input.CharLimit = 120

	model := panelModel{
		panel:    p,
		snapshot: p.ctrl.Snapshot(),
		input:    input,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}

	return model
}

func (pm panelModel) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(pm.panel.updates), pulseTick())
}

// waitForSnapshot drains one snapshot from the bridge channel.
func waitForSnapshot(updates <-chan domain.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snapshot: <-updates}
	}
}

// pulseTick schedules the next redraw so broadcaster pulses in the
// preview stay animated. A fixed midpoint of the pulse bounds is enough
// for the panel itself.
func pulseTick() tea.Cmd {
	return tea.Tick(minPulse+(maxPulse-minPulse)/2, func(time.Time) tea.Msg {
		return pulseMsg{}
	})
}

func (pm panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height
		pm.help.Width = msg.Width

		return pm, nil

	case snapshotMsg:
		pm.snapshot = msg.snapshot
		pm.clampCursor()

		return pm, waitForSnapshot(pm.panel.updates)

	case pulseMsg:
		return pm, pulseTick()

	case tea.KeyMsg:
		return pm.handleKey(msg)
	}

	return pm, nil
}

func (pm panelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if pm.input.Focused() {
		return pm.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, pm.keys.Quit):
		return pm, tea.Quit

	case key.Matches(msg, pm.keys.Search):
		pm.input.Focus()
		return pm, textinput.Blink

	case key.Matches(msg, pm.keys.Up):
		pm.cursor--
		pm.clampCursor()
		return pm, nil

	case key.Matches(msg, pm.keys.Down):
		pm.cursor++
		pm.clampCursor()
		return pm, nil

	case key.Matches(msg, pm.keys.Toggle):
		if p := pm.selected(); p != nil {
			p.SetHighlighted(!p.Highlighted())
		}

		return pm, nil

	case key.Matches(msg, pm.keys.ToggleFilter):
		if p := pm.selected(); p != nil {
			pm.panel.ctrl.ToggleFilter(p.Value.Type)
		}

		return pm, nil

	case key.Matches(msg, pm.keys.ToggleAll):
		pm.panel.ctrl.ToggleAll()
		return pm, nil

	case key.Matches(msg, pm.keys.Behavior):
		if pm.panel.settings != nil {
			next := pm.panel.settings.HighlightBehavior().Next()
			// Best effort: a failed write still applies in memory.
			_ = pm.panel.settings.SetHighlightBehavior(next)
		}

		return pm, nil
	}

	return pm, nil
}

func (pm panelModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return pm, tea.Quit

	case key.Matches(msg, pm.keys.Blur):
		pm.input.Blur()
		return pm, nil

	case msg.Type == tea.KeyEnter:
		pm.input.Blur()
		return pm, nil
	}

	var cmd tea.Cmd
	pm.input, cmd = pm.input.Update(msg)

	pm.panel.ctrl.SetQuery(pm.input.Value())

	return pm, cmd
}

// selected returns the property under the cursor.
func (pm *panelModel) selected() *m.Property {
	if pm.cursor < 0 || pm.cursor >= len(pm.snapshot.Properties) {
		return nil
	}

	return pm.snapshot.Properties[pm.cursor]
}

func (pm *panelModel) clampCursor() {
	last := len(pm.snapshot.Properties) - 1
	if pm.cursor > last {
		pm.cursor = last
	}

	if pm.cursor < 0 {
		pm.cursor = 0
	}

	pm.clampOffset()
}

// rowsPerPage reserves space for the chrome around the list.
func (pm *panelModel) rowsPerPage() int {
	if pm.height == 0 {
		return 10
	}

	reserved := 8
	if pm.panel.preview != nil {
		reserved += 5
	}

	available := pm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (pm *panelModel) clampOffset() {
	perPage := pm.rowsPerPage()

	if pm.cursor < pm.offset {
		pm.offset = pm.cursor
	}

	if pm.cursor >= pm.offset+perPage {
		pm.offset = pm.cursor - perPage + 1
	}

	if pm.offset < 0 {
		pm.offset = 0
	}
}

func (pm panelModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("peek · property inspector"))
	b.WriteString("\n")

	if pm.panel.preview != nil {
		b.WriteString(previewTitleStyle.Render("preview"))
		b.WriteString("\n")
		b.WriteString(pm.panel.preview(true))
		b.WriteString("\n")
	}

	b.WriteString(pm.input.View())
	b.WriteString("\n")

	pm.renderCounts(&b)
	pm.renderFilters(&b)
	pm.renderRows(&b)

	b.WriteString("\n")
	b.WriteString(pm.help.View(pm.keys))

	return b.String()
}

func (pm panelModel) renderCounts(b *strings.Builder) {
	shown := len(pm.snapshot.Properties)
	total := pm.snapshot.Total

	b.WriteString(countStyle.Render(fmt.Sprintf("%d of %d properties", shown, total)))
	b.WriteString("\n")
}

func (pm panelModel) renderFilters(b *strings.Builder) {
	if len(pm.snapshot.Filters) == 0 {
		return
	}

	parts := make([]string, 0, len(pm.snapshot.Filters))
	for _, filter := range pm.snapshot.Filters {
		name := filter.Type.Name()
		if filter.On {
			parts = append(parts, filterOnStyle.Render(name))
			continue
		}

		parts = append(parts, filterOffStyle.Render(name))
	}

	b.WriteString(mutedStyle.Render("filters: "))
	b.WriteString(strings.Join(parts, mutedStyle.Render(" · ")))
	b.WriteString("\n")
}

func (pm panelModel) renderRows(b *strings.Builder) {
	properties := pm.snapshot.Properties
	if len(properties) == 0 {
		b.WriteString(emptyStyle.Render(pm.snapshot.EmptyMessage()))
		b.WriteString("\n")

		return
	}

	perPage := pm.rowsPerPage()

	end := pm.offset + perPage
	if end > len(properties) {
		end = len(properties)
	}

	for i := pm.offset; i < end; i++ {
		pm.renderRow(b, i, properties[i])
	}

	if len(properties) > perPage {
		b.WriteString(countStyle.Render(fmt.Sprintf("  %d-%d of %d", pm.offset+1, end, len(properties))))
		b.WriteString("\n")
	}
}

func (pm panelModel) renderRow(b *strings.Builder, index int, p *m.Property) {
	marker := "  "
	if index == pm.cursor {
		marker = cursorStyle.Render("> ")
	}

	star := "  "
	if p.Highlighted() {
		star = highlightOnStyle.Render("★ ")
	}

	b.WriteString(marker)
	b.WriteString(star)
	b.WriteString(pm.icon(p))
	b.WriteString(" ")
	b.WriteString(typeStyle.Render(pm.label(p)))
	b.WriteString("  ")
	b.WriteString(textStyle.Render(pm.detail(p)))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(p.Location.String()))
	b.WriteString("\n")
}

func (pm panelModel) icon(p *m.Property) string {
	if builder, ok := pm.snapshot.Icons.Lookup(p.Value.Type); ok {
		return builder(p)
	}

	return "•"
}

func (pm panelModel) label(p *m.Property) string {
	if builder, ok := pm.snapshot.Labels.Lookup(p.Value.Type); ok {
		return builder(p)
	}

	return p.Value.Type.Name()
}

func (pm panelModel) detail(p *m.Property) string {
	if builder, ok := pm.snapshot.Details.Lookup(p.Value.Type); ok {
		return builder(p)
	}

	return p.Value.Text
}
