// Package botaudio renders the bot audio panel: a live bar visualization of
// the bot's speech when an audio track is present, and a no-audio placeholder
// otherwise. Display mode and mute state are owned by the caller; the panel
// reflects them and reports toggle intent through a callback.
package botaudio

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jirehhuang/pipecat-assistant/internal/track"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/layout"
)

// DisplayMode controls the panel appearance.
type DisplayMode int

const (
	ModeExpanded  DisplayMode = iota // Header with title and mute button
	ModeCollapsed                    // Compact view, header suppressed
)

// Title is the header title shown in expanded mode.
const Title = "Bot Audio"

// Mute control labels, switched on the caller-owned mute state.
const (
	LabelMute   = "Mute bot"
	LabelUnmute = "Unmute bot"
)

// collapsedMinHeightPx is the height floor for collapsed mode when a mute
// control is present. Without one, collapsed mode keeps a 16:9 aspect
// instead.
const collapsedMinHeightPx = 80

// aspectRatio constrains collapsed mode without a mute control.
const aspectRatio = 16.0 / 9.0

// geoCell is the single current-geometry cell the observer publishes into.
// It lives on the heap so model copies made by the runtime keep reading the
// same snapshot.
type geoCell struct {
	geo layout.Geometry
}

// Model is the bot audio panel. The zero value is not usable; construct with
// New.
type Model struct {
	reg *track.Registry

	mode         DisplayMode
	muted        bool
	onMuteToggle func() tea.Msg

	cell  *geoCell
	obs   *layout.Observer
	cellW int
	cellH int

	width  int
	height int
}

// New creates the panel reading track presence from reg. The layout observer
// is acquired here and released by Close.
func New(reg *track.Registry) Model {
	cell := &geoCell{geo: layout.Default()}
	cellW, cellH := layout.CellSize()
	return Model{
		reg:   reg,
		cell:  cell,
		obs:   layout.NewObserver(func(g layout.Geometry) { cell.geo = g }),
		cellW: cellW,
		cellH: cellH,
	}
}

// SetSize sets the panel dimensions in cells and re-derives bar geometry
// from the equivalent pixel size. The previous geometry snapshot is replaced
// wholesale.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.obs.Observe(layout.PixelSize(m.innerWidth(), m.contentHeight(), m.cellW, m.cellH))
}

// SetMode selects the expanded or collapsed display variant.
func (m *Model) SetMode(mode DisplayMode) {
	m.mode = mode
}

// Mode returns the current display variant.
func (m Model) Mode() DisplayMode {
	return m.mode
}

// SetMuted reflects the caller-owned mute state in the control icon. The
// panel never flips this itself.
func (m *Model) SetMuted(muted bool) {
	m.muted = muted
}

// SetMuteToggle installs the mute toggle callback. A nil callback removes
// the mute control entirely, in both display modes.
func (m *Model) SetMuteToggle(fn func() tea.Msg) {
	m.onMuteToggle = fn
}

// HasMuteControl reports whether a mute control renders at all.
func (m Model) HasMuteControl() bool {
	return m.onMuteToggle != nil
}

// MuteLabel returns the control's accessible label for the current mute
// state, independent of display mode.
func (m Model) MuteLabel() string {
	if m.muted {
		return LabelUnmute
	}
	return LabelMute
}

// HasTrack reports whether a live bot audio track is present. Absence is a
// valid steady state, rendered as the no-audio placeholder.
func (m Model) HasTrack() bool {
	return m.reg != nil && m.reg.Has(track.KindAudio, track.RoleBot)
}

// MuteEnabled reports whether the mute control is interactive. The control
// is disabled whenever no track is present, regardless of display mode.
func (m Model) MuteEnabled() bool {
	return m.HasMuteControl() && m.HasTrack()
}

// Geometry returns the current geometry snapshot.
func (m Model) Geometry() layout.Geometry {
	return m.cell.geo
}

// Update handles the mute key. All other state changes are driven externally
// through the setters.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "m" && m.MuteEnabled() {
		fn := m.onMuteToggle
		return m, func() tea.Msg { return fn() }
	}

	return m, nil
}

// Close releases the layout observation. Safe to call more than once; no
// geometry update is published afterwards.
func (m *Model) Close() {
	m.obs.Close()
}
