package botaudio

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jirehhuang/pipecat-assistant/internal/icons"
	"github.com/jirehhuang/pipecat-assistant/internal/track"
	"github.com/jirehhuang/pipecat-assistant/internal/ui"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/layout"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/render"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/styles"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/visualizer"
)

// View renders the panel.
func (m Model) View() string {
	if m.width < ui.MinPanelWidth || m.height < ui.BorderHeight+1 {
		return ""
	}

	innerW := m.innerWidth()

	var sections []string
	switch {
	case m.mode == ModeExpanded:
		sections = append(sections, m.renderHeader(innerW), render.Separator(innerW))
	case m.HasMuteControl():
		// Collapsed keeps the mute control reachable in an inline top strip
		// with a divider below it.
		sections = append(sections, m.renderMuteStrip(innerW), render.Separator(innerW))
	}
	sections = append(sections, m.renderContent(innerW, m.contentHeight()))

	return styles.PanelStyle(false).
		Width(innerW).
		Render(strings.Join(sections, "\n"))
}

// renderHeader renders the expanded-mode header: title on the left and, when
// a toggle callback is installed, the mute button at the trailing edge.
func (m Model) renderHeader(innerW int) string {
	title := titleStyle.Render(Title)
	if !m.HasMuteControl() {
		return render.Row(title, "", innerW)
	}
	return render.Row(title, m.renderMuteButton(), innerW)
}

// renderMuteStrip renders the collapsed-mode control strip: the compact
// icon-only mute button at the trailing edge.
func (m Model) renderMuteStrip(innerW int) string {
	return render.Row("", m.renderMuteButton(), innerW)
}

func (m Model) renderMuteButton() string {
	icon := icons.Volume()
	if m.muted {
		icon = icons.VolumeMute()
	}
	if !m.MuteEnabled() {
		return muteDisabledStyle.Render(icon)
	}
	return muteEnabledStyle.Render(icon)
}

func (m Model) renderContent(w, h int) string {
	if !m.HasTrack() {
		return m.renderNoAudio(w, h)
	}
	return m.renderBars(w, h)
}

// renderNoAudio renders the placeholder for the trackless steady state:
// a muted-mic icon, with the "No audio" label only in expanded mode.
func (m Model) renderNoAudio(w, h int) string {
	content := noAudioIconStyle.Render(icons.MicMuted())
	if m.mode == ModeExpanded {
		content += "\n" + noAudioTextStyle.Render("No audio")
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}

// renderBars renders the live visualization using the current geometry
// snapshot, quantized onto the cell grid. Bars sit on the bottom edge of the
// content area, centered horizontally.
func (m Model) renderBars(w, h int) string {
	geo := m.cell.geo
	t := styles.T()

	cfg := visualizer.Config{
		Bars:      layout.BarCount,
		BarWidth:  layout.Cells(geo.BarWidth, m.cellW),
		BarGap:    layout.Cells(geo.BarGap, m.cellW),
		MaxHeight: min(h, layout.Cells(geo.MaxBarHeight, m.cellH)),
		Colors:    styles.BarColors(layout.BarCount, t.VisLow, t.VisHigh),
	}

	// Shrink to fit narrow panels; the pixel clamps don't know about cell
	// quantization.
	for visualizer.Width(cfg) > w && cfg.BarWidth > 1 {
		cfg.BarWidth--
		cfg.BarGap = cfg.BarWidth
	}
	if visualizer.Width(cfg) > w {
		cfg.BarGap = 0
	}

	var levels []float64
	if tr := m.reg.Lookup(track.KindAudio, track.RoleBot); tr != nil {
		levels = tr.Bands(layout.BarCount)
	}

	bars := visualizer.Render(cfg, levels)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Bottom, bars)
}

func (m Model) innerWidth() int {
	return max(m.width-ui.BorderWidth, 0)
}

// contentHeight returns the rows available to the visualization content.
// Expanded mode pays for header and separator; collapsed mode with a mute
// control pays for the strip but never drops below the height floor;
// collapsed mode without one derives its height from a 16:9 aspect of the
// panel width.
func (m Model) contentHeight() int {
	switch {
	case m.mode == ModeExpanded:
		return max(m.height-ui.PanelOverhead, 1)
	case m.HasMuteControl():
		return max(m.height-ui.PanelOverhead, m.collapsedFloorRows())
	default:
		avail := max(m.height-ui.BorderHeight, 1)
		return min(avail, m.aspectRows())
	}
}

func (m Model) collapsedFloorRows() int {
	return layout.Cells(collapsedMinHeightPx, m.cellH)
}

func (m Model) aspectRows() int {
	widthPx := float64(m.innerWidth() * m.cellW)
	return layout.Cells(widthPx/aspectRatio, m.cellH)
}
