package botaudio

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jirehhuang/pipecat-assistant/internal/ui/styles"
)

var (
	titleStyle = styles.T().S().Title

	muteEnabledStyle  = lipgloss.NewStyle().Foreground(styles.T().Primary)
	muteDisabledStyle = styles.T().S().Subtle

	noAudioIconStyle = styles.T().S().Muted
	noAudioTextStyle = styles.T().S().Muted
)
