package conversation

import "github.com/jirehhuang/pipecat-assistant/internal/ui/styles"

var (
	headerStyle     = styles.T().S().Title
	botPrefixStyle  = styles.T().S().Speaking
	userPrefixStyle = styles.T().S().Muted
)
