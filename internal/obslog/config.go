package obslog

import (
	"os"
	"strings"
)

func initConfig() {
	switch strings.ToLower(os.Getenv("REACTIVE_LOG_LEVEL")) {
	case "error":
		currentLevel = LevelError
	case "warn":
		currentLevel = LevelWarn
	case "info":
		currentLevel = LevelInfo
	case "debug":
		currentLevel = LevelDebug
	case "trace":
		currentLevel = LevelTrace
	default:
		currentLevel = LevelSilent
	}

	if catStr := os.Getenv("REACTIVE_LOG_CATEGORIES"); catStr != "" {
		for _, cat := range strings.Split(catStr, ",") {
			cat = strings.TrimSpace(strings.ToUpper(cat))
			if cat != "" {
				categories[cat] = true
			}
		}
	}
}
