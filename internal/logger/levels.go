package logger

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// levelOff disables all output. logrus has no such level, so it is tracked next to the logrus level.
const levelOff = "OFF"

// parseLevel converts a level name to the logrus level. off reports true when logging is disabled.
func parseLevel(level string) (lvl logrus.Level, off bool, err error) {
	upper := strings.ToUpper(strings.TrimSpace(level))
	if upper == levelOff {
		return logrus.PanicLevel, true, nil
	}
	lvl, err = logrus.ParseLevel(upper)
	if err != nil {
		return logrus.InfoLevel, false, fmt.Errorf("unknown log level: %s", level)
	}
	return lvl, false, nil
}

func levelToString(level logrus.Level, off bool) string {
	if off {
		return levelOff
	}
	return strings.ToUpper(level.String())
}
