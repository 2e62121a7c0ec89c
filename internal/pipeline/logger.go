// =============================================================================
// Encore Royalty Core - Logging
// =============================================================================

package pipeline

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/EncoreMusictech/encore-live-sub008/internal/types"
)

// logLevel ordering for filtering.
var logLevels = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
}

// stdLogger writes timestamped, leveled lines to stdout. It satisfies
// types.Logger.
type stdLogger struct {
	minLevel int
}

// NewLogger creates a logger filtered at the given level (DEBUG, INFO,
// WARN, ERROR). Unknown levels default to INFO.
func NewLogger(level string) types.Logger {
	min, ok := logLevels[strings.ToUpper(level)]
	if !ok {
		min = logLevels["INFO"]
	}
	return &stdLogger{minLevel: min}
}

func (l *stdLogger) log(level string, msg string, args ...interface{}) {
	if logLevels[level] < l.minLevel {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(os.Stdout, "[%s] [%s] %s\n", timestamp, level, fmt.Sprintf(msg, args...))
}

func (l *stdLogger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args...) }
func (l *stdLogger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args...) }
func (l *stdLogger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args...) }
func (l *stdLogger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args...) }
