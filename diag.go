package mui

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// logLevel controls the level of engine logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// logger is the engine logger. Replace it with SetLogger.
var logger = newDefaultLogger()

func newDefaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// LogLevel exposes the level variable so custom handlers can share it.
func LogLevel() *slog.LevelVar {
	return logLevel
}

// SetLogger replaces the engine logger. Passing nil restores the default
// stderr text handler.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	logger = l
}

// Errors returned by frame lifecycle calls.
var (
	ErrNotInFrame     = errors.New("mui: no frame in progress")
	ErrAlreadyInFrame = errors.New("mui: frame already in progress")
)

// Diagnostic is a set of soft-failure flags raised during a frame.
// None of these abort the frame; they are cleared by BeginFrame and can be
// inspected after EndFrame.
type Diagnostic uint32

const (
	// DiagCommandOverflow: the command buffer was full and commands were dropped.
	DiagCommandOverflow Diagnostic = 1 << iota
	// DiagStackOverflow: a push on a fixed-depth stack was dropped.
	DiagStackOverflow
	// DiagStackUnderflow: a pop on an empty stack was ignored.
	DiagStackUnderflow
	// DiagUnbalancedContainer: Begin*/End* calls did not pair up.
	DiagUnbalancedContainer
	// DiagLayoutOutsideContainer: a layout call was made with no active container.
	DiagLayoutOutsideContainer
	// DiagFrameState: BeginFrame/EndFrame were called out of order.
	DiagFrameState
)

var diagNames = []struct {
	flag Diagnostic
	name string
}{
	{DiagCommandOverflow, "command-overflow"},
	{DiagStackOverflow, "stack-overflow"},
	{DiagStackUnderflow, "stack-underflow"},
	{DiagUnbalancedContainer, "unbalanced-container"},
	{DiagLayoutOutsideContainer, "layout-outside-container"},
	{DiagFrameState, "frame-state"},
}

// Has reports whether all bits of flag are set.
func (d Diagnostic) Has(flag Diagnostic) bool {
	return d&flag == flag
}

func (d Diagnostic) String() string {
	if d == 0 {
		return "none"
	}
	var parts []string
	for _, n := range diagNames {
		if d.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// report raises a diagnostic. The first occurrence of a flag in a frame is
// logged at warn level, repeats only at debug level.
func (ctx *Context) report(flag Diagnostic, msg string, args ...any) {
	if ctx.diag.Has(flag) {
		logger.Debug(msg, args...)
		return
	}
	ctx.diag |= flag
	logger.Warn(msg, append(args, "diag", flag.String(), "frame", ctx.frame)...)
}
