// Package report prints the timestamped status lines quickstack narrates its
// actions with:
//
//	[14:02:11.408] [INFO] Building application images...
//	[14:02:37.120] [ OK ] Successfully built application images!
package report

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// TimestampLayout is the millisecond-precision clock prefix of every line
const TimestampLayout = "15:04:05.000"

// Level is the severity of a status line
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelSuccess
	LevelFail
)

// Tag returns the four-character bracketed label for the level
func (l Level) Tag() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelSuccess:
		return " OK "
	case LevelFail:
		return "FAIL"
	default:
		return "????"
	}
}

// Reporter writes status lines to a single writer
type Reporter struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time

	grey   *color.Color
	levels map[Level]*color.Color
}

// New returns a Reporter writing to out. Colors are emitted only when useColor is set.
func New(out io.Writer, useColor bool) *Reporter {
	r := &Reporter{
		out:  out,
		now:  time.Now,
		grey: color.New(color.FgHiBlack),
		levels: map[Level]*color.Color{
			LevelInfo:    color.New(color.FgYellow, color.Bold),
			LevelWarn:    color.New(color.FgCyan, color.Bold),
			LevelSuccess: color.New(color.FgGreen, color.Bold),
			LevelFail:    color.New(color.FgRed, color.Bold),
		},
	}

	all := []*color.Color{r.grey}
	for _, c := range r.levels {
		all = append(all, c)
	}
	for _, c := range all {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// WithClock replaces the time source, for deterministic output in tests
func (r *Reporter) WithClock(now func() time.Time) *Reporter {
	r.now = now
	return r
}

// Info prints an informational line
func (r *Reporter) Info(format string, args ...any) {
	r.print(LevelInfo, format, args...)
}

// Warn prints a warning line
func (r *Reporter) Warn(format string, args ...any) {
	r.print(LevelWarn, format, args...)
}

// Success prints a success line
func (r *Reporter) Success(format string, args ...any) {
	r.print(LevelSuccess, format, args...)
}

// Fail prints a failure line. It does not exit; the caller owns the exit status.
func (r *Reporter) Fail(format string, args ...any) {
	r.print(LevelFail, format, args...)
}

func (r *Reporter) print(level Level, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stamp := r.grey.Sprintf("[%s]", r.now().Format(TimestampLayout))
	tag := r.levels[level].Sprint(level.Tag())
	fmt.Fprintf(r.out, "%s [%s] %s\n", stamp, tag, msg)
}
