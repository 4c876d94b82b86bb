package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeSystem LogType = "SYS"
	TypeDB     LogType = "DB"
	TypeHTTP   LogType = "HTTP"
	TypeAuth   LogType = "AUTH"
	TypeError  LogType = "ERR"
)

// CustomHandler renders one colored line per record:
// [app] [time] [LEVEL] [TYPE] message key=value...
type CustomHandler struct {
	app   string
	level slog.Leveler
	out   io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr
	group string
}

func NewHandler(app string, level slog.Leveler) *CustomHandler {
	return NewHandlerWithWriter(os.Stdout, app, level)
}

func NewHandlerWithWriter(w io.Writer, app string, level slog.Leveler) *CustomHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &CustomHandler{
		app:   app,
		level: level,
		out:   w,
		mu:    &sync.Mutex{},
	}
}

// New picks the handler for the configured format: "json" or the colored text default.
func New(app, format string, level slog.Level, addSource bool) slog.Handler {
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: addSource})
	}
	return NewHandler(app, level)
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), h.qualify(attrs)...)
	return &next
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	next := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	next.group = name
	return &next
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	recAttrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		recAttrs = append(recAttrs, a)
		return true
	})
	attrs = append(attrs, h.qualify(recAttrs)...)

	levelColor, levelText := levelStyle(r.Level)
	message := r.Message
	if r.Level >= slog.LevelError {
		if details := attrValue(attrs, "error"); details != "" {
			message = fmt.Sprintf("%s: %s", message, details)
		}
	}

	var b strings.Builder
	for _, a := range attrs {
		if a.Key == "type" || a.Key == "error" {
			continue
		}
		fmt.Fprintf(&b, " %s%s=%v", colorCyan, a.Key, a.Value)
	}

	timestamp := r.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[%s] [%s] [%s%s%s] [%s] %s%s%s\n",
		colorWhite,
		h.app,
		timestamp.Format("15:04:05"),
		levelColor,
		levelText,
		colorWhite,
		logType(attrs, r.Level),
		message,
		b.String(),
		colorReset,
	)
	return err
}

func (h *CustomHandler) qualify(attrs []slog.Attr) []slog.Attr {
	if h.group == "" {
		return attrs
	}
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: h.group + "." + a.Key, Value: a.Value}
	}
	return out
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level >= slog.LevelError:
		return colorRed, "ERROR"
	case level >= slog.LevelWarn:
		return colorYellow, "WARN"
	case level >= slog.LevelInfo:
		return colorGreen, "INFO"
	default:
		return colorPurple, "DEBUG"
	}
}

func logType(attrs []slog.Attr, level slog.Level) LogType {
	switch attrValue(attrs, "type") {
	case "db":
		return TypeDB
	case "http":
		return TypeHTTP
	case "auth":
		return TypeAuth
	case "error":
		return TypeError
	}
	if level >= slog.LevelError {
		return TypeError
	}
	return TypeSystem
}

func attrValue(attrs []slog.Attr, key string) string {
	for i := len(attrs) - 1; i >= 0; i-- {
		if attrs[i].Key == key {
			return attrs[i].Value.String()
		}
	}
	return ""
}
