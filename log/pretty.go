package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the pretty handler.
var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	msgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	strStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	numStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	boolStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	traceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func levelStyle(level slog.Level) lipgloss.Style {
	switch {
	case level < slog.LevelDebug:
		return traceStyle
	case level < slog.LevelInfo:
		return debugStyle
	case level < slog.LevelWarn:
		return infoStyle
	case level < slog.LevelError:
		return warnStyle
	default:
		return errStyle
	}
}

// prettyHandler is a colorized text slog.Handler for interactive use.
type prettyHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		buf.WriteString(keyStyle.Render(r.Time.Format("15:04:05")))
		buf.WriteByte(' ')
	}

	buf.WriteString(
		levelStyle(r.Level).Render(Level(r.Level).String()))
	buf.WriteByte(' ')
	buf.WriteString(msgStyle.Render(r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyHandler{
		opts:  h.opts,
		mu:    h.mu,
		w:     h.w,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *prettyHandler) WithGroup(string) slog.Handler { return h }

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	buf.WriteByte(' ')
	buf.WriteString(keyStyle.Render(a.Key + "="))
	h.writeValue(buf, a.Value.Resolve())
}

func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(strStyle.Render(strconv.Quote(v.String())))
	case slog.KindInt64:
		buf.WriteString(numStyle.Render(strconv.FormatInt(v.Int64(), 10)))
	case slog.KindUint64:
		buf.WriteString(numStyle.Render(strconv.FormatUint(v.Uint64(), 10)))
	case slog.KindFloat64:
		buf.WriteString(numStyle.Render(
			strconv.FormatFloat(v.Float64(), 'g', -1, 64)))
	case slog.KindBool:
		buf.WriteString(boolStyle.Render(strconv.FormatBool(v.Bool())))
	case slog.KindGroup:
		for _, a := range v.Group() {
			h.writeAttr(buf, a)
		}
	default:
		buf.WriteString(msgStyle.Render(fmt.Sprint(v.Any())))
	}
}
