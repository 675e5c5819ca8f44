package spin

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/k1LoW/errors"
	"github.com/mattn/go-colorable"
)

var (
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

var _ slog.Handler = (*spinHandler)(nil)

// spinHandler renders export progress as a compact symbol stream: a
// spinner while assets are loading, one dot per encoded page, "+" for
// slides added by splitting and "!" for contained failures.
type spinHandler struct {
	handler slog.Handler
	spinner *spinner.Spinner
	stdout  io.Writer
	prefix  []byte
}

func New(h slog.Handler) (_ *spinHandler, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	stdout := colorable.NewColorableStdout()
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(stdout))
	if err := s.Color("yellow"); err != nil {
		return nil, err
	}
	s.Start()
	s.Disable()
	return &spinHandler{
		handler: h,
		spinner: s,
		stdout:  stdout,
	}, nil
}

func (h *spinHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *spinHandler) Handle(ctx context.Context, r slog.Record) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	if r.Message == "starting export" {
		if !h.spinner.Enabled() {
			h.spinner.Enable()
		}
		return nil
	}
	if h.spinner.Enabled() {
		h.spinner.Disable()
		_, _ = h.stdout.Write(h.prefix)
	}
	if r.Message == "encoded page" {
		return h.write([]byte(yellow(".")))
	}
	if r.Message == "split dense slide" {
		return h.write([]byte(yellow("+")))
	}
	if r.Message == "skipping slide by rule" {
		return h.write([]byte(gray("-")))
	}
	if strings.HasPrefix(r.Message, "failed to") ||
		r.Message == "using flat background" ||
		r.Message == "rendering slide without its image" {
		return h.write([]byte(red("!")))
	}
	if r.Message == "export completed" {
		_, _ = h.stdout.Write([]byte("\n"))
		return nil
	}
	return nil
}

func (h *spinHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &spinHandler{handler: h.handler.WithAttrs(attrs), spinner: h.spinner, stdout: h.stdout}
}

func (h *spinHandler) WithGroup(name string) slog.Handler {
	return &spinHandler{handler: h.handler.WithGroup(name), spinner: h.spinner, stdout: h.stdout}
}

func (h *spinHandler) write(s []byte) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	_, err = h.stdout.Write(s)
	if err != nil {
		return err
	}
	h.prefix = append(h.prefix, s...)
	return nil
}
