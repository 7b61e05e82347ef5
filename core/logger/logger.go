package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler used for output.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logger settings loadable from the environment with config.Load.
type Config struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"text"`
	Service string `env:"LOG_SERVICE"`
}

type options struct {
	level   slog.Level
	format  Format
	output  io.Writer
	attrs   []slog.Attr
	handler *slog.HandlerOptions
}

// Option configures a logger created by New.
type Option func(*options)

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter switches output to JSON.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.format = FormatJSON
	}
}

// WithTextFormatter switches output to logfmt-style text.
func WithTextFormatter() Option {
	return func(o *options) {
		o.format = FormatText
	}
}

// WithOutput sets the destination writer. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithHandlerOptions replaces the handler options. The level set by WithLevel
// is applied unless the given options carry their own Leveler.
func WithHandlerOptions(ho *slog.HandlerOptions) Option {
	return func(o *options) {
		o.handler = ho
	}
}

// WithDevelopment configures text output at debug level tagged with the service name.
func WithDevelopment(service string) Option {
	return func(o *options) {
		o.level = slog.LevelDebug
		o.format = FormatText
		o.attrs = append(o.attrs, slog.String("service", service), slog.String("env", "development"))
	}
}

// WithProduction configures JSON output at info level tagged with the service name.
func WithProduction(service string) Option {
	return func(o *options) {
		o.level = slog.LevelInfo
		o.format = FormatJSON
		o.attrs = append(o.attrs, slog.String("service", service), slog.String("env", "production"))
	}
}

// New builds a *slog.Logger. Defaults: text format, info level, stdout.
//
// Example:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "notifier")),
//	)
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatText,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	ho := &slog.HandlerOptions{Level: o.level}
	if o.handler != nil {
		cp := *o.handler
		if cp.Level == nil {
			cp.Level = o.level
		}
		ho = &cp
	}

	var h slog.Handler
	switch o.format {
	case FormatJSON:
		h = slog.NewJSONHandler(o.output, ho)
	default:
		h = slog.NewTextHandler(o.output, ho)
	}

	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}

	return slog.New(h)
}

// FromConfig builds a logger from cfg, writing to w (stdout when nil).
// Returns an error for unknown levels or formats.
func FromConfig(cfg Config, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("logger: invalid level %q: %w", cfg.Level, err)
	}

	opts := []Option{WithLevel(level), WithOutput(w)}

	switch Format(strings.ToLower(cfg.Format)) {
	case FormatJSON:
		opts = append(opts, WithJSONFormatter())
	case FormatText, "":
		opts = append(opts, WithTextFormatter())
	default:
		return nil, fmt.Errorf("logger: unknown format %q", cfg.Format)
	}

	if cfg.Service != "" {
		opts = append(opts, WithAttr(slog.String("service", cfg.Service)))
	}

	return New(opts...), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
