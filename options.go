package gridgo

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/hupe1980/gridgo/rowmeta"
	"github.com/hupe1980/gridgo/search"
)

type options[T any] struct {
	logger           *Logger
	metricsCollector MetricsCollector
	locale           language.Tag
	rowID            rowmeta.IDFunc[T]
	tokenizer        search.Tokenizer
	tokenized        bool
	scoring          bool
}

// Option configures View constructor behavior.
type Option[T any] func(*options[T])

// WithLogger configures structured logging for pipeline runs.
// Pass nil to disable logging.
func WithLogger[T any](logger *Logger) Option[T] {
	return func(o *options[T]) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel[T any](level slog.Level) Option[T] {
	return func(o *options[T]) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for pipeline
// stages. Pass nil to disable metrics collection.
func WithMetricsCollector[T any](mc MetricsCollector) Option[T] {
	return func(o *options[T]) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLocale selects the collation locale used when ranking column
// values for sorting. The default is the locale-neutral root collation.
func WithLocale[T any](tag language.Tag) Option[T] {
	return func(o *options[T]) {
		o.locale = tag
	}
}

// WithRowID configures the row-id derivation callback. Ids must be
// unique; an empty or duplicate result makes the row fall back to its
// dataset index as id, with a one-time warning.
func WithRowID[T any](fn rowmeta.IDFunc[T]) Option[T] {
	return func(o *options[T]) {
		o.rowID = fn
	}
}

// WithTokenizer replaces the table-wide tokenizer used both for query
// compilation and for per-field token caches.
func WithTokenizer[T any](tok search.Tokenizer) Option[T] {
	return func(o *options[T]) {
		if tok == nil {
			tok = search.DefaultTokenizer
		}
		o.tokenizer = tok
	}
}

// WithTokenizedSearch toggles tokenized search. When disabled, the
// query matches whole field values only. Enabled by default.
func WithTokenizedSearch[T any](enabled bool) Option[T] {
	return func(o *options[T]) {
		o.tokenized = enabled
	}
}

// WithScoring toggles relevance scoring. When disabled, search is a
// binary containment test and match order follows the active sorts
// alone. Enabled by default.
func WithScoring[T any](enabled bool) Option[T] {
	return func(o *options[T]) {
		o.scoring = enabled
	}
}

func applyOptions[T any](optFns []Option[T]) options[T] {
	o := options[T]{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		locale:           language.Und,
		tokenizer:        search.DefaultTokenizer,
		tokenized:        true,
		scoring:          true,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
