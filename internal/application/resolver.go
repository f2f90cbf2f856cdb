package application

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"cycletext/internal/content"
	"cycletext/internal/ports/input"
	"cycletext/internal/ports/output"
)

var _ input.TextResolver = (*ResolverService)(nil)

// ResolverService resolves content keys against the registry. It never
// mutates the registry or the state provider: given (key, language,
// args, snapshot) the result is fully determined.
type ResolverService struct {
	registry *content.Registry
	state    output.StateProvider
	format   output.Formatter
	legacy   output.LegacyCatalog
	log      *zap.Logger

	// strict makes developer errors (missing keys, arity mismatches)
	// surface as returned errors instead of degraded output. Wired on
	// outside production.
	strict bool
}

type ResolverOption func(*ResolverService)

// WithLegacy adds a fallback catalog consulted on registry miss.
func WithLegacy(c output.LegacyCatalog) ResolverOption {
	return func(s *ResolverService) { s.legacy = c }
}

// WithStrict toggles hard failures for developer errors.
func WithStrict(strict bool) ResolverOption {
	return func(s *ResolverService) { s.strict = strict }
}

// WithLogger sets the diagnostics logger.
func WithLogger(log *zap.Logger) ResolverOption {
	return func(s *ResolverService) { s.log = log }
}

func NewResolverService(registry *content.Registry, state output.StateProvider, format output.Formatter, opts ...ResolverOption) *ResolverService {
	s := &ResolverService{
		registry: registry,
		state:    state,
		format:   format,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve looks up (key, lang), evaluates the entry and returns its
// value.
//
// A key absent from both the registry and the legacy catalog emits
// exactly one structured diagnostic and returns content.Placeholder;
// the caller's UI keeps rendering. Static entries return their value
// unchanged. Template entries are invoked with the caller's args and
// one state snapshot taken here; a formatter failure inside the
// template propagates, wrapped with the key.
func (s *ResolverService) Resolve(lang language.Tag, key content.Key, args ...content.Value) (content.Value, error) {
	entry, ok := s.registry.Lookup(key, lang)
	if !ok {
		if s.legacy != nil {
			if msg, ok := s.legacy.Lookup(lang, string(key)); ok {
				return msg, nil
			}
		}
		s.log.Warn("missing translation",
			zap.String("key", string(key)),
			zap.String("language", lang.String()))
		if s.strict {
			return content.Placeholder, &content.MissingTranslationError{Key: key, Lang: lang}
		}
		return content.Placeholder, nil
	}

	if !entry.IsTemplate() {
		if len(args) > 0 {
			if s.strict {
				return content.Placeholder, &content.ArityError{Key: key, Want: 0, Got: len(args)}
			}
			s.log.Warn("arguments passed to static entry",
				zap.String("key", string(key)),
				zap.Int("got", len(args)))
		}
		return entry.StaticValue(), nil
	}

	if want := entry.Arity(); len(args) != want {
		if s.strict {
			return content.Placeholder, &content.ArityError{Key: key, Want: want, Got: len(args)}
		}
		s.log.Warn("template arity mismatch",
			zap.String("key", string(key)),
			zap.Int("want", want),
			zap.Int("got", len(args)))
		args = normalizeArgs(args, want)
	}

	env := content.Env{State: s.state.Snapshot(), Format: s.format}
	value, err := entry.Invoke(args, env)
	if err != nil {
		return content.Placeholder, fmt.Errorf("resolve %s: %w", key, err)
	}
	return value, nil
}

// Text resolves keys whose shape is a plain string. Anything else
// degrades to the placeholder so delivery code stays panic-free.
func (s *ResolverService) Text(lang language.Tag, key content.Key, args ...content.Value) string {
	value, err := s.Resolve(lang, key, args...)
	if err != nil {
		s.log.Error("resolve failed",
			zap.String("key", string(key)),
			zap.Error(err))
		return content.Placeholder
	}
	text, ok := value.(string)
	if !ok {
		s.log.Warn("non-string value requested as text",
			zap.String("key", string(key)),
			zap.String("shape", fmt.Sprintf("%T", value)))
		return content.Placeholder
	}
	return text
}

// normalizeArgs pads or truncates to the declared arity so a tolerant
// (non-strict) call never makes a template index out of range.
func normalizeArgs(args []content.Value, want int) []content.Value {
	if len(args) >= want {
		return args[:want]
	}
	padded := make([]content.Value, want)
	copy(padded, args)
	return padded
}
