package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
	"github.com/slidesmith/slidesmith/internal/domain/ports"
)

// Logger provides leveled logging for the generator service.
type Logger struct {
	verbose bool
	level   entities.LogLevel
}

// NewLogger creates a generator logger.
func NewLogger(verbose bool, level entities.LogLevel) *Logger {
	if level == "" {
		level = entities.LogLevelInfo
	}
	return &Logger{verbose: verbose, level: level}
}

func (l *Logger) shouldLog(msgLevel entities.LogLevel) bool {
	levelMap := map[entities.LogLevel]int{
		entities.LogLevelDebug: 0,
		entities.LogLevelInfo:  1,
		entities.LogLevelWarn:  2,
		entities.LogLevelError: 3,
	}
	return levelMap[msgLevel] >= levelMap[l.level]
}

// Info logs informational messages when verbose output is enabled.
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelInfo) && l.verbose {
		log.Printf("[INFO] [generator] "+msg, args...)
	}
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelWarn) {
		log.Printf("[WARN] [generator] "+msg, args...)
	}
}

// Error logs error messages.
func (l *Logger) Error(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelError) {
		log.Printf("[ERROR] [generator] "+msg, args...)
	}
}

// GeneratorService orchestrates one render pass: parse and repair the raw
// deck text, resolve the theme, plan templates, and drive a renderer. The
// service is stateless per call; concurrent passes share only the read-only
// preset catalog behind the resolver.
type GeneratorService struct {
	parser     ports.DeckParser
	themes     ports.ThemeResolver
	dispatcher *LayoutDispatcher
	renderers  map[string]ports.DeckRenderer
	logger     *Logger
}

// NewGeneratorService wires the service with its collaborators.
func NewGeneratorService(parser ports.DeckParser, themes ports.ThemeResolver, logger *Logger, renderers ...ports.DeckRenderer) *GeneratorService {
	byFormat := make(map[string]ports.DeckRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	if logger == nil {
		logger = NewLogger(false, entities.LogLevelInfo)
	}
	return &GeneratorService{
		parser:     parser,
		themes:     themes,
		dispatcher: NewLayoutDispatcher(),
		renderers:  byFormat,
		logger:     logger,
	}
}

// GeneratePPTX renders the raw deck text into an editable presentation.
func (s *GeneratorService) GeneratePPTX(ctx context.Context, raw, title, selector string) (*ports.RenderResult, error) {
	return s.generate(ctx, "pptx", raw, title, selector)
}

// GeneratePDF renders the raw deck text into a paginated document.
func (s *GeneratorService) GeneratePDF(ctx context.Context, raw, title, selector string) (*ports.RenderResult, error) {
	return s.generate(ctx, "pdf", raw, title, selector)
}

// Generate renders in the named format ("pptx" or "pdf").
func (s *GeneratorService) Generate(ctx context.Context, format, raw, title, selector string) (*ports.RenderResult, error) {
	return s.generate(ctx, format, raw, title, selector)
}

// ContentType returns the MIME type for a format, or an error for an
// unknown one.
func (s *GeneratorService) ContentType(format string) (string, error) {
	r, ok := s.renderers[format]
	if !ok {
		return "", fmt.Errorf("unknown output format %q", format)
	}
	return r.ContentType(), nil
}

// ValidThemeSelectors lists every accepted theme selector, "auto" first.
func (s *GeneratorService) ValidThemeSelectors() []string {
	return s.themes.Selectors()
}

func (s *GeneratorService) generate(ctx context.Context, format, raw, title, selector string) (*ports.RenderResult, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", format)
	}

	deck, err := s.parser.Parse(raw)
	if err != nil {
		return nil, err
	}

	theme := s.themes.Resolve(selector, deck.Theme)
	plan := s.dispatcher.Plan(deck)

	s.logger.Info("rendering %d slides as %s with theme %s", len(deck.Slides), format, theme.Name)

	result, err := renderer.Render(ctx, deck, theme, plan, title)
	if err != nil {
		return nil, fmt.Errorf("rendering %s document: %w", format, err)
	}
	if len(result.Document) == 0 {
		return nil, errors.New("renderer produced an empty document")
	}
	for _, fb := range result.Fallbacks {
		s.logger.Warn("slide %d (%s) used fallback rendering: %s", fb.Index+1, fb.Type, fb.Reason)
	}
	return result, nil
}
