// Package journal owns the submission pipeline: analyze → classify →
// append → track → aggregate → compose. Each submission runs to
// completion before the caller gets a result; the only shared mutable
// state is the session history behind the EntryStore port.
package journal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stillpage/stillpage/internal/app/analysis"
	"github.com/stillpage/stillpage/internal/app/classify"
	"github.com/stillpage/stillpage/internal/app/compose"
	"github.com/stillpage/stillpage/internal/app/insights"
	"github.com/stillpage/stillpage/internal/domain"
	"github.com/stillpage/stillpage/internal/observability"
)

// Config tunes the pipeline. Zero values fall back to the documented
// defaults.
type Config struct {
	NeutralBand       float64
	PositiveThreshold float64
	RecencyWindow     time.Duration
	SummaryWindow     int

	// Now overrides the clock, for tests.
	Now func() time.Time
}

type Service struct {
	store      domain.EntryStore
	classifier *classify.Classifier
	composer   *compose.Composer

	recencyWindow time.Duration
	summaryWindow int
	now           func() time.Time

	// Serializes append-then-read per session so concurrent submissions
	// cannot corrupt history ordering. Entries are reference-counted and
	// evicted once the last holder unlocks, so the map stays bounded by
	// the number of in-flight submissions.
	mu       sync.Mutex
	sessions map[domain.SessionID]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewService wires the pipeline. It validates the composer's template
// tables so a broken table aborts startup instead of a request.
func NewService(store domain.EntryStore, cfg Config) (*Service, error) {
	composer := compose.New()
	if err := composer.Validate(); err != nil {
		return nil, fmt.Errorf("response templates: %w", err)
	}

	if cfg.RecencyWindow <= 0 {
		cfg.RecencyWindow = insights.DefaultRecencyWindow
	}
	if cfg.SummaryWindow <= 0 {
		cfg.SummaryWindow = insights.DefaultSummaryWindow
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Service{
		store:         store,
		classifier:    classify.New(cfg.NeutralBand, cfg.PositiveThreshold),
		composer:      composer,
		recencyWindow: cfg.RecencyWindow,
		summaryWindow: cfg.SummaryWindow,
		now:           cfg.Now,
		sessions:      make(map[domain.SessionID]*sessionLock),
	}, nil
}

type SubmitEntryInput struct {
	SessionID domain.SessionID
	Text      string
}

// SubmitEntryOutput carries the composed reply. Optional fields are
// empty when absent. No field ever names the internal mode.
type SubmitEntryOutput struct {
	SessionID         domain.SessionID
	EntrySeq          int64
	Reflection        string
	EngagementNote    string
	ReflectionSummary string
	Prompt            string
}

// SubmitEntry runs the full pipeline for one entry. Degenerate text is
// accepted and lands at baseline; a failing store surfaces as
// domain.ErrStoreUnavailable rather than a reply built from partial
// history.
func (s *Service) SubmitEntry(ctx context.Context, in SubmitEntryInput) (*SubmitEntryOutput, error) {
	log := observability.LoggerFromContext(ctx).With("session_id", in.SessionID)

	sig := analysis.Analyze(in.Text)
	mode := s.classifier.Classify(sig)

	unlock := s.lockSession(in.SessionID)
	defer unlock()

	entry := &domain.Entry{
		SessionID: in.SessionID,
		Text:      in.Text,
		Mode:      mode,
		Themes:    sig.Themes,
		CreatedAt: s.now(),
	}

	seq, err := s.store.AppendEntry(ctx, entry)
	if err != nil {
		log.Error("failed to append entry", "error", err)
		observability.RecordStoreFailure("append")
		return nil, fmt.Errorf("%w: append entry: %v", domain.ErrStoreUnavailable, err)
	}
	entry.Seq = seq

	history, err := s.store.RecentEntries(ctx, in.SessionID, s.historyReadLimit())
	if err != nil {
		log.Error("failed to read session history", "error", err)
		observability.RecordStoreFailure("read_recent")
		return nil, fmt.Errorf("%w: read recent entries: %v", domain.ErrStoreUnavailable, err)
	}

	consistent := insights.Consistent(history, s.recencyWindow)
	summary := insights.Summarize(history, s.summaryWindow)

	// Only a clearly present theme is worth naming back to the writer.
	theme := ""
	if len(sig.Themes) > 0 && sig.ThemeConfidence != domain.ThemeConfidenceLow {
		theme = sig.Themes[0]
	}

	reply := s.composer.Compose(mode, seq, consistent, summary, theme)

	observability.RecordEntry()
	if reply.EngagementNote != "" {
		observability.RecordEngagementNote()
	}
	if reply.Summary != "" {
		observability.RecordReflectionSummary()
	}

	// Entry text is deliberately never logged.
	log.Info("entry processed",
		"entry_seq", seq,
		"mode", string(mode),
		"consistent", consistent,
		"summary", summary != nil,
	)

	return &SubmitEntryOutput{
		SessionID:         in.SessionID,
		EntrySeq:          seq,
		Reflection:        reply.Reflection,
		EngagementNote:    reply.EngagementNote,
		ReflectionSummary: reply.Summary,
		Prompt:            reply.Prompt,
	}, nil
}

// historyReadLimit covers both the summary window and the consistency
// span.
func (s *Service) historyReadLimit() int {
	if s.summaryWindow > 3 {
		return s.summaryWindow
	}
	return 3
}

func (s *Service) lockSession(id domain.SessionID) func() {
	s.mu.Lock()
	l, ok := s.sessions[id]
	if !ok {
		l = &sessionLock{}
		s.sessions[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.sessions, id)
		}
		s.mu.Unlock()
	}
}
