package parser

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"expenso/internal/domain"
	"expenso/internal/port"
)

// Provenance reports which path produced a parse result.
type Provenance string

const (
	ProvenanceLocal  Provenance = "local"
	ProvenanceRemote Provenance = "remote"
	ProvenanceCache  Provenance = "cache"
)

// UsedRemote reports whether the result came from the remote path
// (a live call or a cached remote result).
func (p Provenance) UsedRemote() bool {
	return p == ProvenanceRemote || p == ProvenanceCache
}

// Session is the parse orchestrator: it owns the cache and usage counters
// for one session and coordinates local-first parsing with the remote
// fallback. It is an explicit object constructed at session start, never
// a package-level singleton, and Reset provides explicit teardown.
//
// Parse holds the session mutex end to end, so concurrent requests for the
// same text cannot trigger duplicate remote calls; a slow remote call
// blocks its callers, matching the one-blocking-call-per-miss model.
type Session struct {
	remote port.RemoteParser
	cache  *Cache
	log    zerolog.Logger
	now    func() time.Time

	mu          sync.Mutex
	localParses int64
	remoteCalls int64
	cacheHits   int64
}

// NewSession creates a parse session around a remote fallback parser.
func NewSession(remote port.RemoteParser, log zerolog.Logger) *Session {
	return &Session{
		remote: remote,
		cache:  NewCache(),
		log:    log.With().Str("component", "parser.Session").Logger(),
		now:    time.Now,
	}
}

// Parse tries the local parser first; on terminal local failure it consults
// the cache and then the remote fallback, caching successful remote results.
// The returned Provenance tells the caller which path was used.
func (s *Session) Parse(ctx context.Context, text string) (*domain.ExpenseRecord, Provenance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := ParseLocal(text, s.now())
	if err == nil {
		s.localParses++
		s.logAttempt(ProvenanceLocal, text, rec)
		return rec, ProvenanceLocal, nil
	}
	if !IsLocalFailure(err) {
		return nil, ProvenanceLocal, err
	}

	if cached, ok := s.cache.Get(text); ok {
		s.cacheHits++
		s.logAttempt(ProvenanceCache, text, cached)
		return cached, ProvenanceCache, nil
	}

	// One blocking remote call per cache miss; the counter and log record
	// the attempt regardless of outcome, and failures are never cached.
	s.remoteCalls++
	rec, err = s.remote.Parse(ctx, text)
	if err != nil {
		s.logAttempt(ProvenanceRemote, text, nil)
		s.log.Warn().Err(err).Msg("remote fallback failed")
		return nil, ProvenanceRemote, err
	}

	s.cache.Put(text, *rec)
	s.logAttempt(ProvenanceRemote, text, rec)
	return rec, ProvenanceRemote, nil
}

// Usage returns a snapshot of the session counters.
func (s *Session) Usage() domain.ParseUsage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ParseUsage{
		LocalParses: s.localParses,
		RemoteCalls: s.remoteCalls,
		CacheHits:   s.cacheHits,
	}
}

// Reset clears the cache and counters, as at session start.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = NewCache()
	s.localParses = 0
	s.remoteCalls = 0
	s.cacheHits = 0
}

// logAttempt must be called with s.mu held.
func (s *Session) logAttempt(p Provenance, text string, rec *domain.ExpenseRecord) {
	total := s.localParses + s.remoteCalls + s.cacheHits
	evt := s.log.Info().
		Str("path", string(p)).
		Str("text", truncate(text, 60)).
		Int64("total", total).
		Int64("local", s.localParses).
		Int64("remote", s.remoteCalls).
		Int64("cache_hits", s.cacheHits)
	if rec != nil {
		evt = evt.
			Str("merchant", rec.Merchant).
			Float64("amount", rec.Amount).
			Str("currency", string(rec.Currency)).
			Str("category", string(rec.Category))
	}
	evt.Msg("parse attempt")
}
