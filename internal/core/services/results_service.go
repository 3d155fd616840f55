package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/secureballot/secureballot/internal/core/domain"
	"github.com/secureballot/secureballot/internal/core/ports"
	"github.com/secureballot/secureballot/internal/lib/logger/sl"
)

type ResultsOption func(*resultsService)

// WithTickerFactory swaps the refresh ticker source, used by tests to drive
// the loop with a fake clock.
func WithTickerFactory(factory TickerFactory) ResultsOption {
	return func(s *resultsService) {
		s.newTicker = factory
	}
}

type resultsService struct {
	api       ports.ResultsAPI
	log       *slog.Logger
	newTicker TickerFactory

	mu       sync.Mutex
	gen      uint64
	snapshot *domain.ResultsSnapshot
	stop     chan struct{}
	done     chan struct{}
}

func NewResultsService(api ports.ResultsAPI, log *slog.Logger, opts ...ResultsOption) ports.ResultsService {
	s := &resultsService{
		api:       api,
		log:       log,
		newTicker: NewTicker,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *resultsService) Fetch(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error) {
	return s.fetch(ctx, electionID, s.api.GetResults)
}

func (s *resultsService) FetchLive(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error) {
	return s.fetch(ctx, electionID, s.api.GetLiveResults)
}

func (s *resultsService) fetch(
	ctx context.Context,
	electionID string,
	get func(context.Context, string) (*domain.ResultsSnapshot, error),
) (*domain.ResultsSnapshot, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	snapshot, err := get(ctx, electionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return snapshot, domain.ErrStaleResponse
	}
	s.snapshot = snapshot
	return snapshot, nil
}

func (s *resultsService) FetchRegional(ctx context.Context, electionID string) ([]domain.RegionalResult, error) {
	return s.api.GetRegionalResults(ctx, electionID)
}

func (s *resultsService) FetchHistory(ctx context.Context, electionID string) ([]domain.ResultsPoint, error) {
	return s.api.GetHistoricalResults(ctx, electionID)
}

func (s *resultsService) Snapshot() *domain.ResultsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *resultsService) StartAutoRefresh(ctx context.Context, electionID string, interval time.Duration) error {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return domain.ErrPollingActive
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	s.stop = stop
	s.done = done
	s.mu.Unlock()

	ticker := s.newTicker(interval)
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.Chan():
				if _, err := s.FetchLive(ctx, electionID); err != nil &&
					!errors.Is(err, domain.ErrStaleResponse) {
					s.log.Warn("live results refresh failed",
						slog.String("election_id", electionID), sl.Err(err))
				}
			}
		}
	}()
	return nil
}

// StopAutoRefresh halts the refresh loop and waits for it to wind down;
// once it returns no further fetches are issued.
func (s *resultsService) StopAutoRefresh() {
	s.mu.Lock()
	stop := s.stop
	done := s.done
	s.stop = nil
	s.done = nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (s *resultsService) AutoRefreshing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop == nil {
		return false
	}
	select {
	case <-s.done:
		// The loop exited on its own (context cancellation).
		return false
	default:
		return true
	}
}
