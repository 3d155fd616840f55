package ports

import (
	"context"
	"time"

	"github.com/secureballot/secureballot/internal/core/domain"
)

// ResultsService provides read-mostly aggregation views plus an optional
// auto-refresh loop. A service instance owns at most one refresh
// subscription at a time.
type ResultsService interface {
	Fetch(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error)
	FetchLive(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error)
	FetchRegional(ctx context.Context, electionID string) ([]domain.RegionalResult, error)
	FetchHistory(ctx context.Context, electionID string) ([]domain.ResultsPoint, error)

	Snapshot() *domain.ResultsSnapshot

	// StartAutoRefresh re-fetches live results on every tick until
	// StopAutoRefresh is called or ctx is cancelled. After StopAutoRefresh
	// returns, no further fetches are issued.
	StartAutoRefresh(ctx context.Context, electionID string, interval time.Duration) error
	StopAutoRefresh()
	AutoRefreshing() bool
}
