package services

import "time"

// Ticker abstracts time.Ticker so refresh loops can be driven by a fake in
// tests.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type TickerFactory func(interval time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) Chan() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()                  { r.t.Stop() }

func NewTicker(interval time.Duration) Ticker {
	return realTicker{t: time.NewTicker(interval)}
}
