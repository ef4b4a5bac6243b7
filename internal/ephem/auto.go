package ephem

import (
	"context"
	"time"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/logging"
	"github.com/litescript/ls-planetarium/internal/version"
)

// AutoProvider asks a primary provider first and falls back to orbital
// elements when it fails, so the planet layer always has positions.
type AutoProvider struct {
	primary  Provider
	fallback Provider
	log      *logging.Logger
}

// NewAutoProvider wraps primary with an element-based fallback.
func NewAutoProvider(primary Provider, log *logging.Logger) *AutoProvider {
	if log == nil {
		log = logging.Discard()
	}
	return &AutoProvider{
		primary:  primary,
		fallback: NewElementsProvider(),
		log:      log,
	}
}

// Name implements Provider.
func (p *AutoProvider) Name() string {
	return "Auto"
}

// Snapshot implements Provider.
func (p *AutoProvider) Snapshot(ctx context.Context, t time.Time, obs astro.Observer) (Snapshot, error) {
	snap, err := p.primary.Snapshot(ctx, t, obs)
	if err == nil {
		return snap, nil
	}
	if ctx.Err() != nil {
		return Snapshot{}, ctx.Err()
	}
	p.log.Warn("ephemeris provider failed, using orbital elements", "provider", p.primary.Name(), "err", err)
	return p.fallback.Snapshot(ctx, t, obs)
}

// NewProvider builds the provider for a mode.
func NewProvider(mode Mode, horizonsURL string, log *logging.Logger) Provider {
	switch mode {
	case ModeElements:
		return NewElementsProvider()
	case ModeHorizons:
		return NewHorizonsProvider(WithBaseURL(horizonsURL), WithUserAgent(version.UserAgent()))
	default:
		return NewAutoProvider(NewHorizonsProvider(WithBaseURL(horizonsURL), WithUserAgent(version.UserAgent())), log)
	}
}
