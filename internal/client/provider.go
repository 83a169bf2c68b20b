package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/service"
	"github.com/MKhiriev/go-playbook/internal/tenant"
	"github.com/MKhiriev/go-playbook/models"
)

// ConfigProvider owns the single configuration load of one preview session.
//
// The slug is fixed at construction. For the default tenant the provider is
// terminal immediately and never calls the loader. Otherwise the state is
// loading, with the defaults as placeholder, until Start's load settles:
// Resolved with the loaded config, or Failed with the defaults and Err set
// when the loader panics or ctx is cancelled first. After Close no state
// change is published.
type ConfigProvider struct {
	loader service.ConfigLoader
	logger *logger.Logger

	mu      sync.Mutex
	state   models.ConfigState
	started bool
	closed  bool
	done    chan struct{}
	subs    []chan models.ConfigState
}

// NewConfigProvider returns a provider for slug. defaults is the placeholder
// while loading and the fallback on failure.
func NewConfigProvider(slug string, loader service.ConfigLoader, defaults models.ClientConfig, logger *logger.Logger) (*ConfigProvider, error) {
	if loader == nil || logger == nil {
		return nil, service.ErrNilDependency
	}

	p := &ConfigProvider{
		loader: loader,
		logger: logger.WithClient(slug),
		state: models.ConfigState{
			Config:     defaults.Clone(),
			IsLoading:  !tenant.IsDefault(slug),
			ClientSlug: slug,
		},
		done: make(chan struct{}),
	}

	if p.state.IsTerminal() {
		close(p.done)
	}

	return p, nil
}

// Start launches the load. Calls after the first one, and calls on a
// terminal or closed provider, do nothing.
func (p *ConfigProvider) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || p.closed || p.state.IsTerminal() {
		return
	}
	p.started = true

	go p.load(ctx, p.state.ClientSlug, p.state.Config)
}

// State returns a snapshot of the current state.
func (p *ConfigProvider) State() models.ConfigState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.snapshot()
}

// Done is closed once the state is terminal or the provider is closed.
func (p *ConfigProvider) Done() <-chan struct{} {
	return p.done
}

// Subscribe returns a channel that holds the latest state. It receives the
// current state immediately and is closed after the terminal state or on
// Close. A slow reader only misses intermediate states.
func (p *ConfigProvider) Subscribe() <-chan models.ConfigState {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan models.ConfigState, 1)
	ch <- p.snapshot()

	if p.closed || p.state.IsTerminal() {
		close(ch)
		return ch
	}

	p.subs = append(p.subs, ch)
	return ch
}

// Close discards any result that settles later and releases subscribers.
func (p *ConfigProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	for _, ch := range p.subs {
		close(ch)
	}
	p.subs = nil

	if !p.state.IsTerminal() {
		close(p.done)
	}
}

func (p *ConfigProvider) load(ctx context.Context, slug string, defaults models.ClientConfig) {
	loaded := make(chan models.ClientConfig, 1)
	failed := make(chan string, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				failed <- fmt.Sprintf("config loader panicked: %v", r)
			}
		}()
		loaded <- p.loader.LoadClientConfig(ctx, slug)
	}()

	next := models.ConfigState{ClientSlug: slug}
	select {
	case cfg := <-loaded:
		next.Config = cfg
	case reason := <-failed:
		next.Config = defaults
		next.Err = reason
	case <-ctx.Done():
		next.Config = defaults
		next.Err = fmt.Sprintf("config load interrupted: %v", ctx.Err())
	}

	p.settle(next)
}

// settle publishes the terminal state unless the provider was closed.
func (p *ConfigProvider) settle(next models.ConfigState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.state.IsTerminal() {
		p.logger.Debug().Msg("discarding config load settled after close")
		return
	}

	p.state = next
	if next.Err != "" {
		p.logger.Error().Str("reason", next.Err).Msg("config load failed, using defaults")
	} else {
		p.logger.Info().Msg("config resolved")
	}

	for _, ch := range p.subs {
		// replace an unread earlier state
		select {
		case <-ch:
		default:
		}
		ch <- p.snapshot()
		close(ch)
	}
	p.subs = nil
	close(p.done)
}

// snapshot copies the state so callers cannot mutate the shared config.
// Callers hold mu.
func (p *ConfigProvider) snapshot() models.ConfigState {
	s := p.state
	s.Config = s.Config.Clone()
	return s
}
