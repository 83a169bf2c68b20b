package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-playbook/internal/clientconfig"
	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/mock"
	"github.com/MKhiriev/go-playbook/internal/service"
	"github.com/MKhiriev/go-playbook/models"
)

const waitTimeout = 2 * time.Second

func newTestProvider(t *testing.T, slug string, loader service.ConfigLoader) *ConfigProvider {
	t.Helper()
	p, err := NewConfigProvider(slug, loader, clientconfig.Default(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

func waitDone(t *testing.T, p *ConfigProvider) {
	t.Helper()
	select {
	case <-p.Done():
	case <-time.After(waitTimeout):
		t.Fatal("provider did not settle")
	}
}

func acmeConfig() models.ClientConfig {
	cfg := clientconfig.Default()
	cfg.SiteConfig.CompanyName = "Acme"
	return cfg
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewConfigProvider_NilDependencies(t *testing.T) {
	_, err := NewConfigProvider("acme", nil, clientconfig.Default(), logger.Nop())
	assert.ErrorIs(t, err, service.ErrNilDependency)

	ctrl := gomock.NewController(t)
	_, err = NewConfigProvider("acme", mock.NewMockConfigLoader(ctrl), clientconfig.Default(), nil)
	assert.ErrorIs(t, err, service.ErrNilDependency)
}

func TestConfigProvider_DefaultSlugIsTerminalImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockConfigLoader(ctrl) // no calls expected

	p := newTestProvider(t, "default", loader)
	p.Start(context.Background())

	select {
	case <-p.Done():
	default:
		t.Fatal("default provider must be terminal before Start returns")
	}

	state := p.State()
	assert.False(t, state.IsLoading)
	assert.Equal(t, "default", state.ClientSlug)
	assert.Empty(t, state.Err)
	assert.Equal(t, clientconfig.Default(), state.Config)
}

func TestConfigProvider_LoadingUsesDefaultsAsPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := newTestProvider(t, "acme", mock.NewMockConfigLoader(ctrl))

	state := p.State()
	assert.True(t, state.IsLoading)
	assert.Equal(t, "acme", state.ClientSlug)
	assert.Empty(t, state.Err)
	assert.Equal(t, clientconfig.Default(), state.Config)
}

// ── load lifecycle ───────────────────────────────────────────────────────────

func TestConfigProvider_Resolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadClientConfig(gomock.Any(), "acme").Return(acmeConfig())

	p := newTestProvider(t, "acme", loader)
	p.Start(context.Background())
	waitDone(t, p)

	state := p.State()
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Err)
	assert.Equal(t, "Acme", state.Config.SiteConfig.CompanyName)
}

func TestConfigProvider_StartIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadClientConfig(gomock.Any(), "acme").Return(acmeConfig()).Times(1)

	p := newTestProvider(t, "acme", loader)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Start(context.Background())
		}()
	}
	wg.Wait()
	waitDone(t, p)

	p.Start(context.Background())
}

func TestConfigProvider_LoaderPanicFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadClientConfig(gomock.Any(), "acme").DoAndReturn(
		func(context.Context, string) models.ClientConfig { panic("disk on fire") },
	)

	p := newTestProvider(t, "acme", loader)
	p.Start(context.Background())
	waitDone(t, p)

	state := p.State()
	assert.False(t, state.IsLoading)
	assert.Contains(t, state.Err, "disk on fire")
	assert.Equal(t, clientconfig.Default(), state.Config)
}

func TestConfigProvider_CancelledContextFails(t *testing.T) {
	release := make(chan struct{})

	ctrl := gomock.NewController(t)
	loader := mock.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadClientConfig(gomock.Any(), "acme").DoAndReturn(
		func(context.Context, string) models.ClientConfig {
			<-release
			return acmeConfig()
		},
	)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithCancel(context.Background())
	p := newTestProvider(t, "acme", loader)
	p.Start(ctx)
	cancel()
	waitDone(t, p)

	state := p.State()
	assert.False(t, state.IsLoading)
	assert.Contains(t, state.Err, context.Canceled.Error())
	assert.Equal(t, clientconfig.Default(), state.Config)
}

func TestConfigProvider_CloseDiscardsLateResult(t *testing.T) {
	release := make(chan struct{})
	returned := make(chan struct{})

	ctrl := gomock.NewController(t)
	loader := mock.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadClientConfig(gomock.Any(), "acme").DoAndReturn(
		func(context.Context, string) models.ClientConfig {
			<-release
			defer close(returned)
			return acmeConfig()
		},
	)

	p := newTestProvider(t, "acme", loader)
	p.Start(context.Background())
	p.Close()
	waitDone(t, p)

	close(release)
	<-returned
	// give the settle path a chance to run
	time.Sleep(20 * time.Millisecond)

	state := p.State()
	assert.True(t, state.IsLoading)
	assert.Equal(t, clientconfig.Default(), state.Config)
}

func TestConfigProvider_StartAfterCloseDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := newTestProvider(t, "acme", mock.NewMockConfigLoader(ctrl))

	p.Close()
	p.Start(context.Background())
	p.Close()

	assert.True(t, p.State().IsLoading)
}

// ── subscriptions ────────────────────────────────────────────────────────────

func TestConfigProvider_SubscribeReceivesTerminalState(t *testing.T) {
	release := make(chan struct{})

	ctrl := gomock.NewController(t)
	loader := mock.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadClientConfig(gomock.Any(), "acme").DoAndReturn(
		func(context.Context, string) models.ClientConfig {
			<-release
			return acmeConfig()
		},
	)

	p := newTestProvider(t, "acme", loader)
	updates := p.Subscribe()
	p.Start(context.Background())
	close(release)
	waitDone(t, p)

	var last models.ConfigState
	for state := range updates {
		last = state
	}
	assert.False(t, last.IsLoading)
	assert.Equal(t, "Acme", last.Config.SiteConfig.CompanyName)
}

func TestConfigProvider_SubscribeAfterTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := newTestProvider(t, "default", mock.NewMockConfigLoader(ctrl))

	updates := p.Subscribe()

	state, ok := <-updates
	require.True(t, ok)
	assert.False(t, state.IsLoading)

	_, ok = <-updates
	assert.False(t, ok, "channel must be closed")
}

func TestConfigProvider_CloseReleasesSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := newTestProvider(t, "acme", mock.NewMockConfigLoader(ctrl))

	updates := p.Subscribe()
	p.Close()

	state := <-updates
	assert.True(t, state.IsLoading)
	_, ok := <-updates
	assert.False(t, ok)
}

func TestConfigProvider_StateIsASnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := newTestProvider(t, "default", mock.NewMockConfigLoader(ctrl))

	state := p.State()
	state.Config.SiteConfig.AppTitle = "mutated"
	state.Config.Sections.Enabled = append(state.Config.Sections.Enabled, "x")

	assert.Equal(t, clientconfig.Default(), p.State().Config)
}
