package http

import (
	"io/fs"
	"os"

	"github.com/MKhiriev/go-playbook/internal/config"
	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/service"
	"github.com/MKhiriev/go-playbook/internal/utils"
)

type Handler struct {
	services *service.Services

	// public holds the SPA build and the clients/{slug}.json files.
	public        fs.FS
	defaultClient string

	// trustProxy enables client IPs taken from forwarding headers.
	trustProxy bool

	feedbackLimiter *rateLimiter
	traceIDs        *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Str("public_dir", cfg.Server.PublicDir).Msg("http handler created")
	return &Handler{
		services:        services,
		public:          os.DirFS(cfg.Server.PublicDir),
		defaultClient:   cfg.App.DefaultClient,
		trustProxy:      cfg.Server.TrustProxy,
		feedbackLimiter: newRateLimiter(cfg.Server.FeedbackRateLimit, cfg.Server.FeedbackRateWindow),
		traceIDs:        utils.NewUUIDGenerator(),
		logger:          logger,
	}
}
