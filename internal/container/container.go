package container

import (
	"net/http"

	"github.com/anime-shed/text-insight-go/internal/analyzer"
	"github.com/anime-shed/text-insight-go/internal/config"
	"github.com/anime-shed/text-insight-go/internal/service"
	"github.com/anime-shed/text-insight-go/internal/transport"
	"github.com/anime-shed/text-insight-go/pkg/validation"
)

// Container holds all application dependencies
type Container struct {
	config          *config.Config
	dispatcher      *analyzer.Dispatcher
	batchRunner     *analyzer.BatchRunner
	analysisService service.AnalysisService
	handler         http.Handler
}

// NewContainer builds the dependency graph for the given configuration
func NewContainer(cfg *config.Config) (*Container, error) {
	lexicon := analyzer.NewDefaultLexicon()
	dispatcher := analyzer.NewDispatcher(lexicon)
	batchRunner := analyzer.NewBatchRunner(dispatcher, cfg.MaxBatchSize, cfg.BatchWorkers)
	validator := validation.NewTextValidator(cfg.MaxTextLength)

	options := analyzer.DefaultOptions().
		WithThresholds(cfg.PositiveThreshold, cfg.NegativeThreshold)
	if !cfg.EnableVader {
		options = options.WithoutVader()
	}

	analysisService := service.NewAnalysisService(dispatcher, batchRunner, validator, options)
	handler := transport.NewHandler(analysisService, cfg)

	return &Container{
		config:          cfg,
		dispatcher:      dispatcher,
		batchRunner:     batchRunner,
		analysisService: analysisService,
		handler:         handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Close releases the batch worker pool
func (c *Container) Close() error {
	return c.analysisService.Close()
}
