// Package app wires configuration, logging, the catalog and the generation
// pipeline into a single value shared by the server and the CLI.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/cookengine/internal/catalog"
	"github.com/bobmcallan/cookengine/internal/common"
	"github.com/bobmcallan/cookengine/internal/interfaces"
	"github.com/bobmcallan/cookengine/internal/services/generation"
	"github.com/bobmcallan/cookengine/internal/services/synthesis"
)

// App holds the initialized catalog, services and configuration.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Catalog     *catalog.Store
	Synthesizer *synthesis.Synthesizer
	Generator   interfaces.RecipeGenerator
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// ResolveConfigPath picks the config file: explicit path, COOKENGINE_CONFIG,
// cookengine.toml next to the binary, then config/cookengine.toml.
func ResolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("COOKENGINE_CONFIG"); env != "" {
		return env
	}
	p := filepath.Join(getBinaryDir(), "cookengine.toml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return "config/cookengine.toml"
}

// NewApp loads configuration from configPath (resolved via ResolveConfigPath)
// and builds the app.
func NewApp(configPath string) (*App, error) {
	config, err := common.LoadConfig(ResolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := common.NewLogger(config.Logging.Level, config.Logging.Format)
	return New(config, logger)
}

// New builds the app from an already loaded config.
func New(config *common.Config, logger *common.Logger) (*App, error) {
	start := time.Now()

	store, err := catalog.Load(config.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	synth := synthesis.NewSynthesizer(
		synthesis.WithDelay(config.Generation.GetDelay()),
		synthesis.WithLogger(logger),
	)

	generator := generation.NewHandler(synth,
		generation.WithTimeout(config.Generation.GetTimeout()),
		generation.WithLogger(logger),
	)

	a := &App{
		Config:      config,
		Logger:      logger,
		Catalog:     store,
		Synthesizer: synth,
		Generator:   generator,
		StartupTime: start,
	}

	logger.Info().
		Int("recipes", store.Len()).
		Int("ingredients", len(store.AllIngredients())).
		Dur("startup", time.Since(start)).
		Msg("App initialized")

	return a, nil
}
