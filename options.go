package xray

import (
	"log/slog"

	"github.com/xray4scm/xray/application/service"
	domainservice "github.com/xray4scm/xray/domain/service"
	"github.com/xray4scm/xray/internal/config"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL      string
	dataDir    string
	cloneDir   string
	logger     *slog.Logger
	clients    service.ClientFactory
	classifier domainservice.Classifier
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		dataDir: config.DefaultDataDir(),
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database, stored at path.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = "sqlite:///" + path
	}
}

// WithPostgres configures PostgreSQL as the database.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.dbURL = dsn
	}
}

// WithDatabaseURL configures the database from a URL
// (sqlite:///path or postgres://...).
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithDataDir sets the data directory (default ~/.xray).
func WithDataDir(dir string) Option {
	return func(c *clientConfig) {
		c.dataDir = dir
	}
}

// WithCloneDir sets the directory where working copies are kept
// (default <dataDir>/clones).
func WithCloneDir(dir string) Option {
	return func(c *clientConfig) {
		c.cloneDir = dir
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithClientFactory replaces the version-control client factory, for
// custom adapters.
func WithClientFactory(factory service.ClientFactory) Option {
	return func(c *clientConfig) {
		c.clients = factory
	}
}

// WithClassifier replaces the content classifier.
func WithClassifier(classifier domainservice.Classifier) Option {
	return func(c *clientConfig) {
		c.classifier = classifier
	}
}
