package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the sales dashboard service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8094"`

	// Dataset schema: column names expected in incoming tables
	DateColumn     string `env:"DATE_COLUMN,default=fecha"`
	CategoryColumn string `env:"CATEGORY_COLUMN,default=categoria"`
	AmountColumn   string `env:"AMOUNT_COLUMN,default=ventas"`

	// Panel truncation
	BarTopN int `env:"BAR_TOP_N,default=8"`
	PieTopN int `env:"PIE_TOP_N,default=6"`

	// Optional remote dataset source (CSV)
	DatasetURL string `env:"DATASET_URL"`

	// OpenAI configuration (commentary is skipped when the key is empty)
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-4.1"`

	// GCP configuration (optional for local deployments)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// Local deployment configuration
	LocalReportsDir string `env:"LOCAL_REPORTS_DIR,default=./reports"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
