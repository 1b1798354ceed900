package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/domalens/domalens/dashboard"
	"github.com/domalens/domalens/feed"
	"github.com/domalens/domalens/market"
	"github.com/domalens/domalens/models"
	"github.com/domalens/domalens/schema"
	"github.com/spf13/viper"
)

const EnvPrefix = "DOMALENS"

// Load reads configuration from defaults, the optional yaml file at path and
// DOMALENS_* environment variables, in increasing precedence.
// Nested keys map to env names with "_", e.g. DOMALENS_GRAPHQL_APIKEY.
func Load(path string) (*schema.Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &schema.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Demos) == 0 {
		cfg.Demos = models.DefaultDemos()
	}
	if cfg.PageSize <= 0 || cfg.PageSize > schema.MaxPageSize {
		return nil, fmt.Errorf("pageSize %d: %w", cfg.PageSize, schema.ErrInvalidSize)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	eps := models.DefaultEndpoints()

	v.SetDefault("port", ":8080")
	v.SetDefault("metricPort", ":9000")
	v.SetDefault("sentryDsn", "")
	v.SetDefault("pageSize", dashboard.DefaultPageSize)

	v.SetDefault("graphql.endpoint", "https://api-testnet.doma.xyz/graphql")
	v.SetDefault("graphql.apiKey", "")
	v.SetDefault("graphql.timeout", 15*time.Second)

	v.SetDefault("feed.interval", feed.DefaultInterval)
	v.SetDefault("feed.domains", feed.DefaultDomains)
	v.SetDefault("feed.window", feed.DefaultWindow)

	v.SetDefault("market.historyDelay", market.DefaultHistoryDelay)
	v.SetDefault("market.offerDelay", market.DefaultOfferDelay)

	v.SetDefault("stats.transactionsInterval", 2500*time.Millisecond)
	v.SetDefault("stats.transactionsStart", 1245)

	v.SetDefault("models.rarity", eps.Rarity)
	v.SetDefault("models.price", eps.Price)
	v.SetDefault("models.outlier", eps.Outlier)
	v.SetDefault("models.trends", eps.Trends)
	v.SetDefault("models.network", eps.Network)
	v.SetDefault("models.timeout", models.DefaultTimeout)
	v.SetDefault("models.cacheTtl", models.DefaultCacheTTL)
	v.SetDefault("models.workers", models.DefaultWorkers)

	v.SetDefault("kafka.start", false)
	v.SetDefault("kafka.uri", "127.0.0.1:9092")

	v.SetDefault("rateLimit.limit", 50)
	v.SetDefault("rateLimit.period", "S")
}
