package schema

import "time"

type Config struct {
	Port       string `mapstructure:"port"`
	MetricPort string `mapstructure:"metricPort"`
	SentryDsn  string `mapstructure:"sentryDsn"`
	PageSize   int    `mapstructure:"pageSize"`

	GraphQL   GraphQL     `mapstructure:"graphql"`
	Feed      Feed        `mapstructure:"feed"`
	Market    Market      `mapstructure:"market"`
	Stats     Stats       `mapstructure:"stats"`
	Models    Models      `mapstructure:"models"`
	Demos     []ModelDemo `mapstructure:"demos"`
	Kafka     Kafka       `mapstructure:"kafka"`
	RateLimit RateLimit   `mapstructure:"rateLimit"`
}

type GraphQL struct {
	Endpoint string        `mapstructure:"endpoint"`
	ApiKey   string        `mapstructure:"apiKey"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type Feed struct {
	Interval time.Duration `mapstructure:"interval"`
	Domains  []string      `mapstructure:"domains"`
	Window   int           `mapstructure:"window"`
}

type Market struct {
	HistoryDelay time.Duration `mapstructure:"historyDelay"`
	OfferDelay   time.Duration `mapstructure:"offerDelay"`
}

type Stats struct {
	TransactionsInterval time.Duration `mapstructure:"transactionsInterval"`
	TransactionsStart    int64         `mapstructure:"transactionsStart"`
}

type Models struct {
	Rarity   string        `mapstructure:"rarity"`
	Price    string        `mapstructure:"price"`
	Outlier  string        `mapstructure:"outlier"`
	Trends   string        `mapstructure:"trends"`
	Network  string        `mapstructure:"network"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cacheTtl"`
	Workers  int           `mapstructure:"workers"`
}

type Kafka struct {
	Start bool   `mapstructure:"start"`
	Uri   string `mapstructure:"uri"`
}

// RateLimit period: "S"<Second>,"M"<Minute>,"H"<Hour>,"D"<Day>
type RateLimit struct {
	Limit  int    `mapstructure:"limit"`
	Period string `mapstructure:"period"`
}
