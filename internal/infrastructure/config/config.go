package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime configuration read from the environment (and from a
// local .env file, loaded by godotenv/autoload in cmd/api).
type Config struct {
	App        AppConfig
	Dynamo     DynamoConfig
	Redis      RedisConfig
	Builder    BuilderConfig
	Live       LiveConfig
	Letterhead LetterheadConfig
	Payments   PaymentsConfig
}

type AppConfig struct {
	Port      int    `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
	TimeZone  string `envconfig:"APP_TIMEZONE" default:"America/Sao_Paulo"`
}

type DynamoConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`

	ClientsTable  string `envconfig:"CLIENTS_TABLE" default:"cliente"`
	PartsTable    string `envconfig:"PARTS_TABLE" default:"peca"`
	QuotesTable   string `envconfig:"QUOTES_TABLE" default:"orcamento"`
	PaymentsTable string `envconfig:"QUOTE_PAYMENTS_TABLE" default:"quote_payments"`
}

// RedisConfig is optional: without a URL drafts and editor sessions live in memory.
type RedisConfig struct {
	URL string `envconfig:"REDIS_URL"`
}

type BuilderConfig struct {
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"12h"`
}

type LiveConfig struct {
	PollInterval time.Duration `envconfig:"LIVE_POLL_INTERVAL" default:"5s"`
}

// LetterheadConfig is the fixed business header printed on quotes and orders.
type LetterheadConfig struct {
	Title    string `envconfig:"LETTERHEAD_TITLE" default:"OFICINA ESPECIALIZADA EM SISTEMA"`
	Subtitle string `envconfig:"LETTERHEAD_SUBTITLE" default:"COMMON RAIL E SOLDAS ESPECIAIS"`
	Address  string `envconfig:"LETTERHEAD_ADDRESS" default:"Rua Miguel Capssa, 58, Assis Brasil - Ijuí/RS"`
	Phone    string `envconfig:"LETTERHEAD_PHONE" default:"Fone: 55 99928-7017 / 55 99235-5642"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	TestPayerEmail         string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	Mock                   bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.App.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resolves the time zone used to stamp dataOrcamento.
func (a AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(a.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", a.TimeZone, err)
	}
	return loc, nil
}
