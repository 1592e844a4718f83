package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Tasks struct {
		DraftCleanupInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Stripe struct {
		APIKey string
	}

	Auth struct {
		TokenSecret string
		TokenTTL    time.Duration
	}

	Wizard struct {
		DraftTTL time.Duration
	}

	Cooldowns struct {
		Quote    time.Duration
		Tracking time.Duration
		Contact  time.Duration
	}

	Kafka struct {
		PortHealthcheck     string
		Brokers             string
		ShipmentStatusTopic string
		ContactTopic        string
		ConsumerGroup       string
		Sarama              Sarama
		Handlers            KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		ShipmentStatusChanged ShipmentStatusChanged
		ContactReceived       ContactReceived
	}

	ShipmentStatusChanged struct {
		ProcessTimeout time.Duration
	}

	ContactReceived struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Database  Database
		Stripe    Stripe
		Auth      Auth
		Wizard    Wizard
		Cooldowns Cooldowns
		Kafka     Kafka
	}
)

// BrokerList разбирает KAFKA_BROKERS в срез адресов.
func (k *Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	draftCleanupInterval, err := osGetEnvDuration("BACKGROUND_DRAFT_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tokenTTL, err := osGetEnvDuration("AUTH_TOKEN_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	draftTTL, err := osGetEnvDuration("WIZARD_DRAFT_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	quoteCooldown, err := osGetEnvDuration("COOLDOWN_QUOTE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	trackingCooldown, err := osGetEnvDuration("COOLDOWN_TRACKING")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	contactCooldown, err := osGetEnvDuration("COOLDOWN_CONTACT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	shipmentStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_SHIPMENT_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	contactReceivedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_CONTACT_RECEIVED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			DraftCleanupInterval: draftCleanupInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Stripe: Stripe{
			APIKey: os.Getenv("STRIPE_API_KEY"),
		},
		Auth: Auth{
			TokenSecret: os.Getenv("AUTH_TOKEN_SECRET"),
			TokenTTL:    tokenTTL,
		},
		Wizard: Wizard{
			DraftTTL: draftTTL,
		},
		Cooldowns: Cooldowns{
			Quote:    quoteCooldown,
			Tracking: trackingCooldown,
			Contact:  contactCooldown,
		},
		Kafka: Kafka{
			Brokers:             os.Getenv("KAFKA_BROKERS"),
			ShipmentStatusTopic: os.Getenv("KAFKA_SHIPMENT_STATUS_TOPIC"),
			ContactTopic:        os.Getenv("KAFKA_CONTACT_TOPIC"),
			ConsumerGroup:       os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:     os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				ShipmentStatusChanged: ShipmentStatusChanged{
					ProcessTimeout: shipmentStatusChangedTimeout,
				},
				ContactReceived: ContactReceived{
					ProcessTimeout: contactReceivedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Stripe.APIKey == "" {
		return errors.New("STRIPE_API_KEY is required")
	}

	if cfg.Auth.TokenSecret == "" {
		return errors.New("AUTH_TOKEN_SECRET is required")
	}
	if cfg.Auth.TokenTTL == time.Duration(0) {
		return errors.New("AUTH_TOKEN_TTL is required")
	}

	if cfg.Wizard.DraftTTL == time.Duration(0) {
		return errors.New("WIZARD_DRAFT_TTL is required")
	}

	if cfg.Cooldowns.Quote == time.Duration(0) {
		return errors.New("COOLDOWN_QUOTE is required")
	}
	if cfg.Cooldowns.Tracking == time.Duration(0) {
		return errors.New("COOLDOWN_TRACKING is required")
	}
	if cfg.Cooldowns.Contact == time.Duration(0) {
		return errors.New("COOLDOWN_CONTACT is required")
	}

	if cfg.Tasks.DraftCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_DRAFT_CLEANUP_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.ShipmentStatusTopic == "" {
		return errors.New("KAFKA_SHIPMENT_STATUS_TOPIC is required")
	}
	if cfg.Kafka.ContactTopic == "" {
		return errors.New("KAFKA_CONTACT_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.ShipmentStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_SHIPMENT_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}
	if cfg.Kafka.Handlers.ContactReceived.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_CONTACT_RECEIVED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
