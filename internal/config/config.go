package config

import (
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR,default=:8080"`
	MySQLDSN   string `env:"MYSQL_DSN,default=user:password@tcp(127.0.0.1:3306)/spill?charset=utf8mb4&parseTime=True"`

	RedisAddr     string `env:"REDIS_ADDR,default=127.0.0.1:6379"`
	RedisPassword string `env:"REDIS_PASSWORD,default="`
	RedisDB       int    `env:"REDIS_DB,default=0"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	JWTExpiry time.Duration `env:"JWT_EXPIRES_IN,default=24h"`

	AWSRegion    string `env:"AWS_REGION,default=us-east-1"`
	AWSAccessKey string `env:"AWS_ACCESS_KEY_ID,default="`
	AWSSecretKey string `env:"AWS_SECRET_ACCESS_KEY,default="`
	S3Bucket     string `env:"AWS_BUCKET_NAME,required"`

	// Optional; sinks stay disabled when unset.
	KafkaBrokers []string `env:"KAFKA_BROKERS,default="`
	KafkaTopic   string   `env:"KAFKA_TOPIC,default=spill.activity"`

	SMTPHost     string `env:"SMTP_HOST,default="`
	SMTPPort     int    `env:"SMTP_PORT,default=587"`
	SMTPUsername string `env:"SMTP_USERNAME,default="`
	SMTPPassword string `env:"SMTP_PASSWORD,default="`
	SMTPFrom     string `env:"SMTP_FROM,default="`
}

// Load reads .env when present, then decodes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0 && c.KafkaBrokers[0] != ""
}

func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}
