package smtp

import "time"

// Config holds SMTP relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host     string        `env:"SMTP_HOST"`
	Username string        `env:"SMTP_USERNAME"`
	Password string        `env:"SMTP_PASSWORD"`
	Port     int           `env:"SMTP_PORT" envDefault:"587"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"10s"`
	// MessageIDDomain is the right-hand side of generated Message-ID headers.
	MessageIDDomain string `env:"SMTP_MESSAGE_ID_DOMAIN" envDefault:"localhost"`
}
