package fluentmail

// Config holds the Builder defaults.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	DefaultSourceMail string `env:"MAIL_DEFAULT_SOURCE_MAIL"`
	DefaultSourceName string `env:"MAIL_DEFAULT_SOURCE_NAME"`
}
