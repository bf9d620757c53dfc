package ses

// Config holds Amazon SES provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Region    string `env:"SES_REGION" envDefault:"eu-west-1"`
	AccessKey string `env:"SES_ACCESS_KEY"`
	SecretKey string `env:"SES_SECRET_KEY"`
	// Endpoint overrides the SES endpoint (optional, e.g. for localstack).
	Endpoint string `env:"SES_ENDPOINT"`
	// ConfigurationSet is the SES configuration set applied to every message (optional).
	ConfigurationSet string `env:"SES_CONFIGURATION_SET"`
}

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "eu-west-1"

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
}
