package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	DatabaseURL string `env:"DATABASE_URL" envDefault:"paiement:paiement@tcp(localhost:3306)/paiement_fr?charset=utf8mb4&parseTime=true"`

	// Must match the secret the form system signs with.
	// The default is for local development only.
	HMACSecret string `env:"HMAC_SECRET_KEY" envDefault:"dev-hmac-secret-change-me"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000,https://paiement-service.fr,https://www.paiement-service.fr"`

	// When set, the checkout form also requires cardholder name,
	// country and postal code.
	RequireFullForm bool `env:"REQUIRE_FULL_FORM" envDefault:"false"`

	SMTP SMTP `envPrefix:"SMTP_"`
}

type SMTP struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	Sender   string `env:"SENDER" envDefault:"no-reply@paiement-service.fr"`
	// Operator receives a copy of every payment-problem email.
	Operator string `env:"OPERATOR" envDefault:"ops@paiement-service.fr"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
