package config

// Config holds everything loaded from the environment at startup.
// Components receive what they need explicitly; nothing reads the
// environment after Load returns.
type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	Environment    string
	AllowedOrigins []string
}

// reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
