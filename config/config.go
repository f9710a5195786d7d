package config

// AppConfig holds the runtime configuration of the records service.
type AppConfig struct {
	DBURL        string
	RedisAddress string
	BearerToken  string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}
