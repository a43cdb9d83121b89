package config

// ConfigLogger настройки логирования
type ConfigLogger struct {
	Level string `mapstructure:"level"`
}

// ConfigServer настройки HTTP сервера
type ConfigServer struct {
	PortHTTP                int `mapstructure:"port_http"`
	HTTPReadTimeout         int `mapstructure:"http_read_timeout"`
	HTTPWriteTimeout        int `mapstructure:"http_write_timeout"`
	HTTPIdleTimeout         int `mapstructure:"http_idle_timeout"`
	HTTPReadHeaderTimeout   int `mapstructure:"http_read_header_timeout"`
	GracefulShutdownTimeout int `mapstructure:"graceful_shutdown_timeout"`
}

// ConfigHTTP настройки HTTP middleware (CORS, rate limiting)
type ConfigHTTP struct {
	CORSMaxAge     int `mapstructure:"cors_max_age"`
	RateLimitRPS   int `mapstructure:"rate_limit_rps"`
	RateLimitBurst int `mapstructure:"rate_limit_burst"`
}

// ConfigSwagger настройки отдачи OpenAPI документа
type ConfigSwagger struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config основная структура конфигурации
type Config struct {
	Logger  *ConfigLogger  `mapstructure:"logger"`
	Server  *ConfigServer  `mapstructure:"server"`
	HTTP    *ConfigHTTP    `mapstructure:"http"`
	Swagger *ConfigSwagger `mapstructure:"swagger"`
}
