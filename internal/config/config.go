package config

import "os"

type Config struct {
	Port                   string
	RabbitURL              string
	MercadoPagoAccessToken string
}

func Load() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		RabbitURL:              getEnv("RABBIT_URL", "amqp://localhost"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
