package config

// DriverConfig holds connection settings. Redis, RabbitMQ and Minio are
// optional: an empty host disables the driver.
type DriverConfig struct {
	Redis    Redis
	Logger   Logger
	RabbitMQ RabbitMQ
	Minio    Minio
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type RabbitMQ struct {
	Port     string
	Host     string
	Username string
	Password string
}

type Minio struct {
	Port     string
	Host     string
	Username string
	Password string
	UseSSL   bool
}
