package config

import "os"

// DBConfig contiene la configuración de conexión a PostgreSQL.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// LoadDBConfig lee la configuración de la base desde variables de entorno,
// con defaults para desarrollo local.
func LoadDBConfig() DBConfig {
	return DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		Name:     getEnv("DB_NAME", "pos_db"),
	}
}

// ConnString arma el string de conexión de PostgreSQL.
func (c DBConfig) ConnString() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + c.Port + "/" + c.Name + "?sslmode=disable"
}

// ServerPort retorna el puerto HTTP del servicio.
func ServerPort() string {
	return getEnv("PORT", "8080")
}

// PrometheusEnabled indica si hay que exponer /metrics.
func PrometheusEnabled() bool {
	return os.Getenv("PROMETHEUS_ENABLED") == "true"
}

// getEnv obtiene una variable de entorno o devuelve un valor por defecto.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
