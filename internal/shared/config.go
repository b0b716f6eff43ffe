package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultSpotsURL = "https://stud.hosted.hr.nl/1014535/parkbike/api/bikeparkingspots.json"

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	StoreDriver    string // memory|redis|mysql
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	SpotsURL       string
	SpotsRPS       int
	LocationMode   string // static|denied|http
	LocationLat    float64
	LocationLon    float64
	LocationURL    string
	Language       string
	RefreshTimeout time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
			log.Warn().Str("key", k).Str("value", v).Msg("invalid float, using default")
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		StoreDriver:    env("STORE_DRIVER", "memory"),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/parkbike?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisDB:        atoi("REDIS_DB", 0),
		RedisPass:      env("REDIS_PASSWORD", ""),
		SpotsURL:       env("SPOTS_URL", DefaultSpotsURL),
		SpotsRPS:       atoi("SPOTS_RPS", 2),
		LocationMode:   env("LOCATION_MODE", "static"),
		LocationLat:    atof("LOCATION_LAT", 51.9225),
		LocationLon:    atof("LOCATION_LON", 4.47917),
		LocationURL:    env("LOCATION_URL", ""),
		Language:       env("DEFAULT_LANGUAGE", "en"),
		RefreshTimeout: time.Duration(atoi("REFRESH_TIMEOUT_SECONDS", 30)) * time.Second,
	}
	if c.LocationMode == "http" && c.LocationURL == "" {
		log.Warn().Msg("LOCATION_MODE=http but LOCATION_URL is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
