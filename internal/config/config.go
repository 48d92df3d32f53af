package config

import (
	"os"
)

type Config struct {
	Port        string
	DBDriver    string
	DBSource    string
	KakaoAPIKey string
	KakaoAPIURL string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		DBSource:    getEnv("DB_DSN", ""),
		KakaoAPIKey: os.Getenv("KAKAO_API_KEY"),
		KakaoAPIURL: getEnv("KAKAO_API_URL", "https://dapi.kakao.com/v2/local/search/keyword.json"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
