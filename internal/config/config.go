package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// 애플리케이션 설정
type Config struct {
	Port          string // API 서버 포트
	DBPath        string // sqlite 파일 경로
	RedisAddr     string // 세션 캐시 redis 주소
	RedisPassword string
	RedisDB       int
}

// 환경 변수에서 설정을 읽음, .env 파일이 있으면 먼저 로드
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("config.Load(): loaded .env file")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "./user_service.db"),
		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
