package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

func loadEnv() {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	})
}

func EnvMongoURI() string {
	loadEnv()
	uri := os.Getenv("MONGOURI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	return uri
}

func EnvDBName() string {
	loadEnv()
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "tourism"
	}
	return name
}

func RedisURL() string {
	loadEnv()
	return os.Getenv("REDISURL")
}

func EnvPort() string {
	loadEnv()
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return port
}

func EnvSMTPHost() string {
	loadEnv()
	return os.Getenv("SMTP_HOST")
}

func EnvSMTPPort() int {
	loadEnv()
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return 587
	}
	return port
}

func EnvSMTPUser() string {
	loadEnv()
	return os.Getenv("SMTP_USER")
}

func EnvSMTPPassword() string {
	loadEnv()
	return os.Getenv("SMTP_PASSWORD")
}

// EnvMailFrom is the From header on outbound mail; falls back to the SMTP user.
func EnvMailFrom() string {
	loadEnv()
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}
	return from
}

// EnvAdminEmail is the staff inbox that receives new-request notifications.
func EnvAdminEmail() string {
	loadEnv()
	return os.Getenv("ADMIN_EMAIL")
}

func EnvAllowedOrigins() []string {
	loadEnv()
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}
