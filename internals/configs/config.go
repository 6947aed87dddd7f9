package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceEmbed = "embed"
	SourceDir   = "dir"
	SourceDB    = "db"
	SourceOSS   = "oss"
)

var (
	Port             string
	JWTSecret        string
	SessionTTL       time.Duration
	AccessCodeHash   string
	SecureCookie     bool
	DataSource       string
	StudentDataDir   string
	RunSeeds         bool
	CorsAllowOrigins []string
	LogLevel         string
	LogFormat        string

	OSSEndpoint      string
	OSSAccessKey     string
	OSSSecretKey     string
	OSSSecurityToken string
	OSSBucket        string
	OSSPrefix        string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env not found, using system environment")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system environment")
	}

	Port = GetEnv("PORT", "3000")
	JWTSecret = GetEnv("JWT_SECRET")
	SessionTTL = time.Duration(GetEnvInt("SESSION_TTL_HOURS", 12)) * time.Hour
	AccessCodeHash = GetEnv("ACCESS_CODE_HASH")
	SecureCookie = GetEnvBool("SECURE_COOKIE", false)
	DataSource = strings.ToLower(GetEnv("DATA_SOURCE", SourceEmbed))
	StudentDataDir = GetEnv("STUDENT_DATA_DIR")
	RunSeeds = GetEnvBool("RUN_SEEDS", false)
	CorsAllowOrigins = GetEnvList("CORS_ALLOW_ORIGINS")
	LogLevel = GetEnv("LOG_LEVEL", "info")
	LogFormat = GetEnv("LOG_FORMAT", "console")

	OSSEndpoint = GetEnv("ALI_OSS_ENDPOINT")
	OSSAccessKey = GetEnv("ALI_OSS_ACCESS_KEY")
	OSSSecretKey = GetEnv("ALI_OSS_SECRET_KEY")
	OSSSecurityToken = GetEnv("ALI_OSS_SECURITY_TOKEN")
	OSSBucket = GetEnv("ALI_OSS_BUCKET")
	OSSPrefix = GetEnv("ALI_OSS_PREFIX", "students/")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	switch DataSource {
	case SourceEmbed, SourceDir, SourceDB, SourceOSS:
	default:
		log.Printf("⚠️ unknown DATA_SOURCE %q, falling back to %q", DataSource, SourceEmbed)
		DataSource = SourceEmbed
	}
	if DataSource == SourceDir && StudentDataDir == "" {
		log.Println("⚠️ DATA_SOURCE=dir without STUDENT_DATA_DIR, falling back to embed")
		DataSource = SourceEmbed
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// GetEnvList splits a comma separated value, dropping blanks.
func GetEnvList(key string) []string {
	var out []string
	for _, p := range strings.Split(os.Getenv(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
