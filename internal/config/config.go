// Package config loads the server settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"yujuris-api/internal/domain/entity"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	AppVersion string
	Env        string

	// Gemini: either an API key or a Vertex AI project/location
	GeminiAPIKey   string
	GoogleProject  string
	GoogleLocation string
	Model          string
	EmbeddingModel string
	ModelTimeout   time.Duration

	// Legal sources
	SourceTimeout  time.Duration
	CNDJSearchURL  string
	CNDJTimeout    time.Duration
	CNDJRateLimit  float64
	CNDJRateBurst  int
	VectorTopK     int
	EmbeddingDim   int
	QdrantHost     string
	QdrantPort     int
	QdrantAPIKey   string
	QdrantUseTLS   bool
	QdrantCollName string

	// Quota ledger
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads an optional env file then the process environment.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env.dev"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	return &Config{
		Port:       getEnv("PORT", "8080"),
		AppVersion: getEnv("APP_VERSION", "dev"),
		Env:        getEnv("ENV", "development"),

		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GoogleProject:  os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GoogleLocation: getEnv("GOOGLE_CLOUD_LOCATION", "us-central1"),
		Model:          getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-004"),
		ModelTimeout:   getEnvDuration("MODEL_TIMEOUT", 25*time.Second),

		SourceTimeout:  getEnvDuration("SOURCE_TIMEOUT", 4*time.Second),
		CNDJSearchURL:  getEnv("CNDJ_SEARCH_URL", "https://biblio.cndj.ci/search"),
		CNDJTimeout:    getEnvDuration("CNDJ_TIMEOUT", 3*time.Second),
		CNDJRateLimit:  getEnvFloat("CNDJ_RATE_LIMIT", 2),
		CNDJRateBurst:  getEnvInt("CNDJ_RATE_BURST", 4),
		VectorTopK:     getEnvInt("VECTOR_TOP_K", 3),
		EmbeddingDim:   getEnvInt("EMBEDDING_DIM", 768),
		QdrantHost:     os.Getenv("QDRANT_HOST"),
		QdrantPort:     getEnvInt("QDRANT_PORT", 6334),
		QdrantAPIKey:   os.Getenv("QDRANT_API_KEY"),
		QdrantUseTLS:   getEnvBool("QDRANT_USE_TLS", false),
		QdrantCollName: getEnv("QDRANT_COLLECTION", "yujuris_library"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
	}
}

// Validate fails when no generation backend can be reached; the server
// refuses to start in that case.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" && c.GoogleProject == "" {
		return entity.ErrMissingCredential
	}
	return nil
}

func (c *Config) VectorIndexEnabled() bool { return c.QdrantHost != "" }

func (c *Config) QuotaEnabled() bool { return c.RedisAddr != "" }

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// getEnvDuration accepts Go durations ("4s") or bare milliseconds.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(val); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultVal
}
