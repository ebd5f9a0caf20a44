package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// PanelCodes are the staff access codes. Values may be plain strings or
// bcrypt hashes ("$2..."); the access service handles both.
type PanelCodes struct {
	Area    string
	Manager string
	Admin   string
	Courier string
}

type Config struct {
	Port      string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	Codes PanelCodes

	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process env")
	}

	return &Config{
		Port: getEnv("PORT", "8000"),
		// Volatile by default: every restart starts from the seed data.
		DBSource:  getEnv("DB_SOURCE", "file::memory:?cache=shared"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    12 * time.Hour,
		Codes: PanelCodes{
			Area:    getEnv("PANEL_AREA_CODE", "mx097aixom"),
			Manager: getEnv("PANEL_MANAGER_CODE", "189sidnetbosss"),
			Admin:   getEnv("PANEL_ADMIN_CODE", "11wer9hk"),
			Courier: getEnv("PANEL_COURIER_CODE", "buysel78ui"),
		},
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
