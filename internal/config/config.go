package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string
	DbPrefix  string

	JWTSecret     string
	SessionCookie string

	Log      string
	LogLevel string
	LogDir   string
	Env      string // dev|prod

	SiteURL       string
	TabBackground string

	// Дефолты опций формата курса (аналог moodlecourse config)
	DefaultNumSections   int
	DefaultCourseDisplay int
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует: чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),
		DbPrefix:  def(os.Getenv("DB_PREFIX"), "mdl_"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionCookie: def(os.Getenv("SESSION_COOKIE"), "lms_token"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		LogDir:   def(os.Getenv("LOG_DIR"), "logs"),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		SiteURL:       strings.TrimRight(os.Getenv("SITEURL"), "/"),
		TabBackground: os.Getenv("TAB_BACKGROUND_URL"),
	}

	var err error
	if cfg.DefaultNumSections, err = intEnv("FORMAT_NUMSECTIONS", 10); err != nil {
		return nil, err
	}
	if cfg.DefaultCourseDisplay, err = intEnv("FORMAT_COURSEDISPLAY", 0); err != nil {
		return nil, err
	}

	return cfg, nil
}

func intEnv(key string, d int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return d, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	// Критичные: БД
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}

	// Без секрета все запросы будут анонимными: статусы не посчитать
	if strings.TrimSpace(c.JWTSecret) == "" {
		warnings = append(warnings, "JWT_SECRET is empty")
	}

	if c.SiteURL == "" {
		warnings = append(warnings, "SITEURL is empty, links will be relative")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// GetDSN: полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe: DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
