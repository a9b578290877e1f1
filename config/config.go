package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config agrupa toda la configuración del servicio.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Redis struct {
		Addr string `yaml:"addr"` // vacío = cache en memoria
	} `yaml:"redis"`
	Database struct {
		SQLitePath  string `yaml:"sqlite_path"`
		PostgresDSN string `yaml:"postgres_dsn"` // vacío = solo sqlite
	} `yaml:"database"`
	Agenda struct {
		CycleStart   string `yaml:"cycle_start"` // YYYY-MM-DD, inicio del ciclo de aportes
		ReminderCron string `yaml:"reminder_cron"`
	} `yaml:"agenda"`
	Tracing struct {
		OTLPEndpoint string `yaml:"otlp_endpoint"`
		ServiceName  string `yaml:"service_name"`
	} `yaml:"tracing"`
	Limits struct {
		MaxPrincipal   float64 `yaml:"max_principal"`
		MaxTermMonths  int     `yaml:"max_term_months"`
		MaxMonthlyRate float64 `yaml:"max_monthly_rate"`
	} `yaml:"limits"`
}

// Load lee la configuración desde un archivo YAML y aplica variables de entorno.
func Load(path string) (*Config, error) {
	// .env si existe (se ignora el error)
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Overrides por entorno
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Database.PostgresDSN = v
	}
	if v := os.Getenv("AGENDA_CYCLE_START"); v != "" {
		cfg.Agenda.CycleStart = v
	}
	if v := os.Getenv("OTEL_ENDPOINT"); v != "" {
		cfg.Tracing.OTLPEndpoint = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "inka.db"
	}
	if cfg.Agenda.CycleStart == "" {
		// Primer lunes del año en curso
		cfg.Agenda.CycleStart = firstMonday(time.Now().Year()).Format("2006-01-02")
	}
	if cfg.Agenda.ReminderCron == "" {
		cfg.Agenda.ReminderCron = "0 0 8 * * *" // todos los días a las 08:00
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = "inka-simulator"
	}
	if cfg.Limits.MaxPrincipal == 0 {
		cfg.Limits.MaxPrincipal = 1_000_000
	}
	if cfg.Limits.MaxTermMonths == 0 {
		cfg.Limits.MaxTermMonths = 120
	}
	if cfg.Limits.MaxMonthlyRate == 0 {
		cfg.Limits.MaxMonthlyRate = 0.20
	}

	return cfg, nil
}

// CycleStartDate devuelve el inicio del ciclo de aportes como fecha.
func (c *Config) CycleStartDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.Agenda.CycleStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse cycle_start %q: %w", c.Agenda.CycleStart, err)
	}
	return t, nil
}

func firstMonday(year int) time.Time {
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
