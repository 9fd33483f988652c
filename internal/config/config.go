package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/falvarezg/turnos-service/internal/domain"
)

// Config is the immutable process configuration, loaded once at startup and
// passed by injection. Nothing reads it as ambient global state.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Agenda   AgendaConfig   `toml:"agenda"`
	Turnos   TurnosConfig   `toml:"turnos"`
	Seed     SeedConfig     `toml:"seed"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AgendaConfig is the appointment window: first and last bookable slot
// (inclusive) and the slot step.
type AgendaConfig struct {
	HoraInicio       string `toml:"hora_inicio"`
	HoraFin          string `toml:"hora_fin"`
	IntervaloMinutos int    `toml:"intervalo_minutos"`
}

// TurnosConfig holds the ordered canonical status labels
// (pending, confirmed, cancelled, attended) and the eligibility policy.
type TurnosConfig struct {
	Estados                  []string `toml:"estados"`
	UmbralCancelaciones      int      `toml:"umbral_cancelaciones"`
	VentanaCancelacionesDias int      `toml:"ventana_cancelaciones_dias"`
}

// SeedConfig controls sample-data seeding at startup.
type SeedConfig struct {
	Enabled bool `toml:"enabled"`
}

// Load reads and validates the configuration file, filling defaults for the
// agenda and turnos sections when omitted.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Agenda.HoraInicio == "" {
		cfg.Agenda.HoraInicio = domain.DefaultHoraInicio
	}
	if cfg.Agenda.HoraFin == "" {
		cfg.Agenda.HoraFin = domain.DefaultHoraFin
	}
	if cfg.Agenda.IntervaloMinutos == 0 {
		cfg.Agenda.IntervaloMinutos = domain.DefaultIntervaloMinutos
	}
	if len(cfg.Turnos.Estados) == 0 {
		set := domain.DefaultEstadoSet()
		for _, estado := range set.Todos() {
			cfg.Turnos.Estados = append(cfg.Turnos.Estados, string(estado))
		}
	}
	if cfg.Turnos.UmbralCancelaciones == 0 {
		cfg.Turnos.UmbralCancelaciones = domain.DefaultUmbralCancelaciones
	}
	if cfg.Turnos.VentanaCancelacionesDias == 0 {
		cfg.Turnos.VentanaCancelacionesDias = domain.DefaultVentanaCancelacionesDias
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "turnos-service"
	}
}

func validate(cfg *Config) error {
	if _, err := domain.NewAgenda(cfg.Agenda.HoraInicio, cfg.Agenda.HoraFin, cfg.Agenda.IntervaloMinutos); err != nil {
		return fmt.Errorf("config: [agenda]: %w", err)
	}
	if _, err := domain.NewEstadoSet(cfg.Turnos.Estados); err != nil {
		return fmt.Errorf("config: [turnos] estados: %w", err)
	}
	if cfg.Turnos.UmbralCancelaciones < 1 {
		return fmt.Errorf("config: [turnos] umbral_cancelaciones must be positive")
	}
	if cfg.Turnos.VentanaCancelacionesDias < 1 {
		return fmt.Errorf("config: [turnos] ventana_cancelaciones_dias must be positive")
	}
	return nil
}

// AgendaDomain converts the agenda section to its domain value.
func (c *Config) AgendaDomain() domain.Agenda {
	agenda, _ := domain.NewAgenda(c.Agenda.HoraInicio, c.Agenda.HoraFin, c.Agenda.IntervaloMinutos)
	return agenda
}

// EstadoSetDomain converts the status labels to their domain value.
func (c *Config) EstadoSetDomain() domain.EstadoSet {
	set, _ := domain.NewEstadoSet(c.Turnos.Estados)
	return set
}
