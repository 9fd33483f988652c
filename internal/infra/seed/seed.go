package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
)

// PersonaRepository методы репозитория персон, нужные для сидинга
type PersonaRepository interface {
	CountFiltered(ctx context.Context, filter domain.PersonaFilter, hoy time.Time) (int, error)
	Create(ctx context.Context, p *domain.Persona) (*domain.Persona, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// samplePersonas is the demo dataset inserted on first start.
func samplePersonas() []*domain.Persona {
	return []*domain.Persona{
		{
			Nombre:          "Juan Pérez",
			Email:           "juan.perez@example.com",
			DNI:             "12345678",
			Telefono:        "+5491122334455",
			FechaNacimiento: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
			Habilitado:      true,
		},
		{
			Nombre:          "María García",
			Email:           "maria.garcia@example.com",
			DNI:             "23456789",
			Telefono:        "+5491133445566",
			FechaNacimiento: time.Date(1985, 9, 3, 0, 0, 0, 0, time.UTC),
			Habilitado:      true,
		},
		{
			Nombre:          "Carlos López",
			Email:           "carlos.lopez@example.com",
			DNI:             "34567890",
			Telefono:        "",
			FechaNacimiento: time.Date(2001, 1, 28, 0, 0, 0, 0, time.UTC),
			Habilitado:      true,
		},
	}
}

// Run inserts the sample personas when the table is empty. Re-running against
// a populated database is a no-op, so the seed can stay enabled in dev
// configs without duplicating data.
func Run(ctx context.Context, repo PersonaRepository, log Logger) error {
	total, err := repo.CountFiltered(ctx, domain.PersonaFilter{}, time.Now())
	if err != nil {
		return fmt.Errorf("seed: count personas: %w", err)
	}
	if total > 0 {
		log.Info("Seed skipped: %d personas already present", total)
		return nil
	}

	for _, p := range samplePersonas() {
		if _, err := repo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed: create persona dni=%s: %w", p.DNI, err)
		}
	}

	log.Info("Seed completed: %d sample personas inserted", len(samplePersonas()))
	return nil
}
