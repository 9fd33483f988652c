package domain

import (
	"errors"
	"fmt"
	"strings"
)

// EstadoTurno represents the status of a turno.
type EstadoTurno string

// Canonical default labels. The actual canonical set (including casing) is
// loaded from configuration; these are the values used when the configuration
// does not override them.
const (
	EstadoPendiente  EstadoTurno = "Pendiente"
	EstadoConfirmado EstadoTurno = "Confirmado"
	EstadoCancelado  EstadoTurno = "Cancelado"
	EstadoAsistido   EstadoTurno = "Asistido"
)

var (
	// ErrEstadoDesconocido возвращается при метке статуса вне настроенного набора
	ErrEstadoDesconocido = errors.New("domain: unknown turno status label")

	// ErrEstadoSetInvalido возвращается при некорректном наборе меток статусов
	ErrEstadoSetInvalido = errors.New("domain: invalid status label set")
)

// EstadoSet is the closed, ordered set of legal status labels, loaded once
// from configuration. All status comparison in the engine goes through it so
// raw strings are matched (case-insensitively) in exactly one place.
type EstadoSet struct {
	Pendiente  EstadoTurno
	Confirmado EstadoTurno
	Cancelado  EstadoTurno
	Asistido   EstadoTurno
}

// DefaultEstadoSet returns the set with the default Spanish labels.
func DefaultEstadoSet() EstadoSet {
	return EstadoSet{
		Pendiente:  EstadoPendiente,
		Confirmado: EstadoConfirmado,
		Cancelado:  EstadoCancelado,
		Asistido:   EstadoAsistido,
	}
}

// NewEstadoSet builds the set from the ordered configuration labels
// (pending, confirmed, cancelled, attended). Labels must be non-empty and
// pairwise distinct ignoring case.
func NewEstadoSet(labels []string) (EstadoSet, error) {
	if len(labels) != 4 {
		return EstadoSet{}, fmt.Errorf("%w: expected 4 labels, got %d", ErrEstadoSetInvalido, len(labels))
	}

	seen := make(map[string]struct{}, 4)
	for _, label := range labels {
		if strings.TrimSpace(label) == "" {
			return EstadoSet{}, fmt.Errorf("%w: empty label", ErrEstadoSetInvalido)
		}
		key := strings.ToLower(label)
		if _, dup := seen[key]; dup {
			return EstadoSet{}, fmt.Errorf("%w: duplicate label %q", ErrEstadoSetInvalido, label)
		}
		seen[key] = struct{}{}
	}

	return EstadoSet{
		Pendiente:  EstadoTurno(labels[0]),
		Confirmado: EstadoTurno(labels[1]),
		Cancelado:  EstadoTurno(labels[2]),
		Asistido:   EstadoTurno(labels[3]),
	}, nil
}

// Todos returns the labels in their canonical order.
func (s EstadoSet) Todos() []EstadoTurno {
	return []EstadoTurno{s.Pendiente, s.Confirmado, s.Cancelado, s.Asistido}
}

// Normalize matches raw case-insensitively against the set and returns the
// canonical-cased label.
func (s EstadoSet) Normalize(raw string) (EstadoTurno, error) {
	for _, estado := range s.Todos() {
		if strings.EqualFold(raw, string(estado)) {
			return estado, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrEstadoDesconocido, raw)
}

func (s EstadoSet) is(estado EstadoTurno, canonical EstadoTurno) bool {
	return strings.EqualFold(string(estado), string(canonical))
}

// EsPendiente reports whether estado is the pending label.
func (s EstadoSet) EsPendiente(estado EstadoTurno) bool { return s.is(estado, s.Pendiente) }

// EsConfirmado reports whether estado is the confirmed label.
func (s EstadoSet) EsConfirmado(estado EstadoTurno) bool { return s.is(estado, s.Confirmado) }

// EsCancelado reports whether estado is the cancelled label.
func (s EstadoSet) EsCancelado(estado EstadoTurno) bool { return s.is(estado, s.Cancelado) }

// EsAsistido reports whether estado is the attended label.
func (s EstadoSet) EsAsistido(estado EstadoTurno) bool { return s.is(estado, s.Asistido) }

// EsInmutable reports whether no field of a turno in this state may change.
// Cancelado and Asistido are terminal for the engine; Asistido itself is only
// ever written by the administrative update path.
func (s EstadoSet) EsInmutable(estado EstadoTurno) bool {
	return s.EsCancelado(estado) || s.EsAsistido(estado)
}

// Bloqueantes returns the statuses that block a slot for the create/update
// conflict check: everything except Cancelado.
func (s EstadoSet) Bloqueantes() []EstadoTurno {
	return []EstadoTurno{s.Pendiente, s.Confirmado, s.Asistido}
}

// Ocupantes returns the statuses that hide a slot from the availability
// listing: Confirmado and Asistido. Pendiente blocks creation but is not
// listed as occupied.
func (s EstadoSet) Ocupantes() []EstadoTurno {
	return []EstadoTurno{s.Confirmado, s.Asistido}
}
