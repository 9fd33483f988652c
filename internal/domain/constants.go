package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default agenda values, used when the configuration omits them.
const (
	DefaultHoraInicio       = "09:00"
	DefaultHoraFin          = "16:30" // inclusive: the last slot of the day
	DefaultIntervaloMinutos = 30
)

// Default eligibility policy: a persona with UmbralCancelaciones or more
// cancelled turnos inside the trailing VentanaCancelacionesDias days is
// disqualified from booking until the window ages the cancellations out.
const (
	DefaultUmbralCancelaciones      = 5
	DefaultVentanaCancelacionesDias = 180
)

// Persona field validation bounds (carried over from the intake rules of the
// clinic's registration form).
const (
	MinNombreLen = 2
	MaxNombreLen = 100
	DNILen       = 8
	MaxEdad      = 150
)
