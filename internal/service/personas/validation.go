package personas

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/falvarezg/turnos-service/internal/domain"
)

var (
	nombreRegexp   = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚüÜñÑ ]+$`)
	emailRegexp    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	dniRegexp      = regexp.MustCompile(`^[0-9]{8}$`)
	telefonoRegexp = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// normalizeNombre валидирует имя и приводит каждое слово к заглавной букве
func normalizeNombre(nombre string) (string, error) {
	nombre = strings.TrimSpace(nombre)
	if len([]rune(nombre)) < domain.MinNombreLen || len([]rune(nombre)) > domain.MaxNombreLen {
		return "", fmt.Errorf("%w: nombre must be between %d and %d characters",
			ErrInvalidInput, domain.MinNombreLen, domain.MaxNombreLen)
	}
	if !nombreRegexp.MatchString(nombre) {
		return "", fmt.Errorf("%w: nombre must contain only letters and spaces", ErrInvalidInput)
	}

	words := strings.Fields(nombre)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " "), nil
}

// normalizeEmail валидирует email и приводит его к нижнему регистру
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegexp.MatchString(email) {
		return "", fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	return email, nil
}

// validateDNI проверяет, что DNI состоит ровно из 8 цифр
func validateDNI(dni string) (string, error) {
	dni = strings.TrimSpace(dni)
	if !dniRegexp.MatchString(dni) {
		return "", fmt.Errorf("%w: dni must be exactly %d digits", ErrInvalidInput, domain.DNILen)
	}
	return dni, nil
}

// normalizeTelefono очищает телефон от разделителей и валидирует его.
// Пустое значение допустимо.
func normalizeTelefono(telefono string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(telefono))
	if cleaned == "" {
		return "", nil
	}
	if !telefonoRegexp.MatchString(cleaned) {
		return "", fmt.Errorf("%w: telefono must be 10 to 15 digits, optionally prefixed with +", ErrInvalidInput)
	}
	return cleaned, nil
}

// parseFechaNacimiento парсит и валидирует дату рождения на момент hoy
func parseFechaNacimiento(raw string, hoy time.Time) (time.Time, error) {
	fecha, err := time.Parse(domain.DateFormat, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha_nacimiento must use format %s", ErrInvalidInput, domain.DateFormat)
	}
	if fecha.Year() < 1900 {
		return time.Time{}, fmt.Errorf("%w: fecha_nacimiento before 1900", ErrInvalidInput)
	}
	if fecha.After(hoy) {
		return time.Time{}, fmt.Errorf("%w: fecha_nacimiento in the future", ErrInvalidInput)
	}

	edad, err := domain.Edad(fecha, hoy)
	if err != nil || edad > domain.MaxEdad {
		return time.Time{}, fmt.Errorf("%w: edad out of range", ErrInvalidInput)
	}

	return fecha, nil
}

// validateOrdering проверяет поля сортировки фильтра поиска
func validateOrdering(orderBy, order string) (string, string, error) {
	orderBy = strings.ToLower(strings.TrimSpace(orderBy))
	order = strings.ToLower(strings.TrimSpace(order))

	if orderBy == "" {
		orderBy = domain.OrderByID
	}
	if order == "" {
		order = "asc"
	}

	switch orderBy {
	case domain.OrderByID, domain.OrderByNombre, domain.OrderByEmail, domain.OrderByFechaNacimiento, domain.OrderByEdad:
	default:
		return "", "", fmt.Errorf("%w: invalid order_by field %q", ErrInvalidInput, orderBy)
	}
	if order != "asc" && order != "desc" {
		return "", "", fmt.Errorf("%w: order must be asc or desc", ErrInvalidInput)
	}

	return orderBy, order, nil
}

// validateEdadRange проверяет согласованность фильтра по возрасту
func validateEdadRange(edadMin, edadMax *int) error {
	if edadMin != nil && (*edadMin < 0 || *edadMin > domain.MaxEdad) {
		return fmt.Errorf("%w: edad_min out of range", ErrInvalidInput)
	}
	if edadMax != nil && (*edadMax < 0 || *edadMax > domain.MaxEdad) {
		return fmt.Errorf("%w: edad_max out of range", ErrInvalidInput)
	}
	if edadMin != nil && edadMax != nil && *edadMin > *edadMax {
		return fmt.Errorf("%w: edad_min greater than edad_max", ErrInvalidInput)
	}
	return nil
}
