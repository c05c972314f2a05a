package authz

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shenikar/outage_tracker/internal/models"
)

// ValidationErrors - ошибки валидации по полям: ключ - имя поля, значение -
// сообщение для пользователя. Собираются все сразу, без short-circuit,
// чтобы UI мог подсветить каждое невалидное поле.
type ValidationErrors map[string]string

func (ve ValidationErrors) Error() string {
	fields := make([]string, 0, len(ve))
	for f := range ve {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(ve))
	for _, f := range fields {
		parts = append(parts, f+": "+ve[f])
	}
	return strings.Join(parts, "; ")
}

var (
	emailRegexp   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipRegexp     = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// usStates - фиксированное перечисление кодов регионов для поля state
var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "DC": true, "FL": true, "GA": true, "HI": true,
	"ID": true, "IL": true, "IN": true, "IA": true, "KS": true, "KY": true,
	"LA": true, "ME": true, "MD": true, "MA": true, "MI": true, "MN": true,
	"MS": true, "MO": true, "MT": true, "NE": true, "NV": true, "NH": true,
	"NJ": true, "NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true, "SD": true,
	"TN": true, "TX": true, "UT": true, "VT": true, "VA": true, "WA": true,
	"WV": true, "WI": true, "WY": true,
}

// NormalizePhone удаляет из номера все символы, кроме цифр
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

func emailError(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email address is required"
	}
	if !emailRegexp.MatchString(strings.TrimSpace(email)) {
		return "Please enter a valid email address"
	}
	return ""
}

func phoneError(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return "Phone number is required"
	}
	if len(NormalizePhone(phone)) != 10 {
		return "Please enter a valid 10-digit phone number"
	}
	return ""
}

// ValidateContact проверяет контактные поля репортера. Передается только то,
// что присутствует в запросе: nil-указатель не проверяется.
func ValidateContact(email, phone *string) ValidationErrors {
	ve := ValidationErrors{}
	if email != nil {
		if msg := emailError(*email); msg != "" {
			ve["reporter_email"] = msg
		}
	}
	if phone != nil {
		if msg := phoneError(*phone); msg != "" {
			ve["reporter_phone"] = msg
		}
	}
	return ve
}

// ValidateCreate проверяет поля нового отключения. Правила повторяют форму
// регистрации источника: минимальные длины, перечисление регионов, формат ZIP,
// диапазоны координат.
func ValidateCreate(loc *models.Location) ValidationErrors {
	ve := ValidationErrors{}

	if len(strings.TrimSpace(loc.Name)) < 3 {
		ve["name"] = "Name must be at least 3 characters"
	}
	if len(strings.TrimSpace(loc.Address)) < 5 {
		ve["address"] = "Address must be at least 5 characters"
	}
	if len(strings.TrimSpace(loc.City)) < 2 {
		ve["city"] = "City must be at least 2 characters"
	}
	if !usStates[strings.ToUpper(strings.TrimSpace(loc.State))] {
		ve["state"] = "State is required"
	}
	if !zipRegexp.MatchString(strings.TrimSpace(loc.ZipCode)) {
		ve["zip_code"] = "ZIP code must be in format 12345 or 12345-6789"
	}
	if len(strings.TrimSpace(loc.Description)) < 10 {
		ve["description"] = "Description must be at least 10 characters"
	}
	if loc.EstimatedCustomersAffected != nil && *loc.EstimatedCustomersAffected < 0 {
		ve["estimated_customers_affected"] = "Estimated customers affected must not be negative"
	}
	if loc.Latitude != nil && (*loc.Latitude < -90 || *loc.Latitude > 90) {
		ve["latitude"] = "Latitude must be between -90 and 90"
	}
	if loc.Longitude != nil && (*loc.Longitude < -180 || *loc.Longitude > 180) {
		ve["longitude"] = "Longitude must be between -180 and 180"
	}
	if loc.Priority != "" && !loc.Priority.Valid() {
		ve["priority"] = "Invalid priority"
	}
	if msg := emailError(loc.ReporterEmail); msg != "" {
		ve["reporter_email"] = msg
	}
	if msg := phoneError(loc.ReporterPhone); msg != "" {
		ve["reporter_phone"] = msg
	}
	return ve
}
