package wizard

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"amerex/internal/entities"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isValidEmail(email string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(email))
}

// Телефон валиден при десяти и более цифрах, форматирование не важно.
func isValidPhone(phone string) bool {
	digits := 0
	for _, char := range phone {
		if unicode.IsDigit(char) {
			digits++
		}
	}
	return digits >= 10
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func validateParty(party entities.Party) error {
	if isBlank(party.Name) ||
		isBlank(party.Email) ||
		isBlank(party.Phone) ||
		isBlank(party.Address) ||
		isBlank(party.City) ||
		isBlank(party.State) ||
		isBlank(party.Zip) ||
		isBlank(party.Country) {
		return ErrMissingRequiredFields
	}
	if !isValidEmail(party.Email) {
		return ErrInvalidEmail
	}
	if !isValidPhone(party.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

func validatePackage(pkg entities.Package) error {
	switch pkg.Type {
	case entities.PackageEnvelope:
		// габариты конверта фиксированы и не проверяются
	case entities.PackageSmallBox, entities.PackageLargeBox, entities.PackagePallet:
		if pkg.Length <= 0 || pkg.Width <= 0 || pkg.Height <= 0 {
			return ErrInvalidDimensions
		}
	default:
		return ErrInvalidPackageType
	}

	if pkg.Weight <= 0 {
		return ErrInvalidWeight
	}
	if pkg.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if pkg.DeclaredValue <= 0 {
		return ErrInvalidDeclaredValue
	}
	if len(strings.TrimSpace(pkg.Description)) < 10 {
		return ErrShortDescription
	}

	return nil
}

// Дата забора не раньше завтрашнего дня и не дальше месяца вперёд,
// сравнение по календарной дате без учёта времени.
func validatePickupDate(pickupDate, now time.Time) error {
	pickup := truncateToDate(pickupDate)
	tomorrow := truncateToDate(now).AddDate(0, 0, 1)
	horizon := truncateToDate(now).AddDate(0, 0, 30)

	if pickup.Before(tomorrow) || pickup.After(horizon) {
		return ErrInvalidPickupDate
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
