package validators

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// IsPhone проверяет номер по плану нумерации страны countryCode (ISO 3166-1 alpha-2).
// Пустой код страны допустим только для номеров в международном формате (+...).
// Ошибки разбора не пробрасываются, любой неразобранный номер считается невалидным.
func IsPhone(phone, countryCode string) (valid bool) {
	defer func() {
		if r := recover(); r != nil {
			valid = false
		}
	}()
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}
	region := strings.ToUpper(strings.TrimSpace(countryCode))
	if region != "" && phonenumbers.GetCountryCodeForRegion(region) == 0 {
		return false
	}
	number, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(number)
}
