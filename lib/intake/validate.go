package intake

import (
	"fmt"
	"strings"

	"talent-scout-backend/lib/resume"
	"talent-scout-backend/lib/validators"
)

const MaxYearsExperience = 50

type requiredField struct {
	label string
	value string
}

// Normalize убирает лишние пробелы, код страны приводит к верхнему регистру
func (r CandidateRecord) Normalize() CandidateRecord {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Position = strings.TrimSpace(r.Position)
	r.Location = strings.TrimSpace(r.Location)
	r.Country = strings.ToUpper(strings.TrimSpace(r.Country))
	r.TechStack = strings.TrimSpace(r.TechStack)
	return r
}

// ValidateRecord общая проверка анкеты для обоих способов заполнения.
// Порядок проверок: обязательные поля, почта, телефон (только ручной ввод), согласие.
func ValidateRecord(record CandidateRecord, path CollectionPath) error {
	if missing := missingFields(record, path); len(missing) > 0 {
		return NewValidationError(fmt.Sprintf("Please fill all required fields: %s.", strings.Join(missing, ", ")))
	}
	if !validators.IsEmail(record.Email) {
		return NewValidationError("Enter a valid email.")
	}
	if path == PathManual {
		if record.YearsExperience < 0 || record.YearsExperience > MaxYearsExperience {
			return NewValidationError(fmt.Sprintf("Years of experience must be between 0 and %d.", MaxYearsExperience))
		}
		if !validators.IsPhone(record.Phone, record.Country) {
			return NewValidationError("Enter a valid phone number for your country.")
		}
	}
	if !record.Consent {
		return NewValidationError("GDPR consent is required.")
	}
	return nil
}

func missingFields(record CandidateRecord, path CollectionPath) []string {
	var fields []requiredField
	switch path {
	case PathManual:
		fields = []requiredField{
			{"Full Name", record.Name},
			{"Email Address", record.Email},
			{"Phone Number", record.Phone},
			{"Job Role / Position", record.Position},
			{"Location", record.Location},
			{"Tech Stack", record.TechStack},
		}
	default:
		// имя, телефон и локация при загрузке резюме не запрашиваются
		fields = []requiredField{
			{"Email Address", record.Email},
			{"Job Role / Position", record.Position},
			{"Tech Stack", record.TechStack},
		}
	}
	missing := []string{}
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.label)
		}
	}
	return missing
}

// Keywords ключевые технологии из свободного текста стека
func Keywords(techStack string) []string {
	return resume.DetectSkills(techStack)
}

// PrefillFromResume анкета для подтверждения пользователем после разбора резюме
func PrefillFromResume(result resume.ExtractionResult) CandidateRecord {
	return CandidateRecord{
		Email:     result.InferredEmail,
		Position:  result.RoleOrDefault(),
		TechStack: strings.Join(result.Skills, ", "),
	}
}
