package sessionapimodels

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"talent-scout-backend/lib/intake"
)

var validate = validator.New()

// ManualForm анкета, заполненная вручную
type ManualForm struct {
	Name            string `json:"name" validate:"max=200"`
	Email           string `json:"email" validate:"max=254"`
	Phone           string `json:"phone" validate:"max=32"`
	YearsExperience int    `json:"years_experience"` // диапазон проверяется при переходе
	Position        string `json:"position" validate:"max=200"`
	Location        string `json:"location" validate:"max=200"`
	Country         string `json:"country" validate:"omitempty,len=2,alpha"` // ISO 3166-1 alpha-2
	TechStack       string `json:"tech_stack" validate:"max=2000"`
	Consent         bool   `json:"consent"`
}

func (r ManualForm) Validate() error {
	return checkStruct(r)
}

func (r ManualForm) ToRecord() intake.CandidateRecord {
	return intake.CandidateRecord{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		YearsExperience: r.YearsExperience,
		Position:        r.Position,
		Location:        r.Location,
		Country:         r.Country,
		TechStack:       r.TechStack,
		Consent:         r.Consent,
	}
}

// ResumeConfirmForm подтвержденные пользователем данные из резюме
type ResumeConfirmForm struct {
	Email     string `json:"email" validate:"max=254"`
	Position  string `json:"position" validate:"max=200"`
	TechStack string `json:"tech_stack" validate:"max=2000"`
	Consent   bool   `json:"consent"`
}

func (r ResumeConfirmForm) Validate() error {
	return checkStruct(r)
}

func (r ResumeConfirmForm) ToRecord() intake.CandidateRecord {
	return intake.CandidateRecord{
		Email:     r.Email,
		Position:  r.Position,
		TechStack: r.TechStack,
		Consent:   r.Consent,
	}
}

type DeleteRequest struct {
	Email string `json:"email" validate:"required,max=254"`
}

func (r DeleteRequest) Validate() error {
	return checkStruct(r)
}

func checkStruct(r interface{}) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	list := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		list = append(list, describe(fieldErr))
	}
	return errors.New(strings.Join(list, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := strings.ToLower(fieldErr.Field())
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	case "len", "alpha":
		return fmt.Sprintf("%s must be a 2-letter ISO country code", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

type DeleteResponse struct {
	Records  int64 `json:"records"`  // удалено анкет
	Archived int   `json:"archived"` // удалено писем из архива
}

type PrivacyNotice struct {
	Storage       string `json:"storage"`
	RetentionDays int    `json:"retention_days"`
	Deletion      string `json:"deletion"`
	Contact       string `json:"contact"`
}
