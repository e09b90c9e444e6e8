package intake

import (
	"time"
)

type Stage string

const (
	StageInfoGathering       Stage = "info_gathering"
	StageGeneratingQuestions Stage = "generating_questions"
	StageEnd                 Stage = "end"
)

// CollectionPath способ заполнения анкеты
type CollectionPath string

const (
	PathManual CollectionPath = "manual"
	PathResume CollectionPath = "resume"
)

type DocumentFormat string

const (
	FormatPdf  DocumentFormat = "pdf"
	FormatXlsx DocumentFormat = "xlsx"
)

// CandidateRecord анкета кандидата. Name, Phone, YearsExperience, Location и Country
// заполняются только при ручном вводе.
type CandidateRecord struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	YearsExperience int       `json:"years_experience"`
	Position        string    `json:"position"`
	Location        string    `json:"location"`
	Country         string    `json:"country"`
	TechStack       string    `json:"tech_stack"`
	Consent         bool      `json:"consent"`
	CreatedAt       time.Time `json:"created_at"`
}

// SessionState состояние одной сессии кандидата, живет только в памяти
type SessionState struct {
	Stage              Stage
	Candidate          *CandidateRecord
	GeneratedQuestions *string
}

func NewSessionState() SessionState {
	return SessionState{Stage: StageInfoGathering}
}

func (s SessionState) HasQuestions() bool {
	return s.GeneratedQuestions != nil
}

func (s SessionState) Questions() string {
	if s.GeneratedQuestions == nil {
		return ""
	}
	return *s.GeneratedQuestions
}
