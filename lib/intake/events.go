package intake

import (
	"time"
)

// Event действие пользователя или результат внешнего вызова
type Event interface {
	eventName() string
}

type ManualSubmitted struct {
	Record      CandidateRecord
	SubmittedAt time.Time
}

type ResumeConfirmed struct {
	Record      CandidateRecord
	SubmittedAt time.Time
}

// Viewed повторный показ текущего этапа
type Viewed struct{}

type GenerationSucceeded struct {
	Text string
}

type GenerationFailed struct {
	Err error
}

type RegenerateRequested struct{}

type EmailRequested struct{}

type DownloadRequested struct {
	Format DocumentFormat
}

type FinishRequested struct{}

func (ManualSubmitted) eventName() string     { return "manual_submitted" }
func (ResumeConfirmed) eventName() string     { return "resume_confirmed" }
func (Viewed) eventName() string              { return "viewed" }
func (GenerationSucceeded) eventName() string { return "generation_succeeded" }
func (GenerationFailed) eventName() string    { return "generation_failed" }
func (RegenerateRequested) eventName() string { return "regenerate_requested" }
func (EmailRequested) eventName() string      { return "email_requested" }
func (DownloadRequested) eventName() string   { return "download_requested" }
func (FinishRequested) eventName() string     { return "finish_requested" }

// EventName имя события для логов
func EventName(ev Event) string {
	if ev == nil {
		return ""
	}
	return ev.eventName()
}

// Effect инструкция с побочным эффектом, исполняется вызывающим слоем
type Effect interface {
	effectName() string
}

type SaveCandidate struct {
	Record CandidateRecord
}

type GenerateQuestions struct {
	Keywords []string
	Role     string
}

type DeliverByEmail struct {
	To        string
	Name      string
	Questions string
}

type RenderDocument struct {
	Questions string
	Format    DocumentFormat
}

type DeleteCandidates struct {
	Email string
}

func (SaveCandidate) effectName() string     { return "save_candidate" }
func (GenerateQuestions) effectName() string { return "generate_questions" }
func (DeliverByEmail) effectName() string    { return "deliver_by_email" }
func (RenderDocument) effectName() string    { return "render_document" }
func (DeleteCandidates) effectName() string  { return "delete_candidates" }

func EffectName(eff Effect) string {
	if eff == nil {
		return ""
	}
	return eff.effectName()
}
