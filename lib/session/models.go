package sessionhandler

import (
	gpthandler "talent-scout-backend/lib/gpt"
	"talent-scout-backend/lib/intake"
	"talent-scout-backend/lib/resume"
	sessionstore "talent-scout-backend/lib/session/store"
)

// View состояние сессии для клиента
type View struct {
	ID        string                  `json:"id"`
	Stage     intake.Stage            `json:"stage"`
	Candidate *intake.CandidateRecord `json:"candidate,omitempty"`
	Questions *string                 `json:"questions,omitempty"`
	QA        []gpthandler.QA         `json:"qa,omitempty"`
}

func newView(entry sessionstore.Entry) View {
	view := View{
		ID:        entry.ID,
		Stage:     entry.State.Stage,
		Candidate: entry.State.Candidate,
	}
	if entry.State.HasQuestions() {
		text := entry.State.Questions()
		view.Questions = &text
		view.QA = gpthandler.ParseQuestions(text)
	}
	return view
}

type ResumeResult struct {
	Extraction resume.ExtractionResult `json:"extraction"`
	Prefill    intake.CandidateRecord  `json:"prefill"`
}

type Document struct {
	FileName    string
	ContentType string
	Body        []byte
}

type DeleteResult struct {
	Records  int64 `json:"records"`
	Archived int   `json:"archived"`
}

type outcome struct {
	document *Document
}
