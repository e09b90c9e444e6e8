package intake

import (
	"strings"
	"time"

	"talent-scout-backend/lib/validators"

	"github.com/pkg/errors"
)

// Apply чистая функция переходов сессии. Побочные эффекты не выполняет,
// а возвращает их списком для вызывающего слоя. При ошибке состояние не меняется.
func Apply(state SessionState, ev Event) (SessionState, []Effect, error) {
	switch e := ev.(type) {
	case ManualSubmitted:
		return submit(state, e.Record, PathManual, e.SubmittedAt)
	case ResumeConfirmed:
		return submit(state, e.Record, PathResume, e.SubmittedAt)
	case Viewed:
		return view(state)
	case GenerationSucceeded:
		if state.Stage != StageGeneratingQuestions {
			return state, nil, ErrInvalidTransition
		}
		text := e.Text
		state.GeneratedQuestions = &text
		return state, nil, nil
	case GenerationFailed:
		if state.Stage != StageGeneratingQuestions {
			return state, nil, ErrInvalidTransition
		}
		cause := e.Err
		if cause == nil {
			cause = errors.New("unknown error")
		}
		return state, nil, &GenerationError{Err: cause}
	case RegenerateRequested:
		if state.Stage != StageGeneratingQuestions || state.Candidate == nil {
			return state, nil, ErrInvalidTransition
		}
		return state, []Effect{generateEffect(*state.Candidate)}, nil
	case EmailRequested:
		if state.Stage != StageGeneratingQuestions || state.Candidate == nil {
			return state, nil, ErrInvalidTransition
		}
		if !state.HasQuestions() {
			return state, nil, NewValidationError("Questions have not been generated yet.")
		}
		return state, []Effect{DeliverByEmail{
			To:        state.Candidate.Email,
			Name:      state.Candidate.Name,
			Questions: state.Questions(),
		}}, nil
	case DownloadRequested:
		if state.Stage != StageGeneratingQuestions {
			return state, nil, ErrInvalidTransition
		}
		if e.Format != FormatPdf && e.Format != FormatXlsx {
			return state, nil, NewValidationError("Unknown document format.")
		}
		if !state.HasQuestions() {
			return state, nil, NewValidationError("Questions have not been generated yet.")
		}
		return state, []Effect{RenderDocument{Questions: state.Questions(), Format: e.Format}}, nil
	case FinishRequested:
		if state.Stage != StageGeneratingQuestions {
			return state, nil, ErrInvalidTransition
		}
		state.Stage = StageEnd
		return state, nil, nil
	default:
		return state, nil, ErrInvalidTransition
	}
}

func submit(state SessionState, record CandidateRecord, path CollectionPath, at time.Time) (SessionState, []Effect, error) {
	if state.Stage != StageInfoGathering {
		return state, nil, ErrInvalidTransition
	}
	record = record.Normalize()
	if err := ValidateRecord(record, path); err != nil {
		return state, nil, err
	}
	if at.IsZero() {
		at = time.Now()
	}
	record.CreatedAt = at

	state.Stage = StageGeneratingQuestions
	state.Candidate = &record
	state.GeneratedQuestions = nil

	effects := []Effect{}
	if path == PathManual {
		effects = append(effects, SaveCandidate{Record: record})
	}
	effects = append(effects, generateEffect(record))
	return state, effects, nil
}

func view(state SessionState) (SessionState, []Effect, error) {
	if state.Stage != StageGeneratingQuestions || state.HasQuestions() || state.Candidate == nil {
		return state, nil, nil
	}
	// вопросов нет (первый вход или прошлая генерация упала), пробуем снова
	return state, []Effect{generateEffect(*state.Candidate)}, nil
}

func generateEffect(record CandidateRecord) GenerateQuestions {
	return GenerateQuestions{
		Keywords: Keywords(record.TechStack),
		Role:     record.Position,
	}
}

// PlanDeletion удаление данных доступно с любого этапа и не меняет состояние сессии
func PlanDeletion(email string) ([]Effect, error) {
	email = strings.TrimSpace(email)
	if !validators.IsEmail(email) {
		return nil, NewValidationError("Enter a valid email.")
	}
	return []Effect{DeleteCandidates{Email: email}}, nil
}
