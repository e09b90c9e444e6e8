package intake

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func validManual() CandidateRecord {
	return CandidateRecord{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "650-253-0000",
		YearsExperience: 5,
		Position:        "Backend Developer",
		Location:        "Mountain View",
		Country:         "us",
		TechStack:       "Python, Docker, python, AWS",
		Consent:         true,
	}
}

func countEffects[T Effect](effects []Effect) int {
	count := 0
	for _, eff := range effects {
		if _, ok := eff.(T); ok {
			count++
		}
	}
	return count
}

func generatingState(t *testing.T) SessionState {
	state, _, err := Apply(NewSessionState(), ManualSubmitted{Record: validManual()})
	require.Nil(t, err)
	return state
}

func TestManualSubmit(t *testing.T) {
	submittedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run(`valid form check`, func(t *testing.T) {
		state, effects, err := Apply(NewSessionState(), ManualSubmitted{Record: validManual(), SubmittedAt: submittedAt})
		require.Nil(t, err)
		require.Equal(t, StageGeneratingQuestions, state.Stage)
		require.NotNil(t, state.Candidate)
		require.Equal(t, "US", state.Candidate.Country)
		require.Equal(t, submittedAt, state.Candidate.CreatedAt)
		require.False(t, state.HasQuestions())

		require.Len(t, effects, 2)
		save, ok := effects[0].(SaveCandidate)
		require.True(t, ok)
		require.Equal(t, *state.Candidate, save.Record)
		gen, ok := effects[1].(GenerateQuestions)
		require.True(t, ok)
		require.Equal(t, []string{"AWS", "Docker", "Python"}, gen.Keywords)
		require.Equal(t, "Backend Developer", gen.Role)
	})

	t.Run(`consent withheld check`, func(t *testing.T) {
		record := validManual()
		record.Consent = false
		state, effects, err := Apply(NewSessionState(), ManualSubmitted{Record: record})
		require.True(t, IsValidation(err))
		require.Equal(t, "GDPR consent is required.", err.Error())
		require.Equal(t, StageInfoGathering, state.Stage)
		require.Nil(t, state.Candidate)
		require.Zero(t, countEffects[SaveCandidate](effects))
	})

	t.Run(`invalid email check`, func(t *testing.T) {
		record := validManual()
		record.Email = "not-an-email"
		state, effects, err := Apply(NewSessionState(), ManualSubmitted{Record: record})
		require.True(t, IsValidation(err))
		require.Equal(t, "Enter a valid email.", err.Error())
		require.Equal(t, StageInfoGathering, state.Stage)
		require.Empty(t, effects)
	})

	t.Run(`non-latin email accepted check`, func(t *testing.T) {
		record := validManual()
		record.Email = "José.García@correo.es"
		state, _, err := Apply(NewSessionState(), ManualSubmitted{Record: record, SubmittedAt: submittedAt})
		require.Nil(t, err)
		require.Equal(t, StageGeneratingQuestions, state.Stage)
		require.Equal(t, "José.García@correo.es", state.Candidate.Email)
	})

	t.Run(`invalid phone check`, func(t *testing.T) {
		record := validManual()
		record.Phone = "12345"
		state, effects, err := Apply(NewSessionState(), ManualSubmitted{Record: record})
		require.True(t, IsValidation(err))
		require.Equal(t, "Enter a valid phone number for your country.", err.Error())
		require.Equal(t, StageInfoGathering, state.Stage)
		require.Empty(t, effects)
	})

	t.Run(`missing fields check`, func(t *testing.T) {
		record := validManual()
		record.Name = "  "
		record.Location = ""
		_, effects, err := Apply(NewSessionState(), ManualSubmitted{Record: record})
		require.True(t, IsValidation(err))
		require.Equal(t, "Please fill all required fields: Full Name, Location.", err.Error())
		require.Empty(t, effects)
	})

	t.Run(`experience out of range check`, func(t *testing.T) {
		record := validManual()
		record.YearsExperience = 51
		_, _, err := Apply(NewSessionState(), ManualSubmitted{Record: record})
		require.True(t, IsValidation(err))
	})

	t.Run(`second submit rejected check`, func(t *testing.T) {
		state := generatingState(t)
		next, effects, err := Apply(state, ManualSubmitted{Record: validManual()})
		require.ErrorIs(t, err, ErrInvalidTransition)
		require.Equal(t, state, next)
		require.Empty(t, effects)
	})
}

func TestResumeConfirm(t *testing.T) {
	t.Run(`resume path waives name phone location check`, func(t *testing.T) {
		record := CandidateRecord{
			Email:     "jane@example.com",
			Position:  "Developer",
			TechStack: "React, AWS, Docker",
			Consent:   true,
		}
		state, effects, err := Apply(NewSessionState(), ResumeConfirmed{Record: record})
		require.Nil(t, err)
		require.Equal(t, StageGeneratingQuestions, state.Stage)
		require.Zero(t, countEffects[SaveCandidate](effects))
		require.Equal(t, 1, countEffects[GenerateQuestions](effects))
	})

	t.Run(`resume path requires consent check`, func(t *testing.T) {
		record := CandidateRecord{Email: "jane@example.com", Position: "Developer", TechStack: "React"}
		state, effects, err := Apply(NewSessionState(), ResumeConfirmed{Record: record})
		require.True(t, IsValidation(err))
		require.Equal(t, StageInfoGathering, state.Stage)
		require.Empty(t, effects)
	})
}

func TestGeneratingQuestions(t *testing.T) {
	t.Run(`view without cache regenerates check`, func(t *testing.T) {
		state := generatingState(t)
		_, effects, err := Apply(state, Viewed{})
		require.Nil(t, err)
		require.Equal(t, 1, countEffects[GenerateQuestions](effects))
	})

	t.Run(`view with cache does not regenerate check`, func(t *testing.T) {
		state := generatingState(t)
		state, _, err := Apply(state, GenerationSucceeded{Text: "Q1: a\nA1: b"})
		require.Nil(t, err)
		for i := 0; i < 3; i++ {
			_, effects, err := Apply(state, Viewed{})
			require.Nil(t, err)
			require.Empty(t, effects)
		}
	})

	t.Run(`regenerate overwrites check`, func(t *testing.T) {
		state := generatingState(t)
		state, _, _ = Apply(state, GenerationSucceeded{Text: "first"})
		state, effects, err := Apply(state, RegenerateRequested{})
		require.Nil(t, err)
		require.Equal(t, 1, countEffects[GenerateQuestions](effects))
		state, _, err = Apply(state, GenerationSucceeded{Text: "second"})
		require.Nil(t, err)
		require.Equal(t, "second", state.Questions())
		require.Equal(t, StageGeneratingQuestions, state.Stage)
	})

	t.Run(`generation failure keeps stage check`, func(t *testing.T) {
		state := generatingState(t)
		next, effects, err := Apply(state, GenerationFailed{Err: errors.New("quota exceeded")})
		require.True(t, IsGeneration(err))
		require.Contains(t, err.Error(), "quota exceeded")
		require.Empty(t, effects)
		require.Equal(t, StageGeneratingQuestions, next.Stage)
		require.False(t, next.HasQuestions())

		_, effects, err = Apply(next, RegenerateRequested{})
		require.Nil(t, err)
		require.Len(t, effects, 1)
	})

	t.Run(`failed regenerate keeps previous questions check`, func(t *testing.T) {
		state := generatingState(t)
		state, _, _ = Apply(state, GenerationSucceeded{Text: "kept"})
		state, _, err := Apply(state, GenerationFailed{Err: errors.New("timeout")})
		require.True(t, IsGeneration(err))
		require.Equal(t, "kept", state.Questions())
	})

	t.Run(`email requires questions check`, func(t *testing.T) {
		state := generatingState(t)
		_, _, err := Apply(state, EmailRequested{})
		require.True(t, IsValidation(err))

		state, _, _ = Apply(state, GenerationSucceeded{Text: "Q1: a"})
		next, effects, err := Apply(state, EmailRequested{})
		require.Nil(t, err)
		require.Equal(t, state, next)
		require.Equal(t, []Effect{DeliverByEmail{To: "jane@example.com", Name: "Jane Doe", Questions: "Q1: a"}}, effects)
	})

	t.Run(`download formats check`, func(t *testing.T) {
		state := generatingState(t)
		state, _, _ = Apply(state, GenerationSucceeded{Text: "Q1: a"})
		_, effects, err := Apply(state, DownloadRequested{Format: FormatPdf})
		require.Nil(t, err)
		require.Equal(t, []Effect{RenderDocument{Questions: "Q1: a", Format: FormatPdf}}, effects)

		_, _, err = Apply(state, DownloadRequested{Format: "docx"})
		require.True(t, IsValidation(err))
	})

	t.Run(`finish is terminal check`, func(t *testing.T) {
		state := generatingState(t)
		state, _, err := Apply(state, FinishRequested{})
		require.Nil(t, err)
		require.Equal(t, StageEnd, state.Stage)

		for _, ev := range []Event{RegenerateRequested{}, EmailRequested{}, FinishRequested{}, ManualSubmitted{Record: validManual()}} {
			next, effects, err := Apply(state, ev)
			require.ErrorIs(t, err, ErrInvalidTransition)
			require.Equal(t, state, next)
			require.Empty(t, effects)
		}
		_, effects, err := Apply(state, Viewed{})
		require.Nil(t, err)
		require.Empty(t, effects)
	})

	t.Run(`actions before intake rejected check`, func(t *testing.T) {
		for _, ev := range []Event{RegenerateRequested{}, EmailRequested{}, FinishRequested{}, GenerationSucceeded{Text: "x"}} {
			_, _, err := Apply(NewSessionState(), ev)
			require.ErrorIs(t, err, ErrInvalidTransition)
		}
	})
}

func TestPlanDeletion(t *testing.T) {
	t.Run(`valid email check`, func(t *testing.T) {
		effects, err := PlanDeletion(" jane@example.com ")
		require.Nil(t, err)
		require.Equal(t, []Effect{DeleteCandidates{Email: "jane@example.com"}}, effects)
	})

	t.Run(`non-latin email check`, func(t *testing.T) {
		effects, err := PlanDeletion("jörg@exämple.com")
		require.Nil(t, err)
		require.Equal(t, []Effect{DeleteCandidates{Email: "jörg@exämple.com"}}, effects)
	})

	t.Run(`invalid email check`, func(t *testing.T) {
		effects, err := PlanDeletion("jane")
		require.True(t, IsValidation(err))
		require.Empty(t, effects)
	})
}
