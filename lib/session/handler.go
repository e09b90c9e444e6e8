package sessionhandler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talent-scout-backend/db"
	candidatestore "talent-scout-backend/lib/candidate/store"
	pdfexport "talent-scout-backend/lib/export/pdf"
	xlsexport "talent-scout-backend/lib/export/xls"
	filestorage "talent-scout-backend/lib/file-storage"
	gpthandler "talent-scout-backend/lib/gpt"
	"talent-scout-backend/lib/intake"
	"talent-scout-backend/lib/resume"
	sessionstore "talent-scout-backend/lib/session/store"
	"talent-scout-backend/lib/smtp"
	"talent-scout-backend/lib/utils/lock"
	dbmodels "talent-scout-backend/models/db"
)

const (
	EmailSubject = "Your Generated Interview Questions"
	emailBody    = "Dear %s,\n\nHere are your generated interview questions:\n\n%s"

	defaultLockWait = 5 * time.Second
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionBusy     = errors.New("session is busy, try again later")
)

type Provider interface {
	Create() View
	View(ctx context.Context, id string) (View, error)
	Discard(ctx context.Context, id string) error
	SubmitManual(ctx context.Context, id string, record intake.CandidateRecord) (View, error)
	UploadResume(ctx context.Context, id, fileName string, body []byte) (ResumeResult, error)
	ConfirmResume(ctx context.Context, id string, record intake.CandidateRecord) (View, error)
	Regenerate(ctx context.Context, id string) (View, error)
	Email(ctx context.Context, id string) (View, error)
	Download(ctx context.Context, id string, format intake.DocumentFormat) (Document, error)
	Finish(ctx context.Context, id string) (View, error)
	DeleteCandidate(ctx context.Context, email string) (DeleteResult, error)
	ExpireIdle(before time.Time) int
}

var Instance Provider

// Deps внешние зависимости сессий
type Deps struct {
	Sessions    sessionstore.Provider
	Candidates  candidatestore.Provider
	Generator   gpthandler.Provider
	Mailer      smtp.Provider
	RenderPdf   func(text string) ([]byte, error)
	Spreadsheet xlsexport.Provider
	Archive     filestorage.Provider
	LockWait    time.Duration
}

func NewHandler() {
	Instance = NewInstance(Deps{
		Sessions:    sessionstore.NewInstance(),
		Candidates:  candidatestore.NewInstance(db.DB),
		Generator:   gpthandler.Instance,
		Mailer:      smtp.Instance,
		RenderPdf:   pdfexport.GenerateQuestions,
		Spreadsheet: xlsexport.Instance,
		Archive:     filestorage.Instance,
	})
}

func NewInstance(deps Deps) Provider {
	if deps.LockWait <= 0 {
		deps.LockWait = defaultLockWait
	}
	if deps.Archive == nil {
		deps.Archive = filestorage.NewInstance(nil, "")
	}
	return &impl{deps: deps}
}

type impl struct {
	deps Deps
}

func (i impl) getLogger(id string) *log.Entry {
	return log.WithField("session_id", id)
}

func (i impl) Create() View {
	entry := i.deps.Sessions.Create()
	i.getLogger(entry.ID).Info("сессия создана")
	return newView(entry)
}

func (i impl) View(ctx context.Context, id string) (View, error) {
	return i.dispatchView(ctx, id, intake.Viewed{})
}

func (i impl) Discard(ctx context.Context, id string) error {
	locked, err := lock.WithDelay(ctx, "session:"+id, i.deps.LockWait, func() error {
		if !i.deps.Sessions.Delete(id) {
			return ErrSessionNotFound
		}
		return nil
	})
	if !locked {
		return ErrSessionBusy
	}
	if err != nil {
		return err
	}
	i.getLogger(id).Info("сессия удалена")
	return nil
}

func (i impl) SubmitManual(ctx context.Context, id string, record intake.CandidateRecord) (View, error) {
	return i.dispatchView(ctx, id, intake.ManualSubmitted{Record: record, SubmittedAt: time.Now()})
}

func (i impl) UploadResume(ctx context.Context, id, fileName string, body []byte) (ResumeResult, error) {
	entry, ok := i.deps.Sessions.Get(id)
	if !ok {
		return ResumeResult{}, ErrSessionNotFound
	}
	if entry.State.Stage != intake.StageInfoGathering {
		return ResumeResult{}, intake.ErrInvalidTransition
	}
	text, err := resume.ExtractText(fileName, body)
	if err != nil {
		i.getLogger(id).
			WithField("file_name", fileName).
			WithError(err).
			Warn("не удалось извлечь текст резюме")
		if errors.Is(err, resume.ErrUnsupportedFile) {
			return ResumeResult{}, intake.NewValidationError("Upload a PDF, DOCX or TXT resume.")
		}
		return ResumeResult{}, intake.NewValidationError("Could not read the resume file.")
	}
	extraction := resume.Analyze(text)
	i.getLogger(id).
		WithField("skills", extraction.Skills).
		WithField("role", extraction.InferredRole).
		Info("резюме разобрано")
	return ResumeResult{
		Extraction: extraction,
		Prefill:    intake.PrefillFromResume(extraction),
	}, nil
}

func (i impl) ConfirmResume(ctx context.Context, id string, record intake.CandidateRecord) (View, error) {
	return i.dispatchView(ctx, id, intake.ResumeConfirmed{Record: record, SubmittedAt: time.Now()})
}

func (i impl) Regenerate(ctx context.Context, id string) (View, error) {
	return i.dispatchView(ctx, id, intake.RegenerateRequested{})
}

func (i impl) Email(ctx context.Context, id string) (View, error) {
	return i.dispatchView(ctx, id, intake.EmailRequested{})
}

func (i impl) Download(ctx context.Context, id string, format intake.DocumentFormat) (Document, error) {
	_, out, err := i.dispatch(ctx, id, intake.DownloadRequested{Format: format})
	if err != nil {
		return Document{}, err
	}
	if out.document == nil {
		return Document{}, errors.New("document was not rendered")
	}
	return *out.document, nil
}

func (i impl) Finish(ctx context.Context, id string) (View, error) {
	return i.dispatchView(ctx, id, intake.FinishRequested{})
}

// DeleteCandidate удаляет записи кандидата и архив писем, состояние сессий не меняется
func (i impl) DeleteCandidate(ctx context.Context, email string) (DeleteResult, error) {
	effects, err := intake.PlanDeletion(email)
	if err != nil {
		return DeleteResult{}, err
	}
	result := DeleteResult{}
	for _, eff := range effects {
		e, ok := eff.(intake.DeleteCandidates)
		if !ok {
			continue
		}
		logger := log.WithField("effect", intake.EffectName(e))
		result.Records, err = i.deps.Candidates.DeleteByEmail(e.Email)
		if err != nil {
			logger.WithError(err).Error("ошибка удаления данных кандидата")
			return result, &intake.StorageError{Err: err}
		}
		result.Archived, err = i.deps.Archive.DeleteByCandidate(ctx, e.Email)
		if err != nil {
			logger.WithError(err).Error("ошибка удаления архива писем кандидата")
			return result, &intake.StorageError{Err: err}
		}
		logger.
			WithField("records", result.Records).
			WithField("archived", result.Archived).
			Info("данные кандидата удалены")
	}
	return result, nil
}

func (i impl) ExpireIdle(before time.Time) int {
	return i.deps.Sessions.DeleteIdleSince(before)
}

func (i impl) dispatchView(ctx context.Context, id string, ev intake.Event) (View, error) {
	entry, _, err := i.dispatch(ctx, id, ev)
	if entry == nil {
		return View{}, err
	}
	return newView(*entry), err
}

// dispatch применяет событие к сессии под блокировкой и исполняет эффекты.
// При ошибке возвращается последнее сохраненное состояние сессии.
func (i impl) dispatch(ctx context.Context, id string, ev intake.Event) (*sessionstore.Entry, outcome, error) {
	var (
		result *sessionstore.Entry
		out    outcome
	)
	locked, err := lock.WithDelay(ctx, "session:"+id, i.deps.LockWait, func() error {
		entry, ok := i.deps.Sessions.Get(id)
		if !ok {
			return ErrSessionNotFound
		}
		var runErr error
		out, runErr = i.run(ctx, &entry, ev)
		if !i.deps.Sessions.Save(entry) {
			return ErrSessionNotFound
		}
		result = &entry
		return runErr
	})
	if !locked {
		return nil, outcome{}, ErrSessionBusy
	}
	if err != nil {
		i.getLogger(id).
			WithField("event", intake.EventName(ev)).
			WithError(err).
			Warn("событие сессии не выполнено")
	}
	return result, out, err
}

// run исполняет эффекты перехода. Состояние фиксируется в entry только после
// сохранения анкеты, поэтому ошибка хранилища оставляет сессию на прежнем этапе.
func (i impl) run(ctx context.Context, entry *sessionstore.Entry, ev intake.Event) (outcome, error) {
	state, effects, err := intake.Apply(entry.State, ev)
	if err != nil {
		return outcome{}, err
	}
	out := outcome{}
	for _, eff := range effects {
		switch e := eff.(type) {
		case intake.SaveCandidate:
			if err = i.saveCandidate(entry.ID, e.Record); err != nil {
				return out, err
			}
		case intake.GenerateQuestions:
			entry.State = state
			state, err = i.generate(ctx, entry.ID, state, e)
			if err != nil {
				return out, err
			}
		case intake.DeliverByEmail:
			if err = i.deliver(ctx, entry.ID, e); err != nil {
				return out, err
			}
		case intake.RenderDocument:
			doc, err := i.render(e)
			if err != nil {
				return out, err
			}
			out.document = &doc
		default:
			return out, errors.Errorf("unexpected effect %s", intake.EffectName(eff))
		}
	}
	entry.State = state
	return out, nil
}

func (i impl) saveCandidate(id string, record intake.CandidateRecord) error {
	recID, err := i.deps.Candidates.Save(toCandidate(record))
	if err != nil {
		i.getLogger(id).WithError(err).Error("ошибка сохранения анкеты кандидата")
		return &intake.StorageError{Err: err}
	}
	i.getLogger(id).WithField("candidate_id", recID).Info("анкета кандидата сохранена")
	return nil
}

func (i impl) generate(ctx context.Context, id string, state intake.SessionState, e intake.GenerateQuestions) (intake.SessionState, error) {
	var ev intake.Event
	text, err := i.deps.Generator.GenerateQuestions(ctx, e.Keywords, e.Role)
	if err != nil {
		ev = intake.GenerationFailed{Err: err}
	} else {
		ev = intake.GenerationSucceeded{Text: text}
	}
	next, _, err := intake.Apply(state, ev)
	if err != nil {
		return state, err
	}
	return next, nil
}

func (i impl) deliver(ctx context.Context, id string, e intake.DeliverByEmail) error {
	logger := i.getLogger(id)
	pdf, err := i.deps.RenderPdf(e.Questions)
	if err != nil {
		logger.WithError(err).Error("ошибка формирования pdf для письма")
		return &intake.DeliveryError{Err: err}
	}
	name := strings.TrimSpace(e.Name)
	if name == "" {
		name = "Candidate"
	}
	body := fmt.Sprintf(emailBody, name, e.Questions)
	err = i.deps.Mailer.SendWithAttachment(e.To, EmailSubject, body, pdf, pdfexport.AttachmentName)
	if err != nil {
		return &intake.DeliveryError{Err: err}
	}
	if _, err = i.deps.Archive.ArchiveQuestions(ctx, e.To, pdf); err != nil {
		// письмо уже ушло, ошибку архива пользователю не показываем
		logger.WithError(err).Warn("pdf не сохранен в архив")
	}
	return nil
}

func (i impl) render(e intake.RenderDocument) (Document, error) {
	switch e.Format {
	case intake.FormatXlsx:
		buf, err := i.deps.Spreadsheet.ExportQuestions(gpthandler.ParseQuestions(e.Questions))
		if err != nil {
			return Document{}, errors.Wrap(err, "xlsx export failed")
		}
		return Document{
			FileName:    xlsexport.QuestionsFileName,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Body:        buf.Bytes(),
		}, nil
	default:
		body, err := i.deps.RenderPdf(e.Questions)
		if err != nil {
			return Document{}, errors.Wrap(err, "pdf export failed")
		}
		return Document{
			FileName:    pdfexport.QuestionsFileName,
			ContentType: "application/pdf",
			Body:        body,
		}, nil
	}
}

func toCandidate(record intake.CandidateRecord) dbmodels.Candidate {
	consent := ""
	if record.Consent {
		consent = dbmodels.ConsentGiven
	}
	return dbmodels.Candidate{
		Name:      record.Name,
		Email:     record.Email,
		Phone:     record.Phone,
		Exp:       record.YearsExperience,
		Position:  record.Position,
		Location:  record.Location,
		Country:   record.Country,
		TechStack: record.TechStack,
		Consent:   consent,
		Timestamp: record.CreatedAt,
	}
}
