package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	gpthandler "talent-scout-backend/lib/gpt"
)

const (
	QuestionsSheet    = "Questions"
	QuestionsFileName = "interview_questions.xlsx"
)

type Provider interface {
	ExportQuestions(list []gpthandler.QA) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var questionHeaders = []string{"#", "Question", "Answer"}

func (i impl) ExportQuestions(list []gpthandler.QA) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, questionHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeQuestionData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetColWidth(sheet, "A", "A", 6); err != nil {
		return nil, err
	}
	if err = f.SetColWidth(sheet, "B", "C", 80); err != nil {
		return nil, err
	}
	if err = f.SetSheetName(sheet, QuestionsSheet); err != nil {
		return nil, err
	}
	return f.WriteToBuffer()
}

func writeQuestionData(f *excelize.File, sheet string, list []gpthandler.QA, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(questionHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Number); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Question); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Answer); err != nil {
			return row, err
		}
	}
	return row, nil
}
