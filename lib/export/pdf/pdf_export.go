package pdfexport

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	QuestionsTitle    = "Generated Interview Questions"
	QuestionsFileName = "interview_questions.pdf"
	AttachmentName    = "questions.pdf"
)

// fontDir каталог с UTF-8 шрифтами (Arial.ttf, Arial Bold.ttf), пусто - встроенный Helvetica
var fontDir string

func SetFontDir(dir string) {
	fontDir = dir
}

// GenerateQuestions формирует PDF: заголовок и по абзацу на каждую непустую строку текста
func GenerateQuestions(text string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateQuestions panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "Letter", fontDir)
	family, translate := setupFont(pdf)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont(family, "B", 18)
	pdf.CellFormat(0, 12, translate(QuestionsTitle), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(family, "", 11)
	_, lineHt := pdf.GetFontSize()
	lineHt *= 1.4
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pdf.MultiCell(0, lineHt, translate(line), "", "L", false)
		pdf.Ln(2)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setupFont(pdf *fpdf.Fpdf) (family string, translate func(string) string) {
	if fontDir == "" {
		return "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	return "Arial", func(s string) string { return s }
}
