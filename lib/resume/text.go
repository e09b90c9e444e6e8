package resume

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	mimePdf  = "application/pdf"
	mimeText = "text/plain"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrUnsupportedFile = errors.New("unsupported resume format, upload a PDF, DOCX or TXT file")

// ExtractText получает текст резюме из загруженного файла.
// Тип определяется по содержимому, расширение используется как подсказка для текстовых файлов.
func ExtractText(fileName string, body []byte) (string, error) {
	if len(body) == 0 {
		return "", errors.New("resume file is empty")
	}
	switch detectType(fileName, body) {
	case mimePdf:
		return extractPdfText(body)
	case mimeDocx:
		return extractDocxText(body)
	case mimeText:
		return string(body), nil
	default:
		return "", ErrUnsupportedFile
	}
}

func detectType(fileName string, body []byte) string {
	detected := mimetype.Detect(body)
	switch {
	case detected.Is(mimePdf):
		return mimePdf
	case detected.Is(mimeDocx):
		return mimeDocx
	case detected.Is(mimeText):
		return mimeText
	}
	if strings.EqualFold(filepath.Ext(fileName), ".txt") && !detected.Is("application/octet-stream") {
		return mimeText
	}
	return detected.String()
}

// extractPdfText нечитаемые страницы дают пустую строку, документ целиком не отбрасываем
func extractPdfText(body []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("pdf reader panic recover: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return "", errors.Wrap(err, "failed to read pdf")
	}
	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		pages = append(pages, pageText(reader, i))
	}
	return strings.Join(pages, " "), nil
}

func pageText(reader *pdf.Reader, num int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("page", num).Warnf("страница резюме не прочитана: %v", r)
			text = ""
		}
	}()
	page := reader.Page(num)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		log.WithField("page", num).WithError(err).Warn("страница резюме не прочитана")
		return ""
	}
	return text
}

func extractDocxText(body []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse docx")
	}
	defer doc.Close()
	return doc.Editable().GetContent(), nil
}
