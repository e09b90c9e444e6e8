package smtp

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"

	"github.com/pkg/errors"
)

const base64LineLen = 76

// BuildMessage собирает multipart/mixed письмо: текстовая часть и вложение в base64
func BuildMessage(from, to, subject, body string, attachment []byte, attachmentName string) (io.Reader, error) {
	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)

	fmt.Fprintf(buf, "From: %s\r\n", from)
	fmt.Fprintf(buf, "To: %s\r\n", to)
	fmt.Fprintf(buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", writer.Boundary())

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", `text/plain; charset="UTF-8"`)
	textHeader.Set("Content-Transfer-Encoding", "8bit")
	part, err := writer.CreatePart(textHeader)
	if err != nil {
		return nil, errors.Wrap(err, "create text part")
	}
	if _, err = part.Write([]byte(body)); err != nil {
		return nil, errors.Wrap(err, "write text part")
	}

	if attachment != nil {
		fileHeader := textproto.MIMEHeader{}
		fileHeader.Set("Content-Type", mime.FormatMediaType("application/pdf", map[string]string{"name": attachmentName}))
		fileHeader.Set("Content-Transfer-Encoding", "base64")
		fileHeader.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": attachmentName}))
		part, err = writer.CreatePart(fileHeader)
		if err != nil {
			return nil, errors.Wrap(err, "create attachment part")
		}
		if err = writeBase64Lines(part, attachment); err != nil {
			return nil, errors.Wrap(err, "write attachment part")
		}
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

func writeBase64Lines(w io.Writer, data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 0 {
		n := base64LineLen
		if len(encoded) < n {
			n = len(encoded)
		}
		if _, err := io.WriteString(w, encoded[:n]+"\r\n"); err != nil {
			return err
		}
		encoded = encoded[n:]
	}
	return nil
}
