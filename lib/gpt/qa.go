package gpthandler

import (
	"regexp"
	"strconv"
	"strings"
)

// QA пара вопрос/ответ из сгенерированного текста
type QA struct {
	Number   int    `json:"number"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var qaLine = regexp.MustCompile(`^\**\s*([QqAa])(\d+)\s*[:.)]\**\s*(.*)$`)

// ParseQuestions разбирает ответ модели в формате "Qn: ..." / "An: ...".
// Содержимое не проверяется: строки вне формата дописываются к предыдущему вопросу или ответу.
func ParseQuestions(text string) []QA {
	list := []QA{}
	index := map[int]int{}
	current := -1
	inAnswer := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		match := qaLine.FindStringSubmatch(line)
		if match == nil {
			if current < 0 {
				continue
			}
			if inAnswer {
				list[current].Answer = joinLine(list[current].Answer, line)
			} else {
				list[current].Question = joinLine(list[current].Question, line)
			}
			continue
		}
		num, _ := strconv.Atoi(match[2])
		body := strings.TrimSpace(strings.Trim(match[3], "*"))
		pos, ok := index[num]
		if !ok {
			list = append(list, QA{Number: num})
			pos = len(list) - 1
			index[num] = pos
		}
		current = pos
		inAnswer = strings.EqualFold(match[1], "a")
		if inAnswer {
			list[pos].Answer = joinLine(list[pos].Answer, body)
		} else {
			list[pos].Question = joinLine(list[pos].Question, body)
		}
	}
	return list
}

func joinLine(prev, line string) string {
	if line == "" {
		return prev
	}
	if prev == "" {
		return line
	}
	return prev + " " + line
}
