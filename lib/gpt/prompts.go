package gpthandler

import (
	"fmt"
	"strings"
)

const QuestionsSysPromt = "You are an AI technical interviewer."

const QuestionsTemplate = `Generate **10 technical interview questions** for a candidate applying for the role of **%s** with the following skills: %s.

For each question, also provide a **detailed, accurate answer**. Format your response exactly like this:

Q1: <question 1>
A1: <answer 1>

Q2: <question 2>
A2: <answer 2>

...and so on up to Q10.
`

// QuestionsPromt текст запроса на генерацию вопросов по навыкам и роли
func QuestionsPromt(skills []string, role string) string {
	return fmt.Sprintf(QuestionsTemplate, role, strings.Join(skills, ", "))
}
