package validators

import "regexp"

// local@domain.tld, домен обязан заканчиваться точкой и хотя бы одним символом слова.
// Символы слова включают буквы любых алфавитов
var emailShape = regexp.MustCompile(`^[\p{L}\p{M}\p{N}_.-]+@[\p{L}\p{M}\p{N}_.-]+\.[\p{L}\p{M}\p{N}_]+$`)

func IsEmail(email string) bool {
	return emailShape.MatchString(email)
}
