package practicum

import "fmt"

// verdicts maps the fixed review status codes to their notification text.
// The texts are the exact strings students receive in the chat.
var verdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}

// ParseStatus translates one homework record into its one-line notification
// message. A status outside the verdict set returns [*UnknownVerdictError]
// naming the offending code; a record without a name returns
// [*MalformedResponseError].
func ParseStatus(hw Homework) (string, error) {
	verdict, ok := verdicts[hw.Status]
	if !ok {
		return "", &UnknownVerdictError{Status: hw.Status}
	}
	if hw.Name == "" {
		return "", &MalformedResponseError{Reason: `homework record missing "homework_name"`}
	}
	return fmt.Sprintf("Изменился статус проверки работы %q. %s", hw.Name, verdict), nil
}
