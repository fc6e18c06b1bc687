package practicum

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Homework is a single submitted assignment record.
type Homework struct {
	// Name is the assignment name as shown to the student.
	Name string `json:"homework_name"`

	// Status is the review status code. It must be one of the verdict
	// codes known to [ParseStatus].
	Status string `json:"status"`
}

// Answer is the decoded body of a successful status request.
type Answer struct {
	// Homeworks lists assignments whose status changed since the
	// from_date cursor, newest first. May be empty.
	Homeworks []Homework

	// CurrentDate is the server-echoed timestamp, valid only when
	// HasDate is true.
	CurrentDate int64

	// HasDate reports whether the answer carried a current_date field.
	HasDate bool
}

// ParseAnswer decodes and validates a status answer body.
//
// Validation runs in a fixed order so the caller never indexes into an
// unchecked structure: JSON well-formedness, top-level type, non-emptiness,
// server rejection indicators, then the homeworks field itself. The returned
// error is one of the package error types.
func ParseAnswer(body []byte) (*Answer, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &MalformedResponseError{Reason: "empty body"}
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &TypeMismatchError{Field: "answer", Got: typeErr.Value}
		}
		return nil, &MalformedResponseError{Reason: "not valid JSON: " + err.Error()}
	}
	if len(top) == 0 {
		return nil, &MalformedResponseError{Reason: "empty answer"}
	}

	if err := rejection(top); err != nil {
		return nil, err
	}

	rawHomeworks, ok := top["homeworks"]
	if !ok {
		return nil, &MalformedResponseError{Reason: `missing "homeworks" key`}
	}
	if isNull(rawHomeworks) {
		return nil, &TypeMismatchError{Field: "homeworks", Got: "null"}
	}

	var homeworks []Homework
	if err := json.Unmarshal(rawHomeworks, &homeworks); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &TypeMismatchError{Field: "homeworks", Got: typeErr.Value}
		}
		return nil, &MalformedResponseError{Reason: `cannot decode "homeworks": ` + err.Error()}
	}

	answer := &Answer{Homeworks: homeworks}

	if rawDate, ok := top["current_date"]; ok && !isNull(rawDate) {
		if err := json.Unmarshal(rawDate, &answer.CurrentDate); err != nil {
			return nil, &TypeMismatchError{Field: "current_date", Got: jsonKind(rawDate)}
		}
		answer.HasDate = true
	}

	return answer, nil
}

// rejection checks for server-reported error indicators: a top-level "error"
// key (string, or object with nested code/message) or a top-level "code" key.
// The API embeds these in 200 answers instead of using HTTP status codes.
func rejection(top map[string]json.RawMessage) error {
	if raw, ok := top["error"]; ok {
		var obj struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil && (obj.Code != "" || obj.Message != "") {
			return &APIError{Code: obj.Code, Message: obj.Message}
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return &APIError{Message: s}
		}
		return &APIError{Message: string(raw)}
	}
	if raw, ok := top["code"]; ok {
		var s string
		if json.Unmarshal(raw, &s) != nil {
			s = string(raw)
		}
		return &APIError{Code: s}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// jsonKind names the JSON type of a raw value for error reporting.
func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "empty"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
