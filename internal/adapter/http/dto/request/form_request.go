package request

import "unicode/utf8"

// MaxQueryLength caps the stored input in bytes. A clamped value is longer
// than a CEP, so it still fails validation and shows the malformed message.
const MaxQueryLength = 64

// FormQueryRequest is the text input of a lookup form.
//
// Query is a pointer so that an explicit "" (clearing the input) is accepted
// while a missing field is rejected. The value is stored as typed; it is not
// trimmed or unmasked.
type FormQueryRequest struct {
	Query *string `json:"query" binding:"required"`
}

func (r FormQueryRequest) ResolveQuery() string {
	if r.Query == nil {
		return ""
	}
	return clampQuery(*r.Query)
}

// FormSubmitRequest is the urlencoded body posted by the HTML form.
type FormSubmitRequest struct {
	CEP string `form:"cep"`
}

func (r FormSubmitRequest) ResolveCEP() string {
	return clampQuery(r.CEP)
}

func clampQuery(s string) string {
	if len(s) <= MaxQueryLength {
		return s
	}
	cut := MaxQueryLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
