package entities

import (
	"errors"
	"regexp"
)

// User-facing messages shown by the form.
const (
	MsgEmptyCEP       = "Preencha um CEP válido!"
	MsgMalformedCEP   = "Digite um CEP válido (com 8 dígitos numéricos)!"
	MsgCEPNotFound    = "CEP não encontrado. Verifique e tente novamente."
	MsgLookupFailed   = "Ops, ocorreu um erro ao buscar o CEP. Tente novamente mais tarde."
	MsgSearchDisabled = "Aguarde a busca em andamento terminar."
)

var (
	ErrEmptyCEP     = errors.New("empty cep")
	ErrMalformedCEP = errors.New("malformed cep")
)

var cepPattern = regexp.MustCompile(`^[0-9]{8}$`)

// ValidateCEP accepts exactly 8 ASCII digits. The input is not normalized:
// masks like "01001-000" and surrounding spaces are rejected.
func ValidateCEP(input string) error {
	if input == "" {
		return ErrEmptyCEP
	}
	if !cepPattern.MatchString(input) {
		return ErrMalformedCEP
	}
	return nil
}

// ValidationMessage returns the form message for a ValidateCEP error.
func ValidationMessage(err error) string {
	if errors.Is(err, ErrEmptyCEP) {
		return MsgEmptyCEP
	}
	return MsgMalformedCEP
}
