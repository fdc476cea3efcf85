package entities

import "time"

// LookupForm is one lookup form as seen by its user: a text input and a
// submit control.
type LookupForm interface {
	State() FormState
	SetQuery(query string)
	Submit() error
	Wait()
}

// FormSession binds a LookupForm to the visitor that opened it.
//
// Sessions live in memory only (no persistence of form state).
type FormSession struct {
	ID        string
	CreatedAt time.Time
	Form      LookupForm
}
