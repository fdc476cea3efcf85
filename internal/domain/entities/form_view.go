package entities

// ViewKind is the tag of FormView. Exactly one kind is active at a time, so
// a form can never show an error and an address together.
type ViewKind string

const (
	ViewIdle    ViewKind = "idle"
	ViewLoading ViewKind = "loading"
	ViewFound   ViewKind = "found"
	ViewError   ViewKind = "error"
)

// ErrorKind classifies why a form is showing an error.
type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindNotFound   ErrorKind = "not_found"
	ErrorKindTransport  ErrorKind = "transport"
)

// FormView is what the output region of the form renders.
//
// Build it with the constructors below; the zero value is ViewIdle.
type FormView struct {
	kind      ViewKind
	address   Address
	errorKind ErrorKind
	message   string
}

func IdleView() FormView { return FormView{kind: ViewIdle} }

func LoadingView() FormView { return FormView{kind: ViewLoading} }

func FoundView(a Address) FormView {
	return FormView{kind: ViewFound, address: a}
}

func ErrorView(kind ErrorKind, message string) FormView {
	return FormView{kind: ViewError, errorKind: kind, message: message}
}

func (v FormView) Kind() ViewKind {
	if v.kind == "" {
		return ViewIdle
	}
	return v.kind
}

func (v FormView) Loading() bool { return v.kind == ViewLoading }

// Address returns the found address; ok is false for any other kind.
func (v FormView) Address() (Address, bool) {
	if v.kind != ViewFound {
		return Address{}, false
	}
	return v.address, true
}

// Error returns the error kind and message; ok is false for any other kind.
func (v FormView) Error() (ErrorKind, string, bool) {
	if v.kind != ViewError {
		return "", "", false
	}
	return v.errorKind, v.message, true
}

// Result derives the LookupResult shown by the view.
func (v FormView) Result() LookupResult {
	switch {
	case v.kind == ViewFound:
		return FoundResult(v.address)
	case v.kind == ViewError && v.errorKind == ErrorKindNotFound:
		return NotFoundResult()
	default:
		return LookupResult{Status: LookupStatusEmpty}
	}
}

// FormState is a snapshot of a lookup form handed to renderers.
type FormState struct {
	Query string
	View  FormView
}

// SearchEnabled reports whether the submit control accepts presses.
func (s FormState) SearchEnabled() bool {
	return !s.View.Loading()
}
