package entities

// Address is the address resolved for a CEP by the lookup collaborator.
//
// Complement is optional; the page omits it when empty.
type Address struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	StateCode    string `json:"state_code"`
}

// CityLine renders "city - UF".
func (a Address) CityLine() string {
	return a.City + " - " + a.StateCode
}

type LookupStatus string

const (
	LookupStatusEmpty    LookupStatus = "empty"
	LookupStatusFound    LookupStatus = "found"
	LookupStatusNotFound LookupStatus = "not_found"
)

// LookupResult is the interpreted answer of the collaborator.
//
// A transport failure is never a LookupResult; gateways return it as an error.
type LookupResult struct {
	Status  LookupStatus
	Address Address
}

func FoundResult(a Address) LookupResult {
	return LookupResult{Status: LookupStatusFound, Address: a}
}

func NotFoundResult() LookupResult {
	return LookupResult{Status: LookupStatusNotFound}
}

func (r LookupResult) IsFound() bool {
	return r.Status == LookupStatusFound
}
