package response

import "buscador_cep/internal/domain/entities"

type AddressResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	StateCode    string `json:"state_code"`
	CityLine     string `json:"city_line"`
}

func FromAddress(a entities.Address) AddressResponse {
	return AddressResponse{
		CEP:          a.PostalCode,
		Street:       a.Street,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		StateCode:    a.StateCode,
		CityLine:     a.CityLine(),
	}
}
