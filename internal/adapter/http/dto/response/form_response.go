package response

import "buscador_cep/internal/domain/entities"

type FormErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// FormStateResponse renders one lookup form. At most one of Error and
// Address is set; both are nil while loading.
type FormStateResponse struct {
	SessionID     string             `json:"session_id"`
	Query         string             `json:"query"`
	State         string             `json:"state"`
	Loading       bool               `json:"loading"`
	SearchEnabled bool               `json:"search_enabled"`
	Error         *FormErrorResponse `json:"error,omitempty"`
	Address       *AddressResponse   `json:"address,omitempty"`
}

func FromFormState(sessionID string, st entities.FormState) FormStateResponse {
	res := FormStateResponse{
		SessionID:     sessionID,
		Query:         st.Query,
		State:         string(st.View.Kind()),
		Loading:       st.View.Loading(),
		SearchEnabled: st.SearchEnabled(),
	}
	if kind, msg, ok := st.View.Error(); ok {
		res.Error = &FormErrorResponse{Kind: string(kind), Message: msg}
	}
	if a, ok := st.View.Address(); ok {
		addr := FromAddress(a)
		res.Address = &addr
	}
	return res
}
