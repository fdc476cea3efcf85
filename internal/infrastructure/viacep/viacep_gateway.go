package viacep

import (
	"buscador_cep/internal/domain/entities"
	"buscador_cep/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const (
	DefaultBaseURL = "https://viacep.com.br"
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 64 << 10
)

var (
	ErrUnexpectedStatus = errors.New("viacep: unexpected http status")
	ErrEmptyPayload     = errors.New("viacep: payload without cep")
)

// ViaCEPGateway queries the ViaCEP JSON API.
//
// ViaCEP answers 200 with {"erro": true} (sometimes the string "true") for
// well-formed codes that are not assigned, and 400 for malformed ones. Both
// are reported as entities.NotFoundResult().
type ViaCEPGateway struct {
	httpClient *http.Client
	baseURL    string
	mockMode   bool
}

var _ interfaces.IAddressLookupGateway = (*ViaCEPGateway)(nil)

func NewViaCEPGateway(baseURL string, timeout time.Duration) *ViaCEPGateway {
	if isViaCEPMockEnabled() {
		log.Printf("[cep][gateway] mock mode enabled")
		return &ViaCEPGateway{mockMode: true}
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	log.Printf("[cep][gateway] ViaCEP client initialized base_url=%s timeout=%s", baseURL, timeout)

	return &ViaCEPGateway{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (g *ViaCEPGateway) Lookup(ctx context.Context, cep string) (entities.LookupResult, error) {
	if g.mockMode {
		return mockLookup(cep), nil
	}

	reqURL := fmt.Sprintf("%s/ws/%s/json/", g.baseURL, url.PathEscape(cep))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entities.LookupResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Printf("[cep][gateway] lookup start cep=%s", cep)
	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[cep][gateway] request failed cep=%s err=%v", cep, err)
		return entities.LookupResult{}, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		log.Printf("[cep][gateway] bad request treated as not-found cep=%s", cep)
		return entities.NotFoundResult(), nil
	default:
		log.Printf("[cep][gateway] upstream error cep=%s status=%d", cep, resp.StatusCode)
		return entities.LookupResult{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var payload viaCEPResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		log.Printf("[cep][gateway] decode failed cep=%s err=%v", cep, err)
		return entities.LookupResult{}, fmt.Errorf("decode response: %w", err)
	}

	if payload.Erro {
		log.Printf("[cep][gateway] lookup not-found cep=%s", cep)
		return entities.NotFoundResult(), nil
	}
	if payload.CEP == "" {
		log.Printf("[cep][gateway] payload without cep cep=%s", cep)
		return entities.LookupResult{}, ErrEmptyPayload
	}

	log.Printf("[cep][gateway] lookup success cep=%s city=%s uf=%s", cep, payload.Localidade, payload.UF)
	return entities.FoundResult(payload.toAddress()), nil
}

// viaCEPResponse is the raw ViaCEP payload.
type viaCEPResponse struct {
	CEP         string   `json:"cep"`
	Logradouro  string   `json:"logradouro"`
	Complemento string   `json:"complemento"`
	Bairro      string   `json:"bairro"`
	Localidade  string   `json:"localidade"`
	UF          string   `json:"uf"`
	Erro        flexBool `json:"erro"`
}

var textPolicy = bluemonday.StrictPolicy()

// toAddress strips any markup from the upstream fields. Entities are
// unescaped again so the renderers escape exactly once.
func (r viaCEPResponse) toAddress() entities.Address {
	return entities.Address{
		PostalCode:   plainText(r.CEP),
		Street:       plainText(r.Logradouro),
		Complement:   plainText(r.Complemento),
		Neighborhood: plainText(r.Bairro),
		City:         plainText(r.Localidade),
		StateCode:    plainText(r.UF),
	}
}

func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// flexBool accepts true, "true" and their false counterparts.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*b = true
	case "false", "0", "", "null":
		*b = false
	default:
		return fmt.Errorf("viacep: invalid erro flag %s", data)
	}
	return nil
}

func mockLookup(cep string) entities.LookupResult {
	if cep == "01001000" {
		log.Printf("[cep][gateway] mock lookup success cep=%s", cep)
		return entities.FoundResult(entities.Address{
			PostalCode:   "01001-000",
			Street:       "Praça da Sé",
			Complement:   "lado ímpar",
			Neighborhood: "Sé",
			City:         "São Paulo",
			StateCode:    "SP",
		})
	}
	log.Printf("[cep][gateway] mock lookup not-found cep=%s", cep)
	return entities.NotFoundResult()
}

func isViaCEPMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("VIACEP_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
