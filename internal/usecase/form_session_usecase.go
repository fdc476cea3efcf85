package usecase

import (
	"buscador_cep/internal/domain/entities"
	"buscador_cep/internal/usecase/interfaces"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("form session not found")
	ErrInvalidSessionID = errors.New("invalid form session id")
)

// IFormSessionUseCase exposes the lookup form to HTTP clients. Every session
// owns one LookupFormController.

type IFormSessionUseCase interface {
	Open() entities.FormSession
	State(id string) (entities.FormState, error)
	SetQuery(id, query string) (entities.FormState, error)
	Submit(id string) (entities.FormState, error)
	Close(id string) error
}

type FormSessionUseCase struct {
	repo          interfaces.IFormSessionRepository
	gateway       interfaces.IAddressLookupGateway
	lookupTimeout time.Duration
}

var _ IFormSessionUseCase = (*FormSessionUseCase)(nil)

func NewFormSessionUseCase(repo interfaces.IFormSessionRepository, gateway interfaces.IAddressLookupGateway, lookupTimeout time.Duration) *FormSessionUseCase {
	return &FormSessionUseCase{repo: repo, gateway: gateway, lookupTimeout: lookupTimeout}
}

func (u *FormSessionUseCase) Open() entities.FormSession {
	s := &entities.FormSession{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Form:      NewLookupFormController(u.gateway, u.lookupTimeout),
	}
	u.repo.Save(s)
	log.Printf("[cep][session] opened session_id=%s", s.ID)
	return *s
}

func (u *FormSessionUseCase) State(id string) (entities.FormState, error) {
	s, err := u.get(id)
	if err != nil {
		return entities.FormState{}, err
	}
	return s.Form.State(), nil
}

// SetQuery stores the raw input; it is validated only on Submit.
func (u *FormSessionUseCase) SetQuery(id, query string) (entities.FormState, error) {
	s, err := u.get(id)
	if err != nil {
		return entities.FormState{}, err
	}
	s.Form.SetQuery(query)
	return s.Form.State(), nil
}

// Submit presses the submit control of the session's form. Validation
// failures are reported through the returned state, not as an error.
func (u *FormSessionUseCase) Submit(id string) (entities.FormState, error) {
	s, err := u.get(id)
	if err != nil {
		return entities.FormState{}, err
	}

	err = s.Form.Submit()
	if errors.Is(err, ErrSearchDisabled) {
		return s.Form.State(), err
	}
	return s.Form.State(), nil
}

func (u *FormSessionUseCase) Close(id string) error {
	if _, err := u.get(id); err != nil {
		return err
	}
	u.repo.Delete(strings.TrimSpace(id))
	log.Printf("[cep][session] closed session_id=%s", id)
	return nil
}

func (u *FormSessionUseCase) get(id string) (*entities.FormSession, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidSessionID
	}
	s, ok := u.repo.Get(id)
	if !ok || s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
