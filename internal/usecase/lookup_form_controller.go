package usecase

import (
	"buscador_cep/internal/domain/entities"
	"buscador_cep/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

var ErrSearchDisabled = errors.New("search control disabled while a lookup is in flight")

const DefaultLookupTimeout = 10 * time.Second

// LookupFormController drives one CEP lookup form.
//
// State machine (initial Idle):
//   - Idle/Found/Error -> TriggerSearch, valid input   -> Loading
//   - Idle/Found/Error -> TriggerSearch, invalid input -> Error(validation)
//   - Loading -> found        -> Found, query cleared
//   - Loading -> not found    -> Error(not_found), query cleared
//   - Loading -> request fail -> Error(transport), query kept
//
// A dispatched lookup is never cancelled; its outcome always lands, even if
// the user edited the query meanwhile.
type LookupFormController struct {
	gateway interfaces.IAddressLookupGateway
	timeout time.Duration

	mu    sync.Mutex
	query string
	view  entities.FormView

	inFlight sync.WaitGroup
}

var _ entities.LookupForm = (*LookupFormController)(nil)

func NewLookupFormController(gateway interfaces.IAddressLookupGateway, timeout time.Duration) *LookupFormController {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &LookupFormController{
		gateway: gateway,
		timeout: timeout,
		view:    entities.IdleView(),
	}
}

// SetQuery is the text input edit event.
func (c *LookupFormController) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}

func (c *LookupFormController) State() entities.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return entities.FormState{Query: c.query, View: c.view}
}

// Submit is a press of the submit control. The control is disabled while a
// lookup is in flight, which is the only thing preventing duplicate lookups.
func (c *LookupFormController) Submit() error {
	c.mu.Lock()
	if c.view.Loading() {
		c.mu.Unlock()
		log.Printf("[cep][form] submit ignored: search control disabled")
		return ErrSearchDisabled
	}
	code, err := c.triggerSearchLocked()
	c.mu.Unlock()

	if err != nil {
		return err
	}
	c.dispatch(code)
	return nil
}

// TriggerSearch validates the current query and, when it is a valid CEP,
// moves the form to Loading and dispatches one lookup. It does not check for
// an in-flight lookup.
//
// The returned error is the validation failure already recorded in the view.
func (c *LookupFormController) TriggerSearch() error {
	c.mu.Lock()
	code, err := c.triggerSearchLocked()
	c.mu.Unlock()

	if err != nil {
		return err
	}
	c.dispatch(code)
	return nil
}

// Wait blocks until every dispatched lookup has resolved.
func (c *LookupFormController) Wait() {
	c.inFlight.Wait()
}

func (c *LookupFormController) triggerSearchLocked() (string, error) {
	code := c.query
	if err := entities.ValidateCEP(code); err != nil {
		c.view = entities.ErrorView(entities.ErrorKindValidation, entities.ValidationMessage(err))
		log.Printf("[cep][form] validation failed query=%q err=%v", code, err)
		return "", err
	}

	// Loading replaces any previous error or address.
	c.view = entities.LoadingView()
	c.inFlight.Add(1)
	return code, nil
}

func (c *LookupFormController) dispatch(code string) {
	go c.executeLookup(code)
}

func (c *LookupFormController) executeLookup(code string) {
	defer c.inFlight.Done()
	log.Printf("[cep][form] lookup start cep=%s", code)

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	result, err := c.lookup(ctx, code)

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case err != nil:
		log.Printf("[cep][form] lookup failed cep=%s err=%v", code, err)
		c.view = entities.ErrorView(entities.ErrorKindTransport, entities.MsgLookupFailed)
	case result.Status == entities.LookupStatusFound:
		log.Printf("[cep][form] lookup found cep=%s city=%s", code, result.Address.City)
		c.view = entities.FoundView(result.Address)
		c.query = ""
	case result.Status == entities.LookupStatusNotFound:
		log.Printf("[cep][form] lookup not-found cep=%s", code)
		c.view = entities.ErrorView(entities.ErrorKindNotFound, entities.MsgCEPNotFound)
		c.query = ""
	default:
		log.Printf("[cep][form] lookup returned unexpected status cep=%s status=%q", code, result.Status)
		c.view = entities.ErrorView(entities.ErrorKindTransport, entities.MsgLookupFailed)
	}
}

// lookup turns a gateway panic into a transport error so the form never
// stays in Loading.
func (c *LookupFormController) lookup(ctx context.Context, code string) (result entities.LookupResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("gateway panic: %v", r)
		}
	}()
	return c.gateway.Lookup(ctx, code)
}
