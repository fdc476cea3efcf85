package handlers

import (
	request "buscador_cep/internal/adapter/http/dto/request"
	response "buscador_cep/internal/adapter/http/dto/response"
	"buscador_cep/internal/domain/entities"
	"buscador_cep/internal/usecase"
	"buscador_cep/pkg"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQueryPayload = pkg.NewDomainErrorSimple("INVALID_QUERY_INPUT", "Invalid query payload", http.StatusBadRequest)
)

// FormHandler exposes lookup form sessions as JSON.
//
// The client edits the query, presses search and then polls the session
// until it leaves the "loading" state.

type FormHandler struct {
	usecase usecase.IFormSessionUseCase
}

func NewFormHandler(uc usecase.IFormSessionUseCase) *FormHandler {
	return &FormHandler{usecase: uc}
}

// OpenSession godoc
// @Summary  Open a lookup form session
// @Tags     forms
// @Produce  json
// @Success  201  {object}  response.FormStateResponse
// @Router   /forms [post]
func (h *FormHandler) OpenSession(c *gin.Context) {
	s := h.usecase.Open()
	c.JSON(http.StatusCreated, response.FromFormState(s.ID, s.Form.State()))
}

// GetSession godoc
// @Summary  Current state of a lookup form
// @Tags     forms
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Success  200  {object}  response.FormStateResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /forms/{id} [get]
func (h *FormHandler) GetSession(c *gin.Context) {
	id := c.Param("id")
	st, err := h.usecase.State(id)
	if err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFormState(id, st))
}

// UpdateQuery godoc
// @Summary  Edit the query of a lookup form
// @Tags     forms
// @Accept   json
// @Produce  json
// @Param    id       path      string                     true  "Session ID"
// @Param    payload  body      request.FormQueryRequest   true  "Query as typed"
// @Success  200      {object}  response.FormStateResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Router   /forms/{id}/query [put]
func (h *FormHandler) UpdateQuery(c *gin.Context) {
	id := c.Param("id")

	var payload request.FormQueryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQueryPayload.HTTPStatus, errInvalidQueryPayload.ToHTTPError())
		return
	}

	st, err := h.usecase.SetQuery(id, payload.ResolveQuery())
	if err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFormState(id, st))
}

// Search presses the submit control.
//
// 202 when a lookup was dispatched, 200 when validation failed (the error is
// in the body), 409 while a previous lookup is still loading.
//
// @Summary  Press search on a lookup form
// @Tags     forms
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Success  200  {object}  response.FormStateResponse
// @Success  202  {object}  response.FormStateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /forms/{id}/search [post]
func (h *FormHandler) Search(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[cep][handler] search start session_id=%s", id)

	st, err := h.usecase.Submit(id)
	if err != nil {
		log.Printf("[cep][handler] search rejected session_id=%s err=%v", id, err)
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// A dispatched lookup never ends in a validation error.
	status := http.StatusAccepted
	if kind, _, ok := st.View.Error(); ok && kind == entities.ErrorKindValidation {
		status = http.StatusOK
	}
	c.JSON(status, response.FromFormState(id, st))
}

// CloseSession godoc
// @Summary  Close a lookup form session
// @Tags     forms
// @Param    id  path  string  true  "Session ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /forms/{id} [delete]
func (h *FormHandler) CloseSession(c *gin.Context) {
	if err := h.usecase.Close(c.Param("id")); err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapFormError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Invalid session id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Form session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSearchDisabled):
		return pkg.NewDomainErrorSimple("SEARCH_DISABLED", entities.MsgSearchDisabled, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
