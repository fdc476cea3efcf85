package handlers

import (
	response "buscador_cep/internal/adapter/http/dto/response"
	"buscador_cep/internal/domain/entities"
	"buscador_cep/internal/usecase"
	"buscador_cep/pkg"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddressHandler serves stateless CEP lookups.

type AddressHandler struct {
	usecase usecase.IAddressLookupUseCase
}

func NewAddressHandler(uc usecase.IAddressLookupUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

// GetByCEP godoc
// @Summary      Look up an address by CEP
// @Description  Resolves an 8-digit CEP (digits only, no mask) through ViaCEP.
// @Tags         cep
// @Produce      json
// @Param        cep  path      string  true  "CEP with 8 digits"
// @Success      200  {object}  response.AddressResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /cep/{cep} [get]
func (h *AddressHandler) GetByCEP(c *gin.Context) {
	cep := c.Param("cep")

	addr, err := h.usecase.LookupByCEP(c.Request.Context(), cep)
	if err != nil {
		log.Printf("[cep][handler] lookup failed cep=%q err=%v", cep, err)
		appErr := mapAddressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAddress(addr))
}

func mapAddressError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrEmptyCEP):
		return pkg.NewDomainErrorSimple("EMPTY_CEP", entities.MsgEmptyCEP, http.StatusBadRequest)
	case errors.Is(err, entities.ErrMalformedCEP):
		return pkg.NewDomainErrorSimple("INVALID_CEP", entities.MsgMalformedCEP, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCEPNotFound):
		return pkg.NewDomainErrorSimple("CEP_NOT_FOUND", entities.MsgCEPNotFound, http.StatusNotFound)
	case errors.Is(err, usecase.ErrLookupUnavailable):
		return pkg.NewDomainError("LOOKUP_UNAVAILABLE", entities.MsgLookupFailed, err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
