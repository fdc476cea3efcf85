package routes

import (
	"buscador_cep/internal/adapter/http/handlers"
	"buscador_cep/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathCEP   = "/cep"
	PathForms = "/forms"
)

func addCEPRoutes(rg *gin.RouterGroup, h *handlers.AddressHandler, limiter *middleware.IPRateLimiter) {
	rg.GET(PathCEP+"/:cep", limiter.RateLimit(), h.GetByCEP)
}

func addFormRoutes(rg *gin.RouterGroup, h *handlers.FormHandler, limiter *middleware.IPRateLimiter) {
	forms := rg.Group(PathForms)
	{
		forms.POST("", h.OpenSession)
		forms.GET("/:id", h.GetSession)
		forms.PUT("/:id/query", h.UpdateQuery)
		// Only search reaches ViaCEP.
		forms.POST("/:id/search", limiter.RateLimit(), h.Search)
		forms.DELETE("/:id", h.CloseSession)
	}
}

func addPageRoutes(rg *gin.RouterGroup, h *handlers.PageHandler, limiter *middleware.IPRateLimiter) {
	rg.GET("/", limiter.RateLimit(), h.ShowForm)
	rg.POST("/", limiter.RateLimit(), h.SubmitForm)
}
