package handlers

import (
	request "buscador_cep/internal/adapter/http/dto/request"
	response "buscador_cep/internal/adapter/http/dto/response"
	"buscador_cep/internal/domain/entities"
	"buscador_cep/internal/usecase"
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	FormPageTemplateName = "form.html"
	SessionCookieName    = "cep_session"
)

const formPageHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
{{if .Loading}}<meta http-equiv="refresh" content="1">{{end}}
<title>Buscador de CEP</title>
</head>
<body>
<div class="container">
  <h1 class="title">Buscador de CEP</h1>
  <form class="containerInput" method="post" action="/">
    <input type="text" name="cep" placeholder="Digite um CEP..." value="{{.Query}}" autofocus>
    <button class="buttonSearch" type="submit"{{if not .SearchEnabled}} disabled{{end}}>Buscar</button>
  </form>
  <main class="main">
  {{- if .Loading}}
    <p>Carregando...</p>
  {{- end}}
  {{- with .ErrorMessage}}
    <p class="error">{{.}}</p>
  {{- end}}
  {{- with .Address}}
    <h2>CEP: {{.CEP}}</h2>
    <span>Rua: {{.Street}}</span>
    {{- with .Complement}}
    <span>Complemento: {{.}}</span>
    {{- end}}
    <span>Bairro: {{.Neighborhood}}</span>
    <span>Cidade: {{.CityLine}}</span>
  {{- end}}
  </main>
</div>
</body>
</html>
`

// FormPageTemplate is registered on the gin engine with SetHTMLTemplate.
func FormPageTemplate() *template.Template {
	return template.Must(template.New(FormPageTemplateName).Parse(formPageHTML))
}

type formPageView struct {
	Query         string
	SearchEnabled bool
	Loading       bool
	ErrorMessage  string
	Address       *response.AddressResponse
}

func newFormPageView(st entities.FormState) formPageView {
	v := formPageView{
		Query:         st.Query,
		SearchEnabled: st.SearchEnabled(),
		Loading:       st.View.Loading(),
	}
	if _, msg, ok := st.View.Error(); ok {
		v.ErrorMessage = msg
	}
	if a, ok := st.View.Address(); ok {
		addr := response.FromAddress(a)
		v.Address = &addr
	}
	return v
}

// PageHandler renders the single page lookup form. The visitor's session is
// tracked with a cookie.
type PageHandler struct {
	usecase usecase.IFormSessionUseCase
}

func NewPageHandler(uc usecase.IFormSessionUseCase) *PageHandler {
	return &PageHandler{usecase: uc}
}

// ShowForm renders the visitor's form. A visitor without a session sees an
// idle form; the session is opened on the first submit.
func (h *PageHandler) ShowForm(c *gin.Context) {
	st := entities.FormState{View: entities.IdleView()}
	if _, known, ok := h.current(c); ok {
		st = known
	}
	c.HTML(http.StatusOK, FormPageTemplateName, newFormPageView(st))
}

// SubmitForm stores the typed CEP, presses search and redirects back to the
// page (post/redirect/get). While loading, the page refreshes itself.
func (h *PageHandler) SubmitForm(c *gin.Context) {
	var payload request.FormSubmitRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	id, _, ok := h.current(c)
	if !ok {
		id = h.open(c)
	}
	if _, err := h.usecase.SetQuery(id, payload.ResolveCEP()); err != nil {
		log.Printf("[cep][page] set query failed session_id=%s err=%v", id, err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if _, err := h.usecase.Submit(id); err != nil && !errors.Is(err, usecase.ErrSearchDisabled) {
		log.Printf("[cep][page] submit failed session_id=%s err=%v", id, err)
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) current(c *gin.Context) (string, entities.FormState, bool) {
	id, err := c.Cookie(SessionCookieName)
	if err != nil || id == "" {
		return "", entities.FormState{}, false
	}
	st, err := h.usecase.State(id)
	if err != nil {
		return "", entities.FormState{}, false
	}
	return id, st, true
}

func (h *PageHandler) open(c *gin.Context) string {
	s := h.usecase.Open()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, s.ID, 0, "/", "", c.Request.TLS != nil, true)
	return s.ID
}
