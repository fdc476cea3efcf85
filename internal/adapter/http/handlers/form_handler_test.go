package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	request "buscador_cep/internal/adapter/http/dto/request"
	"buscador_cep/internal/adapter/http/handlers/mocks"
	"buscador_cep/internal/domain/entities"
	"buscador_cep/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const sessionID = "2f1c7b0e-6a55-4a36-9d0c-0f1b5c4e9a11"

type stubForm struct{ st entities.FormState }

func (f stubForm) State() entities.FormState { return f.st }
func (stubForm) SetQuery(string)             {}
func (stubForm) Submit() error               { return nil }
func (stubForm) Wait()                       {}

func newFormRouter(h *FormHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/forms", h.OpenSession)
	r.GET("/v1/forms/:id", h.GetSession)
	r.PUT("/v1/forms/:id/query", h.UpdateQuery)
	r.POST("/v1/forms/:id/search", h.Search)
	r.DELETE("/v1/forms/:id", h.CloseSession)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestFormHandler_OpenSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFormSessionUseCase(ctrl)
	uc.EXPECT().Open().Return(entities.FormSession{
		ID:        sessionID,
		CreatedAt: time.Now(),
		Form:      stubForm{st: entities.FormState{View: entities.IdleView()}},
	})

	w := httptest.NewRecorder()
	newFormRouter(NewFormHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/forms", nil))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["session_id"] != sessionID || body["state"] != "idle" || body["search_enabled"] != true {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestFormHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormSessionUseCase(ctrl)
		uc.EXPECT().State(sessionID).Return(entities.FormState{View: entities.FoundView(pracaDaSe)}, nil)

		w := httptest.NewRecorder()
		newFormRouter(NewFormHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/forms/"+sessionID, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["state"] != "found" {
			t.Fatalf("expected found, got %v", body["state"])
		}
		addr, ok := body["address"].(map[string]any)
		if !ok || addr["street"] != "Praça da Sé" {
			t.Fatalf("unexpected address: %v", body["address"])
		}
		if _, ok := body["error"]; ok {
			t.Fatalf("found view must not carry an error: %v", body)
		}
	})

	t.Run("errors are mapped", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{usecase.ErrInvalidSessionID, http.StatusBadRequest},
			{usecase.ErrSessionNotFound, http.StatusNotFound},
			{errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIFormSessionUseCase(ctrl)
			uc.EXPECT().State("x").Return(entities.FormState{}, tc.err)

			w := httptest.NewRecorder()
			newFormRouter(NewFormHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/forms/x", nil))
			if w.Code != tc.code {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, w.Code)
			}
			ctrl.Finish()
		}
	})
}

func TestFormHandler_UpdateQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormSessionUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPut, "/v1/forms/"+sessionID+"/query", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newFormRouter(NewFormHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormSessionUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPut, "/v1/forms/"+sessionID+"/query", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newFormRouter(NewFormHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stored as typed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormSessionUseCase(ctrl)
		uc.EXPECT().SetQuery(sessionID, " 01001-000").
			Return(entities.FormState{Query: " 01001-000", View: entities.IdleView()}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/forms/"+sessionID+"/query", bytes.NewBufferString(`{"query":" 01001-000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newFormRouter(NewFormHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["query"] != " 01001-000" {
			t.Fatalf("unexpected query: %v", body["query"])
		}
	})

	t.Run("empty query clears the input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormSessionUseCase(ctrl)
		uc.EXPECT().SetQuery(sessionID, "").Return(entities.FormState{View: entities.IdleView()}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/forms/"+sessionID+"/query", bytes.NewBufferString(`{"query":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newFormRouter(NewFormHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("oversized query is clamped, not rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormSessionUseCase(ctrl)
		clamped := strings.Repeat("1", request.MaxQueryLength)
		uc.EXPECT().SetQuery(sessionID, clamped).
			Return(entities.FormState{Query: clamped, View: entities.IdleView()}, nil)

		body := `{"query":"` + strings.Repeat("1", 65) + `"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/forms/"+sessionID+"/query", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newFormRouter(NewFormHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})
}

func TestFormHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("dispatched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormSessionUseCase(ctrl)
		uc.EXPECT().Submit(sessionID).Return(entities.FormState{Query: "01001000", View: entities.LoadingView()}, nil)

		w := httptest.NewRecorder()
		newFormRouter(NewFormHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/forms/"+sessionID+"/search", nil))

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["state"] != "loading" || body["loading"] != true || body["search_enabled"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormSessionUseCase(ctrl)
		uc.EXPECT().Submit(sessionID).Return(entities.FormState{
			Query: "123",
			View:  entities.ErrorView(entities.ErrorKindValidation, entities.MsgMalformedCEP),
		}, nil)

		w := httptest.NewRecorder()
		newFormRouter(NewFormHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/forms/"+sessionID+"/search", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		e, ok := body["error"].(map[string]any)
		if !ok || e["kind"] != "validation" || e["message"] != entities.MsgMalformedCEP {
			t.Fatalf("unexpected error: %v", body["error"])
		}
	})

	t.Run("disabled while loading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormSessionUseCase(ctrl)
		uc.EXPECT().Submit(sessionID).Return(entities.FormState{View: entities.LoadingView()}, usecase.ErrSearchDisabled)

		w := httptest.NewRecorder()
		newFormRouter(NewFormHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/forms/"+sessionID+"/search", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "SEARCH_DISABLED" {
			t.Fatalf("unexpected code: %v", body["code"])
		}
	})
}

func TestFormHandler_CloseSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormSessionUseCase(ctrl)
		uc.EXPECT().Close(sessionID).Return(nil)

		w := httptest.NewRecorder()
		newFormRouter(NewFormHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/forms/"+sessionID, nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormSessionUseCase(ctrl)
		uc.EXPECT().Close(sessionID).Return(usecase.ErrSessionNotFound)

		w := httptest.NewRecorder()
		newFormRouter(NewFormHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/forms/"+sessionID, nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
