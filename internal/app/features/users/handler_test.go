package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestServeGet_MalformedID(t *testing.T) {
	h := &Handler{Log: zap.NewNop()}

	req := withURLParam(httptest.NewRequest("GET", "/api/users/nope", nil), "id", "nope")
	rec := httptest.NewRecorder()
	h.ServeGet(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestModeration_MalformedID(t *testing.T) {
	h := &Handler{Log: zap.NewNop()}

	handlers := map[string]http.HandlerFunc{
		"verify":     h.HandleVerify,
		"activate":   h.HandleActivate,
		"deactivate": h.HandleDeactivate,
	}
	for name, fn := range handlers {
		t.Run(name, func(t *testing.T) {
			req := withURLParam(httptest.NewRequest("PUT", "/api/users/nope/"+name, nil), "id", "nope")
			req = auth.WithTestUser(req, &auth.Principal{ID: primitive.NewObjectID().Hex(), Role: "admin"})
			rec := httptest.NewRecorder()
			fn(rec, req)
			if rec.Code != http.StatusNotFound {
				t.Errorf("status = %d, want 404", rec.Code)
			}
		})
	}
}
