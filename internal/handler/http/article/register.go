package article

import (
	"net/http"

	"blogful/internal/repository"
	artUC "blogful/internal/usecase/article"
)

// Register registers the article routes on mux. Every handler runs its
// service call against db.
func Register(mux *http.ServeMux, svc *artUC.Service, db repository.Handle) {
	mux.Handle("GET /articles", ListHandler{Svc: svc, DB: db})
	mux.Handle("GET /articles/search", SearchHandler{Svc: svc, DB: db})
	mux.Handle("GET /articles/{id}", GetHandler{Svc: svc, DB: db})
	mux.Handle("POST /articles", CreateHandler{Svc: svc, DB: db})
	mux.Handle("PATCH /articles/{id}", UpdateHandler{Svc: svc, DB: db})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{Svc: svc, DB: db})
}
