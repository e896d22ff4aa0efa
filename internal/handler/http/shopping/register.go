package shopping

import (
	"net/http"

	"blogful/internal/repository"
	shopUC "blogful/internal/usecase/shopping"
)

// Register registers the shopping list routes on mux.
func Register(mux *http.ServeMux, svc *shopUC.Service, db repository.Handle) {
	mux.Handle("GET /shopping-list", ListHandler{Svc: svc, DB: db})
	mux.Handle("GET /shopping-list/search", SearchHandler{Svc: svc, DB: db})
	mux.Handle("GET /shopping-list/page/{page}", PageHandler{Svc: svc, DB: db})
	mux.Handle("GET /shopping-list/added-before", AddedBeforeHandler{Svc: svc, DB: db})
	mux.Handle("GET /shopping-list/totals", TotalsHandler{Svc: svc, DB: db})
	mux.Handle("GET /shopping-list/{id}", GetHandler{Svc: svc, DB: db})
	mux.Handle("POST /shopping-list", CreateHandler{Svc: svc, DB: db})
	mux.Handle("PATCH /shopping-list/{id}", UpdateHandler{Svc: svc, DB: db})
	mux.Handle("DELETE /shopping-list/{id}", DeleteHandler{Svc: svc, DB: db})
}
