package article

import (
	"fmt"
	"net/http"

	"blogful/internal/domain/entity"
	"blogful/internal/handler/http/respond"
	"blogful/internal/repository"
	artUC "blogful/internal/usecase/article"
)

// ListHandler returns every article, or those of ?region= newest first.
type ListHandler struct {
	Svc *artUC.Service
	DB  repository.Handle
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		list []entity.Article
		err  error
	)
	if region := r.URL.Query().Get("region"); region != "" {
		list, err = h.Svc.ByRegion(r.Context(), h.DB, region)
	} else {
		list, err = h.Svc.GetAllArticles(r.Context(), h.DB)
	}
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(list))
}

// SearchHandler returns the articles whose title contains ?q=.
type SearchHandler struct {
	Svc *artUC.Service
	DB  repository.Handle
}

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respond.Failure(w, r, fmt.Errorf("q query param required: %w", entity.ErrInvalidInput))
		return
	}

	list, err := h.Svc.Search(r.Context(), h.DB, q)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(list))
}
