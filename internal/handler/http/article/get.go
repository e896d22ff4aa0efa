package article

import (
	"net/http"

	"blogful/internal/handler/http/pathutil"
	"blogful/internal/handler/http/respond"
	"blogful/internal/repository"
	artUC "blogful/internal/usecase/article"
)

// GetHandler returns one article or 404.
type GetHandler struct {
	Svc *artUC.Service
	DB  repository.Handle
}

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	a, err := h.Svc.GetByID(r.Context(), h.DB, id)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	if a == nil {
		respond.Failure(w, r, artUC.ErrArticleNotFound)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(*a))
}
