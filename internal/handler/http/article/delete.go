package article

import (
	"net/http"

	"blogful/internal/handler/http/pathutil"
	"blogful/internal/handler/http/respond"
	"blogful/internal/repository"
	artUC "blogful/internal/usecase/article"
)

// DeleteHandler removes an article. 204 on success, 404 when no row matched.
type DeleteHandler struct {
	Svc *artUC.Service
	DB  repository.Handle
}

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	n, err := h.Svc.DeleteArticle(r.Context(), h.DB, id)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	if n == 0 {
		respond.Failure(w, r, artUC.ErrArticleNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
