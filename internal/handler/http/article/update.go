package article

import (
	"net/http"

	"blogful/internal/handler/http/decode"
	"blogful/internal/handler/http/pathutil"
	"blogful/internal/handler/http/respond"
	"blogful/internal/repository"
	artUC "blogful/internal/usecase/article"
)

// UpdateHandler applies a partial update. 204 on success, 404 when no row
// matched.
type UpdateHandler struct {
	Svc *artUC.Service
	DB  repository.Handle
}

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	var req writeRequest
	if err := decode.JSON(r, &req); err != nil {
		respond.Failure(w, r, err)
		return
	}
	fields, err := req.fields()
	if err != nil {
		respond.Failure(w, r, err)
		return
	}

	n, err := h.Svc.UpdateArticle(r.Context(), h.DB, id, fields)
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
