package article

import (
	"net/http"
	"strconv"

	"blogful/internal/handler/http/decode"
	"blogful/internal/handler/http/respond"
	"blogful/internal/repository"
	artUC "blogful/internal/usecase/article"
)

// CreateHandler inserts an article and answers 201 with the stored row.
type CreateHandler struct {
	Svc *artUC.Service
	DB  repository.Handle
}

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req writeRequest
	if err := decode.JSON(r, &req); err != nil {
		respond.Failure(w, r, err)
		return
	}
	in, err := req.article()
	if err != nil {
		respond.Failure(w, r, err)
		return
	}

	stored, err := h.Svc.InsertArticle(r.Context(), h.DB, in)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	w.Header().Set("Location", "/articles/"+strconv.FormatInt(stored.ID, 10))
	respond.JSON(w, http.StatusCreated, toDTO(stored))
}
