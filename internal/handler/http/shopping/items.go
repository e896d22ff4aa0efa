package shopping

import (
	"net/http"
	"strconv"

	"blogful/internal/handler/http/decode"
	"blogful/internal/handler/http/pathutil"
	"blogful/internal/handler/http/respond"
	"blogful/internal/repository"
	shopUC "blogful/internal/usecase/shopping"
)

// ListHandler returns every item.
type ListHandler struct {
	Svc *shopUC.Service
	DB  repository.Handle
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.GetAllItems(r.Context(), h.DB)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, ToDTOs(list))
}

// GetHandler returns one item or 404.
type GetHandler struct {
	Svc *shopUC.Service
	DB  repository.Handle
}

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	it, err := h.Svc.GetByID(r.Context(), h.DB, id)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	if it == nil {
		respond.Failure(w, r, shopUC.ErrItemNotFound)
		return
	}
	respond.JSON(w, http.StatusOK, ToDTO(*it))
}

// CreateHandler inserts an item and answers 201 with the stored row.
type CreateHandler struct {
	Svc *shopUC.Service
	DB  repository.Handle
}

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req writeRequest
	if err := decode.JSON(r, &req); err != nil {
		respond.Failure(w, r, err)
		return
	}
	in, err := req.item()
	if err != nil {
		respond.Failure(w, r, err)
		return
	}

	stored, err := h.Svc.InsertItem(r.Context(), h.DB, in)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	w.Header().Set("Location", "/shopping-list/"+strconv.FormatInt(stored.ID, 10))
	respond.JSON(w, http.StatusCreated, ToDTO(stored))
}

// UpdateHandler applies a partial update. 204 on success, 404 when no row
// matched.
type UpdateHandler struct {
	Svc *shopUC.Service
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

	n, err := h.Svc.UpdateItem(r.Context(), h.DB, id, fields)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	if n == 0 {
		respond.Failure(w, r, shopUC.ErrItemNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteHandler removes an item. 204 on success, 404 when no row matched.
type DeleteHandler struct {
	Svc *shopUC.Service
	DB  repository.Handle
}

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	n, err := h.Svc.DeleteItem(r.Context(), h.DB, id)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	if n == 0 {
		respond.Failure(w, r, shopUC.ErrItemNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
