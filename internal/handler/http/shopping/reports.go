package shopping

import (
	"fmt"
	"net/http"
	"strconv"

	"blogful/internal/domain/entity"
	"blogful/internal/handler/http/respond"
	"blogful/internal/repository"
	shopUC "blogful/internal/usecase/shopping"
)

// SearchHandler returns items whose name contains ?q=.
type SearchHandler struct {
	Svc *shopUC.Service
	DB  repository.Handle
}

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respond.Failure(w, r, fmt.Errorf("q query param required: %w", entity.ErrInvalidInput))
		return
	}

	list, err := h.Svc.SearchByName(r.Context(), h.DB, q)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, ToDTOs(list))
}

// PageHandler returns one page of shopUC.ItemsPerPage items.
type PageHandler struct {
	Svc *shopUC.Service
	DB  repository.Handle
}

func (h PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.PathValue("page"))
	if err != nil {
		respond.Failure(w, r, fmt.Errorf("page must be an integer: %w", entity.ErrInvalidInput))
		return
	}

	p, err := h.Svc.Paginate(r.Context(), h.DB, page)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, PageDTO{Items: ToDTOs(p.Items), Pagination: p.Pagination})
}

// AddedBeforeHandler returns items added more than ?days= days ago.
type AddedBeforeHandler struct {
	Svc *shopUC.Service
	DB  repository.Handle
}

func (h AddedBeforeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 0 {
		respond.Failure(w, r, fmt.Errorf("days must be a non-negative integer: %w", entity.ErrInvalidInput))
		return
	}

	list, err := h.Svc.AddedBefore(r.Context(), h.DB, days)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, ToDTOs(list))
}

// TotalsHandler returns the summed price per category.
type TotalsHandler struct {
	Svc *shopUC.Service
	DB  repository.Handle
}

func (h TotalsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	totals, err := h.Svc.CategoryTotals(r.Context(), h.DB)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, totals)
}
