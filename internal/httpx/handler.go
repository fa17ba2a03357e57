package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/cartkeeper/internal/domain"
	"github.com/nikolayk812/cartkeeper/internal/logger"
	"github.com/nikolayk812/cartkeeper/internal/page"
	"github.com/nikolayk812/cartkeeper/internal/port"
	"golang.org/x/text/unicode/norm"
)

const (
	HeaderCartTotal = "X-Cart-Total"
	HeaderCartItems = "X-Cart-Items"
)

// Handler exposes the shared cart over HTTP. The cart itself is owned by the
// repository injected at startup.
type Handler struct {
	repo  port.CartRepository
	pages *page.Resources
	log   *logger.Logger
}

func NewHandler(repo port.CartRepository, pages *page.Resources, log *logger.Logger) *Handler {
	return &Handler{
		repo:  repo,
		pages: pages,
		log:   log,
	}
}

// GetCartPage returns the static cart page verbatim; the cart state travels in headers.
func (h *Handler) GetCartPage(w http.ResponseWriter, r *http.Request) {
	snap, err := h.repo.GetCart(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart_unavailable", err.Error())
		return
	}

	body, err := h.pages.Load(page.Index)
	if errors.Is(err, page.ErrNotFound) {
		writeError(w, http.StatusNotFound, "resource_not_found", err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "resource_unreadable", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set(HeaderCartTotal, domain.FormatPrice(snap.Total))
	w.Header().Set(HeaderCartItems, strconv.Itoa(len(snap.Items)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	snap, err := h.repo.GetCart(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart_unavailable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, mapSnapshotToResponse(snap))
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	item, err := itemFromForm(r)
	if err != nil {
		h.rejectInput(w, r, "invalid_price", err)
		return
	}

	err = h.repo.AddItem(r.Context(), item)
	if errors.Is(err, domain.ErrTotalOverflow) {
		h.rejectInput(w, r, "total_overflow", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart_unavailable", err.Error())
		return
	}

	h.log.Info("item added", "item", item.String(), "request_id", middleware.GetReqID(r.Context()))
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// RemoveItem drops the first matching item; an absent item still redirects.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	item, err := itemFromForm(r)
	if err != nil {
		h.rejectInput(w, r, "invalid_price", err)
		return
	}

	removed, err := h.repo.RemoveItem(r.Context(), item)
	if errors.Is(err, domain.ErrTotalOverflow) {
		h.rejectInput(w, r, "total_overflow", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart_unavailable", err.Error())
		return
	}

	h.log.Info("item removal", "item", item.String(), "removed", removed, "request_id", middleware.GetReqID(r.Context()))
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *Handler) rejectInput(w http.ResponseWriter, r *http.Request, code string, err error) {
	h.log.Warn("request rejected", "code", code, "error", err, "request_id", middleware.GetReqID(r.Context()))
	writeError(w, http.StatusBadRequest, code, err.Error())
}

func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// itemFromForm reads name and price from the query string or form body.
// Names are NFC-normalized so composed and decomposed spellings compare equal.
func itemFromForm(r *http.Request) (domain.Item, error) {
	price, err := domain.ParsePrice(r.FormValue("price"))
	if err != nil {
		return domain.Item{}, err
	}

	return domain.NewItem(norm.NFC.String(r.FormValue("name")), price), nil
}

func mapSnapshotToResponse(snap domain.Snapshot) CartResponse {
	items := make([]ItemResponse, len(snap.Items))
	for i, it := range snap.Items {
		items[i] = ItemResponse{
			Name:  it.Name(),
			Price: it.Price(),
		}
	}

	return CartResponse{
		ID:    snap.ID.String(),
		Items: items,
		Total: snap.Total,
		Count: len(items),
	}
}

// writeJSON encodes before writing the status so an unencodable value becomes a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"encode_failed"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
