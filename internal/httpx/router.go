package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/cartkeeper/internal/logger"
)

func NewRouter(handler *Handler, log *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/health", Health)
	r.Get("/cart", handler.GetCartPage)
	r.Get("/api/cart", handler.GetCart)
	r.Post("/add", handler.AddItem)
	r.Post("/remove", handler.RemoveItem)

	r.Handle("/*", http.FileServer(handler.pages.Static()))
	return r
}
