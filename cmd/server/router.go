package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adkhamov/leadbook/internal/handler"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Mount("/", h.Routes())

	return r
}
