// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (b *Backend) routes() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(b.withLogging)
	router.Use(b.injectFailures)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/params", b.authParams)
		r.Post("/auth/register", b.register)
		r.Post("/auth/login", b.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(b.auth)

		r.Put("/users/me/key_pair", b.uploadKeyPair)

		r.Route("/logins", func(r chi.Router) {
			r.Get("/", b.listLogins)
			r.Post("/", b.createLogin)
			r.Get("/{id}", b.getLogin)
			r.Patch("/{id}", b.updateLogin)
			r.Delete("/{id}", b.trashLogin)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", b.listNotes)
			r.Post("/", b.createNote)
			r.Get("/{id}", b.getNote)
			r.Patch("/{id}", b.updateNote)
			r.Delete("/{id}", b.deleteNote)
		})

		r.Route("/sshkeys", func(r chi.Router) {
			r.Get("/", b.listSSHKeys)
			r.Post("/", b.createSSHKey)
			r.Get("/{id}", b.getSSHKey)
			r.Patch("/{id}", b.updateSSHKey)
			r.Delete("/{id}", b.deleteSSHKey)
		})

		r.Route("/shared_login_data", func(r chi.Router) {
			r.Get("/", b.listShares)
			r.Get("/new", b.recipientKey)
			r.Post("/", b.createShare)
			r.Delete("/{id}", b.deleteShare)
		})

		r.Route("/trashes", func(r chi.Router) {
			r.Get("/", b.listTrash)
			r.Patch("/{id}", b.restoreTrash)
			r.Delete("/{id}", b.purgeTrash)
		})

		r.Get("/folders", b.listFolders)
	})

	return router
}
