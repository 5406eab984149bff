package server

import (
	"net/http"

	"boxful/internal/auth"
	"boxful/internal/history"
	"boxful/internal/order"
	"boxful/internal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func NewRouter(
	authCtrl *auth.Controller,
	orderCtrl *order.Controller,
	historyCtrl *history.Controller,
	sessions *web.SessionStore,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(web.RequestLogger(logger))

	// páginas de autenticación, sin sesión
	r.Get("/login", authCtrl.ShowLogin)
	r.Post("/login", authCtrl.HandleLogin)
	r.Get("/register", authCtrl.ShowRegister)
	r.Post("/register", authCtrl.HandleRegister)
	r.Post("/register/confirm", authCtrl.HandleRegisterConfirm)

	// páginas internas, con sesión obligatoria
	r.Group(func(r chi.Router) {
		r.Use(web.RequireSession(sessions))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		})
		r.Post("/logout", authCtrl.HandleLogout)

		r.Get("/dashboard", historyCtrl.ShowDashboard)
		r.Get("/dashboard/export.csv", historyCtrl.ExportCSV)

		r.Route("/create-order", func(r chi.Router) {
			r.Get("/", orderCtrl.ShowStep1)
			r.Post("/", orderCtrl.HandleStep1)
			r.Get("/packages", orderCtrl.ShowStep2)
			r.Post("/packages", orderCtrl.HandleAddPackage)
			r.Post("/packages/delete", orderCtrl.HandleRemovePackage)
			r.Post("/submit", orderCtrl.HandleSubmit)
			r.Post("/reset", orderCtrl.HandleReset)
		})
	})

	return r
}
