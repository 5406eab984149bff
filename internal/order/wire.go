package order

import (
	"boxful/internal/web"

	"go.uber.org/zap"
)

func NewModule(client Client, sessions *web.SessionStore, renderer *web.Renderer, shell *web.ShellLoader, logger *zap.Logger) *Controller {
	svc := NewService()
	return NewController(client, svc, sessions, renderer, shell, logger)
}
