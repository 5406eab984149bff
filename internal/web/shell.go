package web

import (
	"context"
	"errors"

	"boxful/internal/domain"
	"boxful/internal/infrastructure/api"

	"go.uber.org/zap"
)

// Shell son los datos del marco común de las páginas internas: barra
// lateral, nombre del usuario y el monto a liquidar del encabezado.
type Shell struct {
	UserName string
	Balance  string
	Active   string
}

type BalanceClient interface {
	Balance(ctx context.Context, token string) (*api.BalanceResponse, error)
}

type ShellLoader struct {
	client BalanceClient
	logger *zap.Logger
}

func NewShellLoader(client BalanceClient, logger *zap.Logger) *ShellLoader {
	return &ShellLoader{client: client, logger: logger}
}

// Load arma el marco de la página. Un fallo al pedir el balance no tumba
// la página (se muestra 0.00); el 401 sí se propaga para que aplique la
// política global.
func (l *ShellLoader) Load(ctx context.Context, sess domain.Session, active string) (Shell, error) {
	shell := Shell{
		UserName: sess.DisplayName,
		Balance:  "0.00",
		Active:   active,
	}
	if shell.UserName == "" {
		shell.UserName = "Usuario"
	}

	resp, err := l.client.Balance(ctx, sess.Token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return shell, err
		}
		l.logger.Warn("failed to fetch balance", zap.Error(err))
		return shell, nil
	}
	shell.Balance = resp.TotalSettlement.StringFixed(2)
	return shell, nil
}
