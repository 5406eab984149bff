package web

import "boxful/internal/infrastructure/api"

// UpstreamMessage muestra el mensaje de negocio del backend tal cual (la
// lista de mensajes ya llega unida); ante cualquier otro fallo se usa el
// texto genérico de la página.
func UpstreamMessage(err error, fallback string) string {
	if apiErr, ok := api.AsError(err); ok && len(apiErr.Messages) > 0 {
		return apiErr.Error()
	}
	return fallback
}
