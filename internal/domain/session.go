package domain

// Session es el par que el portal conserva entre peticiones: el token del
// backend y el nombre a mostrar. Su ausencia se trata como "no autenticado".
type Session struct {
	Token       string
	DisplayName string
}

func (s Session) LoggedIn() bool {
	return s.Token != ""
}
