package history

import "boxful/internal/web"

// Row es la proyección de un envío para la tabla del historial. Derivada
// por completo del registro del backend, nunca se escribe de vuelta.
type Row struct {
	ID                 string
	ShortID            string
	Recipient          string
	Status             string
	StatusLabel        string
	Delivered          bool
	Date               string
	PackagesCount      int
	Collected          string
	Settlement         string
	SettlementPending  bool
	SettlementNegative bool
}

type DashboardData struct {
	Shell      web.Shell
	Title      string
	Error      string
	Rows       []Row
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
	StartDate  string
	EndDate    string
}
