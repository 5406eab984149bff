package history

import (
	"encoding/csv"
	"io"

	"boxful/internal/domain"
	"boxful/internal/infrastructure/api"

	"github.com/shopspring/decimal"
)

// PageSize replica la paginación de cinco filas de la tabla original.
const PageSize = 5

var csvHeader = []string{"ID", "Destinatario", "Estado", "Fecha", "Total Cobrado", "Liquidación"}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// BuildRows proyecta los registros del backend a filas de tabla: id
// corto, nombre completo, etiqueta de estado, fecha DD/MM/YYYY, conteo de
// paquetes y montos formateados.
func (s *Service) BuildRows(records []api.OrderRecord) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := Row{
			ID:            rec.ID,
			ShortID:       shortID(rec.ID),
			Recipient:     rec.RecipientName + " " + rec.RecipientLastName,
			Status:        rec.Status,
			StatusLabel:   statusLabel(rec.Status),
			Delivered:     rec.Status == domain.OrderStatusDelivered,
			Date:          rec.CreatedAt.Format("02/01/2006"),
			PackagesCount: len(rec.Packages),
			Collected:     rec.CollectedAmount.StringFixed(2),
		}
		if rec.SettlementAmount == nil {
			row.SettlementPending = true
		} else {
			row.Settlement = formatUSD(*rec.SettlementAmount)
			row.SettlementNegative = rec.SettlementAmount.IsNegative()
		}
		rows = append(rows, row)
	}
	return rows
}

// Paginate recorta la página pedida y devuelve el total de páginas. La
// página se acota al rango válido en vez de fallar.
func (s *Service) Paginate(rows []Row, page int) ([]Row, int, int) {
	totalPages := (len(rows) + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], page, totalPages
}

// WriteCSV exporta las filas cargadas con el encabezado documentado.
// encoding/csv se encarga del quoting: una coma en el nombre del
// destinatario ya no rompe el archivo.
func (s *Service) WriteCSV(w io.Writer, records []api.OrderRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		settlement := "Pendiente"
		if rec.SettlementAmount != nil {
			settlement = rec.SettlementAmount.StringFixed(2)
		}
		row := []string{
			rec.ID,
			rec.RecipientName + " " + rec.RecipientLastName,
			rec.Status,
			rec.CreatedAt.Format("02/01/2006"),
			rec.CollectedAmount.StringFixed(2),
			settlement,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func statusLabel(status string) string {
	switch status {
	case domain.OrderStatusDelivered:
		return "Entregado"
	case domain.OrderStatusPending:
		return "Pendiente"
	default:
		return status
	}
}

func formatUSD(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}
