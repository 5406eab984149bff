package history

import (
	"net/http"
	"strconv"
	"time"

	"boxful/internal/web"

	"go.uber.org/zap"
)

const (
	pageTitle     = "Mis envíos"
	fetchFallback = "No se pudieron cargar las órdenes"
	csvFilename   = "ordenes_boxful.csv"
)

type Controller struct {
	client   Client
	service  *Service
	sessions *web.SessionStore
	renderer *web.Renderer
	shell    *web.ShellLoader
	logger   *zap.Logger
}

func NewController(client Client, service *Service, sessions *web.SessionStore, renderer *web.Renderer, shell *web.ShellLoader, logger *zap.Logger) *Controller {
	return &Controller{
		client:   client,
		service:  service,
		sessions: sessions,
		renderer: renderer,
		shell:    shell,
		logger:   logger,
	}
}

// ShowDashboard carga el historial, con filtro de fechas opcional, y lo
// pinta paginado.
func (c *Controller) ShowDashboard(w http.ResponseWriter, r *http.Request) {
	shell, err := c.shell.Load(r.Context(), c.sessions.Current(r), "history")
	if err != nil {
		web.HandleUnauthorized(c.sessions, w, r, err)
		return
	}

	startRaw := r.URL.Query().Get("startDate")
	endRaw := r.URL.Query().Get("endDate")
	data := DashboardData{
		Shell:      shell,
		Title:      pageTitle,
		StartDate:  startRaw,
		EndDate:    endRaw,
		Page:       1,
		TotalPages: 1,
	}

	start, end := parseRange(startRaw, endRaw)
	token := c.sessions.Current(r).Token
	records, err := c.client.ListOrders(r.Context(), token, start, end)
	if err != nil {
		if web.HandleUnauthorized(c.sessions, w, r, err) {
			return
		}
		c.logger.Error("failed to list orders", zap.Error(err))
		data.Error = web.UpstreamMessage(err, fetchFallback)
		c.renderer.Render(w, "dashboard", data)
		return
	}

	rows := c.service.BuildRows(records)
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageRows, page, totalPages := c.service.Paginate(rows, page)

	data.Rows = pageRows
	data.Page = page
	data.TotalPages = totalPages
	data.HasPrev = page > 1
	data.HasNext = page < totalPages
	data.PrevPage = page - 1
	data.NextPage = page + 1
	c.renderer.Render(w, "dashboard", data)
}

// ExportCSV descarga las filas del filtro vigente como CSV.
func (c *Controller) ExportCSV(w http.ResponseWriter, r *http.Request) {
	start, end := parseRange(r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	token := c.sessions.Current(r).Token

	records, err := c.client.ListOrders(r.Context(), token, start, end)
	if err != nil {
		if web.HandleUnauthorized(c.sessions, w, r, err) {
			return
		}
		c.logger.Error("failed to export orders", zap.Error(err))
		http.Error(w, fetchFallback, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+csvFilename+`"`)
	if err := c.service.WriteCSV(w, records); err != nil {
		c.logger.Error("failed to write csv", zap.Error(err))
	}
}

// parseRange interpreta el filtro del RangePicker: solo con ambos
// extremos presentes se filtra, y los límites viajan como timestamps
// absolutos (inicio y fin del día).
func parseRange(startRaw, endRaw string) (*time.Time, *time.Time) {
	if startRaw == "" || endRaw == "" {
		return nil, nil
	}
	start, err := time.Parse("2006-01-02", startRaw)
	if err != nil {
		return nil, nil
	}
	end, err := time.Parse("2006-01-02", endRaw)
	if err != nil {
		return nil, nil
	}
	endOfDay := end.Add(24*time.Hour - time.Second)
	return &start, &endOfDay
}
