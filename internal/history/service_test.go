package history

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"boxful/internal/domain"
	"boxful/internal/infrastructure/api"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settledAmount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestBuildRows(t *testing.T) {
	svc := NewService()
	created := time.Date(2026, 8, 20, 15, 4, 5, 0, time.UTC)

	records := []api.OrderRecord{
		{
			ID:                "a1b2c3d4e5f6",
			RecipientName:     "Ana",
			RecipientLastName: "Pérez",
			Status:            domain.OrderStatusDelivered,
			CreatedAt:         created,
			CollectedAmount:   decimal.RequireFromString("45.5"),
			SettlementAmount:  settledAmount("40.25"),
			Packages:          []api.PackagePayload{{Content: "Libros"}, {Content: "Ropa"}},
		},
		{
			ID:                "short",
			RecipientName:     "Luis",
			RecipientLastName: "Gómez",
			Status:            domain.OrderStatusPending,
			CreatedAt:         created,
			CollectedAmount:   decimal.Zero,
		},
		{
			ID:               "ffeeddccbbaa",
			RecipientName:    "Mora",
			Status:           "CANCELLED",
			CreatedAt:        created,
			CollectedAmount:  decimal.RequireFromString("10"),
			SettlementAmount: settledAmount("-2.5"),
		},
	}

	rows := svc.BuildRows(records)
	require.Len(t, rows, 3)

	assert.Equal(t, "a1b2c3d4", rows[0].ShortID)
	assert.Equal(t, "Ana Pérez", rows[0].Recipient)
	assert.Equal(t, "Entregado", rows[0].StatusLabel)
	assert.True(t, rows[0].Delivered)
	assert.Equal(t, "20/08/2026", rows[0].Date)
	assert.Equal(t, 2, rows[0].PackagesCount)
	assert.Equal(t, "45.50", rows[0].Collected)
	assert.Equal(t, "$40.25", rows[0].Settlement)
	assert.False(t, rows[0].SettlementPending)

	// id más corto que ocho caracteres se muestra entero
	assert.Equal(t, "short", rows[1].ShortID)
	assert.Equal(t, "Pendiente", rows[1].StatusLabel)
	assert.False(t, rows[1].Delivered)
	assert.True(t, rows[1].SettlementPending)
	assert.Empty(t, rows[1].Settlement)

	// estado desconocido pasa tal cual
	assert.Equal(t, "CANCELLED", rows[2].StatusLabel)
	assert.Equal(t, "-$2.50", rows[2].Settlement)
	assert.True(t, rows[2].SettlementNegative)
}

func TestPaginate(t *testing.T) {
	svc := NewService()

	rows := make([]Row, 12)
	for i := range rows {
		rows[i].ID = fmt.Sprintf("order-%02d", i)
	}

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantTotal int
		wantLen   int
		wantFirst string
	}{
		{"first page", 1, 1, 3, 5, "order-00"},
		{"middle page", 2, 2, 3, 5, "order-05"},
		{"last partial page", 3, 3, 3, 2, "order-10"},
		{"page below range clamps to first", 0, 1, 3, 5, "order-00"},
		{"page above range clamps to last", 99, 3, 3, 2, "order-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, page, total := svc.Paginate(rows, tt.page)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantTotal, total)
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantFirst, got[0].ID)
		})
	}

	t.Run("empty list still reports one page", func(t *testing.T) {
		got, page, total := svc.Paginate(nil, 1)
		assert.Empty(t, got)
		assert.Equal(t, 1, page)
		assert.Equal(t, 1, total)
	})
}

func TestWriteCSV(t *testing.T) {
	svc := NewService()
	created := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	records := []api.OrderRecord{
		{
			ID:                "a1b2c3d4e5f6",
			RecipientName:     "Pérez, Ana",
			RecipientLastName: "María",
			Status:            domain.OrderStatusDelivered,
			CreatedAt:         created,
			CollectedAmount:   decimal.RequireFromString("45.5"),
			SettlementAmount:  settledAmount("40.25"),
		},
		{
			ID:              "ffeeddccbbaa",
			RecipientName:   "Luis",
			Status:          domain.OrderStatusPending,
			CreatedAt:       created,
			CollectedAmount: decimal.Zero,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(&buf, records))

	// encabezado + una línea por registro
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(records)+1)

	parsed, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 3)

	assert.Equal(t, []string{"ID", "Destinatario", "Estado", "Fecha", "Total Cobrado", "Liquidación"}, parsed[0])
	// la coma del nombre sobrevive al quoting
	assert.Equal(t, []string{"a1b2c3d4e5f6", "Pérez, Ana María", "DELIVERED", "20/08/2026", "45.50", "40.25"}, parsed[1])
	assert.Equal(t, []string{"ffeeddccbbaa", "Luis ", "PENDING", "20/08/2026", "0.00", "Pendiente"}, parsed[2])
}
