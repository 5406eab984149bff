package order

import (
	"testing"
	"time"

	"boxful/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStep1Form() Step1Form {
	return Step1Form{
		PickupAddress:         "Col. Escalón, calle 2 #45",
		ScheduledDate:         "2026-09-15",
		RecipientName:         "Ana",
		RecipientLastName:     "Pérez",
		RecipientEmail:        "ana@example.com",
		RecipientPhone:        "77778888",
		RecipientAddress:      "Res. Las Magnolias #12",
		RecipientDepartment:   "San Salvador",
		RecipientMunicipality: "Soyapango",
	}
}

func TestValidateStep1(t *testing.T) {
	svc := NewService()

	t.Run("valid form returns draft", func(t *testing.T) {
		draft, verr := svc.ValidateStep1(validStep1Form())
		require.Nil(t, verr)
		require.NotNil(t, draft)
		assert.Equal(t, "Ana", draft.RecipientName)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), draft.ScheduledDate)
		assert.Empty(t, draft.Packages)
	})

	t.Run("missing required fields", func(t *testing.T) {
		form := validStep1Form()
		form.PickupAddress = "  "
		form.RecipientName = ""

		_, verr := svc.ValidateStep1(form)
		require.NotNil(t, verr)
		fields := verr.FieldMessages()
		assert.Contains(t, fields, "pickupAddress")
		assert.Contains(t, fields, "recipientName")
	})

	t.Run("rejects bad email and short phone", func(t *testing.T) {
		form := validStep1Form()
		form.RecipientEmail = "not-an-email"
		form.RecipientPhone = "1234"

		_, verr := svc.ValidateStep1(form)
		require.NotNil(t, verr)
		fields := verr.FieldMessages()
		assert.Contains(t, fields, "recipientEmail")
		assert.Contains(t, fields, "recipientPhone")
	})

	t.Run("municipality must belong to department", func(t *testing.T) {
		form := validStep1Form()
		form.RecipientDepartment = "La Libertad"
		form.RecipientMunicipality = "Soyapango"

		_, verr := svc.ValidateStep1(form)
		require.NotNil(t, verr)
		assert.Contains(t, verr.FieldMessages(), "recipientMunicipality")
	})

	t.Run("cod amount required only when cod enabled", func(t *testing.T) {
		form := validStep1Form()
		form.IsCOD = true
		form.ExpectedCodAmount = ""

		_, verr := svc.ValidateStep1(form)
		require.NotNil(t, verr)
		assert.Contains(t, verr.FieldMessages(), "expectedCodAmount")

		form.IsCOD = false
		draft, verr := svc.ValidateStep1(form)
		assert.Nil(t, verr)
		assert.NotNil(t, draft)
	})
}

func TestAddPackage(t *testing.T) {
	svc := NewService()

	t.Run("all five fields required", func(t *testing.T) {
		draft := &domain.OrderDraft{}
		verr := svc.AddPackage(draft, PackageForm{Length: "10", Height: "5", Width: "8", Weight: ""})
		require.NotNil(t, verr)
		assert.Equal(t, "Completa todos los campos del paquete", verr.Message)
		assert.Empty(t, draft.Packages)
	})

	t.Run("rejects non numeric dimensions", func(t *testing.T) {
		draft := &domain.OrderDraft{}
		verr := svc.AddPackage(draft, PackageForm{Length: "diez", Height: "5", Width: "8", Weight: "2", Content: "Libros"})
		require.NotNil(t, verr)
		assert.Equal(t, "Las dimensiones y el peso deben ser numéricos", verr.Message)
		assert.Empty(t, draft.Packages)
	})

	t.Run("appends item with generated id", func(t *testing.T) {
		draft := &domain.OrderDraft{}
		verr := svc.AddPackage(draft, PackageForm{Length: "10", Height: "5.5", Width: "8", Weight: "2", Content: "Libros"})
		require.Nil(t, verr)
		require.Len(t, draft.Packages, 1)

		pkg := draft.Packages[0]
		assert.NotEmpty(t, pkg.ID)
		assert.Equal(t, 5.5, pkg.Height)
		assert.Equal(t, "Libros", pkg.Content)
	})
}

func TestRemovePackage(t *testing.T) {
	svc := NewService()
	draft := &domain.OrderDraft{Packages: []domain.PackageItem{
		{ID: "a", Content: "uno"},
		{ID: "b", Content: "dos"},
		{ID: "c", Content: "tres"},
	}}

	svc.RemovePackage(draft, "b")

	require.Len(t, draft.Packages, 2)
	assert.Equal(t, "a", draft.Packages[0].ID)
	assert.Equal(t, "c", draft.Packages[1].ID)

	// id desconocido: no pasa nada
	svc.RemovePackage(draft, "zzz")
	assert.Len(t, draft.Packages, 2)
}

func TestNormalizePhone(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"digits only", "77778888", "+503 77778888"},
		{"dashes and letters stripped", "7777-7777x", "+503 77777777"},
		{"spaces stripped", " 7777 8888 ", "+503 77778888"},
		{"empty stays prefixed", "", "+503 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.NormalizePhone(tt.raw))
		})
	}
}

func TestBuildRequest(t *testing.T) {
	svc := NewService()
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	baseDraft := func() *domain.OrderDraft {
		return &domain.OrderDraft{
			PickupAddress:         "Col. Escalón",
			ScheduledDate:         time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			RecipientName:         "Ana",
			RecipientLastName:     "Pérez",
			RecipientEmail:        "ana@example.com",
			RecipientPhone:        "7777-8888",
			RecipientAddress:      "Res. Las Magnolias",
			RecipientDepartment:   "San Salvador",
			RecipientMunicipality: "Soyapango",
			Packages: []domain.PackageItem{
				{ID: "a", Length: 10, Height: 5, Width: 8, Weight: 2, Content: "Libros"},
			},
		}
	}

	t.Run("empty package list is rejected", func(t *testing.T) {
		draft := baseDraft()
		draft.Packages = nil
		_, err := svc.BuildRequest(draft, now)
		assert.ErrorIs(t, err, ErrNoPackages)
	})

	t.Run("phone is normalized and date formatted", func(t *testing.T) {
		req, err := svc.BuildRequest(baseDraft(), now)
		require.NoError(t, err)
		assert.Equal(t, "+503 77778888", req.RecipientPhone)
		assert.Equal(t, "2026-09-15T00:00:00Z", req.ScheduledDate)
		require.Len(t, req.Packages, 1)
		assert.Equal(t, "Libros", req.Packages[0].Content)
	})

	t.Run("zero scheduled date falls back to now", func(t *testing.T) {
		draft := baseDraft()
		draft.ScheduledDate = time.Time{}
		req, err := svc.BuildRequest(draft, now)
		require.NoError(t, err)
		assert.Equal(t, "2026-09-01T10:30:00Z", req.ScheduledDate)
	})

	t.Run("cod amount is zero when cod disabled", func(t *testing.T) {
		draft := baseDraft()
		draft.IsCOD = false
		draft.ExpectedCodAmount = "45.75"
		req, err := svc.BuildRequest(draft, now)
		require.NoError(t, err)
		assert.True(t, req.ExpectedCodAmount.IsZero())
	})

	t.Run("cod amount parsed when cod enabled", func(t *testing.T) {
		draft := baseDraft()
		draft.IsCOD = true
		draft.ExpectedCodAmount = "12.5"
		req, err := svc.BuildRequest(draft, now)
		require.NoError(t, err)
		assert.True(t, req.ExpectedCodAmount.Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("unparsable cod amount becomes zero", func(t *testing.T) {
		draft := baseDraft()
		draft.IsCOD = true
		draft.ExpectedCodAmount = "doce"
		req, err := svc.BuildRequest(draft, now)
		require.NoError(t, err)
		assert.True(t, req.ExpectedCodAmount.IsZero())
	})
}
