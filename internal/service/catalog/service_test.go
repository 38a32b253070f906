package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookingjasa/booking-service/internal/domain"
	catalogRepo "github.com/bookingjasa/booking-service/internal/infra/storage/catalog"
	"github.com/bookingjasa/booking-service/internal/service/catalog/models"
)

type fakeRepo struct {
	offerings []*domain.ServiceOffering
	created   *domain.ServiceOffering
}

func (f *fakeRepo) Create(_ context.Context, o *domain.ServiceOffering) (*domain.ServiceOffering, error) {
	out := *o
	out.ID = int64(len(f.offerings)) + 1
	f.offerings = append(f.offerings, &out)
	f.created = &out
	return &out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.ServiceOffering, error) {
	for _, o := range f.offerings {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, catalogRepo.ErrOfferingNotFound
}

func (f *fakeRepo) List(context.Context) ([]*domain.ServiceOffering, error) {
	return f.offerings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	admin = domain.Actor{AccountID: "admin", Role: domain.RoleAdmin}
	budi  = domain.Actor{AccountID: "budi", Role: domain.RoleUser}
)

func TestAdd(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, nopLogger{})

	resp, err := svc.Add(context.Background(), admin, &models.AddOfferingRequest{
		Name:            "  Servis Laptop  ",
		Category:        "Teknologi",
		Price:           200000,
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Servis Laptop", resp.Name)
	assert.Equal(t, int64(200000), resp.Price)
	require.NotNil(t, repo.created)
}

func TestAdd_NonAdmin(t *testing.T) {
	svc := New(&fakeRepo{}, nopLogger{})

	_, err := svc.Add(context.Background(), budi, &models.AddOfferingRequest{
		Name: "Servis Laptop", Category: "Teknologi", Price: 200000, DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.AddOfferingRequest
	}{
		{"blank name", models.AddOfferingRequest{Name: " ", Category: "Teknologi", Price: 1000, DurationMinutes: 60}},
		{"blank category", models.AddOfferingRequest{Name: "Servis", Category: "", Price: 1000, DurationMinutes: 60}},
		{"negative price", models.AddOfferingRequest{Name: "Servis", Category: "Teknologi", Price: -1, DurationMinutes: 60}},
		{"too short duration", models.AddOfferingRequest{Name: "Servis", Category: "Teknologi", Price: 1000, DurationMinutes: domain.MinOfferingDurationMinutes - 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := New(repo, nopLogger{})

			_, err := svc.Add(context.Background(), admin, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.created)
		})
	}
}

func TestAdd_ZeroPriceAllowed(t *testing.T) {
	svc := New(&fakeRepo{}, nopLogger{})

	resp, err := svc.Add(context.Background(), admin, &models.AddOfferingRequest{
		Name: "Konsultasi Gratis", Category: "Edukasi", Price: 0, DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Price)
}

func TestGetAndList(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, nopLogger{})

	_, err := svc.Add(context.Background(), admin, &models.AddOfferingRequest{
		Name: "Service AC", Category: "Rumah Tangga", Price: 150000, DurationMinutes: 60,
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Service AC", got.Name)

	_, err = svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrOfferingNotFound)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}
