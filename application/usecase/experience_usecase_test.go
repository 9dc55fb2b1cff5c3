package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/domain/apperror"
	"github.com/kineticdrop/portfolio-api/domain/entity"
)

type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) List(ctx context.Context) ([]*entity.Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Experience), args.Error(1)
}

func (m *MockExperienceRepository) Create(ctx context.Context, exp *entity.Experience) error {
	args := m.Called(ctx, exp)
	return args.Error(0)
}

func (m *MockExperienceRepository) Update(ctx context.Context, exp *entity.Experience) error {
	args := m.Called(ctx, exp)
	return args.Error(0)
}

func (m *MockExperienceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestParseDate(t *testing.T) {
	t.Run("accepts RFC3339", func(t *testing.T) {
		parsed, err := ParseDate("2024-03-15T10:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), parsed)
	})

	t.Run("accepts date-only", func(t *testing.T) {
		parsed, err := ParseDate("2024-03-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseDate("March 15th")
		assert.Error(t, err)
	})
}

func TestExperienceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("parses dates and stores the entry", func(t *testing.T) {
		repo := new(MockExperienceRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(e *entity.Experience) bool {
			return e.ID != "" &&
				e.StartDate.Equal(time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)) &&
				e.EndDate == nil
		})).Return(nil)

		uc := NewExperienceUseCase(repo)
		exp, err := uc.Create(ctx, inbound.UpsertExperienceRequest{
			Title:     "Senior Backend Engineer",
			Company:   "Nimbus Labs",
			StartDate: "2023-07-01",
		})

		require.NoError(t, err)
		assert.Nil(t, exp.EndDate)
		repo.AssertExpectations(t)
	})

	t.Run("end date is optional but parsed when present", func(t *testing.T) {
		repo := new(MockExperienceRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(e *entity.Experience) bool {
			return e.EndDate != nil && e.EndDate.Equal(time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC))
		})).Return(nil)

		uc := NewExperienceUseCase(repo)
		_, err := uc.Create(ctx, inbound.UpsertExperienceRequest{
			Title:     "Full-Stack Developer",
			Company:   "Brightpath Studio",
			StartDate: "2021-02-01",
			EndDate:   "2023-06-30",
		})
		require.NoError(t, err)
	})

	t.Run("invalid start date is a validation error", func(t *testing.T) {
		uc := NewExperienceUseCase(new(MockExperienceRepository))
		_, err := uc.Create(ctx, inbound.UpsertExperienceRequest{
			Title:     "Engineer",
			Company:   "Acme",
			StartDate: "not-a-date",
		})

		require.Error(t, err)
		assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
	})

	t.Run("title and company are required", func(t *testing.T) {
		uc := NewExperienceUseCase(new(MockExperienceRepository))

		_, err := uc.Create(ctx, inbound.UpsertExperienceRequest{Company: "Acme", StartDate: "2023-01-01"})
		assert.Error(t, err)

		_, err = uc.Create(ctx, inbound.UpsertExperienceRequest{Title: "Engineer", StartDate: "2023-01-01"})
		assert.Error(t, err)
	})
}
