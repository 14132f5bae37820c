package individuals

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
	"github.com/joseph-ayodele/paystubs-tracker/internal/repository"
)

func newService(t *testing.T) (*Service, *repository.MockIndividualRepository) {
	t.Helper()
	repo := repository.NewMockIndividualRepository(gomock.NewController(t))
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func summary(id int64, name string) *entity.IndividualSummary {
	return &entity.IndividualSummary{
		Individual:     entity.Individual{ID: id, Name: name},
		StatementCount: 1,
		TotalNetPay:    decimal.RequireFromString("10.00"),
	}
}

func ptr(s string) *string { return &s }

func TestAdd_NormalizesAndUpserts(t *testing.T) {
	svc, repo := newService(t)
	gomock.InOrder(
		repo.EXPECT().UpsertIndividual(gomock.Any(), "Jane Doe").Return(int64(7), nil),
		repo.EXPECT().GetIndividualByName(gomock.Any(), "Jane Doe").
			Return(&entity.Individual{ID: 7, Name: "Jane Doe"}, nil),
	)

	ind, err := svc.Add(context.Background(), "  Jane \t Doe ")
	require.NoError(t, err)
	assert.Equal(t, int64(7), ind.ID)
	assert.Equal(t, "Jane Doe", ind.Name)
}

func TestAdd_RejectsInvalidNames(t *testing.T) {
	for name, input := range map[string]string{
		"empty":    "",
		"blank":    " \t ",
		"too long": strings.Repeat("a", MaxNameLength+1),
	} {
		t.Run(name, func(t *testing.T) {
			svc, _ := newService(t)
			_, err := svc.Add(context.Background(), input)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestAdd_PassesStoreErrors(t *testing.T) {
	svc, repo := newService(t)
	boom := errors.New("database is locked")
	repo.EXPECT().UpsertIndividual(gomock.Any(), "Jane Doe").Return(int64(0), boom)

	_, err := svc.Add(context.Background(), "Jane Doe")
	assert.ErrorIs(t, err, boom)
}

func TestSearch_RanksClosestFirst(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().ListIndividuals(gomock.Any()).Return([]*entity.IndividualSummary{
		summary(1, "Jane Doe"),
		summary(2, "John Roe"),
		summary(3, "Janet Doerr"),
	}, nil)

	got, err := svc.Search(context.Background(), "jane doe", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Jane Doe", got[0].Name)
	assert.Equal(t, "Janet Doerr", got[1].Name)
}

func TestSearch_LimitAndEmptyQuery(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().ListIndividuals(gomock.Any()).Return([]*entity.IndividualSummary{
		summary(1, "Jane Doe"),
		summary(2, "Janet Doerr"),
	}, nil)

	got, err := svc.Search(context.Background(), "jan", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.Search(context.Background(), "  ", 0)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestUpdateContact_TrimsAndValidates(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().UpdateContact(gomock.Any(), "Jane Doe", entity.ContactUpdate{Email: ptr("jane@example.com")}).
		Return(&entity.Individual{ID: 1, Name: "Jane Doe", Email: ptr("jane@example.com")}, nil)

	ind, err := svc.UpdateContact(context.Background(), " Jane Doe ", entity.ContactUpdate{Email: ptr("  jane@example.com ")})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", *ind.Email)
}

func TestUpdateContact_Rejects(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.UpdateContact(ctx, "Jane Doe", entity.ContactUpdate{Email: ptr("not-an-email")})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.UpdateContact(ctx, "Jane Doe", entity.ContactUpdate{PhoneNumber: ptr("call me")})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.UpdateContact(ctx, "", entity.ContactUpdate{Email: ptr("a@b.co")})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.UpdateContact(ctx, "Jane Doe", entity.ContactUpdate{})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestUpdateContact_PassesNotFound(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().UpdateContact(gomock.Any(), "Nobody", gomock.Any()).
		Return(nil, common.NotFoundError("individual \"Nobody\" not found"))

	_, err := svc.UpdateContact(context.Background(), "Nobody", entity.ContactUpdate{Address: ptr("1 Main St")})
	assert.True(t, common.IsNotFound(err))
}

func TestApplyContactJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		svc, repo := newService(t)
		want := entity.ContactUpdate{Address: ptr("1 Main St"), PhoneNumber: ptr("+1 555 0100")}
		repo.EXPECT().UpdateContact(gomock.Any(), "Jane Doe", want).
			Return(&entity.Individual{ID: 1, Name: "Jane Doe", Address: want.Address, PhoneNumber: want.PhoneNumber}, nil)

		ind, err := svc.ApplyContactJSON(ctx, "Jane Doe", []byte(`{"address":"1 Main St","phone_number":"+1 555 0100"}`))
		require.NoError(t, err)
		assert.Equal(t, "1 Main St", *ind.Address)
	})

	for name, payload := range map[string]string{
		"unknown field": `{"fax":"123"}`,
		"wrong type":    `{"email":42}`,
		"empty object":  `{}`,
		"not json":      `{"email":`,
		"array":         `["a@b.co"]`,
	} {
		t.Run(name, func(t *testing.T) {
			svc, _ := newService(t)
			_, err := svc.ApplyContactJSON(ctx, "Jane Doe", []byte(payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}
