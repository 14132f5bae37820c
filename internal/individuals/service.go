// Package individuals manages the people pay statements are recorded against.
package individuals

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
	"github.com/joseph-ayodele/paystubs-tracker/internal/repository"
)

// Field limits.
const (
	MaxNameLength    = 200
	MaxAddressLength = 500
	MaxPhoneLength   = 32
	MaxEmailLength   = 254
)

// Service handles individual business logic.
type Service struct {
	repo   repository.IndividualRepository
	logger *slog.Logger
}

func NewService(repo repository.IndividualRepository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns every individual with statement totals, ordered by name.
func (s *Service) List(ctx context.Context) ([]*entity.IndividualSummary, error) {
	list, err := s.repo.ListIndividuals(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("individuals listed", "count", len(list))
	return list, nil
}

// Add registers name ahead of any statement, collapsing runs of whitespace.
// Adding an existing name returns that individual unchanged.
func (s *Service) Add(ctx context.Context, name string) (*entity.Individual, error) {
	name = strings.Join(strings.Fields(name), " ")

	v := common.NewValidator().
		Field("name", name, common.Required, common.MaxLength(MaxNameLength))
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	id, err := s.repo.UpsertIndividual(ctx, name)
	if err != nil {
		return nil, err
	}
	ind, err := s.repo.GetIndividualByName(ctx, name)
	if err != nil {
		return nil, err
	}
	s.logger.Info("individual added", "individual_id", id, "name", ind.Name)
	return ind, nil
}

func (s *Service) Get(ctx context.Context, name string) (*entity.Individual, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	return s.repo.GetIndividualByName(ctx, name)
}

// Search ranks individuals whose name fuzzily contains query, closest first.
// limit <= 0 returns every match.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]*entity.IndividualSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, common.InvalidArgumentError("query is required")
	}
	all, err := s.repo.ListIndividuals(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(all))
	for i, ind := range all {
		names[i] = ind.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	out := make([]*entity.IndividualSummary, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, all[r.OriginalIndex])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	s.logger.Debug("individuals searched", "query", query, "matches", len(out))
	return out, nil
}

// UpdateContact validates and stores contact details. Empty strings clear a field.
func (s *Service) UpdateContact(ctx context.Context, name string, u entity.ContactUpdate) (*entity.Individual, error) {
	name = strings.TrimSpace(name)
	u.Address = trimmed(u.Address)
	u.PhoneNumber = trimmed(u.PhoneNumber)
	u.Email = trimmed(u.Email)

	v := common.NewValidator().
		Field("name", name, common.Required).
		Field("address", u.Address, common.MaxLength(MaxAddressLength)).
		Field("phone_number", u.PhoneNumber, common.MaxLength(MaxPhoneLength), common.Phone).
		Field("email", u.Email, common.MaxLength(MaxEmailLength), common.Email)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	if u.Empty() {
		return nil, common.InvalidArgumentError("no contact fields to update")
	}

	ind, err := s.repo.UpdateContact(ctx, name, u)
	if err != nil {
		return nil, err
	}
	s.logger.Info("contact updated", "individual_id", ind.ID, "name", ind.Name)
	return ind, nil
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
