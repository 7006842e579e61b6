package teamservice

import (
	"context"

	"github.com/teamvest/teamvest/internal/domain"
	"go.uber.org/zap"
)

// MaxLevel caps the referral walk. Deeper chains are never materialized.
const MaxLevel = 4

type UserRepo interface {
	ListAll(ctx context.Context) ([]domain.User, error)
}
type DepositRepo interface {
	ListAll(ctx context.Context) ([]domain.DepositRequest, error)
}

// RateTable holds the fixed FX multipliers used to normalize deposit amounts
// to the INR base unit, and the referral commission rate. Values come from
// configuration, not live rates.
type RateTable struct {
	USD        float64
	Crypto     float64
	Commission float64
}

// Normalize converts an amount to the INR base unit. Unknown currencies pass
// through unchanged.
func (r RateTable) Normalize(currency string, amount float64) float64 {
	switch currency {
	case domain.CurrencyUSD:
		return amount * r.USD
	case domain.CurrencyCrypto:
		return amount * r.Crypto
	default:
		return amount
	}
}

type Service struct {
	userRepo    UserRepo
	depositRepo DepositRepo
	rates       RateTable
}

func New(userRepo UserRepo, depositRepo DepositRepo, rates RateTable) *Service {
	return &Service{
		userRepo:    userRepo,
		depositRepo: depositRepo,
		rates:       rates,
	}
}

// member carries the full id alongside the display entry so the walk can
// continue downward; the full id is stripped before the entry is returned.
type member struct {
	domain.TeamMember
	FullID string
}

// DirectReferrals finds every user whose sponsor reference points at rootID.
// Sponsor values may hold the full id or the 7-character display form, so the
// match goes through domain.IDMatches. Pure read; result order follows
// directory order.
func DirectReferrals(rootID string, users []domain.User) []member {
	var referrals []member
	for _, u := range users {
		u.Normalize()
		if !domain.IDMatches(u.SponsorID, rootID) {
			continue
		}
		referrals = append(referrals, member{
			TeamMember: domain.TeamMember{
				UserID:    u.ShortID(),
				Name:      u.Name,
				Package:   u.Package,
				SponsorID: domain.ShortID(u.SponsorID),
				Status:    u.Status,
			},
			FullID: u.ID,
		})
	}
	return referrals
}

// EarningsOf sums a user's approved deposits, normalized to the base unit,
// and applies the commission rate. Ownership matching tolerates full and
// truncated ids. No rounding; presentation rounds.
func (s *Service) EarningsOf(userID string, deposits []domain.DepositRequest) float64 {
	var total float64
	for _, d := range deposits {
		if d.Status != domain.DepositApproved {
			continue
		}
		if !domain.IDMatches(d.UserID, userID) {
			continue
		}
		total += s.rates.Normalize(d.Currency, d.Amount)
	}
	return total * s.rates.Commission
}

// BuildLevels materializes the downstream referral tree of rootID up to
// MaxLevel levels and computes each level's earnings over its Active members.
// The user directory and deposit ledger are read once per call; the service
// holds no state between calls. Read failures propagate as errors, so four
// empty summaries always mean a genuinely empty tree. A visited set keeps a
// cyclic sponsor graph from re-emitting the same user into a later level.
func (s *Service) BuildLevels(ctx context.Context, rootID string) ([]domain.LevelSummary, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list users for team tree", zap.Error(err))
		return nil, err
	}
	deposits, err := s.depositRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list deposits for team tree", zap.Error(err))
		return nil, err
	}

	visited := map[string]struct{}{rootID: {}}
	current := dedupe(DirectReferrals(rootID, users), visited)

	levels := make([]domain.LevelSummary, 0, MaxLevel)
	for level := 1; level <= MaxLevel; level++ {
		summary := domain.LevelSummary{
			Level:   level,
			Members: make([]domain.TeamMember, 0, len(current)),
		}
		for _, m := range current {
			summary.Members = append(summary.Members, m.TeamMember)
			if m.Status == domain.UserStatusActive {
				summary.Earnings += s.EarningsOf(m.FullID, deposits)
			}
		}
		levels = append(levels, summary)

		if level == MaxLevel {
			break
		}
		var next []member
		for _, m := range current {
			next = append(next, DirectReferrals(m.FullID, users)...)
		}
		current = dedupe(next, visited)
	}

	return levels, nil
}

func dedupe(members []member, visited map[string]struct{}) []member {
	out := members[:0]
	for _, m := range members {
		if _, seen := visited[m.FullID]; seen {
			continue
		}
		visited[m.FullID] = struct{}{}
		out = append(out, m)
	}
	return out
}
