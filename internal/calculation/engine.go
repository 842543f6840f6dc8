package calculation

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/taxengine/internal/domain"
	"github.com/ledgerline/taxengine/internal/rules"
)

// Engine bundles the calculators behind the four entry points the
// surrounding application consumes. The rule repository is injected at
// construction; there is no process-wide default. An Engine is safe for
// concurrent use.
type Engine struct {
	repo      *rules.Repository
	seTax     *SelfEmploymentTaxCalculator
	risk      *AuditRiskScorer
	savings   *TaxSavingsEstimator
	entity    *EntityRecommender
	quarterly *QuarterlyPaymentPlanner
}

// NewEngine creates an engine over a rule repository.
func NewEngine(repo *rules.Repository) *Engine {
	return &Engine{
		repo:      repo,
		seTax:     NewSelfEmploymentTaxCalculator(),
		risk:      NewAuditRiskScorer(),
		savings:   NewTaxSavingsEstimator(),
		entity:    NewEntityRecommender(),
		quarterly: NewQuarterlyPaymentPlanner(),
	}
}

// RulesFor exposes a rule snapshot for display surfaces.
func (e *Engine) RulesFor(year int) (*domain.TaxYearRules, error) {
	return e.repo.RulesFor(year)
}

// SupportedYears returns the tax years the engine has rules for.
func (e *Engine) SupportedYears() []int {
	return e.repo.SupportedYears()
}

// AssessAuditRisk scores a profile; audit scoring has no year dependency.
func (e *Engine) AssessAuditRisk(profile *domain.BusinessProfile) domain.AuditRiskAssessment {
	return e.risk.Assess(profile)
}

// EstimateTaxSavings estimates annual savings for a profile under a year's
// rules.
func (e *Engine) EstimateTaxSavings(profile *domain.BusinessProfile, year int) (domain.TaxSavingsEstimate, error) {
	r, err := e.repo.RulesFor(year)
	if err != nil {
		return domain.TaxSavingsEstimate{}, err
	}
	return e.savings.Estimate(profile, r), nil
}

// CalculateSelfEmploymentTax computes SE tax on net profit for a year.
func (e *Engine) CalculateSelfEmploymentTax(netProfit decimal.Decimal, year int) (domain.SelfEmploymentTaxResult, error) {
	r, err := e.repo.RulesFor(year)
	if err != nil {
		return domain.SelfEmploymentTaxResult{}, err
	}
	return e.seTax.Calculate(netProfit, r), nil
}

// EstimateQuarterlyPayments produces the four-installment schedule for a
// profile under a year's rules.
func (e *Engine) EstimateQuarterlyPayments(profile *domain.BusinessProfile, year int) (domain.QuarterlyPaymentPlan, error) {
	r, err := e.repo.RulesFor(year)
	if err != nil {
		return domain.QuarterlyPaymentPlan{}, err
	}
	return e.quarterly.Plan(profile, r), nil
}

// RecommendEntity suggests an entity structure for a type and revenue.
func (e *Engine) RecommendEntity(current domain.BusinessType, revenue decimal.Decimal) string {
	return e.entity.Recommend(current, revenue)
}

// AssessAuditRiskBatch scores profiles independently in parallel. Results
// are positionally aligned with the input slice.
func (e *Engine) AssessAuditRiskBatch(profiles []*domain.BusinessProfile) []domain.AuditRiskAssessment {
	results := make([]domain.AuditRiskAssessment, len(profiles))
	var wg sync.WaitGroup
	for i, p := range profiles {
		wg.Add(1)
		go func(i int, p *domain.BusinessProfile) {
			defer wg.Done()
			results[i] = e.risk.Assess(p)
		}(i, p)
	}
	wg.Wait()
	return results
}
