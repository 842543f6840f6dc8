package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/taxengine/internal/domain"
)

// Entity recommendation revenue thresholds.
var (
	llcThreshold   = decimal.NewFromInt(40000)
	sCorpThreshold = decimal.NewFromInt(60000)
	cCorpThreshold = decimal.NewFromInt(200000)
)

// EntityRecommender suggests an entity structure from the current type and
// annual revenue. Used by the savings estimator and exposed directly.
type EntityRecommender struct{}

// NewEntityRecommender creates a new entity recommender.
func NewEntityRecommender() *EntityRecommender {
	return &EntityRecommender{}
}

// Recommend returns a display string naming the suggested structure.
func (r *EntityRecommender) Recommend(current domain.BusinessType, revenue decimal.Decimal) string {
	switch {
	case revenue.LessThan(llcThreshold):
		return fmt.Sprintf("%s (Sole Proprietor recommended for simplicity)", current.Label())

	case revenue.LessThan(sCorpThreshold):
		if current == domain.SoleProprietor {
			return "LLC (upgrade for liability protection)"
		}
		return fmt.Sprintf("%s (current structure appropriate)", current.Label())

	case revenue.LessThan(cCorpThreshold):
		if current.SelfEmployed() {
			return "S-Corp (election recommended for SE tax savings)"
		}
		return fmt.Sprintf("%s (current structure appropriate)", current.Label())

	default:
		if current.SelfEmployed() {
			return "S-Corp or C-Corp (consult CPA for optimal structure)"
		}
		if current == domain.SCorp {
			return "S-Corp or consider C-Corp for retained earnings (consult CPA)"
		}
		return fmt.Sprintf("%s (current structure appropriate)", current.Label())
	}
}
