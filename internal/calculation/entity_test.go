package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/taxengine/internal/domain"
)

func TestEntityRecommender_Thresholds(t *testing.T) {
	r := NewEntityRecommender()

	tests := []struct {
		name    string
		current domain.BusinessType
		revenue int64
		want    string
	}{
		{"below simplicity threshold", domain.SoleProprietor, 39999,
			"Sole Proprietor (Sole Proprietor recommended for simplicity)"},
		{"llc below simplicity threshold", domain.LLC, 20000,
			"LLC (Sole Proprietor recommended for simplicity)"},
		{"sole proprietor crosses 40k", domain.SoleProprietor, 40000,
			"LLC (upgrade for liability protection)"},
		{"llc at 40k stays put", domain.LLC, 40000,
			"LLC (current structure appropriate)"},
		{"sole proprietor at 60k", domain.SoleProprietor, 60000,
			"S-Corp (election recommended for SE tax savings)"},
		{"llc at 199,999", domain.LLC, 199999,
			"S-Corp (election recommended for SE tax savings)"},
		{"s-corp mid band stays put", domain.SCorp, 100000,
			"S-Corp (current structure appropriate)"},
		{"llc at 200k", domain.LLC, 200000,
			"S-Corp or C-Corp (consult CPA for optimal structure)"},
		{"s-corp at 200k considers c-corp", domain.SCorp, 200000,
			"S-Corp or consider C-Corp for retained earnings (consult CPA)"},
		{"c-corp at 200k stays put", domain.CCorp, 250000,
			"C-Corp (current structure appropriate)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Recommend(tt.current, decimal.NewFromInt(tt.revenue))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntityRecommender_BoundaryWordingDiffers(t *testing.T) {
	r := NewEntityRecommender()

	below := r.Recommend(domain.SoleProprietor, decimal.NewFromInt(39999))
	at := r.Recommend(domain.SoleProprietor, decimal.NewFromInt(40000))
	assert.NotEqual(t, below, at, "40k boundary changes the message")

	below = r.Recommend(domain.SoleProprietor, decimal.NewFromInt(59999))
	at = r.Recommend(domain.SoleProprietor, decimal.NewFromInt(60000))
	assert.NotEqual(t, below, at, "60k boundary changes the message")

	below = r.Recommend(domain.LLC, decimal.NewFromInt(199999))
	at = r.Recommend(domain.LLC, decimal.NewFromInt(200000))
	assert.NotEqual(t, below, at, "200k boundary changes the message")
}
