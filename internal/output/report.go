package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ledgerline/taxengine/internal/domain"
)

// Format selects a report rendering.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatConsole, FormatJSON, FormatCSV:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported format: %s", s)
}

// ReportGenerator renders engine results in the supported formats.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteAuditRisk renders an audit-risk assessment.
func (rg *ReportGenerator) WriteAuditRisk(w io.Writer, a *domain.AuditRiskAssessment, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, a)
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"score", "level", "color", "risk_factor", "recommendation"}); err != nil {
			return err
		}
		rows := len(a.RiskFactors)
		if len(a.Recommendations) > rows {
			rows = len(a.Recommendations)
		}
		for i := 0; i < rows; i++ {
			row := []string{strconv.Itoa(a.Score), string(a.Level), a.Color, "", ""}
			if i < len(a.RiskFactors) {
				row[3] = a.RiskFactors[i]
			}
			if i < len(a.Recommendations) {
				row[4] = a.Recommendations[i]
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		fmt.Fprintln(w, titleStyle.Render("AUDIT RISK ASSESSMENT"))
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Score:"), valueStyle.Render(fmt.Sprintf("%d / 100", a.Score)))
		fmt.Fprintf(w, "%s %s\n\n", labelStyle.Render("Level:"), RiskLevelStyle(a.Level).Render(string(a.Level)))

		fmt.Fprintln(w, sectionStyle.Render("Risk Factors"))
		for _, f := range a.RiskFactors {
			fmt.Fprintf(w, "  • %s\n", f)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, sectionStyle.Render("Recommendations"))
		for _, r := range a.Recommendations {
			fmt.Fprintf(w, "  • %s\n", r)
		}
		return nil
	}
}

// WriteSavings renders a tax-savings estimate.
func (rg *ReportGenerator) WriteSavings(w io.Writer, e *domain.TaxSavingsEstimate, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, e)
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"category", "amount"}); err != nil {
			return err
		}
		for _, c := range e.Breakdown {
			if err := cw.Write([]string{c.Category, c.Amount.StringFixed(2)}); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{"Estimated Total (capped)", e.Amount.StringFixed(2)}); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	default:
		fmt.Fprintln(w, titleStyle.Render("TAX SAVINGS ESTIMATE"))
		fmt.Fprintf(w, "%s %s (%d%% of revenue)\n\n",
			labelStyle.Render("Estimated Annual Savings:"),
			valueStyle.Render(e.AmountDisplay), e.Percentage)

		if len(e.Breakdown) > 0 {
			fmt.Fprintln(w, sectionStyle.Render("Breakdown"))
			for _, c := range e.Breakdown {
				fmt.Fprintf(w, "  %-34s %s\n", c.Category, FormatCurrency(c.Amount))
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, sectionStyle.Render("Opportunities"))
		for _, o := range e.Opportunities {
			fmt.Fprintf(w, "  • %s\n", o)
		}
		fmt.Fprintf(w, "\n%s %s\n", labelStyle.Render("Entity Recommendation:"), e.EntityRecommendation)
		return nil
	}
}

// WriteSETax renders an SE tax result.
func (rg *ReportGenerator) WriteSETax(w io.Writer, r *domain.SelfEmploymentTaxResult, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatCSV:
		cw := csv.NewWriter(w)
		rows := [][]string{
			{"component", "amount"},
			{"social_security", r.SocialSecurity.StringFixed(2)},
			{"medicare", r.Medicare.StringFixed(2)},
			{"total_se_tax", r.TotalSETax.StringFixed(2)},
			{"deductible_portion", r.DeductiblePortion.StringFixed(2)},
		}
		for _, row := range rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("SELF-EMPLOYMENT TAX — %d", r.TaxYear)))
		fmt.Fprintf(w, "  %-22s %s\n", "Social Security:", FormatCurrency(r.SocialSecurity))
		fmt.Fprintf(w, "  %-22s %s\n", "Medicare:", FormatCurrency(r.Medicare))
		fmt.Fprintf(w, "  %-22s %s\n", "Total SE Tax:", valueStyle.Render(FormatCurrency(r.TotalSETax)))
		fmt.Fprintf(w, "  %-22s %s\n", "Deductible Portion:", FormatCurrency(r.DeductiblePortion))
		fmt.Fprintf(w, "  %-22s %s\n", "SS Wage Base:", FormatCurrency(r.SSWageBase))
		return nil
	}
}

// WriteQuarterly renders a quarterly payment plan.
func (rg *ReportGenerator) WriteQuarterly(w io.Writer, p *domain.QuarterlyPaymentPlan, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, p)
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"due_date", "amount"}); err != nil {
			return err
		}
		for _, d := range p.DueDates {
			if err := cw.Write([]string{d, p.QuarterlyAmount.StringFixed(2)}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("ESTIMATED QUARTERLY PAYMENTS — %d", p.TaxYear)))
		fmt.Fprintf(w, "  %-22s %s\n", "Quarterly Amount:", valueStyle.Render(FormatCurrency(p.QuarterlyAmount)))
		fmt.Fprintf(w, "  %-22s %s\n", "Annual Total:", FormatCurrency(p.AnnualTotal))
		fmt.Fprintf(w, "  %-22s %s\n", "SE Tax Portion:", FormatCurrency(p.Breakdown.SelfEmploymentTax))
		fmt.Fprintf(w, "  %-22s %s\n\n", "Income Tax Portion:", FormatCurrency(p.Breakdown.IncomeTax))
		fmt.Fprintln(w, sectionStyle.Render("Due Dates"))
		for i, d := range p.DueDates {
			fmt.Fprintf(w, "  Q%d  %s\n", i+1, d)
		}
		return nil
	}
}

// WriteRules renders a rule snapshot for inspection.
func (rg *ReportGenerator) WriteRules(w io.Writer, r *domain.TaxYearRules, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"rate", "limit"}); err != nil {
			return err
		}
		for _, b := range r.TaxBrackets {
			lim := "unbounded"
			if !b.Unbounded() {
				lim = b.Limit.StringFixed(0)
			}
			if err := cw.Write([]string{b.Rate.String(), lim}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("TAX YEAR RULES — %d", r.Year)))
		fmt.Fprintf(w, "  %-26s %s\n", "SE Tax Rate:", FormatRate(r.SelfEmploymentTaxRate))
		fmt.Fprintf(w, "  %-26s %s\n", "QBI Deduction Rate:", FormatRate(r.QBIDeductionRate))
		fmt.Fprintf(w, "  %-26s %s\n\n", "SS Wage Base:", FormatCurrency(r.SSWageBase))

		fmt.Fprintln(w, sectionStyle.Render("Standard Deductions"))
		for _, status := range []domain.FilingStatus{domain.Single, domain.MarriedJointly, domain.MarriedSeparately, domain.HeadOfHousehold} {
			if d, ok := r.StandardDeductionFor(status); ok {
				fmt.Fprintf(w, "  %-26s %s\n", string(status)+":", FormatCurrency(d))
			}
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, sectionStyle.Render("Tax Brackets (display only)"))
		for _, b := range r.TaxBrackets {
			if b.Unbounded() {
				fmt.Fprintf(w, "  %6s  and above\n", FormatRate(b.Rate))
				continue
			}
			fmt.Fprintf(w, "  %6s  up to %s\n", FormatRate(b.Rate), FormatCurrency(*b.Limit))
		}
		return nil
	}
}
