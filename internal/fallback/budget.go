package fallback

import "github.com/asharma/yatra-planner/backend/internal/domain"

// Budget allocates a whole-rupee total across the fixed category split:
// accommodation 35%, food 25%, transport 20%, activities 15%,
// miscellaneous 5%. Each amount is rounded to the nearest rupee and the
// rounding remainder is absorbed into accommodation (the largest category),
// so the categories always sum exactly to the total.
func Budget(total int) domain.BudgetBreakdown {
	b := domain.BudgetBreakdown{
		Total:         total,
		Accommodation: roundShare(total, 35),
		Food:          roundShare(total, 25),
		Transport:     roundShare(total, 20),
		Activities:    roundShare(total, 15),
		Miscellaneous: roundShare(total, 5),
	}
	allocated := b.Accommodation + b.Food + b.Transport + b.Activities + b.Miscellaneous
	b.Accommodation += b.Total - allocated
	return b
}

// roundShare returns pct% of total, rounded to the nearest whole rupee.
func roundShare(total, pct int) int {
	return (total*pct + 50) / 100
}
