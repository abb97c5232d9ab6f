package booking

import "driveshare/internal/pkg/money"

// Quote is the cost breakdown for a date range on a car. The payout is
// computed by subtraction so total == fee + payout always holds.
type Quote struct {
	Days        int
	TotalCost   money.Money
	PlatformFee money.Money
	OwnerPayout money.Money
}

type Pricer interface {
	Quote(dailyRate money.Money, dates DateRange) Quote
}

// FeePricer charges a flat percentage of the rental total as the platform fee.
type FeePricer struct {
	FeePercent int
}

func NewFeePricer(feePercent int) *FeePricer {
	return &FeePricer{FeePercent: feePercent}
}

func (p *FeePricer) Quote(dailyRate money.Money, dates DateRange) Quote {
	days := dates.Days()
	total := dailyRate.MulInt(int64(days))
	fee := total.Percent(p.FeePercent)
	return Quote{
		Days:        days,
		TotalCost:   total,
		PlatformFee: fee,
		OwnerPayout: total.Sub(fee),
	}
}
