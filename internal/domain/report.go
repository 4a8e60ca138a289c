package domain

// ReportKind identifies the period filter applied to a report.
type ReportKind string

const (
	ReportKindDaily   ReportKind = "daily"
	ReportKindWeekly  ReportKind = "weekly"
	ReportKindMonthly ReportKind = "monthly"
)

// Report is the aggregate over the trips matched by a period filter.
// Totals are sums of the already-rounded per-trip derived fields.
type Report struct {
	Kind            ReportKind
	Title           string
	TripCount       int
	TotalDistanceKM float64
	TotalEarnings   float64
	TotalFuelCost   float64
	NetEarnings     float64 // TotalEarnings - TotalFuelCost
}

// WalletBalance is the current cash position of the wallet.
type WalletBalance struct {
	Balance       float64
	TotalEarnings float64
	TotalTips     float64
}

// Summary is the whole-history financial and fuel summary.
type Summary struct {
	TripCount        int
	TotalDistanceKM  float64
	TotalEarnings    float64
	TotalTips        float64
	TotalTripBalance float64
	TotalDiscounts   float64
	TotalFuelUsed    float64
	TotalRefueled    float64
	CurrentFuel      float64
	TotalFuelCost    float64
	EstimatedRangeKM float64
}
