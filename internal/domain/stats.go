package domain

import "time"

// Period is a half-open time interval [From, To).
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Duration returns the length of the period.
func (p Period) Duration() time.Duration { return p.To.Sub(p.From) }

// DealCounts holds deal aggregates for one period.
type DealCounts struct {
	Created   int64 `db:"created"`
	Won       int64 `db:"won"`
	Lost      int64 `db:"lost"`
	WonAmount int64 `db:"won_amount"`
}

// PeriodCounts are raw aggregates for one period.
type PeriodCounts struct {
	DealsCreated   int64
	DealsWon       int64
	DealsLost      int64
	WonAmount      int64
	NewCustomers   int64
	NewProspects   int64
	TodosCompleted int64
}

// Metric compares a value against the previous period.
// ChangePct is nil when the previous value is zero.
type Metric struct {
	Current   float64  `json:"current"`
	Previous  float64  `json:"previous"`
	ChangePct *float64 `json:"changePct"`
}

// DashboardStats is the dashboard metrics payload.
type DashboardStats struct {
	Range          string    `json:"range"`
	Current        Period    `json:"current"`
	Previous       Period    `json:"previous"`
	DealsCreated   Metric    `json:"dealsCreated"`
	DealsWon       Metric    `json:"dealsWon"`
	WonAmount      Metric    `json:"wonAmount"`
	WinRate        Metric    `json:"winRate"`
	NewCustomers   Metric    `json:"newCustomers"`
	NewProspects   Metric    `json:"newProspects"`
	TodosCompleted Metric    `json:"todosCompleted"`
	PipelineAmount int64     `json:"pipelineAmount"`
	OverdueTodos   int64     `json:"overdueTodos"`
	GeneratedAt    time.Time `json:"generatedAt"`
}
