// Package contracts holds the contract data model and the read-only mock
// repository the dashboard is driven by. The collections are static JSON:
// a summary list fetched once per dashboard session and a detail collection
// looked up client-side by id.
package contracts

// Status enumerates the lifecycle state of a contract.
type Status string

const (
	StatusActive     Status = "Active"
	StatusExpired    Status = "Expired"
	StatusRenewalDue Status = "Renewal Due"
)

// Risk enumerates the assessed risk level of a contract or insight.
type Risk string

const (
	RiskLow    Risk = "Low"
	RiskMedium Risk = "Medium"
	RiskHigh   Risk = "High"
)

// Contract is the summary record shown in the dashboard list.
type Contract struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Parties string `json:"parties"`
	Start   string `json:"start"`
	Expiry  string `json:"expiry"`
	Status  Status `json:"status"`
	Risk    Risk   `json:"risk"`
}

// Clause is an extracted contract clause with a confidence score in [0,1].
type Clause struct {
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	Confidence float64 `json:"confidence"`
}

// Insight is a risk-annotated observation attached to a contract.
type Insight struct {
	Risk    Risk   `json:"risk"`
	Message string `json:"message"`
}

// Evidence is a supporting snippet with a relevance score in [0,1].
type Evidence struct {
	Source    string  `json:"source"`
	Snippet   string  `json:"snippet"`
	Relevance float64 `json:"relevance"`
}

// Detail is the full contract record: the summary fields plus the
// analysis sections rendered on the detail page.
type Detail struct {
	Contract
	Clauses  []Clause   `json:"clauses"`
	Insights []Insight  `json:"insights"`
	Evidence []Evidence `json:"evidence"`
}

// Statuses returns the status filter options in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusExpired, StatusRenewalDue}
}

// Risks returns the risk filter options in display order.
func Risks() []Risk {
	return []Risk{RiskLow, RiskMedium, RiskHigh}
}
