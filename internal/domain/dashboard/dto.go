package dashboard

// Stats is the admin dashboard aggregate. All counters are loaded in
// one request so the dashboard renders from a single consistent read.
type Stats struct {
	TotalEmployees   int64 `json:"total_employees"`
	TotalDepartments int64 `json:"total_departments"`
	PresentToday     int64 `json:"present_today"`
	PendingLeaves    int64 `json:"pending_leaves"`
}
