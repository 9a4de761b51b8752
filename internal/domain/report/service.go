package report

import "context"

// Entity names accepted by the export endpoint.
const (
	EntityEmployees  = "employees"
	EntityAttendance = "attendance"
	EntityLeaves     = "leaves"
	EntityPayroll    = "payroll"
)

type ReportService interface {
	// ExportCSV renders the named entity as a CSV document and
	// returns the bytes plus the suggested download filename.
	ExportCSV(ctx context.Context, entity string) ([]byte, string, error)
}
