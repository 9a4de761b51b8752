package payroll

import "github.com/shopspring/decimal"

// NetSalary is basic + allowances - deductions. The result is not
// clamped at zero: deductions larger than gross produce a negative
// net, which the payslip shows as-is.
func NetSalary(basic, allowances, deductions decimal.Decimal) decimal.Decimal {
	return basic.Add(allowances).Sub(deductions)
}
