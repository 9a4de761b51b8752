package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNetSalary(t *testing.T) {
	tests := []struct {
		name       string
		basic      string
		allowances string
		deductions string
		want       string
	}{
		{
			name:       "plain sum",
			basic:      "5000.00",
			allowances: "500.00",
			deductions: "250.00",
			want:       "5250",
		},
		{
			name:       "zero allowances and deductions",
			basic:      "3000.00",
			allowances: "0",
			deductions: "0",
			want:       "3000",
		},
		{
			name:       "deductions exceed gross goes negative",
			basic:      "3000.00",
			allowances: "200.00",
			deductions: "3500.00",
			want:       "-300",
		},
		{
			name:       "cents survive",
			basic:      "1234.56",
			allowances: "0.44",
			deductions: "0.99",
			want:       "1234.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basic := decimal.RequireFromString(tt.basic)
			allowances := decimal.RequireFromString(tt.allowances)
			deductions := decimal.RequireFromString(tt.deductions)

			got := NetSalary(basic, allowances, deductions)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}
