package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtraOccupancyFee(t *testing.T) {
	tests := []struct {
		name   string
		guests int
		nights int
		want   float64
	}{
		{"zero guests", 0, 1, 0},
		{"one guest under base occupancy", 1, 3, 0},
		{"exactly base occupancy", 2, 5, 0},
		{"one extra guest over two nights", 3, 2, 12},
		{"two extra guests over three nights", 4, 3, 36},
		{"three extra guests over one night", 5, 1, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtraOccupancyFee(tt.guests, tt.nights))
		})
	}
}

func TestTotalWithTax(t *testing.T) {
	t.Run("base occupancy, no extra fee", func(t *testing.T) {
		// subtotal 150, tax round(150*0.14975)=22.46, total 172.46
		assert.Equal(t, 172.46, TotalWithTax(50, 3, 2))
	})

	t.Run("extra adults add the fee before tax", func(t *testing.T) {
		// base 80 + 2 extra * $6 * 2 nights = 104; tax round(104*0.14975)=15.57
		assert.Equal(t, 119.57, TotalWithTax(40, 2, 4))
	})

	t.Run("zero guests means no fee", func(t *testing.T) {
		// subtotal 60, tax round(8.985)=8.99
		assert.Equal(t, 68.99, TotalWithTax(60, 1, 0))
	})

	t.Run("zero nights costs exactly zero", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalWithTax(50, 0, 2))
		assert.Equal(t, 0.0, TotalWithTax(999.99, 0, 12))
	})

	t.Run("extra adults raise the price", func(t *testing.T) {
		base := TotalWithTax(50, 2, 2)
		withExtra := TotalWithTax(50, 2, 3)
		assert.Greater(t, withExtra, base)
	})

	t.Run("rounding is applied step-wise at the cent", func(t *testing.T) {
		// base round(33.33*3)=99.99, tax round(99.99*0.14975)=round(14.9735...)=14.97
		assert.Equal(t, 114.96, TotalWithTax(33.33, 3, 2))
	})
}

func TestDeposit(t *testing.T) {
	assert.Equal(t, 50.0, Deposit(200))
	// 33.33 * 0.25 = 8.3325, rounds to 8.33 not 8.3325
	assert.Equal(t, 8.33, Deposit(33.33))
	assert.Equal(t, 0.0, Deposit(0))
	// half-cent rounds away from zero: 172.46 * 0.25 = 43.115
	assert.Equal(t, 43.12, Deposit(172.46))
}
