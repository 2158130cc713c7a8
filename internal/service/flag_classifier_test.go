package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedroganco/sanum/internal/domain"
)

func TestClassifyFlag(t *testing.T) {
	f := domain.Float

	tests := []struct {
		name     string
		value    float64
		refMin   *float64
		refMax   *float64
		expected domain.Flag
	}{
		{"no bounds", 999, nil, nil, domain.NORMAL},
		{"hemoglobin within range", 16.5, f(13), f(17), domain.NORMAL},
		{"hemoglobin critically low", 6, f(13), f(17), domain.CRITICAL_LOW},
		{"lower bound inclusive", 13, f(13), f(17), domain.NORMAL},
		{"upper bound inclusive", 17, f(13), f(17), domain.NORMAL},
		{"just below min", 12, f(13), f(17), domain.LOW},
		{"critical low threshold inclusive", 11, f(13), f(17), domain.LOW},
		{"below critical low threshold", 10.99, f(13), f(17), domain.CRITICAL_LOW},
		{"just above max", 18, f(13), f(17), domain.HIGH},
		{"critical high threshold inclusive", 19, f(13), f(17), domain.HIGH},
		{"above critical high threshold", 19.04, f(13), f(17), domain.CRITICAL_HIGH},
		{"max only normal", 150, nil, f(190), domain.NORMAL},
		{"max only at bound", 190, nil, f(190), domain.NORMAL},
		{"max only high", 250, nil, f(190), domain.HIGH},
		{"max only at critical threshold", 285, nil, f(190), domain.HIGH},
		{"max only critical", 286, nil, f(190), domain.CRITICAL_HIGH},
		{"min only normal", 55, f(40), nil, domain.NORMAL},
		{"min only low", 35, f(40), nil, domain.LOW},
		{"min only at critical threshold", 20, f(40), nil, domain.LOW},
		{"min only critical", 19.9, f(40), nil, domain.CRITICAL_LOW},
		{"zero range equal", 5, f(5), f(5), domain.NORMAL},
		{"zero range below", 4.99, f(5), f(5), domain.CRITICAL_LOW},
		{"zero range above", 5.01, f(5), f(5), domain.CRITICAL_HIGH},
		{"negative values", -3, f(-2), f(2), domain.LOW},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyFlag(tt.value, tt.refMin, tt.refMax))
		})
	}
}

func TestClassifyFlag_BoundProperties(t *testing.T) {
	ranges := [][2]float64{
		{13, 17}, {0.7, 1.3}, {150, 400}, {0.35, 5.5}, {3.5, 5.5}, {-10, 10},
	}

	for _, r := range ranges {
		lo, hi := r[0], r[1]
		width := hi - lo

		assert.Equal(t, domain.NORMAL, ClassifyFlag(lo, &lo, &hi), "min inclusive for %v", r)
		assert.Equal(t, domain.NORMAL, ClassifyFlag(hi, &lo, &hi), "max inclusive for %v", r)
		assert.Equal(t, domain.CRITICAL_HIGH, ClassifyFlag(hi+width*0.51, &lo, &hi), "critical high for %v", r)
		assert.Equal(t, domain.CRITICAL_LOW, ClassifyFlag(lo-width*0.51, &lo, &hi), "critical low for %v", r)

		below := ClassifyFlag(lo-1, &lo, &hi)
		if lo-1 < lo-width*0.5 {
			assert.Equal(t, domain.CRITICAL_LOW, below, "range %v", r)
		} else {
			assert.Equal(t, domain.LOW, below, "range %v", r)
		}
	}
}
