// internal/services/pricing_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/highgrip/storefront-backend/internal/models"
)

func strPtr(s string) *string { return &s }

func TestIsDiscountActive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		product models.Product
		want    bool
	}{
		{
			name:    "zero percent is never active",
			product: models.Product{Price: 500, DiscountPercent: 0},
			want:    false,
		},
		{
			name: "zero percent stays inactive even inside an open window",
			product: models.Product{
				Price:           500,
				DiscountPercent: 0,
				DiscountStart:   strPtr("2025-06-01"),
				DiscountEnd:     strPtr("2025-06-30"),
			},
			want: false,
		},
		{
			name:    "positive percent with no window is active",
			product: models.Product{Price: 500, DiscountPercent: 20},
			want:    true,
		},
		{
			name: "now inside the window",
			product: models.Product{
				Price:           500,
				DiscountPercent: 20,
				DiscountStart:   strPtr("2025-06-14"),
				DiscountEnd:     strPtr("2025-06-16"),
			},
			want: true,
		},
		{
			name: "before the window starts",
			product: models.Product{
				Price:           500,
				DiscountPercent: 20,
				DiscountStart:   strPtr("2025-06-16"),
			},
			want: false,
		},
		{
			name: "after the window ends",
			product: models.Product{
				Price:           500,
				DiscountPercent: 20,
				DiscountEnd:     strPtr("2025-06-14"),
			},
			want: false,
		},
		{
			name: "exactly at the start boundary",
			product: models.Product{
				Price:           500,
				DiscountPercent: 20,
				DiscountStart:   strPtr("2025-06-15T12:00:00"),
			},
			want: true,
		},
		{
			name: "exactly at the end boundary",
			product: models.Product{
				Price:           500,
				DiscountPercent: 20,
				DiscountEnd:     strPtr("2025-06-15T12:00:00"),
			},
			want: true,
		},
		{
			name: "malformed start is treated as unset",
			product: models.Product{
				Price:           500,
				DiscountPercent: 20,
				DiscountStart:   strPtr("not-a-date"),
				DiscountEnd:     strPtr("2025-06-30"),
			},
			want: true,
		},
		{
			name: "malformed end is treated as unset",
			product: models.Product{
				Price:           500,
				DiscountPercent: 20,
				DiscountEnd:     strPtr("30/06/2025"),
			},
			want: true,
		},
		{
			name: "empty strings are treated as unset",
			product: models.Product{
				Price:           500,
				DiscountPercent: 20,
				DiscountStart:   strPtr(""),
				DiscountEnd:     strPtr("  "),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDiscountActive(&tt.product, now))
		})
	}
}

func TestEffectivePrice(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("inactive discount returns the listed price", func(t *testing.T) {
		p := models.Product{Price: 500, DiscountPercent: 0}
		assert.Equal(t, 500.0, EffectivePrice(&p, now))
	})

	t.Run("expired discount returns the listed price", func(t *testing.T) {
		p := models.Product{
			Price:           500,
			DiscountPercent: 20,
			DiscountEnd:     strPtr("2025-06-01"),
		}
		assert.Equal(t, 500.0, EffectivePrice(&p, now))
	})

	t.Run("20 percent off 500", func(t *testing.T) {
		p := models.Product{Price: 500, DiscountPercent: 20}
		assert.Equal(t, 400.0, EffectivePrice(&p, now))
	})

	t.Run("half off inside an open window", func(t *testing.T) {
		p := models.Product{
			Price:           1000,
			DiscountPercent: 50,
			DiscountStart:   strPtr("2025-06-14"),
			DiscountEnd:     strPtr("2025-06-16"),
		}
		assert.Equal(t, 500.0, EffectivePrice(&p, now))
	})

	t.Run("rounds half up to two decimals", func(t *testing.T) {
		// 199.99 * 0.85 = 169.9915 -> 169.99
		p := models.Product{Price: 199.99, DiscountPercent: 15}
		assert.Equal(t, 169.99, EffectivePrice(&p, now))

		// 10.01 * 0.75 = 7.5075 -> 7.51
		p = models.Product{Price: 10.01, DiscountPercent: 25}
		assert.Equal(t, 7.51, EffectivePrice(&p, now))
	})

	t.Run("full discount reaches zero", func(t *testing.T) {
		p := models.Product{Price: 249.5, DiscountPercent: 100}
		assert.Equal(t, 0.0, EffectivePrice(&p, now))
	})
}
