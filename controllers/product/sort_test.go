package productcontroller

import (
	"testing"

	"github.com/qimma-sa/kitchens-api/models"
	"github.com/shopspring/decimal"
)

func pricedProduct(title, price string) models.Product {
	return models.Product{
		TitleAr:       title,
		PricePerMeter: decimal.NullDecimal{Decimal: decimal.RequireFromString(price), Valid: true},
	}
}

func customProduct(title string) models.Product {
	return models.Product{TitleAr: title, IsCustomPrice: true}
}

func titles(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.TitleAr
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortProducts_PriceLowNullsTrail(t *testing.T) {
	products := []models.Product{
		pricedProduct("متوسط", "1500"),
		customProduct("بدون سعر"),
		pricedProduct("رخيص", "800"),
		pricedProduct("غالي", "2200"),
	}

	sortProducts(products, "price_low")

	want := []string{"رخيص", "متوسط", "غالي", "بدون سعر"}
	if got := titles(products); !equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortProducts_PriceHighNullsTrail(t *testing.T) {
	products := []models.Product{
		customProduct("بدون سعر"),
		pricedProduct("رخيص", "800"),
		pricedProduct("غالي", "2200"),
	}

	sortProducts(products, "price_high")

	want := []string{"غالي", "رخيص", "بدون سعر"}
	if got := titles(products); !equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortProducts_NewestKeepsDatabaseOrder(t *testing.T) {
	products := []models.Product{
		pricedProduct("ثاني", "1500"),
		pricedProduct("أول", "800"),
	}

	sortProducts(products, "newest")

	want := []string{"ثاني", "أول"}
	if got := titles(products); !equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
