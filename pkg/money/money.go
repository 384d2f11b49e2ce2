package money

import "github.com/shopspring/decimal"

// Line returns price * qty rounded to paise.
func Line(price float64, qty int) float64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty))).Round(2).InexactFloat64()
}

// Sum adds amounts without float drift.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.Round(2).InexactFloat64()
}

// Savings is (list - effective) * qty, never negative.
func Savings(list, effective float64, qty int) float64 {
	diff := decimal.NewFromFloat(list).Sub(decimal.NewFromFloat(effective))
	if !diff.IsPositive() {
		return 0
	}
	return diff.Mul(decimal.NewFromInt(int64(qty))).Round(2).InexactFloat64()
}

// ToPaise converts rupees to the smallest currency unit, truncating fractions.
func ToPaise(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Truncate(0).IntPart()
}

// Average returns the mean of the ratings rounded to 2 decimals, 0 when empty.
func Average(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := decimal.Zero
	for _, r := range ratings {
		total = total.Add(decimal.NewFromInt(int64(r)))
	}
	return total.Div(decimal.NewFromInt(int64(len(ratings)))).Round(2).InexactFloat64()
}
