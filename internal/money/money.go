package money

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// FormatCurrency renders a whole-peso amount with es-AR digit grouping
// and no decimals, e.g. "$ 25.000".
func FormatCurrency(amount int) string {
	return printer.Sprintf("$ %v", number.Decimal(amount))
}

type Discount struct {
	HasDiscount        bool `json:"hasDiscount"`
	Price              int  `json:"price"`
	OldPrice           int  `json:"oldPrice,omitempty"`
	DiscountPercentage int  `json:"discountPercentage"`
	Savings            int  `json:"savings"`
}

// CalculateDiscount compares the current price against a prior one.
// A missing or non-greater old price reads as "no discount".
func CalculateDiscount(price, oldPrice int) Discount {
	if oldPrice <= price {
		return Discount{Price: price}
	}
	pct := int(math.Round(float64(oldPrice-price) / float64(oldPrice) * 100))
	return Discount{
		HasDiscount:        true,
		Price:              price,
		OldPrice:           oldPrice,
		DiscountPercentage: pct,
		Savings:            oldPrice - price,
	}
}

type Installments struct {
	Installments      int    `json:"installments"`
	InstallmentAmount int    `json:"installmentAmount"`
	TotalAmount       int    `json:"totalAmount"`
	Description       string `json:"description"`
}

// CalculateInstallments splits a total into n equal payments, rounding
// each installment up. TotalAmount may exceed the true total by up to
// n-1 pesos; the overshoot is the advertised "rounded installment".
func CalculateInstallments(total, installments int) Installments {
	if installments < 1 {
		installments = 1
	}
	per := (total + installments - 1) / installments
	return Installments{
		Installments:      installments,
		InstallmentAmount: per,
		TotalAmount:       per * installments,
		Description:       fmt.Sprintf("%d cuotas sin interés de %s", installments, FormatCurrency(per)),
	}
}
