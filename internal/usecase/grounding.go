package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"replyrush/internal/domain/entity"
)

// GroundingContext is the catalog/FAQ/business snapshot the assistant is
// allowed to answer from. Render is deterministic for a given snapshot and
// always carries price and stock status for every product; the assistant is
// instructed to treat the rendered block as its sole source of truth.
type GroundingContext struct {
	Business *entity.Business
	Products []*entity.Product
	FAQs     []*entity.FAQ
}

func (g GroundingContext) Render() string {
	var b strings.Builder

	b.WriteString("Business Info:\n")
	b.WriteString(fmt.Sprintf("- Name: %s\n", g.Business.Name))
	b.WriteString(fmt.Sprintf("- WhatsApp: %s\n", g.Business.Whatsapp))
	b.WriteString(fmt.Sprintf("- Address: %s\n", g.Business.Address))
	b.WriteString(fmt.Sprintf("- Working Hours: %s\n", g.Business.WorkingHours))
	b.WriteString(fmt.Sprintf("- Delivery Fee: ₦%s\n", FormatAmount(g.Business.DeliveryFee)))
	b.WriteString(fmt.Sprintf("- Payment: %s\n", g.Business.BankDetails))

	b.WriteString("\nProduct Catalog:\n")
	for _, p := range g.Products {
		availability := "In Stock"
		if !p.InStock {
			availability = "Out of Stock"
		}
		b.WriteString(fmt.Sprintf("- %s: %s | Price: ₦%s | %s\n",
			p.Name, p.Description, FormatAmount(p.Price), availability))
	}

	b.WriteString("\nFAQs:\n")
	for _, f := range g.FAQs {
		b.WriteString(fmt.Sprintf("Q: %s\nA: %s\n\n", f.Question, f.Answer))
	}

	return b.String()
}

// FormatAmount renders an amount with thousands separators, e.g. 1850000
// becomes "1,850,000".
func FormatAmount(amount int64) string {
	digits := strconv.FormatInt(amount, 10)

	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
