package scaling

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// rupees formata valores em rúpias com separador de milhar (₹-3,500)
func rupees(v float64) string {
	return printer.Sprintf("₹%.0f", v)
}

func signedRupees(v float64) string {
	if v > 0 {
		return "+" + rupees(v)
	}
	return rupees(v)
}

func percentOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return printer.Sprintf("%.1f%%", *v)
}

func signedPercentOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return printer.Sprintf("%+.1f%%", *v)
}
