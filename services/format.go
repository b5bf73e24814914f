package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatUSD formats an amount as US currency with comma grouping and exactly
// 2 decimal places, e.g. 1234567.8 -> "$1,234,567.80".
func FormatUSD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	formatted := humanize.FormatFloat("#,###.##", amount)
	if negative {
		return "-$" + formatted
	}
	return "$" + formatted
}

// FormatQty renders a quantity without trailing zeros (10 -> "10",
// 2.50 -> "2.5").
func FormatQty(qty float64) string {
	s := fmt.Sprintf("%.2f", qty)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// AmountToWords converts a dollar amount to English words for the quote
// document, e.g. 1100.00 -> "One Thousand One Hundred Dollars Only".
func AmountToWords(amount float64) string {
	if amount < 0 {
		return "Negative " + AmountToWords(-amount)
	}

	cents := int64(math.Round(amount * 100))
	dollars := cents / 100
	cents = cents % 100

	if dollars == 0 && cents == 0 {
		return "Zero Dollars Only"
	}

	var parts []string
	if dollars > 0 {
		word := "Dollars"
		if dollars == 1 {
			word = "Dollar"
		}
		parts = append(parts, convertToWords(dollars)+" "+word)
	}
	if cents > 0 {
		word := "Cents"
		if cents == 1 {
			word = "Cent"
		}
		parts = append(parts, convertUnder100(cents)+" "+word)
	}

	return strings.Join(parts, " and ") + " Only"
}

func convertToWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string

	if n >= 1000000000 {
		parts = append(parts, convertUnder1000(n/1000000000)+" Billion")
		n %= 1000000000
	}
	if n >= 1000000 {
		parts = append(parts, convertUnder1000(n/1000000)+" Million")
		n %= 1000000
	}
	if n >= 1000 {
		parts = append(parts, convertUnder1000(n/1000)+" Thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, convertUnder1000(n))
	}

	return strings.Join(parts, " ")
}

func convertUnder1000(n int64) string {
	if n >= 100 {
		result := ones[n/100] + " Hundred"
		if n%100 != 0 {
			result += " " + convertUnder100(n%100)
		}
		return result
	}
	return convertUnder100(n)
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
