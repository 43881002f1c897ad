package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatRupee renders a whole-rupee amount the way the booking page shows it ("₹1500").
func FormatRupee(amount int64) string {
	return "₹" + strconv.FormatInt(amount, 10)
}

// FormatRupeeAmount renders a decimal amount, dropping ".00" for whole values.
func FormatRupeeAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	s = strings.TrimSuffix(s, ".00")
	return "₹" + s
}

// FormatRupeeText is FormatRupeeAmount with an ASCII prefix, for outputs without UTF-8 fonts.
func FormatRupeeText(amount float64) string {
	return "Rs " + strings.TrimPrefix(FormatRupeeAmount(amount), "₹")
}
