// Package currency lists the display currencies a session can choose from.
// Amounts are never converted; only the printed symbol changes.
package currency

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned for a code that is not in the list.
var ErrUnknown = errors.New("unknown currency")

// Currency is a display-only currency tuple.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var all = []Currency{
	{"USD", "$", "US Dollar"},
	{"EUR", "€", "Euro"},
	{"GBP", "£", "British Pound"},
	{"INR", "₹", "Indian Rupee"},
	{"JPY", "¥", "Japanese Yen"},
	{"CNY", "¥", "Chinese Yuan"},
	{"CAD", "C$", "Canadian Dollar"},
	{"AUD", "A$", "Australian Dollar"},
	{"CHF", "CHF", "Swiss Franc"},
	{"SGD", "S$", "Singapore Dollar"},
	{"HKD", "HK$", "Hong Kong Dollar"},
	{"SEK", "kr", "Swedish Krona"},
	{"NOK", "kr", "Norwegian Krone"},
	{"DKK", "kr", "Danish Krone"},
	{"PLN", "zł", "Polish Zloty"},
	{"CZK", "Kč", "Czech Koruna"},
	{"HUF", "Ft", "Hungarian Forint"},
	{"RUB", "₽", "Russian Ruble"},
	{"BRL", "R$", "Brazilian Real"},
	{"MXN", "$", "Mexican Peso"},
	{"ZAR", "R", "South African Rand"},
	{"KRW", "₩", "South Korean Won"},
	{"THB", "฿", "Thai Baht"},
	{"MYR", "RM", "Malaysian Ringgit"},
	{"IDR", "Rp", "Indonesian Rupiah"},
	{"PHP", "₱", "Philippine Peso"},
	{"VND", "₫", "Vietnamese Dong"},
	{"AED", "د.إ", "UAE Dirham"},
	{"SAR", "﷼", "Saudi Riyal"},
	{"EGP", "£", "Egyptian Pound"},
	{"TRY", "₺", "Turkish Lira"},
}

// All returns every supported currency in menu order.
func All() []Currency {
	out := make([]Currency, len(all))
	copy(out, all)
	return out
}

// Default returns US dollars.
func Default() Currency { return all[0] }

// Lookup finds a currency by ISO code, ignoring case.
func Lookup(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range all {
		if c.Code == code {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("%w: %q", ErrUnknown, code)
}

// Index returns the menu position of code, or -1.
func Index(code string) int {
	for i, c := range all {
		if strings.EqualFold(c.Code, code) {
			return i
		}
	}
	return -1
}

// Label renders "USD ($) US Dollar" for menus.
func (c Currency) Label() string {
	return c.Code + " (" + c.Symbol + ") " + c.Name
}
