package money

// builtinCurrencies seeds the registry with the commonly used subset of
// ISO 4217. Separators are each currency's native convention; the active
// locale may override them at parse time (see Rules).
var builtinCurrencies = []Currency{
	{Code: "USD", Symbol: "$", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "EUR", Symbol: "€", Exponent: 2, DecimalSep: ",", ThousandsSep: "."},
	{Code: "GBP", Symbol: "£", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "JPY", Symbol: "¥", Exponent: 0, DecimalSep: ".", ThousandsSep: ","},
	{Code: "CAD", Symbol: "$", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "AUD", Symbol: "$", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "NZD", Symbol: "$", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "CHF", Symbol: "CHF", Exponent: 2, DecimalSep: ".", ThousandsSep: "'"},
	{Code: "SEK", Symbol: "kr", Exponent: 2, DecimalSep: ",", ThousandsSep: " "},
	{Code: "NOK", Symbol: "kr", Exponent: 2, DecimalSep: ",", ThousandsSep: " "},
	{Code: "DKK", Symbol: "kr", Exponent: 2, DecimalSep: ",", ThousandsSep: "."},
	{Code: "BRL", Symbol: "R$", Exponent: 2, DecimalSep: ",", ThousandsSep: "."},
	{Code: "MXN", Symbol: "$", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "INR", Symbol: "₹", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "CNY", Symbol: "¥", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "KRW", Symbol: "₩", Exponent: 0, DecimalSep: ".", ThousandsSep: ","},
	{Code: "SGD", Symbol: "$", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "HKD", Symbol: "$", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "PLN", Symbol: "zł", Exponent: 2, DecimalSep: ",", ThousandsSep: " "},
	{Code: "CZK", Symbol: "Kč", Exponent: 2, DecimalSep: ",", ThousandsSep: " "},
	{Code: "RUB", Symbol: "₽", Exponent: 2, DecimalSep: ",", ThousandsSep: " "},
	{Code: "TRY", Symbol: "₺", Exponent: 2, DecimalSep: ",", ThousandsSep: "."},
	{Code: "ZAR", Symbol: "R", Exponent: 2, DecimalSep: ",", ThousandsSep: " "},
	{Code: "AED", Symbol: "د.إ", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "SAR", Symbol: "﷼", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "KWD", Symbol: "د.ك", Exponent: 3, DecimalSep: ".", ThousandsSep: ","},
	{Code: "BHD", Symbol: ".د.ب", Exponent: 3, DecimalSep: ".", ThousandsSep: ","},
	{Code: "ILS", Symbol: "₪", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "THB", Symbol: "฿", Exponent: 2, DecimalSep: ".", ThousandsSep: ","},
	{Code: "IDR", Symbol: "Rp", Exponent: 2, DecimalSep: ",", ThousandsSep: "."},
}
