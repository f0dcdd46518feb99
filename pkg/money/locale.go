package money

import "golang.org/x/text/language"

// FormatRules are the separator conventions used when parsing a monetary
// string.
type FormatRules struct {
	DecimalSep   string
	ThousandsSep string
}

// localeFormats lists the locales that define an explicit number format.
// A locale absent from this table defines no format and defers to the
// currency's native separators.
var localeFormats = map[language.Tag]FormatRules{
	language.English:             {DecimalSep: ".", ThousandsSep: ","},
	language.AmericanEnglish:     {DecimalSep: ".", ThousandsSep: ","},
	language.BritishEnglish:      {DecimalSep: ".", ThousandsSep: ","},
	language.German:              {DecimalSep: ",", ThousandsSep: "."},
	language.French:              {DecimalSep: ",", ThousandsSep: " "},
	language.Italian:             {DecimalSep: ",", ThousandsSep: "."},
	language.Spanish:             {DecimalSep: ",", ThousandsSep: "."},
	language.Dutch:               {DecimalSep: ",", ThousandsSep: "."},
	language.Portuguese:          {DecimalSep: ",", ThousandsSep: " "},
	language.BrazilianPortuguese: {DecimalSep: ",", ThousandsSep: "."},
	language.Japanese:            {DecimalSep: ".", ThousandsSep: ","},
	language.Korean:              {DecimalSep: ".", ThousandsSep: ","},
	language.Turkish:             {DecimalSep: ",", ThousandsSep: "."},
	language.Russian:             {DecimalSep: ",", ThousandsSep: " "},
	language.Polish:              {DecimalSep: ",", ThousandsSep: " "},
}

// Rules resolves the separator conventions for parsing an amount of c under
// loc. A locale with an explicit number format overrides the currency's own
// convention; otherwise the currency's native separators apply. This
// precedence is load-bearing: locale wins only when its format is defined.
func Rules(c Currency, loc language.Tag) FormatRules {
	for t := loc; !t.IsRoot(); t = t.Parent() {
		if r, ok := localeFormats[t]; ok {
			return r
		}
	}
	r := FormatRules{DecimalSep: c.DecimalSep, ThousandsSep: c.ThousandsSep}
	if r.DecimalSep == "" {
		r.DecimalSep = "."
	}
	if r.ThousandsSep == "" {
		r.ThousandsSep = ","
	}
	return r
}
