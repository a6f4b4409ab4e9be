package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/clinics"
)

// FieldRule maps a record field to the selector that locates it inside a
// record block.
type FieldRule struct {
	Field    string
	Selector string

	matcher cascadia.Selector
	set     func(r *clinics.Record, v string)
}

func rule(field, selector string, set func(*clinics.Record, string)) FieldRule {
	return FieldRule{
		Field:    field,
		Selector: selector,
		matcher:  cascadia.MustCompile(selector),
		set:      set,
	}
}

// fieldRules covers every field except area, in output column order.
var fieldRules = []FieldRule{
	rule(clinics.FieldName, "dt", func(r *clinics.Record, v string) { r.Name = v }),
	rule(clinics.FieldAddress, "li.list_add", func(r *clinics.Record, v string) { r.Address = v }),
	rule(clinics.FieldTel, "li.list_tel", func(r *clinics.Record, v string) { r.Tel = v }),
	rule(clinics.FieldSite, "li.list_site", func(r *clinics.Record, v string) { r.Site = v }),
	rule(clinics.FieldHours, "li.hours", func(r *clinics.Record, v string) { r.Hours = v }),
	rule(clinics.FieldDay, "li.day", func(r *clinics.Record, v string) { r.Day = v }),
	rule(clinics.FieldReserveLimitation, "li.list_reservation", func(r *clinics.Record, v string) { r.ReserveLimitation = v }),
	rule(clinics.FieldDiseaseLimitation, "li.list_limit", func(r *clinics.Record, v string) { r.DiseaseLimitation = v }),
}

// FieldRules returns the field-to-selector mapping used by Extract.
func FieldRules() []FieldRule {
	rules := make([]FieldRule, len(fieldRules))
	copy(rules, fieldRules)
	return rules
}

// Extract builds the record for one block. Each field takes the trimmed text
// of the first descendant matching its rule, or "" when nothing matches.
func Extract(block *goquery.Selection, area string) clinics.Record {
	r := clinics.Record{Area: area}
	for _, fr := range fieldRules {
		fr.set(&r, firstText(block, fr.matcher))
	}
	return r
}

func firstText(block *goquery.Selection, m goquery.Matcher) string {
	match := block.FindMatcher(m).First()
	if match.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(match.Text())
}
