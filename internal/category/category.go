// Package category classifies free-text item names into shopping
// categories and owns the name normalization used for duplicate checks.
package category

import "strings"

// Fallback is returned when no rule matches.
const Fallback = "Other"

// rule maps a keyword set to a category. Rules are evaluated in order;
// the first rule with any case-insensitive substring hit wins, so the
// slice below is a precedence list, not a set.
type rule struct {
	keywords []string
	category string
}

// Ordering constraints the data must keep:
//   - the soup rule precedes Meat & Fish ("kycklingsoppa" is Pantry);
//   - Pantry precedes Drinks ("öl" is a substring of "mjöl", "vin" of
//     "vinäger");
//   - Drinks precedes Produce ("apelsinjuice" is a drink, not fruit).
var rules = []rule{
	{[]string{"soppa", "buljong", "fond"}, "Pantry"},
	{[]string{"mjölk", "filmjölk", "yoghurt", "grädde", "smör", "ost", "ägg", "kvarg", "crème fraiche"}, "Dairy"},
	{[]string{"kyckling", "köttfärs", "blandfärs", "fläsk", "biff", "korv", "bacon", "skinka", "lamm"}, "Meat & Fish"},
	{[]string{"lax", "torsk", "räkor", "sill", "fisk", "tonfisk", "makrill"}, "Meat & Fish"},
	{[]string{"bröd", "knäcke", "bulle", "baguette", "tortilla"}, "Bread"},
	{[]string{"glass", "fryst", "frysta"}, "Frozen"},
	{[]string{"pasta", "ris", "mjöl", "socker", "salt", "peppar", "olja", "vinäger", "krydd", "müsli", "havregryn", "flingor", "linser", "bönor", "ketchup", "senap", "majonnäs", "sylt", "honung", "kaffe", "tepåse", "kakao"}, "Pantry"},
	{[]string{"juice", "läsk", "vatten", "öl", "vin", "cider", "saft"}, "Drinks"},
	{[]string{"äpple", "banan", "apelsin", "citron", "tomat", "gurka", "sallad", "paprika", "lök", "potatis", "morot", "vitlök", "broccoli", "spenat", "avokado", "bär", "druvor"}, "Produce"},
	{[]string{"choklad", "godis", "chips", "kex", "nötter", "popcorn"}, "Snacks"},
	{[]string{"tvål", "schampo", "tandkräm", "deodorant", "tvättmedel", "diskmedel", "hushållspapper", "toalettpapper", "blöjor"}, "Household"},
}

// Classify maps an item name to a category. Total: always returns a
// category, Fallback when nothing matches.
func Classify(name string) string {
	n := strings.ToLower(name)
	for _, r := range rules {
		for _, w := range r.keywords {
			if strings.Contains(n, w) {
				return r.category
			}
		}
	}
	return Fallback
}

// Normalize is the comparison form used for duplicate detection:
// trimmed and lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
