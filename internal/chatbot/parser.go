package chatbot

import (
	"regexp"
	"strconv"
	"strings"
)

// The parser maps a raw admin message to a typed Operation. It never
// fails: anything outside the grammar comes back as KindUnknown.
//
// Rules are declared as an explicit priority list per entity and
// evaluated top to bottom; the first match wins. A message containing
// both "status" and "edit" therefore resolves to the status rule,
// never the generic edit view.

type parseRule struct {
	re    *regexp.Regexp
	build func(m []string) (Operation, bool)
}

var orderRules = []parseRule{
	{
		re: regexp.MustCompile(`(?i)\b(?:delete|remove)\s+order\s+#?(\d+)\b`),
		build: func(m []string) (Operation, bool) {
			return Operation{Kind: KindOrderDelete, TargetID: mustID(m[1])}, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\border\s+#?(\d+)\b.*?\bstatus\s+to\s+(.+)$`),
		build: func(m []string) (Operation, bool) {
			return Operation{Kind: KindOrderUpdateStatus, TargetID: mustID(m[1]), NewStatus: titleCase(strings.TrimSpace(m[2]))}, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\border\s+#?(\d+)\b.*?\b(?:customer\s+)?name\s+to\s+(.+)$`),
		build: func(m []string) (Operation, bool) {
			return Operation{Kind: KindOrderUpdateCustomerName, TargetID: mustID(m[1]), NewName: strings.TrimSpace(m[2])}, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\border\s+#?(\d+)\b.*?\bphone\s+(?:number\s+)?to\s+(.+)$`),
		build: func(m []string) (Operation, bool) {
			return Operation{Kind: KindOrderUpdatePhone, TargetID: mustID(m[1]), NewPhone: strings.TrimSpace(m[2])}, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\border\s+#?(\d+)\b.*?\b(?:delivery\s+)?address\s+to\s+(.+)$`),
		build: func(m []string) (Operation, bool) {
			return Operation{Kind: KindOrderUpdateAddress, TargetID: mustID(m[1]), NewAddress: strings.TrimSpace(m[2])}, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:edit|update|show|view|open)\s+order\s+#?(\d+)\b`),
		build: func(m []string) (Operation, bool) {
			return Operation{Kind: KindOrderEdit, TargetID: mustID(m[1])}, true
		},
	},
}

var productRules = []parseRule{
	{
		re: regexp.MustCompile(`(?i)\bproduct\s+#?(\d+)\b.*?\bstock\s+to\s+(.+)$`),
		build: func(m []string) (Operation, bool) {
			stock, err := strconv.Atoi(strings.TrimSpace(m[2]))
			if err != nil || stock < 0 {
				return Operation{}, false
			}
			return Operation{Kind: KindProductUpdateStock, TargetID: mustID(m[1]), NewStock: stock}, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bproduct\s+#?(\d+)\b.*?\b(?:price|cost)\s+to\s+(.+)$`),
		build: func(m []string) (Operation, bool) {
			raw := strings.TrimPrefix(strings.TrimSpace(m[2]), "$")
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil || price < 0 {
				return Operation{}, false
			}
			return Operation{Kind: KindProductUpdatePrice, TargetID: mustID(m[1]), NewPrice: price}, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bproduct\s+#?(\d+)\b.*?\bname\s+to\s+(.+)$`),
		build: func(m []string) (Operation, bool) {
			return Operation{Kind: KindProductUpdateName, TargetID: mustID(m[1]), NewName: strings.TrimSpace(m[2])}, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bproduct\s+#?(\d+)\b.*?\bdescription\s+to\s+(.+)$`),
		build: func(m []string) (Operation, bool) {
			return Operation{Kind: KindProductUpdateDescription, TargetID: mustID(m[1]), NewDescription: strings.TrimSpace(m[2])}, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:edit|update|show|view|open)\s+product\s+#?(\d+)\b`),
		build: func(m []string) (Operation, bool) {
			return Operation{Kind: KindProductEdit, TargetID: mustID(m[1])}, true
		},
	},
}

var (
	orderGate   = regexp.MustCompile(`(?i)\border\b`)
	productGate = regexp.MustCompile(`(?i)\bproduct\b`)
)

// Parse maps a raw message to a typed Operation. A rule that matches
// but carries an invalid payload (non-numeric stock or price) yields
// KindUnknown rather than a runtime fault.
func Parse(message string) Operation {
	message = strings.TrimSpace(message)
	if message == "" {
		return Operation{Kind: KindUnknown}
	}

	var rules []parseRule
	switch {
	case orderGate.MatchString(message):
		rules = orderRules
	case productGate.MatchString(message):
		rules = productRules
	default:
		return Operation{Kind: KindUnknown}
	}

	for _, rule := range rules {
		m := rule.re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		op, ok := rule.build(m)
		if !ok {
			return Operation{Kind: KindUnknown}
		}
		return op
	}
	return Operation{Kind: KindUnknown}
}

// Confirmation token sets. Matched against the whole message after
// trimming and lowercasing, so "cancel order 42" is a command, not a
// cancellation reply.
var (
	affirmativeTokens = map[string]bool{"yes": true, "y": true, "confirm": true, "proceed": true}
	negativeTokens    = map[string]bool{"no": true, "n": true, "cancel": true, "abort": true}
)

// IsAffirmative reports whether the message confirms a pending operation
func IsAffirmative(message string) bool {
	return affirmativeTokens[normalizeToken(message)]
}

// IsNegative reports whether the message cancels a pending operation
func IsNegative(message string) bool {
	return negativeTokens[normalizeToken(message)]
}

func normalizeToken(message string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(message), "!. "))
}

// mustID converts a digit-only regex capture; the pattern guarantees digits
func mustID(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 64)
	return uint(id)
}

// titleCase capitalizes each word, e.g. "in transit" -> "In Transit"
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
