// Package categorizer assigns spending categories to transactions by applying
// priority-ordered regular-expression rules to their descriptions. Rules are
// plain data records; patterns are validated and compiled once per batch and
// reused across every transaction.
package categorizer

import (
	"regexp"
	"sort"
	"strings"

	"finsight/internal/logging"
	"finsight/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// CompiledRule is a validated, ready-to-match rule. Exposes only
// "compile once, test many" - callers never see the pattern source again.
type CompiledRule struct {
	regex    *regexp.Regexp
	Category string
}

// Matches reports whether the rule matches an already-lowercased description.
func (r CompiledRule) Matches(lowerDesc string) bool {
	return r.regex.MatchString(lowerDesc)
}

var (
	// A quantifier immediately followed by another quantifier or a quantified
	// group, e.g. (a+)+, is the classic catastrophic-backtracking shape.
	nestedQuantifierPattern = regexp.MustCompile(`([+*])\)?[+*{]`)

	// Lookaround-style groups pass the shape check; the compiler decides
	// whether the engine accepts them.
	lookaroundPattern = regexp.MustCompile(`\(\?[^:)]`)
)

// IsPatternSafe rejects patterns whose shape is known to cause catastrophic
// backtracking on adversarial input. The rule store is portable data, so the
// check guards patterns even though the engine compiling them here is immune.
func IsPatternSafe(pattern string) bool {
	if nestedQuantifierPattern.MatchString(pattern) {
		return false
	}
	if lookaroundPattern.MatchString(pattern) {
		return true
	}
	_, err := regexp.Compile(pattern)
	return err == nil
}

// CompileRules validates and compiles a rule set into evaluation order:
// enabled rules with a non-blank pattern, sorted by (priority asc, id asc),
// unsafe or uncompilable patterns dropped. Dropping is per rule and never
// fails the batch.
func CompileRules(rules []models.CategoryRule) []CompiledRule {
	active := make([]models.CategoryRule, 0, len(rules))
	for _, r := range rules {
		if r.Enabled && strings.TrimSpace(r.Pattern) != "" {
			active = append(active, r)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Priority != active[j].Priority {
			return active[i].Priority < active[j].Priority
		}
		return active[i].ID < active[j].ID
	})

	compiled := make([]CompiledRule, 0, len(active))
	for _, r := range active {
		if !IsPatternSafe(r.Pattern) {
			log.WithFields(
				logging.Field{Key: logging.FieldRuleID, Value: r.ID},
				logging.Field{Key: logging.FieldPattern, Value: r.Pattern},
			).Warn("Dropping rule with unsafe pattern")
			continue
		}
		// Patterns match against lowercased input rather than using a
		// case-insensitive flag, so one compilation serves the whole batch.
		regex, err := regexp.Compile(r.Pattern)
		if err != nil {
			log.WithError(err).WithField(logging.FieldRuleID, r.ID).Warn("Dropping rule with invalid pattern")
			continue
		}
		compiled = append(compiled, CompiledRule{regex: regex, Category: r.Category})
	}
	return compiled
}

// Apply returns a copy of the transactions with Category assigned by the
// first matching rule, or "Uncategorised" when nothing matches. Rules are
// compiled once for the entire batch.
func Apply(transactions []models.Transaction, rules []models.CategoryRule) []models.Transaction {
	compiled := CompileRules(rules)

	out := make([]models.Transaction, len(transactions))
	for i, txn := range transactions {
		txn.Category = matchCompiled(txn.Description, compiled)
		out[i] = txn
	}
	return out
}

// CategorizeDescription categorizes a single description. It compiles the
// rule set on every call; use Apply for batches.
func CategorizeDescription(description string, rules []models.CategoryRule) string {
	if description == "" {
		return models.CategoryUncategorised
	}
	return matchCompiled(description, CompileRules(rules))
}

func matchCompiled(description string, compiled []CompiledRule) string {
	lowerDesc := strings.ToLower(description)
	for _, rule := range compiled {
		if rule.Matches(lowerDesc) {
			return rule.Category
		}
	}
	return models.CategoryUncategorised
}
