package importer

import (
	"regexp"
	"strings"
)

// Candidate header names per canonical role, in match-preference order.
// Matching is case-insensitive with underscores and whitespace runs collapsed,
// so "Transaction_Date" and "transaction date" are the same candidate.
var (
	dateCandidates = []string{
		"date",
		"transaction_date",
		"txn_date",
		"posted_date",
		"transaction date",
		"posting date",
		"value date",
	}

	descriptionCandidates = []string{
		"description",
		"desc",
		"merchant",
		"narrative",
		"details",
		"transaction description",
		"payee",
		"memo",
	}

	amountCandidates = []string{"amount", "amt", "value", "transaction amount"}

	debitCandidates = []string{"debit", "withdrawal", "money_out", "money out", "withdrawals"}

	creditCandidates = []string{"credit", "deposit", "money_in", "money in", "deposits"}
)

var headerSeparatorPattern = regexp.MustCompile(`[_\s]+`)

// columnLayout holds the detected index per canonical role, -1 when absent.
type columnLayout struct {
	date        int
	description int
	amount      int
	debit       int
	credit      int
}

// normalizeHeader canonicalizes a raw header cell for candidate matching.
func normalizeHeader(header string) string {
	h := strings.TrimPrefix(header, "\uFEFF")
	h = strings.ToLower(strings.TrimSpace(h))
	return headerSeparatorPattern.ReplaceAllString(h, " ")
}

// detectColumns maps raw headers to canonical roles. The first candidate that
// appears among the headers wins for each role.
func detectColumns(headers []string) columnLayout {
	normalized := make(map[string]int, len(headers))
	for i, h := range headers {
		key := normalizeHeader(h)
		if _, exists := normalized[key]; !exists {
			normalized[key] = i
		}
	}

	find := func(candidates []string) int {
		for _, cand := range candidates {
			if idx, ok := normalized[normalizeHeader(cand)]; ok {
				return idx
			}
		}
		return -1
	}

	return columnLayout{
		date:        find(dateCandidates),
		description: find(descriptionCandidates),
		amount:      find(amountCandidates),
		debit:       find(debitCandidates),
		credit:      find(creditCandidates),
	}
}
