package categorizer

import "finsight/internal/models"

// DefaultRules returns the built-in rule set used when no user-defined rules
// exist yet. Priorities deliberately interleave: the food-delivery rule (12)
// outranks transport (20) so "uber eats" is resolved before "uber" can claim
// it, and the gas-bill rule (19) outranks the generic utilities rule (20).
// The set is persisted on first use so later edits are durable.
func DefaultRules() []models.CategoryRule {
	return []models.CategoryRule{
		{ID: "rule-01", Pattern: `\b(woolworths|coles|aldi|iga|costco|grocery|supermarket)\b`, Category: "Groceries", Priority: 10, Enabled: true},
		{ID: "rule-02", Pattern: `\b(uber|ola|didi|taxi|lyft|rideshare|cabcharge)\b`, Category: "Transport", Priority: 20, Enabled: true},
		{ID: "rule-03", Pattern: `\b(netflix|spotify|youtube premium|disney|hulu|apple music|amazon prime|stan|binge|paramount)\b`, Category: "Subscriptions", Priority: 15, Enabled: true},
		{ID: "rule-04", Pattern: `\b(rent|landlord|lease|property|strata)\b`, Category: "Housing", Priority: 5, Enabled: true},
		{ID: "rule-05", Pattern: `\b(insurance|nrma|aami|allianz|suncorp)\b`, Category: "Insurance", Priority: 28, Enabled: true},
		{ID: "rule-06", Pattern: `\b(gym|fitness|anytime|f45|yoga|pilates|crossfit)\b`, Category: "Health & Fitness", Priority: 30, Enabled: true},
		{ID: "rule-07", Pattern: `\b(cafe|coffee|restaurant|bar|pub|dining|mcdonald|kfc|burger|pizza|domino|hungry jack|subway|nando)\b`, Category: "Eating Out", Priority: 25, Enabled: true},
		{ID: "rule-08", Pattern: `\b(uber eats|deliveroo|doordash|menulog|grubhub)\b`, Category: "Food Delivery", Priority: 12, Enabled: true},
		{ID: "rule-09", Pattern: `\b(salary|wages|payroll|employer)\b`, Category: "Income", Priority: 5, Enabled: true},
		{ID: "rule-10", Pattern: `\b(electricity|water|energy|agl|origin energy|utility)\b`, Category: "Utilities", Priority: 20, Enabled: true},
		{ID: "rule-11", Pattern: `\b(telstra|optus|vodafone|phone|mobile|internet|broadband|nbn)\b`, Category: "Phone & Internet", Priority: 22, Enabled: true},
		{ID: "rule-12", Pattern: `\b(amazon|ebay|kmart|target|big w|jb hi.?fi|myer|david jones|online shop)\b`, Category: "Shopping", Priority: 35, Enabled: true},
		{ID: "rule-13", Pattern: `\b(petrol|fuel|bp|caltex|shell|ampol|servo|7.eleven)\b`, Category: "Fuel", Priority: 18, Enabled: true},
		{ID: "rule-14", Pattern: `\b(doctor|medical|pharmacy|chemist|hospital|dental|dentist|optical|health fund|medibank|bupa)\b`, Category: "Medical", Priority: 25, Enabled: true},
		{ID: "rule-15", Pattern: `\b(transfer|tfr|internal|savings)\b`, Category: "Transfers", Priority: 40, Enabled: true},
		{ID: "rule-16", Pattern: `\b(atm|cash withdrawal|cash advance)\b`, Category: "Cash", Priority: 38, Enabled: true},
		{ID: "rule-17", Pattern: `\b(bank fee|interest charge|penalty|overdrawn|overdraft|late fee|account fee|monthly fee)\b`, Category: "Fees & Charges", Priority: 34, Enabled: true},
		{ID: "rule-18", Pattern: `\b(gas\s+bill|natural gas|gas\s+account)\b`, Category: "Utilities", Priority: 19, Enabled: true},
	}
}
