package models

const (
	// CategoryUncategorised is assigned when no rule matches a description.
	CategoryUncategorised = "Uncategorised"

	// UnknownMerchant is the fallback when merchant derivation yields nothing.
	UnknownMerchant = "unknown merchant"
)
