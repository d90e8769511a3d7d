package valuation

// OffSeasonScarcity marks up harvest items priced outside their growing seasons
const OffSeasonScarcity = 1.5

// NeutralMultiplier is used for any name the ruleset does not configure
const NeutralMultiplier = 1.0
