package types

// Flat record types for the data-api (data-api.polymarket.com). Field names
// follow the API's camelCase aliases; addresses and condition/transaction
// hashes go through the validating types in common.go.

// Position is an open position for a proxy wallet.
type Position struct {
	ProxyWallet EthAddress `json:"proxyWallet"`

	TokenID              string    `json:"asset"`
	ComplementaryTokenID string    `json:"oppositeAsset"`
	ConditionID          Keccak256 `json:"conditionId"`
	Outcome              string    `json:"outcome"`
	ComplementaryOutcome string    `json:"oppositeOutcome"`
	OutcomeIndex         int       `json:"outcomeIndex"`

	Size         Numeric `json:"size"`
	AvgPrice     Numeric `json:"avgPrice"`
	CurrentPrice Numeric `json:"curPrice"`
	Redeemable   bool    `json:"redeemable"`

	InitialValue       Numeric `json:"initialValue"`
	CurrentValue       Numeric `json:"currentValue"`
	CashPnl            Numeric `json:"cashPnl"`
	PercentPnl         Numeric `json:"percentPnl"`
	TotalBought        Numeric `json:"totalBought"`
	RealizedPnl        Numeric `json:"realizedPnl"`
	PercentRealizedPnl Numeric `json:"percentRealizedPnl"`

	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Icon         string    `json:"icon"`
	EventSlug    string    `json:"eventSlug"`
	EndDate      Timestamp `json:"endDate"`
	NegativeRisk bool      `json:"negativeRisk"`
}

// ClosedPosition is a fully exited position.
type ClosedPosition struct {
	ProxyWallet EthAddress `json:"proxyWallet"`

	TokenID              string    `json:"asset"`
	ComplementaryTokenID string    `json:"oppositeAsset"`
	ConditionID          Keccak256 `json:"conditionId"`
	Outcome              string    `json:"outcome"`
	ComplementaryOutcome string    `json:"oppositeOutcome"`
	OutcomeIndex         int       `json:"outcomeIndex"`

	AvgPrice     Numeric `json:"avgPrice"`
	CurrentPrice Numeric `json:"curPrice"`

	TotalBought Numeric `json:"totalBought"`
	RealizedPnl Numeric `json:"realizedPnl"`

	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Icon      string    `json:"icon"`
	EventSlug string    `json:"eventSlug"`
	EndDate   Timestamp `json:"endDate"`
}

// Trade is a single fill reported by the data-api.
type Trade struct {
	ProxyWallet EthAddress `json:"proxyWallet"`

	Side        Side      `json:"side"`
	TokenID     string    `json:"asset"`
	ConditionID Keccak256 `json:"conditionId"`
	Size        Numeric   `json:"size"`
	Price       Numeric   `json:"price"`
	Timestamp   Timestamp `json:"timestamp"`

	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Icon         string `json:"icon"`
	EventSlug    string `json:"eventSlug"`
	Outcome      string `json:"outcome"`
	OutcomeIndex int    `json:"outcomeIndex"`

	Name                  string `json:"name"`
	Pseudonym             string `json:"pseudonym"`
	Bio                   string `json:"bio"`
	ProfileImage          string `json:"profileImage"`
	ProfileImageOptimized string `json:"profileImageOptimized"`

	TransactionHash Keccak256 `json:"transactionHash"`
}

// Activity is a row from /activity: trades plus on-chain CTF operations.
// REWARD and CONVERSION rows have no condition id.
type Activity struct {
	ProxyWallet EthAddress `json:"proxyWallet"`

	Timestamp   Timestamp         `json:"timestamp"`
	ConditionID OptionalKeccak256 `json:"conditionId"`
	Type        ActivityType      `json:"type"`
	Size        Numeric           `json:"size"`
	UsdcSize    Numeric           `json:"usdcSize"`
	Price       Numeric           `json:"price"`
	Asset       string            `json:"asset"`
	Side        string            `json:"side"`
	OutcomeIndex int              `json:"outcomeIndex"`

	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Icon      string `json:"icon"`
	EventSlug string `json:"eventSlug"`
	Outcome   string `json:"outcome"`

	Name                  string `json:"name"`
	Pseudonym             string `json:"pseudonym"`
	Bio                   string `json:"bio"`
	ProfileImage          string `json:"profileImage"`
	ProfileImageOptimized string `json:"profileImageOptimized"`

	TransactionHash Keccak256 `json:"transactionHash"`
}

// Holder is one wallet holding a token.
type Holder struct {
	ProxyWallet EthAddress `json:"proxyWallet"`

	TokenID      string  `json:"asset"`
	Amount       Numeric `json:"amount"`
	OutcomeIndex int     `json:"outcomeIndex"`

	Name                  string `json:"name"`
	Pseudonym             string `json:"pseudonym"`
	Bio                   string `json:"bio"`
	ProfileImage          string `json:"profileImage"`
	ProfileImageOptimized string `json:"profileImageOptimized"`
	DisplayUsernamePublic bool   `json:"displayUsernamePublic"`
}

// HolderResponse groups holders by token.
type HolderResponse struct {
	TokenID string   `json:"token"`
	Holders []Holder `json:"holders"`
}

// ValueResponse is the total position value of a user.
type ValueResponse struct {
	User  EthAddress `json:"user"`
	Value Numeric    `json:"value"`
}

// User is a public profile.
type User struct {
	ProxyWallet           EthAddress `json:"proxyWallet"`
	Name                  string     `json:"name"`
	Bio                   string     `json:"bio"`
	ProfileImage          string     `json:"profileImage"`
	ProfileImageOptimized string     `json:"profileImageOptimized"`
}

// UserMetric is a profile with an aggregated amount (volume or pnl).
type UserMetric struct {
	User
	Amount    Numeric `json:"amount"`
	Pseudonym string  `json:"pseudonym"`
}

// UserRank is a profile with a leaderboard rank.
type UserRank struct {
	User
	Amount Numeric `json:"amount"`
	Rank   int     `json:"rank"`
}

// LeaderboardUser is a row from the public leaderboard.
type LeaderboardUser struct {
	Rank          int        `json:"rank"`
	ProxyWallet   EthAddress `json:"proxyWallet"`
	Username      string     `json:"userName"`
	XUsername     string     `json:"xUsername"`
	VerifiedBadge bool       `json:"verifiedBadge"`
	Volume        Numeric    `json:"vol"`
	Pnl           Numeric    `json:"pnl"`
	ProfileImage  string     `json:"profileImage"`
}

// BuilderLeaderboardUser is a row from the builder leaderboard.
type BuilderLeaderboardUser struct {
	Date        *Timestamp `json:"dt,omitempty"` // period end date
	Rank        int        `json:"rank"`
	Builder     string     `json:"builder"`
	Volume      Numeric    `json:"volume"`
	ActiveUsers int        `json:"activeUsers"`
	Verified    Numeric    `json:"verified"`
	BuilderLogo string     `json:"builderLogo"`
}

// MarketValue is a per-market live volume entry.
type MarketValue struct {
	ConditionID Keccak256 `json:"market"`
	Value       Numeric   `json:"value"`
}

// EventLiveVolume is live volume for an event and its markets.
type EventLiveVolume struct {
	Total   *Numeric      `json:"total"`
	Markets []MarketValue `json:"markets"`
}

// TimeseriesPoint is one point of a price history series.
type TimeseriesPoint struct {
	Value     Numeric   `json:"p"`
	Timestamp Timestamp `json:"t"`
}
