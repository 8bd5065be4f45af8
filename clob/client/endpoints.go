package client

// Default hosts.
const (
	DefaultClobHost     = "https://clob.polymarket.com"
	DefaultDataHost     = "https://data-api.polymarket.com"
	DefaultSubgraphHost = "https://polymarket-positions-subgraph.up.railway.app"
)

// CLOB API endpoints.
const (
	EndpointTime = "/time"

	EndpointCreateAPIKey = "/auth/api-key"
	EndpointGetAPIKeys   = "/auth/api-keys"
	EndpointDeleteAPIKey = "/auth/api-key"
	EndpointDeriveAPIKey = "/auth/derive-api-key"
	EndpointClosedOnly   = "/auth/ban-status/closed-only"
)

// Data API endpoints.
const (
	EndpointPositions       = "/positions"
	EndpointClosedPositions = "/closed-positions"
	EndpointTrades          = "/trades"
	EndpointActivity        = "/activity"
	EndpointHolders         = "/holders"
	EndpointValue           = "/value"
	EndpointLeaderboard     = "/v2/leaderboard"
	EndpointLiveVolume      = "/live-volume"
)
