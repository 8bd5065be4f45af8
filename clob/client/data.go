package client

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/betbot/polyapis/clob/types"
	"github.com/betbot/polyapis/pkg/httpclient"
)

// DataClient talks to the public data-api. No authentication required; the
// validated record types in clob/types do the schema mapping.
type DataClient struct {
	http *httpclient.Client
	log  *logrus.Entry
}

func NewDataClient(host string, log *logrus.Logger) *DataClient {
	if host == "" {
		host = DefaultDataHost
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DataClient{
		http: httpclient.New(host),
		log:  log.WithField("component", "data-api"),
	}
}

// PositionsQuery controls /positions requests.
type PositionsQuery struct {
	User          types.EthAddress
	Markets       []types.Keccak256
	EventID       string
	SizeThreshold float64
	Redeemable    *bool
	Limit         int
	Offset        int
	SortBy        string
	SortDirection string
}

func (q PositionsQuery) params() map[string]string {
	p := map[string]string{"user": string(q.User)}
	if len(q.Markets) > 0 {
		markets := make([]string, len(q.Markets))
		for i, m := range q.Markets {
			markets[i] = string(m)
		}
		p["market"] = strings.Join(markets, ",")
	}
	if q.EventID != "" {
		p["eventId"] = q.EventID
	}
	if q.SizeThreshold > 0 {
		p["sizeThreshold"] = strconv.FormatFloat(q.SizeThreshold, 'f', -1, 64)
	}
	if q.Redeemable != nil {
		p["redeemable"] = strconv.FormatBool(*q.Redeemable)
	}
	putPaging(p, q.Limit, q.Offset)
	putSort(p, q.SortBy, q.SortDirection)
	return p
}

// Positions returns the user's open positions.
func (c *DataClient) Positions(ctx context.Context, q PositionsQuery) ([]types.Position, error) {
	if _, err := types.ValidateAddress(string(q.User)); err != nil {
		return nil, err
	}
	var out []types.Position
	err := c.http.Get(ctx, EndpointPositions, &httpclient.RequestOptions{Params: q.params()}, &out)
	return out, errors.Wrap(err, "get positions")
}

// ClosedPositionsQuery controls /closed-positions requests.
type ClosedPositionsQuery struct {
	User          types.EthAddress
	Markets       []types.Keccak256
	Limit         int
	Offset        int
	SortBy        string
	SortDirection string
}

// ClosedPositions returns the user's fully exited positions.
func (c *DataClient) ClosedPositions(ctx context.Context, q ClosedPositionsQuery) ([]types.ClosedPosition, error) {
	if _, err := types.ValidateAddress(string(q.User)); err != nil {
		return nil, err
	}
	p := map[string]string{"user": string(q.User)}
	if len(q.Markets) > 0 {
		markets := make([]string, len(q.Markets))
		for i, m := range q.Markets {
			markets[i] = string(m)
		}
		p["market"] = strings.Join(markets, ",")
	}
	putPaging(p, q.Limit, q.Offset)
	putSort(p, q.SortBy, q.SortDirection)

	var out []types.ClosedPosition
	err := c.http.Get(ctx, EndpointClosedPositions, &httpclient.RequestOptions{Params: p}, &out)
	return out, errors.Wrap(err, "get closed positions")
}

// TradesQuery controls /trades requests.
type TradesQuery struct {
	User      types.EthAddress
	Market    types.Keccak256
	Side      types.Side
	TakerOnly *bool
	Limit     int
	Offset    int
}

// Trades returns fills, optionally filtered by user, market and side.
func (c *DataClient) Trades(ctx context.Context, q TradesQuery) ([]types.Trade, error) {
	p := map[string]string{}
	if q.User != "" {
		if _, err := types.ValidateAddress(string(q.User)); err != nil {
			return nil, err
		}
		p["user"] = string(q.User)
	}
	if q.Market != "" {
		if _, err := types.ValidateKeccak256(string(q.Market)); err != nil {
			return nil, err
		}
		p["market"] = string(q.Market)
	}
	if q.Side != "" {
		p["side"] = string(q.Side)
	}
	if q.TakerOnly != nil {
		p["takerOnly"] = strconv.FormatBool(*q.TakerOnly)
	}
	putPaging(p, q.Limit, q.Offset)

	var out []types.Trade
	err := c.http.Get(ctx, EndpointTrades, &httpclient.RequestOptions{Params: p}, &out)
	return out, errors.Wrap(err, "get trades")
}

// ActivityQuery controls /activity requests.
type ActivityQuery struct {
	User   types.EthAddress
	Types  []types.ActivityType
	Start  int64 // unix seconds, inclusive
	End    int64 // unix seconds, inclusive
	Limit  int
	Offset int
}

// Activity returns the user's on-chain activity feed.
func (c *DataClient) Activity(ctx context.Context, q ActivityQuery) ([]types.Activity, error) {
	if _, err := types.ValidateAddress(string(q.User)); err != nil {
		return nil, err
	}
	p := map[string]string{"user": string(q.User)}
	if len(q.Types) > 0 {
		kinds := make([]string, len(q.Types))
		for i, k := range q.Types {
			kinds[i] = string(k)
		}
		p["type"] = strings.Join(kinds, ",")
	}
	if q.Start > 0 {
		p["start"] = strconv.FormatInt(q.Start, 10)
	}
	if q.End > 0 {
		p["end"] = strconv.FormatInt(q.End, 10)
	}
	putPaging(p, q.Limit, q.Offset)

	var out []types.Activity
	err := c.http.Get(ctx, EndpointActivity, &httpclient.RequestOptions{Params: p}, &out)
	return out, errors.Wrap(err, "get activity")
}

// Holders returns the top holders for each given token id.
func (c *DataClient) Holders(ctx context.Context, market types.Keccak256, limit int) ([]types.HolderResponse, error) {
	if _, err := types.ValidateKeccak256(string(market)); err != nil {
		return nil, err
	}
	p := map[string]string{"market": string(market)}
	if limit > 0 {
		p["limit"] = strconv.Itoa(limit)
	}

	var out []types.HolderResponse
	err := c.http.Get(ctx, EndpointHolders, &httpclient.RequestOptions{Params: p}, &out)
	return out, errors.Wrap(err, "get holders")
}

// Value returns the total current value of the user's positions, optionally
// restricted to specific markets.
func (c *DataClient) Value(ctx context.Context, user types.EthAddress, markets []types.Keccak256) (*types.ValueResponse, error) {
	if _, err := types.ValidateAddress(string(user)); err != nil {
		return nil, err
	}
	p := map[string]string{"user": string(user)}
	if len(markets) > 0 {
		ms := make([]string, len(markets))
		for i, m := range markets {
			ms[i] = string(m)
		}
		p["market"] = strings.Join(ms, ",")
	}

	// The endpoint answers with a single-element array.
	var out []types.ValueResponse
	err := c.http.Get(ctx, EndpointValue, &httpclient.RequestOptions{Params: p}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "get value")
	}
	if len(out) == 0 {
		return &types.ValueResponse{User: user, Value: 0}, nil
	}
	return &out[0], nil
}

// LeaderboardQuery controls /v2/leaderboard requests.
type LeaderboardQuery struct {
	Category string // "volume" or "pnl"
	Period   string // "day", "week", "month", "all"
	Limit    int
	Offset   int
}

// Leaderboard returns the public trader leaderboard.
func (c *DataClient) Leaderboard(ctx context.Context, q LeaderboardQuery) ([]types.LeaderboardUser, error) {
	p := map[string]string{}
	if q.Category != "" {
		p["category"] = q.Category
	}
	if q.Period != "" {
		p["period"] = q.Period
	}
	putPaging(p, q.Limit, q.Offset)

	var out []types.LeaderboardUser
	err := c.http.Get(ctx, EndpointLeaderboard, &httpclient.RequestOptions{Params: p}, &out)
	return out, errors.Wrap(err, "get leaderboard")
}

// EventLiveVolume returns live volume for one event.
func (c *DataClient) EventLiveVolume(ctx context.Context, eventID string) (*types.EventLiveVolume, error) {
	p := map[string]string{"id": eventID}

	var out []types.EventLiveVolume
	err := c.http.Get(ctx, EndpointLiveVolume, &httpclient.RequestOptions{Params: p}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "get live volume")
	}
	if len(out) == 0 {
		return nil, errors.Errorf("no live volume for event %s", eventID)
	}
	return &out[0], nil
}

func putPaging(p map[string]string, limit, offset int) {
	if limit > 0 {
		p["limit"] = strconv.Itoa(limit)
	}
	if offset > 0 {
		p["offset"] = strconv.Itoa(offset)
	}
}

func putSort(p map[string]string, sortBy, direction string) {
	if sortBy != "" {
		p["sortBy"] = sortBy
	}
	if direction != "" {
		p["sortDirection"] = direction
	}
}
