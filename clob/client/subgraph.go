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

const (
	// Goldsky-hosted Polymarket positions subgraph (public, no API key).
	DefaultPositionsSubgraphURL = "https://api.goldsky.com/api/public/project_cl6mb8i9h0003e201j6li0diw/subgraphs/positions-subgraph/0.0.7/gn"

	// Maximum rows per GraphQL page.
	subgraphBatchSize = 1000
)

// SubgraphClient queries the positions subgraph. Unlike the data-api, the
// subgraph reports raw on-chain balances; types.GQLPosition scales them.
type SubgraphClient struct {
	http *httpclient.Client
	log  *logrus.Entry
}

func NewSubgraphClient(url string, log *logrus.Logger) *SubgraphClient {
	if url == "" {
		url = DefaultPositionsSubgraphURL
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SubgraphClient{
		http: httpclient.New(url),
		log:  log.WithField("component", "subgraph"),
	}
}

const positionsQuery = `query Positions($user: String!, $first: Int!, $skip: Int!) {
  userBalances(where: {user: $user, balance_gt: 0}, first: $first, skip: $skip) {
    user
    balance
    asset {
      id
      complement
      outcomeIndex
      condition { id }
    }
  }
}`

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlError struct {
	Message string `json:"message"`
}

// Positions returns every non-zero on-chain position of the user, paging
// through the subgraph until a short page comes back.
func (c *SubgraphClient) Positions(ctx context.Context, user types.EthAddress) ([]types.GQLPosition, error) {
	if _, err := types.ValidateAddress(string(user)); err != nil {
		return nil, err
	}

	var all []types.GQLPosition
	for skip := 0; ; skip += subgraphBatchSize {
		var out struct {
			Data struct {
				UserBalances []types.GQLPosition `json:"userBalances"`
			} `json:"data"`
			Errors []gqlError `json:"errors"`
		}

		req := gqlRequest{
			Query: positionsQuery,
			Variables: map[string]any{
				// The subgraph indexes lowercase addresses.
				"user":  strings.ToLower(string(user)),
				"first": subgraphBatchSize,
				"skip":  skip,
			},
		}
		if err := c.http.Post(ctx, "", &httpclient.RequestOptions{Body: req}, &out); err != nil {
			return nil, errors.Wrap(err, "query positions subgraph")
		}
		if len(out.Errors) > 0 {
			return nil, errors.Errorf("subgraph: %s", out.Errors[0].Message)
		}

		all = append(all, out.Data.UserBalances...)
		if len(out.Data.UserBalances) < subgraphBatchSize {
			break
		}
		c.log.WithField("fetched", strconv.Itoa(len(all))).Debug("paging subgraph positions")
	}
	return all, nil
}
