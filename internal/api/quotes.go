package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ErrMalformedResponse is returned when the response body decodes but the
// expected nested keys are absent (unknown ticker, halted security, or
// endpoint schema drift).
var ErrMalformedResponse = errors.New("malformed quote response")

// QuoteFields holds the two scalar fields read per polling round.
type QuoteFields struct {
	LastPrice float64
	DayHigh   float64
}

// GetQuote fetches the current quote fields for a ticker.
//
// Both fields come from a single request against the options endpoint;
// the response carries them in one nested quote object, so fetching them
// separately would only double the call count.
func (c *Client) GetQuote(ctx context.Context, ticker string) (*QuoteFields, error) {
	path := "/v7/finance/options/" + url.PathEscape(ticker)

	var resp OptionsResponse
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get quote %s: %w", ticker, err)
	}

	if len(resp.OptionChain.Result) == 0 {
		return nil, fmt.Errorf("get quote %s: empty option chain result: %w", ticker, ErrMalformedResponse)
	}

	quote := resp.OptionChain.Result[0].Quote
	if quote.RegularMarketPrice == nil {
		return nil, fmt.Errorf("get quote %s: missing regularMarketPrice: %w", ticker, ErrMalformedResponse)
	}
	if quote.RegularMarketDayHigh == nil {
		return nil, fmt.Errorf("get quote %s: missing regularMarketDayHigh: %w", ticker, ErrMalformedResponse)
	}

	return &QuoteFields{
		LastPrice: *quote.RegularMarketPrice,
		DayHigh:   *quote.RegularMarketDayHigh,
	}, nil
}
