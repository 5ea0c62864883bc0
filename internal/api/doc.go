// Package api provides the HTTP client for the public quote endpoint.
//
// Endpoint:
//   - GET {base}/v7/finance/options/{ticker}
//
// The response nests the quote under optionChain.result[0].quote; only
// regularMarketPrice and regularMarketDayHigh are consumed. No
// authentication is required.
package api
