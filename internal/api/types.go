package api

// OptionsResponse from GET /v7/finance/options/{ticker}
type OptionsResponse struct {
	OptionChain OptionChain `json:"optionChain"`
}

// OptionChain is the top-level options-chain container.
type OptionChain struct {
	Result []OptionResult `json:"result"`
	Error  any            `json:"error"`
}

// OptionResult is one entry of the options-chain result list. Only the
// nested quote object is read; strikes and expirations are ignored.
type OptionResult struct {
	Quote APIQuote `json:"quote"`
}

// APIQuote represents the quote object of the options response.
//
// The two market fields are pointers so a missing key can be told apart
// from a legitimate zero value.
type APIQuote struct {
	Symbol               string   `json:"symbol"`
	RegularMarketPrice   *float64 `json:"regularMarketPrice"`
	RegularMarketDayHigh *float64 `json:"regularMarketDayHigh"`
}
