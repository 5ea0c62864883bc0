package directory

import (
	"errors"
	"fmt"
)

// ErrUnknownCompany is returned when a company name has no directory entry.
var ErrUnknownCompany = errors.New("unknown company")

// Entry maps one company display name to its ticker symbol.
type Entry struct {
	Name   string
	Ticker string
}

// Directory is an immutable company → ticker mapping with a stable
// iteration order. Unlike a market registry there is no discovery or
// lifecycle here: the tracked set is fixed at construction.
type Directory struct {
	order   []string
	tickers map[string]string
}

// New builds a Directory from the given entries, preserving their order.
func New(entries []Entry) (*Directory, error) {
	if len(entries) == 0 {
		return nil, errors.New("directory requires at least one entry")
	}

	d := &Directory{
		order:   make([]string, 0, len(entries)),
		tickers: make(map[string]string, len(entries)),
	}
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: name is required", i)
		}
		if e.Ticker == "" {
			return nil, fmt.Errorf("entry %d (%s): ticker is required", i, e.Name)
		}
		if _, exists := d.tickers[e.Name]; exists {
			return nil, fmt.Errorf("entry %d: duplicate company %q", i, e.Name)
		}
		d.order = append(d.order, e.Name)
		d.tickers[e.Name] = e.Ticker
	}

	return d, nil
}

// Default returns the built-in directory of tracked companies.
func Default() *Directory {
	d, err := New([]Entry{
		{Name: "Cadence Design Systems", Ticker: "CDNS"},
		{Name: "Synopys", Ticker: "SNPS"},
		{Name: "Tractor Supply Company", Ticker: "TSCO"},
		{Name: "Lululemon Ahtletica Inc.", Ticker: "LULU"},
		{Name: "Arch Capital Group Ltd.", Ticker: "ACGL"},
		{Name: "Costco Wholesale Corporation", Ticker: "COST"},
		{Name: "Brown & Brown Inc.", Ticker: "BRO"},
		{Name: "Thermo Fisher Scientific Inc.", Ticker: "TMO"},
		{Name: "CDW Corporation", Ticker: "CDW"},
		{Name: "Intuit Inc.", Ticker: "INTU"},
	})
	if err != nil {
		panic("directory: invalid built-in entries: " + err.Error())
	}
	return d
}

// Resolve returns the ticker symbol for a company display name.
func (d *Directory) Resolve(name string) (string, error) {
	ticker, ok := d.tickers[name]
	if !ok {
		return "", fmt.Errorf("resolve %q: %w", name, ErrUnknownCompany)
	}
	return ticker, nil
}

// Companies returns the tracked company names in directory order.
func (d *Directory) Companies() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of tracked companies.
func (d *Directory) Len() int {
	return len(d.order)
}
