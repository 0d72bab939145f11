package constituents

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "symbols": [
	        {
	            "symbol": "NVDA.US",
	            "date": "2025-08-22",
	            "time": "22:00:06",
	            "open": 174.93,
	            "high": 178.18,
	            "low": 173.62,
	            "close": 177.99,
	            "volume": 188177586
	        }
	    ]
	}
*/
func stooqLatest(ticker string) (float64, error) {
	addr := fmt.Sprintf("https://stooq.com/q/l/?s=%s.us&f=sd2t2ohlcv&e=json", strings.ToLower(ticker))
	var jobj any
	err := jwget(daily(), addr, &jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", ticker, err)
	}
	path := "$.symbols[0].close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", ticker, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		// on non-trading symbols the close comes back as the string "N/D"
		sval, ok := jval.(string)
		if !ok {
			return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", ticker, path, "not a float", jval)
		}
		val, err = strconv.ParseFloat(strings.TrimSpace(sval), 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("no quote for %q: %q", ticker, sval)
		}
	}
	if val == 0 {
		return math.NaN(), fmt.Errorf("empty quote for %q", ticker)
	}
	return val, nil
}

// Quote returns the latest traded price for a constituent ticker, in USD.
func Quote(ticker string) (Money, error) {
	val, err := stooqLatest(ticker)
	if err != nil {
		return Money{}, err
	}
	return ParseMoney(strconv.FormatFloat(val, 'f', -1, 64), "USD")
}
