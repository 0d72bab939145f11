package constituents

import (
	"fmt"
	"sort"
)

// ARK publishes its daily fund documents as plain CSV, no API key required.
const arkBaseURL = "https://assets.ark-funds.com/fund-documents/funds-etf-csv/"

// arkDocuments maps the fund codes ARK actively distributes to their
// document names.
var arkDocuments = map[string]string{
	"arkk": "ARK_INNOVATION_ETF_ARKK_HOLDINGS.csv",
	"arkw": "ARK_NEXT_GENERATION_INTERNET_ETF_ARKW_HOLDINGS.csv",
	"arkg": "ARK_GENOMIC_REVOLUTION_ETF_ARKG_HOLDINGS.csv",
	"arkq": "ARK_AUTONOMOUS_TECH._&_ROBOTICS_ETF_ARKQ_HOLDINGS.csv",
	"arkf": "ARK_FINTECH_INNOVATION_ETF_ARKF_HOLDINGS.csv",
	"arkx": "ARK_SPACE_EXPLORATION_&_INNOVATION_ETF_ARKX_HOLDINGS.csv",
}

// ArkSchema maps the columns of ARK's fund documents. ARK stamps the
// observation date on every row, so snapshots fetched live never depend on
// the fetch day.
var ArkSchema = Schema{
	Date:        "date",
	Ticker:      "ticker",
	Weight:      "weight (%)",
	MarketValue: "market value ($)",
}

// ArkFunds returns the fund codes FetchArk accepts.
func ArkFunds() []string {
	funds := make([]string, 0, len(arkDocuments))
	for fund := range arkDocuments {
		funds = append(funds, fund)
	}
	sort.Strings(funds)
	return funds
}

// FetchArk downloads the current holdings document for an ARK fund and
// decodes it into a snapshot dated by the document itself.
func FetchArk(fund string) (*Snapshot, error) {
	doc, ok := arkDocuments[fund]
	if !ok {
		return nil, fmt.Errorf("unknown ARK fund %q (known: %v)", fund, ArkFunds())
	}
	body, err := fetch(daily(), arkBaseURL+doc)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch %s holdings: %w", fund, err)
	}
	defer body.Close()

	s, err := DecodeSnapshot(body, fund, ArkSchema)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s holdings: %w", fund, err)
	}
	if s.Date.IsZero() {
		// never seen on a live document, but a dateless snapshot must not
		// reach the merge engine
		return nil, &DateFormatError{Input: doc, Reason: "document carries no date column"}
	}
	return s, nil
}
