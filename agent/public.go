package agent

import (
	"context"
	"fmt"

	"github.com/etnz/constituents"
	"github.com/etnz/constituents/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user tracks the constituents of an ETF over time: which tickers the fund holds,
			with which weights, and how those weights moved between observation dates.

			Devise a plan of questions to ask to each experts and come up with the best response
			to the user's request. The user will assume that you checked the constituents table
			first to understand which tickers he is talking about.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert grounding answers in market news.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an equity analyst,
		very well aware of the companies behind the tickers, their sectors,
		and the latest news that move fund allocations.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an equity analyst. You can search and find about anything related to
			listed companies, sectors, funds and markets. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewCurator returns the expert in charge of the local constituents table.
func NewCurator(tableFile string) *Expert {

	lib := []Function{summaryFunc(tableFile), topFunc(tableFile), historyFunc(tableFile)}

	return &Expert{
		Name: "Curator",
		Description: `This is the Curator. He is in charge of reading the user's constituents table.
		He can report the fund's composition on any observed date and trace any ticker's weight over time.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the curator of the user's ETF constituents table.
				You know how to use the Tools to extract relevant information about the fund:
				  - summary of a given observation date
				  - largest positions
				  - weight history of one ticker
				You are part of a team of experts, yours is everything recorded in the table.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func summaryFunc(tableFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reports the fund's composition on one observation date:
			number of holdings, weight distribution, and the ten largest positions.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The observation date, YYYYMMDD or YYYY-MM-DD. The latest observation is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary of the fund on that date.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return failure(id, "Summary", err)
			}
			t, err := constituents.LoadTable(tableFile)
			if err != nil {
				return failure(id, "Summary", err)
			}
			s, err := t.Summary(on)
			if err != nil {
				return failure(id, "Summary", err)
			}
			return success(id, "Summary", renderer.SummaryMarkdown(s))
		},
	}
}

func topFunc(tableFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Top",
			Description: `Top ranks the fund's largest positions by weight on one observation date.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The observation date, YYYYMMDD or YYYY-MM-DD. The latest observation is the default.",
					},
					"count": {
						Type:        genai.TypeNumber,
						Description: "Number of positions to rank. Ten is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted ranking of the fund's positions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return failure(id, "Top", err)
			}
			n := 10
			if c, ok := args["count"].(float64); ok && c > 0 {
				n = int(c)
			}
			t, err := constituents.LoadTable(tableFile)
			if err != nil {
				return failure(id, "Top", err)
			}
			return success(id, "Top", renderer.TopMarkdown(t.Top(on, n)))
		},
	}
}

func historyFunc(tableFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "History",
			Description: `History traces one ticker's weight across every observation date,
			showing when the fund entered, resized or exited the position.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {
						Type:        genai.TypeString,
						Description: "The ticker to trace, as it appears in the table.",
					},
				},
				Required: []string{"ticker"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted weight history for the ticker.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ticker, ok := args["ticker"].(string)
			if !ok {
				return failure(id, "History", fmt.Errorf("argument 'ticker' is not a string as expected but %T", args["ticker"]))
			}
			t, err := constituents.LoadTable(tableFile)
			if err != nil {
				return failure(id, "History", err)
			}
			h, err := t.WeightHistory(ticker)
			if err != nil {
				return failure(id, "History", err)
			}
			return success(id, "History", renderer.HistoryMarkdown(h))
		},
	}
}

func parseDate(args map[string]any) (constituents.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return constituents.Date{}, nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return constituents.Date{}, fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	if sdate == "" {
		return constituents.Date{}, nil
	}
	return constituents.ParseDate(sdate)
}
