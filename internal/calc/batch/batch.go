package batch

import (
	"fmt"
	"net/url"

	"Quanta/internal/calc"
	"Quanta/internal/form"
)

type Request struct {
	Items []map[string]any `json:"items"`
}

// Item is the outcome of one row: either Outcome or Error is set.
type Item struct {
	Index   int               `json:"index"`
	Inputs  map[string]string `json:"inputs"`
	Outcome *calc.Outcome     `json:"outcome,omitempty"`
	Error   string            `json:"error,omitempty"`
}

type Result struct {
	Calculator string `json:"calculator"`
	Count      int    `json:"count"`
	Failed     int    `json:"failed"`
	Items      []Item `json:"items"`
}

// Validate checks the item count against limit.
func (r Request) Validate(limit int) error {
	if err := form.Validator().Var(r.Items, fmt.Sprintf("required,min=1,max=%d", limit)); err != nil {
		return fmt.Errorf("items: between 1 and %d required", limit)
	}
	return nil
}

func (r Request) Values() []url.Values {
	out := make([]url.Values, len(r.Items))
	for i, item := range r.Items {
		out[i] = form.FromJSON(item)
	}
	return out
}

// Calculate evaluates every row independently; an invalid row does not stop the rest.
func Calculate(c calc.Calculator, rows []url.Values) Result {
	res := Result{Calculator: c.Slug, Count: len(rows), Items: make([]Item, 0, len(rows))}
	for i, row := range rows {
		item := Item{Index: i, Inputs: c.Inputs(row)}
		out, err := c.Evaluate(row)
		if err != nil {
			item.Error = c.InvalidMessage()
			res.Failed++
		} else {
			item.Outcome = &out
		}
		res.Items = append(res.Items, item)
	}
	return res
}
