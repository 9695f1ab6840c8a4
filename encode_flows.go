package fundflow

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/davrieb/fundflow/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists cash-flow series as JSONL, one flow per line, so a
// series remains human-readable and git-friendly:
//
//	{"on":"2020-01-01","amount":-1000,"currency":"USD"}
//
// It also extracts flows from arbitrary JSON exports of other tools, using
// a pair of jsonpath expressions to locate the dates and the amounts.

// jflow is the object read from one line using the json parser.
type jflow struct {
	On       date.Date       `json:"on"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// DecodeFlows decodes a cash-flow series from a stream of JSONL data, one
// flow per line. Blank lines are skipped. The series is returned as read,
// unsorted.
func DecodeFlows(r io.Reader) (Series, error) {
	var series Series
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" {
			continue
		}

		var jf jflow
		if err := json.Unmarshal([]byte(txt), &jf); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, txt, err)
		}
		if jf.On.IsZero() {
			return nil, fmt.Errorf("format error on line %d %q: missing \"on\" date", line, txt)
		}
		series = append(series, CashFlow{On: jf.On, Amount: M(jf.Amount, jf.Currency)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading flows: %w", err)
	}
	return series, nil
}

// EncodeFlow appends a single flow as one JSONL line.
func EncodeFlow(w io.Writer, cf CashFlow) error {
	var jw jsonObjectWriter
	jw.Append("on", cf.On)
	jw.Append("amount", cf.Amount.Decimal())
	jw.Optional("currency", cf.Amount.Currency())
	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode flow %s: %w", cf, err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// EncodeFlows writes the whole series in JSONL, sorted by date so the file
// is stable under re-encoding.
func EncodeFlows(w io.Writer, s Series) error {
	for _, cf := range s.Sorted() {
		if err := EncodeFlow(w, cf); err != nil {
			return err
		}
	}
	return nil
}

// DecodeFlowsJSONPath extracts a cash-flow series from an arbitrary JSON
// document. datesPath and amountsPath are jsonpath expressions each
// selecting a list of values, e.g. "$.rows[*].date" and "$.rows[*].amount";
// both lists must have the same length and are zipped pairwise. currency
// may be empty.
func DecodeFlowsJSONPath(r io.Reader, datesPath, amountsPath, currency string) (Series, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid json document: %w", err)
	}

	jdates, err := jsonpathList(jobj, datesPath)
	if err != nil {
		return nil, fmt.Errorf("cannot extract dates: %w", err)
	}
	jamounts, err := jsonpathList(jobj, amountsPath)
	if err != nil {
		return nil, fmt.Errorf("cannot extract amounts: %w", err)
	}
	if len(jdates) != len(jamounts) {
		return nil, fmt.Errorf("dates and amounts differ in length: %d vs %d", len(jdates), len(jamounts))
	}

	series := make(Series, 0, len(jdates))
	for i := range jdates {
		str, ok := jdates[i].(string)
		if !ok {
			return nil, fmt.Errorf("date %q at %d is not a string", datesPath, i)
		}
		on, err := date.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("invalid date at %d: %w", i, err)
		}
		amount, err := jsonFloat(jamounts[i])
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q at %d: %w", amountsPath, i, err)
		}
		series = append(series, CashFlow{On: on, Amount: M(amount, currency)})
	}
	return series, nil
}

// jsonpathList evaluates the expression and always returns a list: jsonpath
// is never clear about whether it returns a list of answers or a single
// one, so a single answer is wrapped.
func jsonpathList(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}

// jsonFloat reads a json value as a float64, accepting the string form some
// weird APIs produce (including "1 234,56").
func jsonFloat(jval any) (float64, error) {
	if val, ok := jval.(float64); ok {
		return val, nil
	}
	sval, ok := jval.(string)
	if !ok {
		return 0, fmt.Errorf("neither a number nor a string: %v", jval)
	}
	sval = strings.ReplaceAll(sval, ",", ".")
	sval = strings.ReplaceAll(sval, " ", "")
	return strconv.ParseFloat(sval, 64)
}
