package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/meenmo/credlib/credit"
)

type spreadInput struct {
	TaskID        string    `json:"task_id,omitempty"`
	Maturity      []float64 `json:"maturity"`
	Coupon        []float64 `json:"coupon"`
	InterestRate  []float64 `json:"interest_rate"`
	Price         []float64 `json:"price"`
	RecoveryRate  []float64 `json:"recovery_rate"`
	MaxIterations int       `json:"max_iterations,omitempty"`
}

type spreadOutput struct {
	TaskID     string     `json:"task_id,omitempty"`
	Spread     floatBatch `json:"spread"`
	Iterations int        `json:"iterations"`
	Converged  bool       `json:"converged"`
	Error      string     `json:"error,omitempty"`
}

// floatBatch marshals non-finite values as null: encoding/json rejects
// NaN/Inf, but diverged positions legitimately carry them.
type floatBatch []float64

func (f floatBatch) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf.WriteString("null")
			continue
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: impliedspread -input <path>")
		fmt.Fprintln(os.Stderr, "Imply credit spreads from market prices via Newton-Raphson on the reduced-form model.")
		fmt.Fprintln(os.Stderr, "Prices in percent of notional; spreads returned in absolute terms.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: impliedspread -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]spreadOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, spreadOutput{TaskID: in.TaskID, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func process(in spreadInput) (*spreadOutput, error) {
	for name, field := range map[string][]float64{
		"maturity":      in.Maturity,
		"coupon":        in.Coupon,
		"interest_rate": in.InterestRate,
		"price":         in.Price,
		"recovery_rate": in.RecoveryRate,
	} {
		if len(field) == 0 {
			return nil, fmt.Errorf("%s is required", name)
		}
	}

	res := credit.SolveSpread(in.Maturity, in.Coupon, in.InterestRate, in.Price, in.RecoveryRate, in.MaxIterations)
	return &spreadOutput{
		TaskID:     in.TaskID,
		Spread:     res.Spread,
		Iterations: res.Iterations,
		Converged:  res.Converged,
	}, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]spreadInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []spreadInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input spreadInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []spreadInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(spreadOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
