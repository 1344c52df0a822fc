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

type priceInput struct {
	TaskID       string    `json:"task_id,omitempty"`
	Maturity     []float64 `json:"maturity"`
	Coupon       []float64 `json:"coupon"`
	InterestRate []float64 `json:"interest_rate"`
	Spread       []float64 `json:"spread"`
	RecoveryRate []float64 `json:"recovery_rate"`
}

type priceOutput struct {
	TaskID  string     `json:"task_id,omitempty"`
	Price   floatBatch `json:"price"`
	CR01    floatBatch `json:"cr01"`
	CRGamma floatBatch `json:"cr_gamma"`
	IR01    floatBatch `json:"ir01"`
	IRGamma floatBatch `json:"ir_gamma"`
	Error   string     `json:"error,omitempty"`
}

// floatBatch marshals non-finite values as null: encoding/json rejects
// NaN/Inf, but the model emits them for singular positions.
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
		fmt.Fprintln(os.Stderr, "Usage: bondprice -input <path>")
		fmt.Fprintln(os.Stderr, "Price defaultable bonds (reduced-form model) with CR01/IR01 greeks.")
		fmt.Fprintln(os.Stderr, "Inputs are element-wise batches; rates and spreads absolute, prices in percent of notional.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: bondprice -input <path>")
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
	outputs := make([]priceOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, priceOutput{TaskID: in.TaskID, Error: err.Error()})
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

func process(in priceInput) (*priceOutput, error) {
	for name, field := range map[string][]float64{
		"maturity":      in.Maturity,
		"coupon":        in.Coupon,
		"interest_rate": in.InterestRate,
		"spread":        in.Spread,
		"recovery_rate": in.RecoveryRate,
	} {
		if len(field) == 0 {
			return nil, fmt.Errorf("%s is required", name)
		}
	}

	price := credit.Price(in.Maturity, in.Coupon, in.InterestRate, in.Spread, in.RecoveryRate)
	for i := range price {
		price[i] *= 100 // per-unit → percent of notional
	}

	return &priceOutput{
		TaskID:  in.TaskID,
		Price:   price,
		CR01:    credit.CR01(in.Maturity, in.Coupon, in.InterestRate, in.Spread, in.RecoveryRate, credit.Delta),
		CRGamma: credit.CR01(in.Maturity, in.Coupon, in.InterestRate, in.Spread, in.RecoveryRate, credit.Gamma),
		IR01:    credit.IR01(in.Maturity, in.Coupon, in.InterestRate, in.Spread, in.RecoveryRate, credit.Delta),
		IRGamma: credit.IR01(in.Maturity, in.Coupon, in.InterestRate, in.Spread, in.RecoveryRate, credit.Gamma),
	}, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]priceInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []priceInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input priceInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []priceInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(priceOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
