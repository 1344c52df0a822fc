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

	"github.com/meenmo/credlib/bond"
)

type yieldInput struct {
	TaskID     string    `json:"task_id,omitempty"`
	Maturity   []float64 `json:"maturity"`
	YTM        []float64 `json:"ytm"`
	CouponRate []float64 `json:"coupon_rate"`
	Frequency  []float64 `json:"frequency"`
}

type yieldOutput struct {
	TaskID     string     `json:"task_id,omitempty"`
	Price      floatBatch `json:"price"`
	YieldDelta floatBatch `json:"yield_delta"`
	YieldGamma floatBatch `json:"yield_gamma"`
	Error      string     `json:"error,omitempty"`
}

// floatBatch marshals non-finite values as null: encoding/json rejects
// NaN/Inf, but the pricer emits them for singular positions.
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
		fmt.Fprintln(os.Stderr, "Usage: yieldprice -input <path>")
		fmt.Fprintln(os.Stderr, "Price conventional fixed-coupon bonds off yield-to-maturity (discrete compounding)")
		fmt.Fprintln(os.Stderr, "with analytic yield delta and gamma.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: yieldprice -input <path>")
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
	outputs := make([]yieldOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, yieldOutput{TaskID: in.TaskID, Error: err.Error()})
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

func process(in yieldInput) (*yieldOutput, error) {
	for name, field := range map[string][]float64{
		"maturity":    in.Maturity,
		"ytm":         in.YTM,
		"coupon_rate": in.CouponRate,
		"frequency":   in.Frequency,
	} {
		if len(field) == 0 {
			return nil, fmt.Errorf("%s is required", name)
		}
	}

	price, yieldDelta, yieldGamma := bond.PriceFromYield(in.Maturity, in.YTM, in.CouponRate, in.Frequency)
	return &yieldOutput{
		TaskID:     in.TaskID,
		Price:      price,
		YieldDelta: yieldDelta,
		YieldGamma: yieldGamma,
	}, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]yieldInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []yieldInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input yieldInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []yieldInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(yieldOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
