// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tools

import (
	"fmt"
	"strings"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// CalculateArgs is the input for the calculator tool. Operation is one of
// "add", "subtract", "multiply", "divide" or the symbols + - * /.
type CalculateArgs struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
}

// CalculateResult reports the outcome of a calculation. Bad input is an
// error status, not a Go error, so the model can relay it to the user.
type CalculateResult struct {
	Status     string  `json:"status"`
	Result     float64 `json:"result,omitempty"`
	Expression string  `json:"expression,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// Calculate performs a basic arithmetic operation.
func Calculate(ctx tool.Context, args CalculateArgs) (CalculateResult, error) {
	op := strings.ToLower(strings.TrimSpace(args.Operation))

	var result float64
	var symbol string
	switch op {
	case "add", "+":
		result, symbol = args.A+args.B, "+"
	case "subtract", "-":
		result, symbol = args.A-args.B, "-"
	case "multiply", "*":
		result, symbol = args.A*args.B, "*"
	case "divide", "/":
		if args.B == 0 {
			return CalculateResult{
				Status: "error",
				Error:  "division by zero is not allowed",
			}, nil
		}
		result, symbol = args.A/args.B, "/"
	default:
		return CalculateResult{
			Status: "error",
			Error:  fmt.Sprintf("unknown operation %q; use add, subtract, multiply or divide", args.Operation),
		}, nil
	}

	return CalculateResult{
		Status:     "success",
		Result:     result,
		Expression: fmt.Sprintf("%g %s %g = %g", args.A, symbol, args.B, result),
	}, nil
}

// NewCalculatorTool wraps Calculate as a function tool.
func NewCalculatorTool() (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "calculate",
		Description: "Performs basic arithmetic: add, subtract, multiply or divide two numbers.",
	}, Calculate)
}
