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
	"time"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// CityTimeArgs is the input for the city clock tool.
type CityTimeArgs struct {
	City string `json:"city"`
}

// CityTimeResult reports the current time in a city.
type CityTimeResult struct {
	Status string `json:"status"`
	Report string `json:"report"`
}

// cityOffsets maps supported cities to their standard UTC offsets in hours.
var cityOffsets = map[string]int{
	"london":   0,
	"paris":    1,
	"new york": -5,
	"tokyo":    9,
	"sydney":   10,
}

// CityTime reports the current time in a supported city using its standard
// UTC offset.
func CityTime(ctx tool.Context, args CityTimeArgs) (CityTimeResult, error) {
	city := strings.ToLower(strings.TrimSpace(args.City))
	offset, ok := cityOffsets[city]
	if !ok {
		return CityTimeResult{
			Status: "error",
			Report: fmt.Sprintf("Time information for %q is not available.", args.City),
		}, nil
	}

	now := time.Now().UTC().Add(time.Duration(offset) * time.Hour)
	return CityTimeResult{
		Status: "success",
		Report: fmt.Sprintf("The current time in %s is %s.", args.City, now.Format("15:04")),
	}, nil
}

// NewCityTimeTool wraps CityTime as a function tool.
func NewCityTimeTool() (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "get_city_time",
		Description: "Returns the current local time for a specified city.",
	}, CityTime)
}
