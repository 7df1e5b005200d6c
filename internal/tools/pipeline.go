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
	"regexp"
	"strings"
	"time"
	"unicode"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// The pipeline tools back the sequential workflow sample: extract structured
// data from raw text, validate it against quality rules, then format the
// validated result. Each step consumes the previous step's output.

// ExtractArgs is the input for the extraction step.
type ExtractArgs struct {
	Text string `json:"text"`
}

// ExtractedData is the normalized core of an extraction.
type ExtractedData struct {
	Text        string   `json:"text"`
	Length      int      `json:"length"`
	Type        string   `json:"type"`
	KeyElements []string `json:"key_elements"`
}

// ExtractResult is the output of the extraction step.
type ExtractResult struct {
	Status         string        `json:"status"`
	WordCount      int           `json:"word_count"`
	CharacterCount int           `json:"character_count"`
	Entities       []string      `json:"entities"`
	Numbers        []string      `json:"numbers"`
	Keywords       []string      `json:"keywords"`
	ContentType    string        `json:"content_type"`
	Timestamp      string        `json:"extraction_timestamp"`
	Extracted      ExtractedData `json:"extracted_data"`
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Checked in order; the first matching category wins.
var contentTypeMarkers = []struct {
	kind    string
	markers []string
}{
	{"business", []string{"sales", "revenue", "profit", "business"}},
	{"customer_feedback", []string{"customer", "feedback", "review", "satisfaction"}},
	{"product", []string{"product", "launch", "feature", "development"}},
}

func trimPunct(word string) string {
	return strings.Trim(word, ".,!?")
}

// ExtractData performs a simple lexical extraction over the raw input text:
// capitalized words become entities, long words become keywords, and marker
// words classify the content.
func ExtractData(ctx tool.Context, args ExtractArgs) (ExtractResult, error) {
	words := strings.Fields(args.Text)

	var allEntities []string
	var keywords []string
	for _, word := range words {
		runes := []rune(word)
		if len(runes) > 1 && unicode.IsUpper(runes[0]) {
			allEntities = append(allEntities, trimPunct(word))
		}
		if len(runes) > 4 && len(keywords) < 10 {
			keywords = append(keywords, strings.ToLower(trimPunct(word)))
		}
	}
	entities := allEntities
	if len(entities) > 5 {
		entities = entities[:5]
	}

	contentType := "general"
	lower := strings.ToLower(args.Text)
	for _, ct := range contentTypeMarkers {
		for _, marker := range ct.markers {
			if strings.Contains(lower, marker) {
				contentType = ct.kind
				break
			}
		}
		if contentType != "general" {
			break
		}
	}

	// Key elements carry every entity, not just the five reported ones.
	keyElements := append([]string{}, allEntities...)
	if len(keywords) > 3 {
		keyElements = append(keyElements, keywords[:3]...)
	} else {
		keyElements = append(keyElements, keywords...)
	}

	return ExtractResult{
		Status:         "success",
		WordCount:      len(words),
		CharacterCount: len(args.Text),
		Entities:       entities,
		Numbers:        numberPattern.FindAllString(args.Text, -1),
		Keywords:       keywords,
		ContentType:    contentType,
		Timestamp:      time.Now().Format(time.RFC3339),
		Extracted: ExtractedData{
			Text:        args.Text,
			Length:      len(args.Text),
			Type:        contentType,
			KeyElements: keyElements,
		},
	}, nil
}

// ValidationResult is the output of the validation step.
type ValidationResult struct {
	Status       string        `json:"status"`
	IsValid      bool          `json:"is_valid"`
	Errors       []string      `json:"validation_errors"`
	QualityScore int           `json:"quality_score"`
	Timestamp    string        `json:"validation_timestamp"`
	Validated    ExtractedData `json:"validated_data"`
}

// ValidateData scores the extracted data against four quality rules worth 25
// points each; the data is valid at 50 points or more.
func ValidateData(ctx tool.Context, args ExtractResult) (ValidationResult, error) {
	result := ValidationResult{
		Status:    "success",
		Timestamp: time.Now().Format(time.RFC3339),
		Validated: args.Extracted,
	}

	if args.Status == "" && args.Extracted.Text == "" {
		return ValidationResult{
			Status: "error",
			Errors: []string{"no extracted data found"},
		}, nil
	}

	score := 0
	if args.Extracted.Length >= 10 {
		score += 25
	} else {
		result.Errors = append(result.Errors, "text too short (minimum 10 characters)")
	}
	if len(args.Extracted.KeyElements) > 0 {
		score += 25
	} else {
		result.Errors = append(result.Errors, "no key elements identified")
	}
	if args.Extracted.Type != "general" && args.Extracted.Type != "" {
		score += 25
	} else {
		result.Errors = append(result.Errors, "generic content type")
	}
	if args.WordCount >= 5 && args.WordCount <= 1000 {
		score += 25
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("word count out of range: %d", args.WordCount))
	}

	result.QualityScore = score
	result.IsValid = score >= 50
	return result, nil
}

// QualityReport summarizes the validation outcome.
type QualityReport struct {
	Score   int    `json:"score"`
	IsValid bool   `json:"is_valid"`
	Grade   string `json:"grade"`
}

// FormattedResult is the output of the formatting step.
type FormattedResult struct {
	Status      string        `json:"status"`
	Content     ExtractedData `json:"content"`
	Quality     QualityReport `json:"quality"`
	Summary     string        `json:"summary"`
	Errors      []string      `json:"validation_errors,omitempty"`
	ProcessedAt string        `json:"processed_at"`
	Steps       []string      `json:"processing_steps"`
}

func grade(score int) string {
	switch {
	case score >= 75:
		return "A"
	case score >= 50:
		return "B"
	default:
		return "C"
	}
}

// FormatData renders the validated data as the pipeline's final output.
func FormatData(ctx tool.Context, args ValidationResult) (FormattedResult, error) {
	if args.Status != "success" {
		return FormattedResult{
			Status:  "error",
			Summary: "cannot format invalid data",
			Errors:  args.Errors,
		}, nil
	}

	summary := fmt.Sprintf("Successfully processed %s content with a %d%% quality score.",
		args.Validated.Type, args.QualityScore)
	if !args.IsValid {
		summary = fmt.Sprintf("Processed content with quality issues (score: %d%%).", args.QualityScore)
	}

	return FormattedResult{
		Status:  "success",
		Content: args.Validated,
		Quality: QualityReport{
			Score:   args.QualityScore,
			IsValid: args.IsValid,
			Grade:   grade(args.QualityScore),
		},
		Summary:     summary,
		Errors:      args.Errors,
		ProcessedAt: time.Now().Format(time.RFC3339),
		Steps:       []string{"extraction", "validation", "formatting"},
	}, nil
}

// NewExtractTool wraps ExtractData as a function tool.
func NewExtractTool() (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "extract_data",
		Description: "Extracts structured data (entities, keywords, numbers, content type) from raw text.",
	}, ExtractData)
}

// NewValidateTool wraps ValidateData as a function tool.
func NewValidateTool() (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "validate_data",
		Description: "Validates extracted data against quality rules and computes a quality score.",
	}, ValidateData)
}

// NewFormatTool wraps FormatData as a function tool.
func NewFormatTool() (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "format_data",
		Description: "Formats validated data into the pipeline's final output with a quality grade.",
	}, FormatData)
}
