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

// Package sampletest provides a stub model for agent-construction tests.
package sampletest

import (
	"context"
	"iter"

	"google.golang.org/genai"

	"google.golang.org/adk/model"
)

// StubModel is a model.LLM that always answers with a fixed text. It lets
// tests build real agents without network access.
type StubModel struct {
	ModelName string
	Text      string
}

// NewStubModel returns a stub model with sensible defaults.
func NewStubModel() *StubModel {
	return &StubModel{ModelName: "stub-model", Text: "stub response"}
}

func (s *StubModel) Name() string {
	return s.ModelName
}

func (s *StubModel) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		yield(&model.LLMResponse{
			Content: genai.NewContentFromText(s.Text, genai.RoleModel),
		}, nil)
	}
}
