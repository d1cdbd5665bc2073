package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"health-assistant/internal/llm"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestListModels(t *testing.T) {
	tests := []struct {
		name    string
		models  []llm.ModelInfo
		listErr error
		wantErr bool
		want    []string
		notWant []string
	}{
		{
			name: "prints only generation models",
			models: []llm.ModelInfo{
				{Name: "models/gemini-2.5-pro", Description: "Stable Pro", SupportedMethods: []string{"generateContent", "countTokens"}},
				{Name: "models/text-embedding-004", Description: "Embeddings", SupportedMethods: []string{"embedContent"}},
				{Name: "models/gemini-2.5-flash", Description: "Fast", SupportedMethods: []string{"generateContent"}},
			},
			want: []string{
				"Name: models/gemini-2.5-pro",
				"  Description: Stable Pro",
				"  Supported Methods: generateContent, countTokens",
				"Name: models/gemini-2.5-flash",
				"------------------------------",
				"--- End of Model List ---",
				"LLM_MODEL",
			},
			notWant: []string{"text-embedding-004"},
		},
		{
			name:    "no models still prints closing hint",
			models:  []llm.ModelInfo{},
			want:    []string{"--- End of Model List ---"},
			notWant: []string{"Name:"},
		},
		{
			name:    "listing error prints hint",
			listErr: errors.New("API key not valid"),
			wantErr: true,
			want: []string{
				"An error occurred while listing models: API key not valid",
				"Please check your internet connection and API key.",
			},
			notWant: []string{"--- End of Model List ---"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := new(llm.MockModelLister)
			if tt.listErr != nil {
				lister.On("ListModels", mock.Anything).Return(nil, tt.listErr).Once()
			} else {
				lister.On("ListModels", mock.Anything).Return(tt.models, nil).Once()
			}

			var out bytes.Buffer
			err := listModels(context.Background(), &out, lister)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			for _, s := range tt.want {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out.String(), s)
			}
			lister.AssertExpectations(t)
		})
	}
}
