// Command listmodels prints the Gemini models that can serve answers.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"health-assistant/internal/app"
	"health-assistant/internal/llm"
)

func main() {
	ctx := context.Background()

	cfg, err := app.LoadConfig()
	if err != nil {
		color.Red("Configuration error: %v", err)
		os.Exit(1)
	}
	lister, err := app.BuildModelLister(ctx, cfg)
	if err != nil {
		color.Red("Configuration error: %v", err)
		color.Yellow("Set GEMINI_API_KEY in your environment or .env file.")
		os.Exit(1)
	}

	if err := listModels(ctx, os.Stdout, lister); err != nil {
		os.Exit(1)
	}
}

func listModels(ctx context.Context, w io.Writer, lister llm.ModelLister) error {
	color.New(color.FgCyan).Fprintln(w, "Fetching available Gemini models...")

	models, err := lister.ListModels(ctx)
	if err != nil {
		color.New(color.FgRed).Fprintf(w, "An error occurred while listing models: %v\n", err)
		fmt.Fprintln(w, "Please check your internet connection and API key.")
		return err
	}
	printModels(w, models)
	return nil
}

func printModels(w io.Writer, models []llm.ModelInfo) {
	name := color.New(color.FgGreen, color.Bold)
	sep := strings.Repeat("-", 30)

	for _, m := range models {
		if !llm.SupportsGeneration(m) {
			continue
		}
		name.Fprintf(w, "Name: %s\n", m.Name)
		fmt.Fprintf(w, "  Description: %s\n", m.Description)
		fmt.Fprintf(w, "  Supported Methods: %s\n", strings.Join(m.SupportedMethods, ", "))
		fmt.Fprintln(w, sep)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- End of Model List ---")
	color.New(color.FgYellow).Fprintln(w, "Pick one of the names above and set it as LLM_MODEL (for example models/gemini-2.5-flash).")
}
