package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tanvi/linguify/internal/account"
	"github.com/tanvi/linguify/internal/app"
	"github.com/tanvi/linguify/internal/assistant"
	"github.com/tanvi/linguify/internal/lessons"
	"github.com/tanvi/linguify/internal/llm"
	"github.com/tanvi/linguify/internal/quiz"
	"github.com/tanvi/linguify/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Accounts:   account.NewStore(),
		EventRepo:  eventRepo,
		RoadmapDir: filepath.Dir(dbPath),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Provider = provider
		opts.Engine = quiz.NewEngine(provider, quiz.DefaultConfig())
		opts.Lessons = lessons.NewGenerator(provider)
		opts.Assistant = assistant.New(provider)
	}

	return app.Run(opts)
}
