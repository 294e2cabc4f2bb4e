// Package roadmap generates study roadmaps for a career goal and saves
// them as plain text files.
package roadmap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tanvi/linguify/internal/llm"
)

const systemPrompt = `You are an expert career counselor and education planner. Generate a comprehensive study roadmap for the given career path.
The roadmap should include:
1. Key subjects or areas of study
2. Important skills to develop
3. Recommended courses or certifications
4. Suggested projects or practical experience
5. Estimated time frame for each major step

Format the response as a numbered list with main categories and sub-points.`

const (
	roadmapMaxTokens   = 1000
	roadmapTemperature = 0.7
)

// Generate produces a study roadmap for the given career.
func Generate(ctx context.Context, provider llm.Provider, career string) (string, error) {
	if strings.TrimSpace(career) == "" {
		return "", fmt.Errorf("career is required")
	}

	ctx = llm.WithPurpose(ctx, "roadmap")

	resp, err := provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Generate a study roadmap for becoming a %s", career),
		}},
		MaxTokens:   roadmapMaxTokens,
		Temperature: roadmapTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("generating roadmap: %w", err)
	}
	return strings.TrimSpace(string(resp.Content)), nil
}

// Slugify turns a career name into its filename stem: lowercased, with
// spaces replaced by underscores.
func Slugify(career string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(career), " ", "_"))
}

// Filename returns the save name for a career's roadmap.
func Filename(career string) string {
	return Slugify(career) + "_roadmap.txt"
}

// Save writes the roadmap under dir using the career-derived filename
// and returns the full path. An existing file for the same career is
// overwritten.
func Save(dir, career, roadmap string) (string, error) {
	path := filepath.Join(dir, Filename(career))
	if err := os.WriteFile(path, []byte(roadmap), 0o644); err != nil {
		return "", fmt.Errorf("saving roadmap: %w", err)
	}
	return path, nil
}
