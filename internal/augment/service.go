package augment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"resume-builder/internal/llm"
	"resume-builder/internal/profile"
	"resume-builder/internal/shared/telemetry"
)

// ErrAugmentFailed wraps any provider failure during a batch. One failed
// experience fails the whole batch so partially augmented resumes never
// reach storage.
var ErrAugmentFailed = errors.New("experience augmentation failed")

// Service rewrites experience descriptions into resume bullet points.
type Service struct {
	LLM llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// AugmentAll generates bullet points for every experience concurrently,
// one provider call each. The raw user text stays in FullDescription and
// the normalized bullets land in Description.
func (s *Service) AugmentAll(ctx context.Context, entries []profile.Experience, skills, jobDescription string) ([]profile.Experience, error) {
	if len(entries) == 0 {
		return entries, nil
	}

	out := make([]profile.Experience, len(entries))
	copy(out, entries)

	g, gctx := errgroup.WithContext(ctx)
	for i := range out {
		i := i
		g.Go(func() error {
			prompt := buildPrompt(out[i], skills, jobDescription)
			raw, err := s.LLM.Complete(gctx, prompt)
			if err != nil {
				return fmt.Errorf("%w: %s at %s: %v", ErrAugmentFailed, out[i].Role, out[i].Company, err)
			}
			out[i].Description = strings.Join(NormalizeBullets(raw), profile.BulletSeparator)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	telemetry.Info("augment.complete", map[string]any{"experiences": len(out)})
	return out, nil
}

func buildPrompt(exp profile.Experience, skills, jobDescription string) string {
	return fmt.Sprintf(
		"Generate concise bullet points for the experience section based on experience at %s as a %s from %s to %s, and skills in %s. Ensure the points align with the following job description: %s.",
		exp.Company, exp.Role, exp.StartDate, exp.EndDate, skills, jobDescription,
	)
}

// NormalizeBullets cleans raw completion text into uniform sentences. Each
// line loses its leading dash and gains exactly one trailing period. Lines
// with no content are dropped.
func NormalizeBullets(raw string) []string {
	lines := strings.Split(raw, "\n")
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimSuffix(line, ".")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line+".")
	}
	return bullets
}
