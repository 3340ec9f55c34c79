package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"resume-builder/internal/model"
	"resume-builder/pkg/ai"
	"resume-builder/pkg/ai/formatters"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
)

// GeneratedSection is model output ready to drop into résumé values. Text is
// set for the summary, Skills for skills, Bullets otherwise.
type GeneratedSection struct {
	Section string             `json:"section"`
	Text    string             `json:"text,omitempty"`
	Bullets []string           `json:"bullets,omitempty"`
	Skills  []model.SkillGroup `json:"skills,omitempty"`
	Balance int64              `json:"balance"`
}

type AIService struct {
	gen     ai.Generator
	credits *CreditService
	cost    int64
}

func NewAIService(gen ai.Generator, credits *CreditService, cost int64) *AIService {
	return &AIService{gen: gen, credits: credits, cost: cost}
}

// Generate charges the user, asks the model and refunds when it yields
// nothing usable.
func (s *AIService) Generate(ctx context.Context, userID uuid.UUID, req ai.Request) (GeneratedSection, error) {
	req.Section = strings.ToLower(strings.TrimSpace(req.Section))
	if _, ok := formatters.For(req.Section); !ok {
		return GeneratedSection{}, fmt.Errorf("%w: %q", ai.ErrUnsupportedSection, req.Section)
	}

	key, err := s.credits.Charge(ctx, userID, s.cost, "generate "+req.Section)
	if err != nil {
		return GeneratedSection{}, err
	}

	out, err := s.generate(ctx, req)
	if err != nil {
		if rerr := s.credits.Refund(context.WithoutCancel(ctx), userID, key, s.cost); rerr != nil {
			slog.Error("credit refund failed", "user", userID, "key", key, "error", rerr)
		}
		return GeneratedSection{}, err
	}

	acct, err := s.credits.Account(ctx, userID)
	if err == nil {
		out.Balance = acct.Balance
	}
	return out, nil
}

func (s *AIService) generate(ctx context.Context, req ai.Request) (GeneratedSection, error) {
	raw, err := s.gen.Generate(ctx, req)
	if err != nil {
		return GeneratedSection{}, err
	}
	out := GeneratedSection{Section: req.Section}
	switch req.Section {
	case "summary":
		out.Text = ai.ParseText(raw)
	case "skills":
		out.Skills = parseSkillGroups(ai.ParseBullets(raw))
	default:
		out.Bullets = ai.ParseBullets(raw)
	}
	if out.Text == "" && len(out.Bullets) == 0 && len(out.Skills) == 0 {
		return GeneratedSection{}, ai.ErrEmptyOutput
	}
	return out, nil
}

// parseSkillGroups reads lines shaped like "{Label}: a, b".
func parseSkillGroups(lines []string) []model.SkillGroup {
	groups := make([]model.SkillGroup, 0, len(lines))
	for _, l := range lines {
		label, list, ok := strings.Cut(l, ":")
		if !ok {
			label, list = "", l
		}
		var skills []string
		for _, s := range slice.Map(strings.Split(list, ","), func(_ int, s string) string { return strings.TrimSpace(s) }) {
			if s != "" {
				skills = append(skills, s)
			}
		}
		if len(skills) == 0 {
			continue
		}
		groups = append(groups, model.SkillGroup{
			Label:  strings.Trim(strings.TrimSpace(label), "{}"),
			Skills: skills,
		})
	}
	return groups
}

// IsAIError reports whether err came from the generator.
func IsAIError(err error) bool {
	return errors.Is(err, ai.ErrProvider) || errors.Is(err, ai.ErrEmptyOutput)
}
