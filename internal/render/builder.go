package render

import (
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/section"
	"resume-builder/pkg/latex"

	"github.com/ecodeclub/ekit/slice"
)

// Placeholders printed when the header fields are missing.
const (
	PlaceholderName  = "John Doe"
	PlaceholderEmail = "john.doe@example.com"
	PlaceholderPhone = "+1234567890"
)

// Build turns raw résumé values into a Document, resolving customization
// against the template defaults. Only sections with content are kept.
func Build(values model.ResumeValues, defaults model.CustomizationValues) Document {
	style := MergeCustomization(defaults, values.Customization)
	b := builder{titles: style.SectionTitles}

	doc := Document{
		Header: buildHeader(values),
		Style:  style,
	}
	if strings.TrimSpace(values.Summary) != "" {
		doc.Summary = latex.HighlightAndEscape(strings.TrimSpace(values.Summary))
	}

	for _, kind := range section.All() {
		switch kind {
		case section.Experience:
			b.add(kind, b.experience(values.WorkExperiences))
		case section.Education:
			b.add(kind, b.education(values.Educations))
		case section.Projects:
			b.add(kind, b.projects(values.Projects))
		case section.Certifications:
			b.add(kind, b.certifications(values.Certifications))
		case section.POR:
			b.add(kind, b.por(values.POR))
		case section.Skills:
			b.add(kind, b.skills(values.Skills))
		case section.Achievements:
			b.add(kind, b.achievements(values.Achievements))
		case section.Extracurriculars:
			b.add(kind, b.extracurriculars(values.Extracurriculars))
		case section.CustomSections:
			b.custom(values.CustomSections)
		}
	}
	doc.Sections = b.sections
	return doc
}

// SummaryTitle is the heading of the summary block, which the base template
// positions itself.
func SummaryTitle(c model.CustomizationValues) string {
	if t := section.Title("summary", c.SectionTitles); t != "" {
		return t
	}
	return "Summary"
}

type builder struct {
	titles   map[string]string
	sections []Section
}

func (b *builder) add(kind section.Kind, blocks []Block) {
	if len(blocks) == 0 {
		return
	}
	b.sections = append(b.sections, Section{
		Kind:   kind,
		Title:  section.Title(kind.Key(), b.titles),
		Blocks: blocks,
	})
}

func buildHeader(v model.ResumeValues) Header {
	name := strings.TrimSpace(strings.TrimSpace(v.FirstName) + " " + strings.TrimSpace(v.LastName))
	if name == "" {
		name = PlaceholderName
	}
	email := strings.TrimSpace(v.Email)
	if email == "" {
		email = PlaceholderEmail
	}
	phone := strings.TrimSpace(v.Phone)
	if phone == "" {
		phone = PlaceholderPhone
	}
	h := Header{
		Name:     latex.Escape(name),
		JobTitle: esc(v.JobTitle),
		Email:    latex.Escape(email),
		EmailURL: "mailto:" + email,
		Phone:    latex.Escape(phone),
		Location: esc(v.Location),
	}
	for _, l := range []struct {
		kind LinkKind
		url  string
	}{
		{LinkLinkedIn, v.LinkedIn},
		{LinkGitHub, v.GitHub},
		{LinkWebsite, v.Website},
	} {
		if link := newLink(l.kind, l.url); link != nil {
			h.Links = append(h.Links, *link)
		}
	}
	return h
}

func newLink(kind LinkKind, raw string) *Link {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return &Link{
		Kind:  kind,
		URL:   NormalizeURL(raw),
		Label: latex.Escape(LinkLabel(raw)),
	}
}

// bullets drops blank lines and applies emphasis + escaping.
func bullets(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, strings.TrimSpace(l))
		}
	}
	return slice.Map(kept, func(_ int, l string) string {
		return latex.HighlightAndEscape(l)
	})
}

// esc prepares a user text field: trimmed, emphasis converted, escaped.
func esc(s string) string {
	return latex.HighlightAndEscape(strings.TrimSpace(s))
}

func monthRange(start, end string) string {
	return latex.Escape(latex.DateRange(start, end, latex.FormatMonthYear))
}

func yearRange(start, end string) string {
	return latex.Escape(latex.DateRange(start, end, latex.FormatYear))
}

// entry returns the block, or false when it carries nothing printable.
func entry(b Block) (Block, bool) {
	if b.Heading == "" && b.Subheading == "" && b.Location == "" && len(b.Bullets) == 0 && b.Link == nil {
		return Block{}, false
	}
	return b, true
}

func (b *builder) experience(in []model.WorkExperience) []Block {
	out := make([]Block, 0, len(in))
	for _, e := range in {
		blk, ok := entry(Block{
			Kind:       BlockEntry,
			Heading:    esc(e.Position),
			Subheading: esc(e.Company),
			Location:   esc(e.Location),
			Link:       newLink(LinkEntry, e.Link),
			Bullets:    bullets(e.Description),
		})
		if !ok {
			continue
		}
		blk.Dates = monthRange(e.StartDate, e.EndDate)
		out = append(out, blk)
	}
	return out
}

func (b *builder) projects(in []model.Project) []Block {
	out := make([]Block, 0, len(in))
	for _, p := range in {
		blk, ok := entry(Block{
			Kind:       BlockEntry,
			Heading:    esc(p.Title),
			Subheading: esc(p.TechStack),
			Link:       newLink(LinkEntry, p.Link),
			Bullets:    bullets(p.Description),
		})
		if !ok {
			continue
		}
		blk.Dates = monthRange(p.StartDate, p.EndDate)
		out = append(out, blk)
	}
	return out
}

func (b *builder) education(in []model.Education) []Block {
	out := make([]Block, 0, len(in))
	for _, e := range in {
		sub := esc(e.Degree)
		if g := esc(e.Grade); g != "" {
			if sub != "" {
				sub += "; "
			}
			sub += g
		}
		blk, ok := entry(Block{
			Kind:       BlockEntry,
			Heading:    esc(e.School),
			Subheading: sub,
			Location:   esc(e.Location),
			Bullets:    bullets(e.Description),
		})
		if !ok {
			continue
		}
		blk.Dates = yearRange(e.StartDate, e.EndDate)
		out = append(out, blk)
	}
	return out
}

func (b *builder) certifications(in []model.Certification) []Block {
	out := make([]Block, 0, len(in))
	for _, c := range in {
		blk, ok := entry(Block{
			Kind:       BlockEntry,
			Heading:    esc(c.Name),
			Subheading: esc(c.Issuer),
			Link:       newLink(LinkEntry, c.Link),
		})
		if !ok {
			continue
		}
		if strings.TrimSpace(c.Date) != "" {
			blk.Dates = latex.Escape(latex.FormatMonthYear(c.Date))
		}
		out = append(out, blk)
	}
	return out
}

func (b *builder) por(in []model.PositionOfResponsibility) []Block {
	out := make([]Block, 0, len(in))
	for _, p := range in {
		blk, ok := entry(Block{
			Kind:       BlockEntry,
			Heading:    esc(p.Role),
			Subheading: esc(p.Organization),
			Location:   esc(p.Location),
			Bullets:    bullets(p.Description),
		})
		if !ok {
			continue
		}
		blk.Dates = monthRange(p.StartDate, p.EndDate)
		out = append(out, blk)
	}
	return out
}

func (b *builder) skills(in []model.SkillGroup) []Block {
	groups := make([]model.SkillGroup, 0, len(in))
	for _, g := range in {
		if len(bullets(g.Skills)) > 0 {
			groups = append(groups, g)
		}
	}
	if len(groups) == 0 {
		return nil
	}
	lines := slice.Map(groups, func(_ int, g model.SkillGroup) SkillLine {
		return SkillLine{
			Label:  esc(g.Label),
			Skills: strings.Join(bullets(g.Skills), ", "),
		}
	})
	return []Block{{Kind: BlockSkills, Skills: lines}}
}

func (b *builder) achievements(in []model.Achievement) []Block {
	out := make([]Block, 0, len(in))
	for _, a := range in {
		title := latex.HighlightAndEscape(strings.TrimSpace(a.Title))
		items := bullets(a.Description)
		switch {
		case title == "" && len(items) == 0:
			continue
		case title == "":
			out = append(out, Block{Kind: BlockBullets, Bullets: items})
		default:
			blk := Block{Kind: BlockEntry, Heading: title, Bullets: items}
			if strings.TrimSpace(a.Date) != "" {
				blk.Dates = latex.Escape(latex.FormatMonthYear(a.Date))
			}
			out = append(out, blk)
		}
	}
	return out
}

func (b *builder) extracurriculars(in []model.Extracurricular) []Block {
	out := make([]Block, 0, len(in))
	for _, e := range in {
		blk, ok := entry(Block{
			Kind:       BlockEntry,
			Heading:    esc(e.Activity),
			Subheading: esc(e.Organization),
			Bullets:    bullets(e.Description),
		})
		if !ok {
			continue
		}
		blk.Dates = monthRange(e.StartDate, e.EndDate)
		out = append(out, blk)
	}
	return out
}

// custom adds one Section per user-defined section, keeping entry order and
// interleaving structured and plain-bullet entries.
func (b *builder) custom(in []model.CustomSection) {
	fallback := section.Title(section.CustomSections.Key(), b.titles)
	for _, cs := range in {
		blocks := make([]Block, 0, len(cs.Entries))
		for _, e := range cs.Entries {
			items := bullets(e.Description)
			if !e.Structured() {
				if len(items) > 0 {
					blocks = append(blocks, Block{Kind: BlockBullets, Bullets: items})
				}
				continue
			}
			blk, ok := entry(Block{
				Kind:       BlockEntry,
				Heading:    esc(e.Heading),
				Subheading: esc(e.Subheading),
				Location:   esc(e.Location),
				Bullets:    items,
			})
			if !ok {
				continue
			}
			blk.Dates = monthRange(e.StartDate, e.EndDate)
			blocks = append(blocks, blk)
		}
		if len(blocks) == 0 {
			continue
		}
		title := latex.Escape(strings.TrimSpace(cs.Title))
		if title == "" {
			title = fallback
		}
		b.sections = append(b.sections, Section{Kind: section.CustomSections, Title: title, Blocks: blocks})
	}
}
