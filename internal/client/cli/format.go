package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/dmitrijs2005/notevault/internal/client/editor"
	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/client/services"
	"github.com/fatih/color"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	pin   = color.New(color.FgYellow).SprintFunc()
)

const previewLen = 60

func formatCategoryBar(cats []models.Category, active models.ID, hasPrev, hasNext bool) string {
	var sb strings.Builder
	if hasPrev {
		sb.WriteString(faint("< "))
	}
	for i, c := range cats {
		if i > 0 {
			sb.WriteString(" ")
		}
		label := fmt.Sprintf("%s:%s", c.ID, c.Title)
		if c.ID == active || (c.ID.IsAll() && active.IsAll()) {
			sb.WriteString(cyan(bold("[" + label + "]")))
		} else {
			sb.WriteString(label)
		}
	}
	if hasNext {
		sb.WriteString(faint(" >"))
	}
	sb.WriteString("\n")
	return sb.String()
}

func formatNoteList(notes []models.Note, titles map[models.ID]string) string {
	if len(notes) == 0 {
		return faint("  No notes") + "\n"
	}
	var sb strings.Builder
	for _, n := range notes {
		mark := " "
		if n.Pinned {
			mark = pin("*")
		}
		sb.WriteString(fmt.Sprintf("%s %s  %s  %s\n", mark, faint(n.ID.String()), bold(n.Title), cyan(titles[n.Category])))
		if p := preview(n.Content); p != "" {
			sb.WriteString(fmt.Sprintf("     %s\n", faint(p)))
		}
	}
	return sb.String()
}

func preview(content string) string {
	p := strings.Join(strings.Fields(content), " ")
	r := []rune(p)
	if len(r) > previewLen {
		return string(r[:previewLen]) + "..."
	}
	return p
}

func formatNoteHeader(n models.Note, category string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", bold(n.Title)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(n.ID.String())))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Category:"), cyan(category)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Font:"), faint(fmt.Sprintf("%dpx %s", n.FontSize, n.FontStyle))))
	if n.Pinned {
		sb.WriteString(pin("Pinned") + "\n")
	}
	sb.WriteString(separator())
	return sb.String()
}

// formatNoteContent renders markdown for the terminal, falling back to the
// raw text.
func formatNoteContent(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

func formatEditor(ed *editor.Editor) string {
	var sb strings.Builder
	title := ed.Title()
	if title == "" {
		title = faint("(untitled)")
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", bold("Title:"), title))
	category := ed.CategoryTitle()
	if category == "" {
		category = faint("(none)")
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", bold("Category:"), category))
	sb.WriteString(fmt.Sprintf("%s %dpx %s %s\n", bold("Font:"), ed.FontSize(), ed.FontStyle(), faint("("+ed.FontStack()+")")))

	var flags []string
	flags = append(flags, ed.State().String())
	if ed.CanUndo() {
		flags = append(flags, "undo available")
	}
	if ed.Recording() {
		flags = append(flags, "recording")
	}
	sb.WriteString(faint("["+strings.Join(flags, ", ")+"]") + "\n")
	sb.WriteString(separator())
	if ed.Content() == "" {
		sb.WriteString(faint("(empty)") + "\n")
	} else {
		sb.WriteString(ed.Content() + "\n")
	}
	sb.WriteString(separator())
	return sb.String()
}

func formatIdentity(id *services.Identity, now time.Time) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Signed in as %s (%s)\n", bold(id.DisplayName()), id.Username))
	switch {
	case id.ExpiresAt.IsZero():
	case id.Expired(now):
		sb.WriteString(faint("Access token expired, it will be refreshed on the next request") + "\n")
	default:
		sb.WriteString(faint("Access token valid until "+id.ExpiresAt.Local().Format("2006-01-02 15:04")) + "\n")
	}
	return sb.String()
}

func separator() string {
	return faint(strings.Repeat("-", 40)) + "\n"
}
