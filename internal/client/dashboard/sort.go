package dashboard

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortNotes returns notes ordered pinned first, each group by title in the
// collation order of lang. The input slice is left untouched.
func SortNotes(notes []models.Note, lang language.Tag) []models.Note {
	c := collate.New(lang)
	byTitle := func(a, b models.Note) int { return c.CompareString(a.Title, b.Title) }

	pinned := make([]models.Note, 0, len(notes))
	unpinned := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if n.Pinned {
			pinned = append(pinned, n)
		} else {
			unpinned = append(unpinned, n)
		}
	}
	slices.SortStableFunc(pinned, byTitle)
	slices.SortStableFunc(unpinned, byTitle)

	return append(pinned, unpinned...)
}

// FilterNotes keeps the notes whose title or content contains query,
// ignoring case. An empty query keeps everything. notes is not modified.
func FilterNotes(notes []models.Note, query string) []models.Note {
	if query == "" {
		return slices.Clone(notes)
	}
	q := strings.ToLower(query)
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}
