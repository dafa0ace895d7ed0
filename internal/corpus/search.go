package corpus

import "github.com/sahilm/fuzzy"

// entrySource implements fuzzy.Source over registry entries, matching
// against the name and description together.
type entrySource []Entry

func (s entrySource) String(i int) string {
	return s[i].Name + " " + s[i].Description
}

func (s entrySource) Len() int {
	return len(s)
}

// Search fuzzy-matches the query against every document's name and
// description, best matches first.
func (r *Registry) Search(query string) []Entry {
	entries := r.List()
	if query == "" {
		return entries
	}

	source := entrySource(entries)
	matches := fuzzy.FindFrom(query, source)

	var out []Entry
	for _, match := range matches {
		out = append(out, entries[match.Index])
	}
	return out
}
