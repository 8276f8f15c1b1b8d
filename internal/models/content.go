package models

import (
	"regexp"
	"sort"
)

var embeddedAssetPattern = regexp.MustCompile(`assets/([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})/bytes`)

// ExtractHTMLAssetRefs finds asset IDs embedded in HTML as .../assets/<id>/bytes URLs.
func ExtractHTMLAssetRefs(html string) []string {
	var refs []string
	for _, m := range embeddedAssetPattern.FindAllStringSubmatch(html, -1) {
		refs = append(refs, m[1])
	}
	return refs
}

type refSet map[string]struct{}

func (s refSet) add(ids ...string) {
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}
}

func (s refSet) addPtr(id *string) {
	if id != nil {
		s.add(*id)
	}
}

func (s refSet) sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
