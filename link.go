package pagediff

import (
	"net/url"
	"sort"
	"strings"
)

// Link is a hyperlink as authored in the source markup.
type Link struct {
	// URL is the raw href value, unresolved.
	URL string `json:"url"`

	// Text is the trimmed visible anchor text, possibly empty.
	Text string `json:"text"`
}

// LinkComparison classifies the links of two regions into removed, added
// and common sets. Membership is keyed solely by normalized URL, so two
// links whose raw URLs normalize to the same key are one entity. The keys
// of the three sets partition the union of both sides' normalized keys.
type LinkComparison struct {
	// OnlyInV1 holds links present only on side 1 (removed).
	OnlyInV1 []Link `json:"onlyInV1"`

	// OnlyInV2 holds links present only on side 2 (added).
	OnlyInV2 []Link `json:"onlyInV2"`

	// InBoth holds links present on both sides; the representative
	// record is taken from side 1.
	InBoth []Link `json:"inBoth"`

	// TotalV1 and TotalV2 count distinct normalized keys per side.
	TotalV1 int `json:"totalV1"`
	TotalV2 int `json:"totalV2"`
}

// NormalizeURL canonicalizes a URL for comparison. URLs that already start
// with http:// or https:// are used as-is; otherwise they are resolved
// against base (empty base leaves the URL unresolved). The result is
// scheme://host/path, plus ?query when a query string is present, with one
// trailing slash stripped and the whole string lowercased. Returns EINVALID
// when the URL cannot be parsed; callers drop the offending link and
// continue.
func NormalizeURL(raw string, base string) (string, error) {
	abs := raw
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") && base != "" {
		b, err := url.Parse(base)
		if err != nil {
			return "", Errorf(EINVALID, "invalid base URL %q: %v", base, err)
		}
		ref, err := url.Parse(raw)
		if err != nil {
			return "", Errorf(EINVALID, "cannot parse URL %q: %v", raw, err)
		}
		abs = b.ResolveReference(ref).String()
	}

	u, err := url.Parse(abs)
	if err != nil {
		return "", Errorf(EINVALID, "cannot parse URL %q: %v", raw, err)
	}

	normalized := u.Scheme + "://" + u.Host + u.EscapedPath()
	if u.RawQuery != "" {
		normalized += "?" + u.RawQuery
	}
	normalized = strings.TrimSuffix(normalized, "/")
	return strings.ToLower(normalized), nil
}

// CompareLinks compares the links of two regions. Within a side the last
// record seen for a normalized key wins; comparison is presence-based, not
// count-based. Links that fail normalization are dropped individually.
// Result lists are ordered by anchor text, ties broken by normalized key,
// so output is deterministic. Pure function.
func CompareLinks(links1, links2 []Link, base1, base2 string) LinkComparison {
	norm1 := normalizeSide(links1, base1)
	norm2 := normalizeSide(links2, base2)

	var only1, only2, both []string
	for k := range norm1 {
		if _, ok := norm2[k]; ok {
			both = append(both, k)
		} else {
			only1 = append(only1, k)
		}
	}
	for k := range norm2 {
		if _, ok := norm1[k]; !ok {
			only2 = append(only2, k)
		}
	}

	return LinkComparison{
		OnlyInV1: sortByText(norm1, only1),
		OnlyInV2: sortByText(norm2, only2),
		InBoth:   sortByText(norm1, both),
		TotalV1:  len(norm1),
		TotalV2:  len(norm2),
	}
}

// normalizeSide maps normalized keys to the last link seen for each key.
func normalizeSide(links []Link, base string) map[string]Link {
	m := make(map[string]Link, len(links))
	for _, l := range links {
		key, err := NormalizeURL(l.URL, base)
		if err != nil {
			continue
		}
		m[key] = l
	}
	return m
}

// sortByText returns the links for keys ordered by anchor text, then key.
func sortByText(m map[string]Link, keys []string) []Link {
	sort.Slice(keys, func(i, j int) bool {
		ti, tj := m[keys[i]].Text, m[keys[j]].Text
		if ti != tj {
			return ti < tj
		}
		return keys[i] < keys[j]
	})
	links := make([]Link, 0, len(keys))
	for _, k := range keys {
		links = append(links, m[k])
	}
	return links
}
