package portal

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// fieldStrategy attempts to extract one field from a listing element.
// It returns empty when the strategy does not apply to this element.
type fieldStrategy func(s *goquery.Selection) string

// firstMatch applies strategies in order and returns the first non-empty
// result. Source markup is unstable, so every field is extracted through such
// an ordered fallback chain.
func firstMatch(s *goquery.Selection, strategies ...fieldStrategy) string {
	for _, strategy := range strategies {
		if v := strings.TrimSpace(strategy(s)); v != "" {
			return v
		}
	}
	return ""
}

// text extracts the trimmed text of the first element matching selector.
func text(selector string) fieldStrategy {
	return func(s *goquery.Selection) string {
		return strings.TrimSpace(s.Find(selector).First().Text())
	}
}

// attr extracts an attribute of the element itself.
func attr(name string) fieldStrategy {
	return func(s *goquery.Selection) string {
		v, _ := s.Attr(name)
		return strings.TrimSpace(v)
	}
}

// findAttr extracts an attribute of the first element matching selector.
func findAttr(selector, name string) fieldStrategy {
	return func(s *goquery.Selection) string {
		v, _ := s.Find(selector).First().Attr(name)
		return strings.TrimSpace(v)
	}
}

// hrefLastSegment extracts the last path segment of the first matching link.
// Used to recover a native listing ID when no ID attribute is present.
func hrefLastSegment(selector string) fieldStrategy {
	return func(s *goquery.Selection) string {
		href, ok := s.Find(selector).First().Attr("href")
		if !ok {
			return ""
		}
		href = strings.TrimSuffix(strings.TrimSpace(href), "/")
		if idx := strings.LastIndex(href, "/"); idx >= 0 {
			return href[idx+1:]
		}
		return href
	}
}

// resolveURL resolves href against base, returning href unchanged when it is
// already absolute or base is unparsable.
func resolveURL(base, href string) string {
	if href == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

// truncate bounds s to max bytes.
// truncate cuts s to at most max bytes without splitting a rune, so the
// result stays valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// nextPageSelectors lists the pagination affordances portals are known to use.
const nextPageSelectors = "a[rel='next'], .pagination a.next, a.next_page, li.next a, span.next a"

// hasNextPage reports whether the document advertises a further page.
func hasNextPage(doc *goquery.Document) bool {
	return doc.Find(nextPageSelectors).Length() > 0
}
