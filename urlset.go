package newspulse

import "sort"

// URLSet is a set of normalized candidate URLs.
type URLSet struct {
	m map[string]struct{}
}

// NewURLSet returns an empty set.
func NewURLSet() *URLSet {
	return &URLSet{m: make(map[string]struct{})}
}

// Add inserts url and reports whether it was not already present.
func (s *URLSet) Add(url string) bool {
	if _, ok := s.m[url]; ok {
		return false
	}
	s.m[url] = struct{}{}
	return true
}

// Has reports whether url is in the set.
func (s *URLSet) Has(url string) bool {
	_, ok := s.m[url]
	return ok
}

// Len returns the number of URLs in the set.
func (s *URLSet) Len() int {
	return len(s.m)
}

// Sorted returns the members in lexical order.
func (s *URLSet) Sorted() []string {
	urls := make([]string, 0, len(s.m))
	for u := range s.m {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}
