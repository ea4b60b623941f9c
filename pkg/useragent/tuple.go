package useragent

import "regexp"

// Tuple is one "Product/Version (Comment)" segment of an agent string.
// Comment is empty when the segment has no parenthetical.
type Tuple struct {
	Product string `json:"product" yaml:"product"`
	Version string `json:"version" yaml:"version"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// A product may contain spaces ("Mobile Safari/5.0"). The parentheses of
// the comment are not captured.
var tupleRegex = regexp.MustCompile(`(\w[\w ]+)/(\S+)\s*(?:\((.*?)\))?`)

// ExtractTuples splits ua into its version tuples, left to right.
//
//	Mozilla/5.0 (iPad; U; CPU OS 3_2_1 like Mac OS X; en-us)
//	AppleWebKit/531.21.10 (KHTML, like Gecko) Mobile/7B405
//
// yields three tuples: Mozilla, AppleWebKit and Mobile.
func ExtractTuples(ua string) []Tuple {
	matches := tupleRegex.FindAllStringSubmatch(ua, -1)
	tuples := make([]Tuple, 0, len(matches))
	for _, m := range matches {
		tuples = append(tuples, Tuple{Product: m[1], Version: m[2], Comment: m[3]})
	}
	return tuples
}

// versionMap indexes tuples by product. A repeated product keeps the
// version of its last occurrence.
type versionMap map[string]string

func newVersionMap(tuples []Tuple) versionMap {
	m := make(versionMap, len(tuples))
	for _, t := range tuples {
		m[t.Product] = t.Version
	}
	return m
}

// lookup returns the version of the first key present in the map.
func (m versionMap) lookup(keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return ""
}

// versionForKey returns the version of the first tuple whose product is key.
func versionForKey(tuples []Tuple, key string) string {
	for _, t := range tuples {
		if t.Product == key {
			return t.Version
		}
	}
	return ""
}
