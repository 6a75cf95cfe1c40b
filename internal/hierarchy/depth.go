// Package hierarchy assembles the flat statement rows into an account
// forest, deriving each row's level from its numbering or indentation.
package hierarchy

import (
	"regexp"
	"strings"
)

// Numbering conventions observed in real statements, one regexp per level.
// Chinese statements use the 一、/（一）/1、/（1）/a) ladder; western ones use
// dotted numbering where the component count is the depth.
var (
	dottedRe   = regexp.MustCompile(`^\d+(\.\d+)+`)
	cjkLevel1  = regexp.MustCompile(`^[一二三四五六七八九十]+、`)
	cjkLevel2  = regexp.MustCompile(`^[（(][一二三四五六七八九十]+[）)]`)
	cjkLevel3  = regexp.MustCompile(`^\d+、`)
	cjkLevel4  = regexp.MustCompile(`^[（(]\d+[）)]`)
	cjkLevel5  = regexp.MustCompile(`^[a-z][）).]`)
	westernTop = regexp.MustCompile(`^\d+[.)][\s　]`)
)

// indentThreshold is the minimum indent width that signals hierarchy.
const indentThreshold = 2

const maxDepth = 5

// Depth derives the 1-based hierarchy level of a row label from its
// numbering convention, falling back to leading indentation, then to level 1.
func Depth(label string) int {
	trimmed := strings.TrimLeft(label, " \t　")

	if m := dottedRe.FindString(trimmed); m != "" {
		return strings.Count(m, ".") + 1
	}
	switch {
	case cjkLevel1.MatchString(trimmed):
		return 1
	case cjkLevel2.MatchString(trimmed):
		return 2
	case cjkLevel3.MatchString(trimmed):
		return 3
	case cjkLevel4.MatchString(trimmed):
		return 4
	case cjkLevel5.MatchString(trimmed):
		return 5
	case westernTop.MatchString(trimmed):
		return 1
	}

	if indent := indentWidth(label); indent >= indentThreshold {
		d := indent/2 + 1
		if d > maxDepth {
			d = maxDepth
		}
		return d
	}
	return 1
}

// CleanName strips numbering markers and surrounding whitespace from a row
// label, leaving the canonical account name.
func CleanName(label string) string {
	s := strings.TrimSpace(strings.TrimLeft(label, " \t　"))

	if m := dottedRe.FindString(s); m != "" {
		s = strings.TrimLeft(s[len(m):], ".)")
	} else if m := cjkLevel1.FindString(s); m != "" {
		s = s[len(m):]
	} else if m := cjkLevel2.FindString(s); m != "" {
		s = s[len(m):]
	} else if m := cjkLevel3.FindString(s); m != "" {
		s = s[len(m):]
	} else if m := cjkLevel4.FindString(s); m != "" {
		s = s[len(m):]
	} else if m := cjkLevel5.FindString(s); m != "" {
		s = s[len(m):]
	} else if m := westernTop.FindString(s); m != "" {
		s = s[len(m):]
	}

	return strings.TrimSpace(s)
}

// indentWidth measures leading whitespace: plain spaces count 1, tabs and
// full-width spaces count 2.
func indentWidth(label string) int {
	w := 0
	for _, r := range label {
		switch r {
		case ' ':
			w++
		case '\t', '　':
			w += 2
		default:
			return w
		}
	}
	return w
}
