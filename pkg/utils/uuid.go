package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	nonSlugChars   = regexp.MustCompile("[^a-z0-9-]")
	repeatedHyphen = regexp.MustCompile("-+")
)

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = repeatedHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// UniqueSlug appends a short random suffix to the slug of s
func UniqueSlug(s string) string {
	return Slugify(s) + "-" + strings.ToLower(uuid.New().String()[:8])
}
