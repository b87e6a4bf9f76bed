package services

import "regexp"

// Profile notes are shown in the shared directory, so they get a light
// content screen before write: slurs and profanity are rejected, and so are
// URLs, which in practice are only ever spam.
var bannedWords = []string{
	"fuck", "fucking", "shit", "bullshit",
	"asshole", "bastard", "bitch", "cunt",
	"nigger", "nigga", "kike", "faggot",
	"porn", "nude", "nudes",
	"spam", "scam", "scammer", "phishing",
}

type NotesScreener struct {
	bannedWordRegexps []*regexp.Regexp
	urlPattern        *regexp.Regexp
}

func NewNotesScreener() *NotesScreener {
	ns := &NotesScreener{
		bannedWordRegexps: make([]*regexp.Regexp, 0, len(bannedWords)),
		urlPattern:        regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+)`),
	}
	for _, word := range bannedWords {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
		if err == nil {
			ns.bannedWordRegexps = append(ns.bannedWordRegexps, re)
		}
	}
	return ns
}

// Check returns a rejection reason, or "" when the text passes.
func (ns *NotesScreener) Check(text string) string {
	if text == "" {
		return ""
	}
	for _, re := range ns.bannedWordRegexps {
		if re.MatchString(text) {
			return "contains inappropriate language"
		}
	}
	if ns.urlPattern.MatchString(text) {
		return "links are not allowed"
	}
	return ""
}
