package domain

import "strings"

// Commit is a request-scoped view of a remote commit: its message and the
// names of the files it changed. Nothing is cached across lookups.
type Commit struct {
	SHA     string
	Message string
	Files   []string
}

const shaLength = 40

// IsCommitSHA reports whether s is a well-formed commit identifier:
// exactly 40 hexadecimal digits, case-insensitive.
func IsCommitSHA(s string) bool {
	if len(s) != shaLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// IsDocFile reports whether path names a Markdown documentation file.
func IsDocFile(path string) bool {
	return strings.HasSuffix(path, ".md")
}

// DocFiles filters paths down to documentation files.
func DocFiles(paths []string) []string {
	var docs []string
	for _, p := range paths {
		if IsDocFile(p) {
			docs = append(docs, p)
		}
	}
	return docs
}

// MentionsTopic reports whether message references phrase. Matching is
// case-insensitive. With partial true, any single word of the phrase is
// enough. An empty phrase always matches.
func MentionsTopic(message, phrase string, partial bool) bool {
	if phrase == "" {
		return true
	}
	msg := strings.ToLower(message)
	phrase = strings.ToLower(phrase)
	if strings.Contains(msg, phrase) {
		return true
	}
	if !partial {
		return false
	}
	for _, word := range strings.Fields(phrase) {
		if strings.Contains(msg, word) {
			return true
		}
	}
	return false
}
