package parser

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrUnsupportedFileType reports an upload extension the parser cannot
// handle.
var ErrUnsupportedFileType = errors.New("unsupported file type")

type Seniority string

const (
	SeniorityJunior Seniority = "Junior"
	SeniorityMid    Seniority = "Mid"
	SenioritySenior Seniority = "Senior"
)

// ParsedResume is the pre-parsed record the matching core consumes.
type ParsedResume struct {
	Text            string
	Skills          []string
	ExperienceYears int
	Seniority       Seniority
}

// skillKeywords is the flat keyword catalog skills are matched against.
var skillKeywords = []string{
	"python", "java", "javascript", "sql", "machine learning", "data analysis",
	"fastapi", "django", "react", "aws", "docker", "git",
}

// Parse extracts text from an uploaded resume file and derives skills,
// experience years, and a seniority bucket from it. fileType is the
// lowercase extension without the dot.
func Parse(data []byte, fileType string) (ParsedResume, error) {
	text, err := extractText(data, fileType)
	if err != nil {
		return ParsedResume{}, err
	}

	years := extractExperienceYears(text)
	return ParsedResume{
		Text:            text,
		Skills:          extractSkills(text),
		ExperienceYears: years,
		Seniority:       inferSeniority(years),
	}, nil
}

// FileTypeFromName maps a filename to a supported type, or fails with
// ErrUnsupportedFileType.
func FileTypeFromName(filename string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(filename))
	for _, ext := range []string{"pdf", "docx", "txt"} {
		if strings.HasSuffix(name, "."+ext) {
			return ext, nil
		}
	}
	return "", ErrUnsupportedFileType
}

func extractText(data []byte, fileType string) (string, error) {
	switch fileType {
	case "pdf":
		return extractPDFText(data)
	case "docx":
		return extractDocxText(data)
	case "txt":
		return string(data), nil
	default:
		return "", ErrUnsupportedFileType
	}
}

func extractSkills(text string) []string {
	folded := strings.ToLower(text)

	found := map[string]struct{}{}
	for _, kw := range skillKeywords {
		if strings.Contains(folded, kw) {
			found[kw] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for sk := range found {
		out = append(out, sk)
	}
	sort.Strings(out)
	return out
}

var experienceRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*years?\s*of\s*experience`),
	regexp.MustCompile(`(?i)experience\s*of\s*(\d+)\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\s*years?\s*in\s`),
}

func extractExperienceYears(text string) int {
	maxYears := 0
	for _, re := range experienceRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if years > maxYears {
				maxYears = years
			}
		}
	}
	return maxYears
}

func inferSeniority(years int) Seniority {
	switch {
	case years < 2:
		return SeniorityJunior
	case years <= 5:
		return SeniorityMid
	default:
		return SenioritySenior
	}
}
