package parser

import (
	"errors"
	"testing"
)

func TestFileTypeFromName(t *testing.T) {
	cases := map[string]string{
		"resume.pdf":  "pdf",
		"Resume.DOCX": "docx",
		"notes.txt":   "txt",
	}
	for name, want := range cases {
		got, err := FileTypeFromName(name)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", name, err)
		}
		if got != want {
			t.Fatalf("%s: expected %s, got %s", name, want, got)
		}
	}
}

func TestFileTypeFromName_Unsupported(t *testing.T) {
	for _, name := range []string{"resume.exe", "resume", "resume.pdf.zip"} {
		if _, err := FileTypeFromName(name); !errors.Is(err, ErrUnsupportedFileType) {
			t.Fatalf("%s: expected ErrUnsupportedFileType, got %v", name, err)
		}
	}
}

func TestParse_TxtSkillsAndExperience(t *testing.T) {
	text := "Senior engineer with 7 years of experience in Python, SQL and Docker. Git daily."
	parsed, err := Parse([]byte(text), "txt")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	wantSkills := []string{"docker", "git", "python", "sql"}
	if len(parsed.Skills) != len(wantSkills) {
		t.Fatalf("expected skills %v, got %v", wantSkills, parsed.Skills)
	}
	for i, sk := range wantSkills {
		if parsed.Skills[i] != sk {
			t.Fatalf("expected skills %v, got %v", wantSkills, parsed.Skills)
		}
	}

	if parsed.ExperienceYears != 7 {
		t.Fatalf("expected 7 years, got %d", parsed.ExperienceYears)
	}
	if parsed.Seniority != SenioritySenior {
		t.Fatalf("expected Senior, got %s", parsed.Seniority)
	}
}

func TestParse_UnsupportedType(t *testing.T) {
	if _, err := Parse([]byte("x"), "exe"); !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestExtractExperienceYears_PicksMax(t *testing.T) {
	text := "3 years in consulting, then 5 years of experience building services."
	if got := extractExperienceYears(text); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestInferSeniority_Buckets(t *testing.T) {
	cases := map[int]Seniority{
		0: SeniorityJunior,
		1: SeniorityJunior,
		2: SeniorityMid,
		5: SeniorityMid,
		6: SenioritySenior,
	}
	for years, want := range cases {
		if got := inferSeniority(years); got != want {
			t.Fatalf("years=%d: expected %s, got %s", years, want, got)
		}
	}
}
