package dto

import "time"

type StoredMatchResponse struct {
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	Score         int       `json:"score"`
	MissingSkills []string  `json:"missing_skills"`
	ApplyURL      string    `json:"apply_url"`
	CreatedAt     time.Time `json:"created_at"`
}

type StoredMatchListResponse struct {
	Matches []StoredMatchResponse `json:"matches"`
}

type AdHocJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	ApplyURL    string `json:"apply_url"`
}

type AdHocMatchRequest struct {
	ResumeText string            `json:"resume_text"`
	Skills     []string          `json:"skills"`
	Jobs       []AdHocJobRequest `json:"jobs"`
}

type AdHocMatchResponse struct {
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Score         int      `json:"score"`
	MissingSkills []string `json:"missing_skills"`
	ApplyURL      string   `json:"apply_url"`
}

type AdHocMatchListResponse struct {
	Matches []AdHocMatchResponse `json:"matches"`
}
