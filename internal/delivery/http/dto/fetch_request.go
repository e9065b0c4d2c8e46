package dto

type FetchJobsRequest struct {
	Roles     []string `json:"roles"`
	Companies []string `json:"companies"`
}

type FetchJobsResponse struct {
	JobsFetched int `json:"jobs_fetched"`
}
