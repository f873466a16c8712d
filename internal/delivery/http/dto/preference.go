package dto

type PreferenceRequest struct {
	JobTitles         []string `json:"job_titles"`
	PreferredLocation string   `json:"preferred_location"`
	JobTypes          []string `json:"job_types"`
	ExperienceLevel   string   `json:"experience_level"`
	Skills            []string `json:"skills"`
	Industries        []string `json:"industries"`
}

type PreferenceResponse struct {
	JobTitles         []string `json:"job_titles"`
	PreferredLocation string   `json:"preferred_location"`
	JobTypes          []string `json:"job_types"`
	ExperienceLevel   string   `json:"experience_level"`
	Skills            []string `json:"skills"`
	Industries        []string `json:"industries"`
}

type SearchPreferenceRequest struct {
	LocationFilter     []string `json:"location_filter"`
	LocationFlexible   *bool    `json:"location_flexible"`
	RemoteOnly         bool     `json:"remote_only"`
	RecencyWindow      string   `json:"recency_window"`
	JobLevels          []string `json:"job_levels"`
	ExcludedIndustries []string `json:"excluded_industries"`
	SalaryMin          *int     `json:"salary_min"`
	SalaryMax          *int     `json:"salary_max"`
}

type SearchPreferenceResponse struct {
	LocationFilter     []string `json:"location_filter"`
	LocationFlexible   *bool    `json:"location_flexible"`
	RemoteOnly         bool     `json:"remote_only"`
	RecencyWindow      string   `json:"recency_window"`
	JobLevels          []string `json:"job_levels"`
	ExcludedIndustries []string `json:"excluded_industries"`
	SalaryMin          *int     `json:"salary_min"`
	SalaryMax          *int     `json:"salary_max"`
}
