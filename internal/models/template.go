package models

type Template struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Framework   string  `json:"framework"`
	Format      string  `json:"format"`
	Size        string  `json:"size"`
	Downloads   int     `json:"downloads"`
	Rating      float64 `json:"rating"`
	LastUpdated string  `json:"lastUpdated"`
}
