package models

type Job struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Company     string   `json:"company" yaml:"company"`
	Location    string   `json:"location" yaml:"location"`
	Salary      string   `json:"salary" yaml:"salary"`
	Experience  string   `json:"experience" yaml:"experience"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Distance    string   `json:"distance,omitempty" yaml:"distance,omitempty"`
}
