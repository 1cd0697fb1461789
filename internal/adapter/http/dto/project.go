package dto

type ProjectItem struct {
	ID          int64   `json:"id"`
	Identifier  string  `json:"identifier"`
	Name        string  `json:"name"`
	Responsible *string `json:"responsible,omitempty"`
}

type ProjectForm struct {
	Name        string `form:"name"`
	Identifier  string `form:"identifier"`
	Responsible string `form:"responsible"`
}
