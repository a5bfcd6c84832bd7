package models

type Facility struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}
