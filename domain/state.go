package domain

import "time"

const (
	AppID      = "debtit"
	AppVersion = "v1"
)

type Meta struct {
	AppID     string    `json:"appId"`
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppState is everything a user edits: plan settings plus the debt list.
type AppState struct {
	Meta     Meta         `json:"meta"`
	Settings PlanSettings `json:"settings"`
	Debts    []Debt       `json:"debts"`
}

type Profile struct {
	Org      string `json:"org"`
	User     string `json:"user"`
	Language string `json:"language"`
	Logo     string `json:"logo"`
}

func DefaultProfile() Profile {
	return Profile{Org: "ToolStack", Language: "EN"}
}

type ExportDocument struct {
	ExportedAt time.Time `json:"exportedAt"`
	Profile    Profile   `json:"profile"`
	Data       AppState  `json:"data"`
}
