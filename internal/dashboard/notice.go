package dashboard

import "time"

// Notice is the short operator-facing message emitted after every action.
type Notice struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	At          time.Time `json:"at"`
}

func notice(title, description string) Notice {
	return Notice{Title: title, Description: description}
}
