package dashboard

import "time"

type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

type Recommendation struct {
	Title  string   `json:"title"`
	Reason string   `json:"reason"`
	Meds   []string `json:"meds"`
}

// SeasonOf classifies a date by calendar month.
func SeasonOf(t time.Time) Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	case time.September, time.October, time.November:
		return Autumn
	default:
		return Winter
	}
}

// Recommendations is a fixed lookup by season. Autumn has no rules and
// returns an empty list.
func Recommendations(season Season) []Recommendation {
	list := []Recommendation{}
	switch season {
	case Spring:
		list = append(list,
			Recommendation{
				Title:  "Pox preparedness",
				Reason: "Cases rising in nearby villages. Stock antivirals, fever and itch relief.",
				Meds:   []string{"Acyclovir 400mg", "Calamine Lotion", "Paracetamol 500mg"},
			},
			Recommendation{
				Title:  "Allergy surge",
				Reason: "High pollen counts. Antihistamines in demand.",
				Meds:   []string{"Cetirizine 10mg"},
			},
		)
	case Summer:
		list = append(list, Recommendation{
			Title:  "Dehydration risk",
			Reason: "Heat wave alert. Rehydrate and electrolytes.",
			Meds:   []string{"Oral Rehydration Salts"},
		})
	case Winter:
		list = append(list, Recommendation{
			Title:  "Viral fever",
			Reason: "Seasonal flu uptick. Antipyretics & cough remedies.",
			Meds:   []string{"Paracetamol 500mg"},
		})
	}
	return list
}
