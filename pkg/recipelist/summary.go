package recipelist

import (
	"RecipeShare-Go/domain"
	"RecipeShare-Go/internal/utils"
)

// Roughly two rendered lines of card text.
const descriptionRuneLimit = 140

type Summary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CookingTime int    `json:"cooking_time"`
	Servings    int    `json:"servings"`
	ImageURL    string `json:"image_url,omitempty"`
	HasImage    bool   `json:"has_image"`
}

// Summarize projects one recipe into its card view. Pure; no state, no I/O.
// A missing image URL yields HasImage false so the view can render its
// placeholder.
func Summarize(r domain.Recipe) Summary {
	return Summary{
		Title:       r.Title,
		Description: utils.TruncateText(r.Description, descriptionRuneLimit),
		CookingTime: r.CookingTime,
		Servings:    r.Servings,
		ImageURL:    r.ImageURL,
		HasImage:    r.ImageURL != "",
	}
}
