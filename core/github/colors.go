// ABOUTME: Language swatch colors for the activity widget
// ABOUTME: Mirrors GitHub's linguist palette for common languages

package github

// languageColors maps language names to their display hex color.
var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Java":       "#b07219",
	"C":          "#555555",
	"C++":        "#f34b7d",
	"C#":         "#178600",
	"Ruby":       "#701516",
	"PHP":        "#4F5D95",
	"Swift":      "#F05138",
	"Kotlin":     "#A97BFF",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Shell":      "#89e051",
	"Vue":        "#41b883",
	"Dart":       "#00B4AB",
	"Elixir":     "#6e4a7e",
	"Lua":        "#000080",
}

const defaultLanguageColor = "#8b949e"

// LanguageColor returns the swatch color for a language, falling back
// to a neutral gray for languages outside the palette.
func LanguageColor(language string) string {
	if color, ok := languageColors[language]; ok {
		return color
	}
	return defaultLanguageColor
}
