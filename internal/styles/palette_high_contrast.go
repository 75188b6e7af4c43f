package styles

// HighContrastTheme favors legibility over subtlety.
var HighContrastTheme = Theme{
	Name:        "high-contrast",
	BorderStyle: "sharp",
	Base: BaseColors{
		Background: "16",
		Foreground: "231",
		Muted:      "250",
		Accent:     "51",
		Border:     "255",
	},
	Span: SpanColors{
		Link:            "51",
		Mention:         "226",
		MentionBg:       "18",
		SpoilerMask:     "255",
		SearchMatch:     "16",
		SearchMatchBg:   "226",
		PlaceholderText: "250",
	},
	Bubble: BubbleColors{
		Own:    "46",
		Other:  "213",
		Sender: "231",
	},
}
