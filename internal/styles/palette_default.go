package styles

// DefaultTheme is the baseline dark palette for chatspan.
var DefaultTheme = Theme{
	Name:        "default",
	BorderStyle: "rounded",
	Base: BaseColors{
		Background: "234",
		Foreground: "252",
		Muted:      "245",
		Accent:     "75",
		Border:     "240",
	},
	Span: SpanColors{
		Link:            "75",
		Mention:         "117",
		MentionBg:       "237",
		SpoilerMask:     "240",
		SearchMatch:     "230",
		SearchMatchBg:   "94",
		PlaceholderText: "245",
	},
	Bubble: BubbleColors{
		Own:    "81",
		Other:  "147",
		Sender: "109",
	},
}
