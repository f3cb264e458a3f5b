package render

type ButtonStyle string

const (
	StyleCircle  ButtonStyle = "circle"
	StyleSquare  ButtonStyle = "square"
	StyleRounded ButtonStyle = "rounded"
)

type ButtonSize string

const (
	SizeSmall  ButtonSize = "small"
	SizeMedium ButtonSize = "medium"
	SizeLarge  ButtonSize = "large"
)

// Placement controls whether the subscription form is embedded manually or
// appended after post content. The render layer does not act on it; the
// caller deciding where to inject the form does.
type Placement string

const (
	PlacementManual       Placement = "manual"
	PlacementAfterContent Placement = "after_content"
)

type ShareSettings struct {
	EnabledNetworks map[Network]bool `json:"enabled_networks"`
	ButtonStyle     ButtonStyle      `json:"button_style"`
	ButtonSize      ButtonSize       `json:"button_size"`
	ShowLabels      bool             `json:"show_labels"`
	EnableCopyLink  bool             `json:"enable_copy_link"`
	EnableMessenger bool             `json:"enable_messenger"`
	FacebookAppID   string           `json:"facebook_app_id"`
}

func DefaultShareSettings() ShareSettings {
	return ShareSettings{
		EnabledNetworks: map[Network]bool{
			Facebook: true,
			Twitter:  true,
			LinkedIn: true,
		},
		ButtonStyle:    StyleCircle,
		ButtonSize:     SizeMedium,
		ShowLabels:     false,
		EnableCopyLink: true,
	}
}

// FormSettings configures the subscription form. Description may carry
// sanitized HTML; the settings store is responsible for sanitizing it
// before it ever reaches the renderer.
type FormSettings struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ButtonText  string    `json:"button_text"`
	Placement   Placement `json:"placement"`
}

func DefaultFormSettings() FormSettings {
	return FormSettings{
		Title:       "Subscribe to our Newsletter",
		Description: "Get the latest posts delivered right to your inbox.",
		ButtonText:  "Subscribe",
		Placement:   PlacementManual,
	}
}
