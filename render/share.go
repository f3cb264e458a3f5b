package render

import (
	"embed"
	"html/template"
	"strings"
)

var (
	//go:embed templates/*.html
	templatesFS embed.FS

	shareTemplate = template.Must(template.ParseFS(templatesFS, "templates/share_buttons.html"))
	formTemplate  = template.Must(template.ParseFS(templatesFS, "templates/subscription_form.html"))
)

type shareButton struct {
	Slug  string
	Label string
	URL   string
	Icon  template.HTML
}

type shareButtonsData struct {
	ContainerClasses string
	PostURL          string
	ShowLabels       bool
	Buttons          []shareButton
	CopyLink         bool
	CopyIcon         template.HTML
	CheckIcon        template.HTML
}

// ShareButtons renders the share-button bar for a post. Enabled networks
// appear in catalog order, then Messenger (only when enabled with an app
// id), then the copy-link button.
func ShareButtons(s ShareSettings, postURL, postTitle string) (string, error) {
	data := shareButtonsData{
		ContainerClasses: containerClasses(s),
		PostURL:          postURL,
		ShowLabels:       s.ShowLabels,
		CopyLink:         s.EnableCopyLink,
		CopyIcon:         iconCopyLink,
		CheckIcon:        iconCheck,
	}

	for _, n := range Catalog {
		if !s.EnabledNetworks[n] {
			continue
		}
		data.Buttons = append(data.Buttons, shareButton{
			Slug:  n.Slug(),
			Label: n.Label(),
			URL:   n.ShareURL(postURL, postTitle),
			Icon:  n.Icon(),
		})
	}

	if s.EnableMessenger && s.FacebookAppID != "" {
		data.Buttons = append(data.Buttons, shareButton{
			Slug:  "messenger",
			Label: "Messenger",
			URL:   MessengerShareURL(postURL, s.FacebookAppID),
			Icon:  iconMessenger,
		})
	}

	buf := new(strings.Builder)
	if err := shareTemplate.Execute(buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func containerClasses(s ShareSettings) string {
	classes := []string{
		"feathershare-social-buttons",
		"feathershare-style-" + string(s.ButtonStyle),
		"feathershare-size-" + string(s.ButtonSize),
	}
	if s.ShowLabels {
		classes = append(classes, "feathershare-with-labels")
	}
	return strings.Join(classes, " ")
}
