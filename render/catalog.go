// Package render builds the share-button bar and the subscription form as
// HTML fragments. It is purely a function of the settings passed in; it
// reads no ambient state.
package render

import (
	"fmt"
	"net/url"
	"strings"
)

// Network identifies a share target. The constants are declared in render
// order; Messenger and the copy-link button are appended after the catalog
// and are not part of it.
type Network int

const (
	Facebook Network = iota
	Twitter
	LinkedIn
	Threads
	WhatsApp
	Telegram
	Reddit
	Pinterest
	VK
	Xing
	Email
)

// Catalog lists every supported network in its stable render order.
var Catalog = []Network{
	Facebook, Twitter, LinkedIn, Threads, WhatsApp, Telegram,
	Reddit, Pinterest, VK, Xing, Email,
}

var networkSlugs = [...]string{
	Facebook:  "facebook",
	Twitter:   "twitter",
	LinkedIn:  "linkedin",
	Threads:   "threads",
	WhatsApp:  "whatsapp",
	Telegram:  "telegram",
	Reddit:    "reddit",
	Pinterest: "pinterest",
	VK:        "vk",
	Xing:      "xing",
	Email:     "email",
}

var networkLabels = [...]string{
	Facebook:  "Facebook",
	Twitter:   "X (Twitter)",
	LinkedIn:  "LinkedIn",
	Threads:   "Threads",
	WhatsApp:  "WhatsApp",
	Telegram:  "Telegram",
	Reddit:    "Reddit",
	Pinterest: "Pinterest",
	VK:        "VK",
	Xing:      "XING",
	Email:     "Email",
}

func (n Network) valid() bool {
	return n >= Facebook && n <= Email
}

func (n Network) Slug() string {
	if !n.valid() {
		return ""
	}
	return networkSlugs[n]
}

func (n Network) Label() string {
	if !n.valid() {
		return ""
	}
	return networkLabels[n]
}

// ShareURL builds the outbound share link for the given post. The post URL
// and title are percent-encoded into a fixed template per network.
func (n Network) ShareURL(postURL, postTitle string) string {
	u := urlencode(postURL)
	t := urlencode(postTitle)

	switch n {
	case Facebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + u
	case Twitter:
		return "https://twitter.com/intent/tweet?url=" + u + "&text=" + t
	case LinkedIn:
		return "https://www.linkedin.com/shareArticle?mini=true&url=" + u + "&title=" + t
	case Threads:
		return "https://www.threads.net/intent/post?text=" + t + "%20" + u
	case WhatsApp:
		return "https://wa.me/?text=" + t + "%20" + u
	case Telegram:
		return "https://t.me/share/url?url=" + u + "&text=" + t
	case Reddit:
		return "https://reddit.com/submit?url=" + u + "&title=" + t
	case Pinterest:
		return "https://pinterest.com/pin/create/button/?url=" + u + "&description=" + t
	case VK:
		return "https://vk.com/share.php?url=" + u
	case Xing:
		return "https://www.xing.com/spi/shares/new?url=" + u
	case Email:
		return "mailto:?subject=" + rawurlencode(postTitle) + "&body=" + rawurlencode(postURL)
	}
	return ""
}

// MessengerShareURL is separate from the catalog because the Messenger
// button only renders when a Facebook app id is configured.
func MessengerShareURL(postURL, appID string) string {
	u := urlencode(postURL)
	return "https://www.facebook.com/dialog/send?link=" + u + "&app_id=" + urlencode(appID) + "&redirect_uri=" + u
}

func (n Network) MarshalText() ([]byte, error) {
	if !n.valid() {
		return nil, fmt.Errorf("unknown network %d", int(n))
	}
	return []byte(networkSlugs[n]), nil
}

func (n *Network) UnmarshalText(text []byte) error {
	slug := string(text)
	for i, s := range networkSlugs {
		if s == slug {
			*n = Network(i)
			return nil
		}
	}
	return fmt.Errorf("unknown network %q", slug)
}

func urlencode(s string) string {
	return url.QueryEscape(s)
}

// rawurlencode encodes spaces as %20 instead of '+', for mailto links.
func rawurlencode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
