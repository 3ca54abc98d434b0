package seo

import (
	"encoding/json"
	"strings"
)

// Article describes a blog post for the BlogPosting schema.
type Article struct {
	Headline    string
	Description string
	Published   string
	Modified    string
	URL         string
	Image       string
	Author      string
	Publisher   string
	Keywords    []string
}

// WebsiteJSONLD returns a JSON-LD string for a WebSite schema.
func WebsiteJSONLD(name, siteURL, description, author string) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
		"url":      BuildURL(siteURL),
	}
	if description != "" {
		data["description"] = description
	}
	if author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJSONLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJSONLD(a Article) string {
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      a.Headline,
		"description":   a.Description,
		"datePublished": a.Published,
		"url":           a.URL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   a.URL,
		},
	}
	if a.Modified != "" {
		data["dateModified"] = a.Modified
	}
	if a.Image != "" {
		data["image"] = a.Image
	}
	if a.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  a.Author,
		}
	}
	if a.Publisher != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  a.Publisher,
		}
	}
	if len(a.Keywords) > 0 {
		data["keywords"] = strings.Join(a.Keywords, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
