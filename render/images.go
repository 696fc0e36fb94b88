package render

import (
	"regexp"
	"smartshop/domain"
)

const (
	DefaultImageAlt = "Product image"
	ImageURLAlt     = "Product"
)

var imageMarker = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

type Image struct {
	URL string
	Alt string
}

// ExtractImages pulls every ![alt](url) marker out of content, in order of appearance.
// cleanText is content with the markers cut out and nothing else touched.
func ExtractImages(content string) (images []Image, cleanText string) {
	if content == "" {
		return nil, ""
	}
	for _, match := range imageMarker.FindAllStringSubmatch(content, -1) {
		alt := match[1]
		if alt == "" {
			alt = DefaultImageAlt
		}
		images = append(images, Image{URL: match[2], Alt: alt})
	}
	return images, imageMarker.ReplaceAllString(content, "")
}

// CollectImages lists the images of a message: inline markers first,
// then the message image_url, then the image of the attached product.
func CollectImages(msg domain.ChatMessage) ([]Image, string) {
	images, cleanText := ExtractImages(msg.Content)
	if msg.ImageURL != "" {
		images = append(images, Image{URL: msg.ImageURL, Alt: ImageURLAlt})
	}
	if msg.Product != nil && msg.Product.ImageURL != "" {
		images = append(images, Image{URL: msg.Product.ImageURL, Alt: msg.Product.Name})
	}
	return images, cleanText
}
