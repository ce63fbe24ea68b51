package models

import "eduportal/utils"

// Content types the remote API accepts for uploaded course material.
const (
	ContentVideo    = "video"
	ContentImage    = "image"
	ContentDocument = "document"
	ContentOther    = "other"
)

// Content is a single piece of uploaded course material.
type Content struct {
	ID          uint   `json:"id"`
	Course      uint   `json:"course"`
	Title       string `json:"title"`
	ContentType string `json:"content_type"`
	ContentFile string `json:"content_file"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
}

// Rendering strategies used by the templates.
const (
	PreviewVideo    = "video"
	PreviewImage    = "image"
	PreviewDocument = "document"
	PreviewLink     = "link"
)

// ContentPreview tells the template how to present one content item.
type ContentPreview struct {
	Kind     string
	URL      string
	EmbedURL string // document viewer URL, set only for documents
}

// Preview resolves the stored file path and picks a rendering strategy.
// Returns nil when the path cannot be resolved; the item renders no media.
func (c Content) Preview(assetBase string) *ContentPreview {
	url := utils.ResolveAssetURL(c.ContentFile, assetBase)
	if url == "" {
		return nil
	}
	switch c.ContentType {
	case ContentVideo:
		return &ContentPreview{Kind: PreviewVideo, URL: url}
	case ContentImage:
		return &ContentPreview{Kind: PreviewImage, URL: url}
	case ContentDocument:
		return &ContentPreview{Kind: PreviewDocument, URL: url, EmbedURL: utils.DocViewerURL(url)}
	default:
		// Unrecognized types degrade to a plain download link.
		return &ContentPreview{Kind: PreviewLink, URL: url}
	}
}
