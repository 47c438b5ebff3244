package mediator

// CategoryResponse is the payload of the mediator category endpoint.
type CategoryResponse struct {
	Category *Category `json:"category"`
}

// Items returns the media entries of the category, never nil.
func (r *CategoryResponse) Items() []MediaItem {
	if r.Category == nil {
		return nil
	}
	return r.Category.Media
}

// Category is one browsable broadcasting category.
type Category struct {
	Key   string      `json:"key"`
	Name  string      `json:"name"`
	Media []MediaItem `json:"media"`
}

// MediaItem is a single broadcasting program.
type MediaItem struct {
	GUID            string      `json:"guid"`
	NaturalKey      string      `json:"naturalKey"`
	Title           string      `json:"title"`
	FirstPublished  string      `json:"firstPublished"`
	DurationSeconds float64     `json:"duration"`
	Files           []MediaFile `json:"files"`
}

// MediaFile is one downloadable rendition of a program.
type MediaFile struct {
	Label    string `json:"label"`
	MimeType string `json:"mimetype"`
	URL      string `json:"progressiveDownloadURL"`
}
