package pubmedia

// Response is the payload of the GETPUBMEDIALINKS endpoint. Files is keyed
// by written-language code; each language carries per-format file lists.
type Response struct {
	Files map[string]LanguageFiles `json:"files"`
}

// LanguageFiles groups the available files of one language by format.
type LanguageFiles struct {
	MP3 []MediaFile `json:"MP3"`
	AAC []MediaFile `json:"AAC"`
}

// MediaFile is a single downloadable audio file.
type MediaFile struct {
	Title      string    `json:"title"`
	Label      string    `json:"label"`
	Track      int       `json:"track"`
	BookNumber int       `json:"booknum"`
	File       *FileInfo `json:"file"`
}

// FileInfo carries the actual download location and its metadata.
type FileInfo struct {
	URL      string `json:"url"`
	FileSize int64  `json:"filesize"`
	Duration int    `json:"duration"`
	BitRate  int    `json:"bitRate"`
}

// FirstAudioURL returns the URL of the first MP3 of the first language in
// the response, the single-file candidate for weekly publications. Empty
// string when the response carries no usable file.
func (r *Response) FirstAudioURL() string {
	for _, lang := range r.Files {
		for _, f := range lang.MP3 {
			if f.File != nil && f.File.URL != "" {
				return f.File.URL
			}
		}
		break
	}
	return ""
}

// AllMP3 flattens every MP3 entry across languages, used for catalog-style
// publications (songbook, Bible recordings).
func (r *Response) AllMP3() []MediaFile {
	var files []MediaFile
	for _, lang := range r.Files {
		files = append(files, lang.MP3...)
	}
	return files
}
