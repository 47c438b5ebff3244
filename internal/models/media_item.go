package models

// MediaItem is the playback handoff structure: everything the player layer
// needs to present and play one node of the browse tree. Browsable nodes
// carry no URLs; playable nodes carry a stream URL and, for multi-track
// content, the ordered playlist.
type MediaItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`
	StreamURL    string   `json:"stream_url,omitempty"`
	PlaylistURLs []string `json:"playlist_urls,omitempty"`
	Browsable    bool     `json:"browsable,omitempty"`
}
