package browse

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/meetingcast/content-api/internal/models"
	"github.com/meetingcast/content-api/internal/services/bible"
	"github.com/meetingcast/content-api/internal/services/broadcast"
	"github.com/meetingcast/content-api/internal/services/content"
	"github.com/meetingcast/content-api/pkg/week"
)

// Browse tree node IDs. Clients walk the tree top down, so these are part of
// the public surface.
const (
	RootID                  = "root"
	CategoryWeeklyMeetings  = "weekly_meetings"
	CategoryThisWeek        = "this_week"
	CategoryLastWeek        = "last_week"
	CategoryNextWeek        = "next_week"
	CategoryBibleAndSongs   = "bible_and_songs"
	CategorySongs           = "songs"
	CategoryHebrewScripture = "hebrew_scriptures"
	CategoryGreekScripture  = "greek_scriptures"
	CategoryBroadcasting    = "broadcasting"
)

// sampleAudioURL keeps every playable node playable even when nothing could
// be resolved for it.
const sampleAudioURL = "https://cfp2.jw-cdn.org/a/7f4ac57/1/o/lfb_E_033.mp3"

// ErrUnknownNode is returned for IDs outside the tree.
var ErrUnknownNode = fmt.Errorf("unknown browse node")

// ContentResolver resolves one meeting content type for one week.
type ContentResolver interface {
	Resolve(ctx context.Context, contentType content.Type, weekStart time.Time) (*content.Resolution, error)
}

// SongLister returns the song catalog.
type SongLister interface {
	All(ctx context.Context) ([]models.CachedSong, error)
}

// BroadcastLister returns the merged broadcasting programs.
type BroadcastLister interface {
	Latest(ctx context.Context) []broadcast.Program
}

// ChapterLister returns the chapter audio for one book.
type ChapterLister interface {
	ChaptersFor(ctx context.Context, bookNumber int) ([]string, error)
}

// Service assembles the browse tree from the domain services.
type Service struct {
	resolver   ContentResolver
	songs      SongLister
	broadcasts BroadcastLister
	chapters   ChapterLister
	weeks      *week.Calculator
}

// NewService creates a browse service over the given providers.
func NewService(resolver ContentResolver, songs SongLister, broadcasts BroadcastLister,
	chapters ChapterLister, weeks *week.Calculator) *Service {
	if weeks == nil {
		weeks = week.NewCalculator(nil)
	}
	return &Service{
		resolver:   resolver,
		songs:      songs,
		broadcasts: broadcasts,
		chapters:   chapters,
		weeks:      weeks,
	}
}

// Children returns the child nodes of a browse node.
func (s *Service) Children(ctx context.Context, parentID string) ([]models.MediaItem, error) {
	switch parentID {
	case RootID:
		return []models.MediaItem{
			folder(CategoryWeeklyMeetings, "Weekly Meetings"),
			folder(CategoryBibleAndSongs, "Bible & Songs"),
			folder(CategoryBroadcasting, "Broadcasting"),
		}, nil

	case CategoryWeeklyMeetings:
		return []models.MediaItem{
			folderWithSubtitle(CategoryThisWeek, "This Week", s.weeks.ForOffset(0).Label),
			folderWithSubtitle(CategoryLastWeek, "Last Week", s.weeks.ForOffset(-1).Label),
			folderWithSubtitle(CategoryNextWeek, "Next Week", s.weeks.ForOffset(1).Label),
		}, nil
	case CategoryThisWeek:
		return s.weeklyContent(ctx, "this", 0), nil
	case CategoryLastWeek:
		return s.weeklyContent(ctx, "last", -1), nil
	case CategoryNextWeek:
		return s.weeklyContent(ctx, "next", 1), nil

	case CategoryBibleAndSongs:
		return []models.MediaItem{
			folder(CategoryHebrewScripture, "Hebrew Scriptures"),
			folder(CategoryGreekScripture, "Greek Scriptures"),
			folder(CategorySongs, "Kingdom Songs"),
		}, nil
	case CategoryHebrewScripture:
		return s.bibleBooks(ctx, bible.TestamentHebrew), nil
	case CategoryGreekScripture:
		return s.bibleBooks(ctx, bible.TestamentGreek), nil
	case CategorySongs:
		return s.songList(ctx), nil

	case CategoryBroadcasting:
		return s.broadcastList(ctx), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownNode, parentID)
}

// weeklyContent lists the four meeting items for one week offset. Every
// item is playable: a failed resolution degrades to the sample URL rather
// than an empty shelf.
func (s *Service) weeklyContent(ctx context.Context, prefix string, offset int) []models.MediaItem {
	info := s.weeks.ForOffset(offset)
	labelPrefix := info.Label + " | "

	items := make([]models.MediaItem, 0, len(content.AllTypes()))
	for _, contentType := range content.AllTypes() {
		item := models.MediaItem{
			ID:        prefix + "-" + string(contentType),
			Title:     labelPrefix + displayTitle(contentType),
			StreamURL: sampleAudioURL,
		}
		res, err := s.resolver.Resolve(ctx, contentType, info.WeekStart)
		if err != nil {
			log.Printf("[WARN] Resolving %s for %s failed: %v", contentType, info.Key(), err)
		} else if len(res.Playlist) > 0 {
			item.StreamURL = res.Playlist[0]
			item.PlaylistURLs = res.Playlist
		} else if res.URL != "" {
			item.StreamURL = res.URL
		}
		items = append(items, item)
	}
	return items
}

func (s *Service) songList(ctx context.Context) []models.MediaItem {
	songs, err := s.songs.All(ctx)
	if err != nil {
		log.Printf("[WARN] Listing songs failed: %v", err)
		return []models.MediaItem{{
			ID:        "song-demo-1",
			Title:     "Kingdom Songs: Demo",
			StreamURL: sampleAudioURL,
		}}
	}

	items := make([]models.MediaItem, 0, len(songs))
	for _, song := range songs {
		items = append(items, models.MediaItem{
			ID:        "song-" + strconv.Itoa(song.Number),
			Title:     fmt.Sprintf("Kingdom Songs: %03d - %s", song.Number, song.Title),
			StreamURL: song.URL,
		})
	}
	return items
}

func (s *Service) bibleBooks(ctx context.Context, testament bible.Testament) []models.MediaItem {
	books := bible.BooksFor(testament)
	items := make([]models.MediaItem, 0, len(books))
	for _, book := range books {
		item := models.MediaItem{
			ID:        fmt.Sprintf("bible-%s-%d", testament, book.Number),
			Title:     book.Abbreviation,
			Subtitle:  book.Title,
			StreamURL: sampleAudioURL,
		}
		chapters, err := s.chapters.ChaptersFor(ctx, book.Number)
		if err != nil {
			log.Printf("[WARN] Loading chapters for %s failed: %v", book.Title, err)
		} else if len(chapters) > 0 {
			item.StreamURL = chapters[0]
			item.PlaylistURLs = chapters
		}
		items = append(items, item)
	}
	return items
}

func (s *Service) broadcastList(ctx context.Context) []models.MediaItem {
	programs := s.broadcasts.Latest(ctx)
	if len(programs) == 0 {
		return []models.MediaItem{{
			ID:        "jwb-unavailable",
			Title:     "Content unavailable",
			StreamURL: sampleAudioURL,
		}}
	}

	items := make([]models.MediaItem, 0, len(programs))
	for _, program := range programs {
		items = append(items, models.MediaItem{
			ID:        program.ID,
			Title:     program.Title,
			Subtitle:  program.Published,
			StreamURL: program.StreamURL,
		})
	}
	return items
}

func displayTitle(contentType content.Type) string {
	switch contentType {
	case content.TypeWorkbook:
		return "Meeting Workbook"
	case content.TypeWatchtower:
		return "Watchtower Study"
	case content.TypeBibleReading:
		return "Bible Reading"
	case content.TypeCongregationStudy:
		return "Congregation Bible Study"
	}
	return string(contentType)
}

func folder(id, title string) models.MediaItem {
	return models.MediaItem{ID: id, Title: title, Browsable: true}
}

func folderWithSubtitle(id, title, subtitle string) models.MediaItem {
	item := folder(id, title)
	item.Subtitle = subtitle
	return item
}
