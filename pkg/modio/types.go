package modio

import "time"

// List is a page of results from a list endpoint together with its
// pagination envelope.
type List[T any] struct {
	Data         []T `json:"data"          yaml:"data"`
	ResultCount  int `json:"result_count"  yaml:"result_count"`
	ResultLimit  int `json:"result_limit"  yaml:"result_limit"`
	ResultOffset int `json:"result_offset" yaml:"result_offset"`
	ResultTotal  int `json:"result_total"  yaml:"result_total"`
}

// Page returns the zero-based page index of this result set.
func (l *List[T]) Page() int {
	if l.ResultLimit == 0 {
		return 0
	}

	return l.ResultOffset / l.ResultLimit
}

// IsFirst reports whether this is the first page.
func (l *List[T]) IsFirst() bool {
	return l.ResultOffset == 0
}

// IsLast reports whether this is the last page.
func (l *List[T]) IsLast() bool {
	return l.ResultOffset+l.ResultCount == l.ResultTotal
}

// List aliases for the resource types.
type (
	GameList       = List[Game]
	ModList        = List[Mod]
	ModFileList    = List[ModFile]
	UserList       = List[User]
	EventList      = List[Event]
	TagList        = List[Tag]
	TagOptionList  = List[TagOption]
	MetadataList   = List[MetadataKVP]
	DependencyList = List[Dependency]
	TeamMemberList = List[TeamMember]
	CommentList    = List[Comment]
	RatingList     = List[Rating]
	ModStatsList   = List[ModStats]
)

// Message is the body of responses that carry no resource.
type Message struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// AccessToken is the body of a successful email exchange.
type AccessToken struct {
	Code        int    `json:"code"         yaml:"code"`
	AccessToken string `json:"access_token" yaml:"access_token"`
}

// Avatar holds the media for a user's avatar.
type Avatar struct {
	Filename     string `json:"filename"      yaml:"filename"`
	Original     string `json:"original"      yaml:"original"`
	Thumb50x50   string `json:"thumb_50x50"   yaml:"thumb_50x50"`
	Thumb100x100 string `json:"thumb_100x100" yaml:"thumb_100x100"`
}

// Logo holds the media for a game or mod logo.
type Logo struct {
	Filename      string `json:"filename"       yaml:"filename"`
	Original      string `json:"original"       yaml:"original"`
	Thumb320x180  string `json:"thumb_320x180"  yaml:"thumb_320x180"`
	Thumb640x360  string `json:"thumb_640x360"  yaml:"thumb_640x360"`
	Thumb1280x720 string `json:"thumb_1280x720" yaml:"thumb_1280x720"`
}

// Icon holds the media for a game icon.
type Icon struct {
	Filename     string `json:"filename"      yaml:"filename"`
	Original     string `json:"original"      yaml:"original"`
	Thumb64x64   string `json:"thumb_64x64"   yaml:"thumb_64x64"`
	Thumb128x128 string `json:"thumb_128x128" yaml:"thumb_128x128"`
	Thumb256x256 string `json:"thumb_256x256" yaml:"thumb_256x256"`
}

// HeaderImage holds the media for a game profile header.
type HeaderImage struct {
	Filename string `json:"filename" yaml:"filename"`
	Original string `json:"original" yaml:"original"`
}

// Image is one entry in a mod's media gallery.
type Image struct {
	Filename     string `json:"filename"      yaml:"filename"`
	Original     string `json:"original"      yaml:"original"`
	Thumb320x180 string `json:"thumb_320x180" yaml:"thumb_320x180"`
}

// User represents a registered account.
type User struct {
	ID         int64  `json:"id"          yaml:"id"`
	NameID     string `json:"name_id"     yaml:"name_id"`
	Username   string `json:"username"    yaml:"username"`
	DateOnline int64  `json:"date_online" yaml:"date_online"`
	Avatar     Avatar `json:"avatar"      yaml:"avatar"`
	Timezone   string `json:"timezone"    yaml:"timezone"`
	Language   string `json:"language"    yaml:"language"`
	ProfileURL string `json:"profile_url" yaml:"profile_url"`
}

// TagOption is a server-declared tag category from which mods select
// their tags.
type TagOption struct {
	Name   string   `json:"name"   yaml:"name"`
	Type   string   `json:"type"   yaml:"type"`
	Hidden bool     `json:"hidden" yaml:"hidden"`
	Tags   []string `json:"tags"   yaml:"tags"`
}

// Tag is a single tag applied to a mod.
type Tag struct {
	Name      string `json:"name"       yaml:"name"`
	DateAdded int64  `json:"date_added" yaml:"date_added"`
}

// Game represents a game profile.
type Game struct {
	ID              int64       `json:"id"                  yaml:"id"`
	Status          int         `json:"status"              yaml:"status"`
	SubmittedBy     User        `json:"submitted_by"        yaml:"submitted_by"`
	DateAdded       int64       `json:"date_added"          yaml:"date_added"`
	DateUpdated     int64       `json:"date_updated"        yaml:"date_updated"`
	DateLive        int64       `json:"date_live"           yaml:"date_live"`
	Presentation    int         `json:"presentation_option" yaml:"presentation_option"`
	Submission      int         `json:"submission_option"   yaml:"submission_option"`
	Curation        int         `json:"curation_option"     yaml:"curation_option"`
	Community       int         `json:"community_options"   yaml:"community_options"`
	Revenue         int         `json:"revenue_options"     yaml:"revenue_options"`
	APIAccess       int         `json:"api_access_options"  yaml:"api_access_options"`
	Maturity        int         `json:"maturity_options"    yaml:"maturity_options"`
	UGCName         string      `json:"ugc_name"            yaml:"ugc_name"`
	Icon            Icon        `json:"icon"                yaml:"icon"`
	Logo            Logo        `json:"logo"                yaml:"logo"`
	Header          HeaderImage `json:"header"              yaml:"header"`
	Name            string      `json:"name"                yaml:"name"`
	NameID          string      `json:"name_id"             yaml:"name_id"`
	Summary         string      `json:"summary"             yaml:"summary"`
	Instructions    string      `json:"instructions"        yaml:"instructions"`
	InstructionsURL string      `json:"instructions_url"    yaml:"instructions_url"`
	ProfileURL      string      `json:"profile_url"         yaml:"profile_url"`
	TagOptions      []TagOption `json:"tag_options"         yaml:"tag_options"`
}

// GameStats holds aggregate statistics for a game.
type GameStats struct {
	GameID                    int64 `json:"game_id"                      yaml:"game_id"`
	ModsCountTotal            int64 `json:"mods_count_total"             yaml:"mods_count_total"`
	ModsDownloadsTotal        int64 `json:"mods_downloads_total"         yaml:"mods_downloads_total"`
	ModsDownloadsToday        int64 `json:"mods_downloads_today"         yaml:"mods_downloads_today"`
	ModsDownloadsDailyAverage int64 `json:"mods_downloads_daily_average" yaml:"mods_downloads_daily_average"`
	ModsSubscribersTotal      int64 `json:"mods_subscribers_total"       yaml:"mods_subscribers_total"`
	DateExpires               int64 `json:"date_expires"                 yaml:"date_expires"`
}

// Expired reports whether the cached statistics have passed their
// expiry time.
func (s *GameStats) Expired(now time.Time) bool {
	return s.DateExpires <= now.Unix()
}

// ModStats holds aggregate statistics for a mod.
type ModStats struct {
	ModID                     int64   `json:"mod_id"                      yaml:"mod_id"`
	PopularityRankPosition    int64   `json:"popularity_rank_position"    yaml:"popularity_rank_position"`
	PopularityRankTotalMods   int64   `json:"popularity_rank_total_mods"  yaml:"popularity_rank_total_mods"`
	DownloadsTotal            int64   `json:"downloads_total"             yaml:"downloads_total"`
	SubscribersTotal          int64   `json:"subscribers_total"           yaml:"subscribers_total"`
	RatingsTotal              int64   `json:"ratings_total"               yaml:"ratings_total"`
	RatingsPositive           int64   `json:"ratings_positive"            yaml:"ratings_positive"`
	RatingsNegative           int64   `json:"ratings_negative"            yaml:"ratings_negative"`
	RatingsPercentagePositive float64 `json:"ratings_percentage_positive" yaml:"ratings_percentage_positive"`
	RatingsWeightedAggregate  float64 `json:"ratings_weighted_aggregate"  yaml:"ratings_weighted_aggregate"`
	RatingsDisplayText        string  `json:"ratings_display_text"        yaml:"ratings_display_text"`
	DateExpires               int64   `json:"date_expires"                yaml:"date_expires"`
}

// Expired reports whether the cached statistics have passed their
// expiry time.
func (s *ModStats) Expired(now time.Time) bool {
	return s.DateExpires <= now.Unix()
}

// Download is the time-limited download for a mod file.
type Download struct {
	BinaryURL   string `json:"binary_url"   yaml:"binary_url"`
	DateExpires int64  `json:"date_expires" yaml:"date_expires"`
}

// Expired reports whether the download URL has passed its expiry time.
func (d *Download) Expired(now time.Time) bool {
	return d.DateExpires <= now.Unix()
}

// FileHash holds the checksums of an uploaded file.
type FileHash struct {
	MD5 string `json:"md5" yaml:"md5"`
}

// ModFile is a binary release of a mod.
type ModFile struct {
	ID            int64    `json:"id"             yaml:"id"`
	ModID         int64    `json:"mod_id"         yaml:"mod_id"`
	DateAdded     int64    `json:"date_added"     yaml:"date_added"`
	DateScanned   int64    `json:"date_scanned"   yaml:"date_scanned"`
	VirusStatus   int      `json:"virus_status"   yaml:"virus_status"`
	VirusPositive int      `json:"virus_positive" yaml:"virus_positive"`
	Filesize      int64    `json:"filesize"       yaml:"filesize"`
	Filehash      FileHash `json:"filehash"       yaml:"filehash"`
	Filename      string   `json:"filename"       yaml:"filename"`
	Version       string   `json:"version"        yaml:"version"`
	Changelog     string   `json:"changelog"      yaml:"changelog"`
	MetadataBlob  string   `json:"metadata_blob"  yaml:"metadata_blob"`
	Download      Download `json:"download"       yaml:"download"`
}

// ModMedia holds the media attached to a mod profile.
type ModMedia struct {
	YouTube   []string `json:"youtube"   yaml:"youtube"`
	Sketchfab []string `json:"sketchfab" yaml:"sketchfab"`
	Images    []Image  `json:"images"    yaml:"images"`
}

// MetadataKVP is one raw key/value metadata entry on a mod.
type MetadataKVP struct {
	Metakey   string `json:"metakey"   yaml:"metakey"`
	Metavalue string `json:"metavalue" yaml:"metavalue"`
}

// Mod represents a mod profile.
type Mod struct {
	ID                   int64         `json:"id"                    yaml:"id"`
	GameID               int64         `json:"game_id"               yaml:"game_id"`
	Status               int           `json:"status"                yaml:"status"`
	Visible              int           `json:"visible"               yaml:"visible"`
	SubmittedBy          User          `json:"submitted_by"          yaml:"submitted_by"`
	DateAdded            int64         `json:"date_added"            yaml:"date_added"`
	DateUpdated          int64         `json:"date_updated"          yaml:"date_updated"`
	DateLive             int64         `json:"date_live"             yaml:"date_live"`
	MaturityOption       int           `json:"maturity_option"       yaml:"maturity_option"`
	Logo                 Logo          `json:"logo"                  yaml:"logo"`
	HomepageURL          string        `json:"homepage_url"          yaml:"homepage_url"`
	Name                 string        `json:"name"                  yaml:"name"`
	NameID               string        `json:"name_id"               yaml:"name_id"`
	Summary              string        `json:"summary"               yaml:"summary"`
	Description          string        `json:"description"           yaml:"description"`
	DescriptionPlaintext string        `json:"description_plaintext" yaml:"description_plaintext"`
	MetadataBlob         string        `json:"metadata_blob"         yaml:"metadata_blob"`
	ProfileURL           string        `json:"profile_url"           yaml:"profile_url"`
	Media                ModMedia      `json:"media"                 yaml:"media"`
	Modfile              ModFile       `json:"modfile"               yaml:"modfile"`
	MetadataKVP          []MetadataKVP `json:"metadata_kvp"          yaml:"metadata_kvp"`
	Tags                 []Tag         `json:"tags"                  yaml:"tags"`
	Stats                ModStats      `json:"stats"                 yaml:"stats"`
}

// KVP groups the raw metadata entries by key. Values under a key keep
// their wire order.
func (m *Mod) KVP() map[string][]string {
	grouped := make(map[string][]string, len(m.MetadataKVP))
	for _, entry := range m.MetadataKVP {
		grouped[entry.Metakey] = append(grouped[entry.Metakey], entry.Metavalue)
	}

	return grouped
}

// Dependency is one entry in a mod's dependency list.
type Dependency struct {
	ModID     int64 `json:"mod_id"     yaml:"mod_id"`
	DateAdded int64 `json:"date_added" yaml:"date_added"`
}

// Level is the permission level of a team member.
type Level int

// Team member permission levels.
const (
	LevelModerator Level = 1
	LevelCreator   Level = 4
	LevelAdmin     Level = 8
)

// String returns the semantic name of the level.
func (l Level) String() string {
	switch l {
	case LevelModerator:
		return "moderator"
	case LevelCreator:
		return "creator"
	case LevelAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// TeamMember is one entry in a mod's team.
type TeamMember struct {
	ID        int64  `json:"id"         yaml:"id"`
	User      User   `json:"user"       yaml:"user"`
	Level     Level  `json:"level"      yaml:"level"`
	DateAdded int64  `json:"date_added" yaml:"date_added"`
	Position  string `json:"position"   yaml:"position"`
}

// Comment is one entry in a mod's comment thread.
type Comment struct {
	ID             int64  `json:"id"              yaml:"id"`
	ModID          int64  `json:"mod_id"          yaml:"mod_id"`
	User           User   `json:"user"            yaml:"user"`
	DateAdded      int64  `json:"date_added"      yaml:"date_added"`
	ReplyID        int64  `json:"reply_id"        yaml:"reply_id"`
	ThreadPosition string `json:"thread_position" yaml:"thread_position"`
	Karma          int    `json:"karma"           yaml:"karma"`
	Content        string `json:"content"         yaml:"content"`
}

// RatingValue is the value of a rating: -1, 0, or +1.
type RatingValue int

// Rating values.
const (
	RatingNegative RatingValue = -1
	RatingNeutral  RatingValue = 0
	RatingPositive RatingValue = 1
)

// String returns the semantic name of the rating value.
func (r RatingValue) String() string {
	switch r {
	case RatingNegative:
		return "negative"
	case RatingPositive:
		return "positive"
	default:
		return "neutral"
	}
}

// Rating is one entry from the authenticated user's rating history.
type Rating struct {
	GameID    int64       `json:"game_id"    yaml:"game_id"`
	ModID     int64       `json:"mod_id"     yaml:"mod_id"`
	Rating    RatingValue `json:"rating"     yaml:"rating"`
	DateAdded int64       `json:"date_added" yaml:"date_added"`
}
