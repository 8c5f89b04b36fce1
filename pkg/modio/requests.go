package modio

import (
	"fmt"
	"net/url"
	"strconv"
)

// Ptr returns a pointer to v. Edit requests use pointer fields so a
// zero value can be distinguished from an unset one.
func Ptr[T any](v T) *T {
	return &v
}

func setString(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setInt(values url.Values, key string, value *int) {
	if value != nil {
		values.Set(key, strconv.Itoa(*value))
	}
}

func setBool(values url.Values, key string, value *bool) {
	if value != nil {
		values.Set(key, strconv.FormatBool(*value))
	}
}

// setIndexed emits one positional parameter per entry: key[0], key[1], …
func setIndexed(values url.Values, key string, entries []string) {
	for i, entry := range entries {
		values.Set(fmt.Sprintf("%s[%d]", key, i), entry)
	}
}

// GameEditRequest carries the recognized fields for a game edit. Nil
// and empty fields are omitted from the request.
type GameEditRequest struct {
	Status          *int
	Name            string
	NameID          string
	Summary         string
	Instructions    string
	InstructionsURL string
	UGCName         string
	Presentation    *int
	Submission      *int
	Curation        *int
	Community       *int
	Revenue         *int
	API             *int
	Maturity        *int
}

// ToValues lowers the request to form parameters.
func (r *GameEditRequest) ToValues() url.Values {
	values := url.Values{}
	setInt(values, "status", r.Status)
	setString(values, "name", r.Name)
	setString(values, "name_id", r.NameID)
	setString(values, "summary", r.Summary)
	setString(values, "instructions", r.Instructions)
	setString(values, "instructions_url", r.InstructionsURL)
	setString(values, "ugc_name", r.UGCName)
	setInt(values, "presentation_option", r.Presentation)
	setInt(values, "submission_option", r.Submission)
	setInt(values, "curation_option", r.Curation)
	setInt(values, "community_options", r.Community)
	setInt(values, "revenue_options", r.Revenue)
	setInt(values, "api_access_options", r.API)
	setInt(values, "maturity_options", r.Maturity)

	return values
}

// ModEditRequest carries the recognized fields for a mod edit.
type ModEditRequest struct {
	Status       *int
	Visible      *int
	Name         string
	NameID       string
	Summary      string
	Description  string
	Homepage     string
	Stock        *int
	Maturity     *int
	MetadataBlob string
}

// ToValues lowers the request to form parameters.
func (r *ModEditRequest) ToValues() url.Values {
	values := url.Values{}
	setInt(values, "status", r.Status)
	setInt(values, "visible", r.Visible)
	setString(values, "name", r.Name)
	setString(values, "name_id", r.NameID)
	setString(values, "summary", r.Summary)
	setString(values, "description", r.Description)
	setString(values, "homepage_url", r.Homepage)
	setInt(values, "stock", r.Stock)
	setInt(values, "maturity_option", r.Maturity)
	setString(values, "metadata_blob", r.MetadataBlob)

	return values
}

// ModCreateRequest carries the fields for adding a mod to a game. Logo
// is a path to an image file and is submitted as a multipart part.
type ModCreateRequest struct {
	Name         string
	NameID       string
	Summary      string
	Description  string
	Homepage     string
	Stock        *int
	Maturity     *int
	MetadataBlob string
	Logo         string
	Tags         []string
}

// ToValues lowers the request to form parameters. The logo file is
// handled separately by the uploader.
func (r *ModCreateRequest) ToValues() url.Values {
	values := url.Values{}
	setString(values, "name", r.Name)
	setString(values, "name_id", r.NameID)
	setString(values, "summary", r.Summary)
	setString(values, "description", r.Description)
	setString(values, "homepage_url", r.Homepage)
	setInt(values, "stock", r.Stock)
	setInt(values, "maturity_option", r.Maturity)
	setString(values, "metadata_blob", r.MetadataBlob)
	setIndexed(values, "tags", r.Tags)

	return values
}

// FileEditRequest carries the recognized fields for a mod file edit.
type FileEditRequest struct {
	Version      string
	Changelog    string
	Active       *bool
	MetadataBlob string
}

// ToValues lowers the request to form parameters.
func (r *FileEditRequest) ToValues() url.Values {
	values := url.Values{}
	setString(values, "version", r.Version)
	setString(values, "changelog", r.Changelog)
	setBool(values, "active", r.Active)
	setString(values, "metadata_blob", r.MetadataBlob)

	return values
}

// FileCreateRequest carries the fields for uploading a mod file. Path
// points at the zip archive to submit.
type FileCreateRequest struct {
	Path         string
	Version      string
	Changelog    string
	Active       *bool
	MetadataBlob string
}

// ToValues lowers the request to form parameters. The archive itself is
// handled separately by the uploader.
func (r *FileCreateRequest) ToValues() url.Values {
	values := url.Values{}
	setString(values, "version", r.Version)
	setString(values, "changelog", r.Changelog)
	setBool(values, "active", r.Active)
	setString(values, "metadata_blob", r.MetadataBlob)

	return values
}

// GameMediaRequest carries file paths for a game media upload. Empty
// paths are skipped.
type GameMediaRequest struct {
	Logo   string
	Icon   string
	Header string
}

// ModMediaAddRequest carries media for a mod media upload. Logo and
// ImagesZip are file paths; Images is a list of per-index image paths
// submitted as images[0], images[1], …; YouTube and Sketchfab are
// link lists submitted the same way.
type ModMediaAddRequest struct {
	Logo      string
	ImagesZip string
	Images    []string
	YouTube   []string
	Sketchfab []string
}

// ToValues lowers the link lists to form parameters. The files are
// handled separately by the uploader.
func (r *ModMediaAddRequest) ToValues() url.Values {
	values := url.Values{}
	setIndexed(values, "youtube", r.YouTube)
	setIndexed(values, "sketchfab", r.Sketchfab)

	return values
}

// ModMediaDeleteRequest names media to detach from a mod.
type ModMediaDeleteRequest struct {
	Images    []string
	YouTube   []string
	Sketchfab []string
}

// ToValues lowers the request to form parameters.
func (r *ModMediaDeleteRequest) ToValues() url.Values {
	values := url.Values{}
	setIndexed(values, "images", r.Images)
	setIndexed(values, "youtube", r.YouTube)
	setIndexed(values, "sketchfab", r.Sketchfab)

	return values
}

// TagOptionAddRequest declares a tag category on a game.
type TagOptionAddRequest struct {
	Name   string
	Type   string
	Hidden *bool
	Tags   []string
}

// ToValues lowers the request to form parameters.
func (r *TagOptionAddRequest) ToValues() url.Values {
	values := url.Values{}
	setString(values, "name", r.Name)
	setString(values, "type", r.Type)
	setBool(values, "hidden", r.Hidden)
	setIndexed(values, "tags", r.Tags)

	return values
}

// TeamMemberAddRequest invites a user to a mod's team.
type TeamMemberAddRequest struct {
	Email    string
	Level    Level
	Position string
}

// ToValues lowers the request to form parameters.
func (r *TeamMemberAddRequest) ToValues() url.Values {
	values := url.Values{}
	setString(values, "email", r.Email)
	values.Set("level", strconv.Itoa(int(r.Level)))
	setString(values, "position", r.Position)

	return values
}

// Report resource types accepted by the report endpoint.
const (
	ReportResourceGame = "games"
	ReportResourceMod  = "mods"
	ReportResourceUser = "users"
)

// ReportRequest files a generic or DMCA report against a game, mod, or
// user. Any other resource type is rejected before a request is made.
type ReportRequest struct {
	Resource string
	ID       int64
	DMCA     bool
	Name     string
	Summary  string
}

// Validate checks that the report targets a supported resource type.
func (r *ReportRequest) Validate() error {
	switch r.Resource {
	case ReportResourceGame, ReportResourceMod, ReportResourceUser:
		return nil
	default:
		return ErrReportResourceType
	}
}

// ToValues lowers the request to form parameters.
func (r *ReportRequest) ToValues() url.Values {
	values := url.Values{}
	values.Set("resource", r.Resource)
	values.Set("id", strconv.FormatInt(r.ID, 10))

	dmca := 0
	if r.DMCA {
		dmca = 1
	}

	values.Set("type", strconv.Itoa(dmca))
	setString(values, "name", r.Name)
	setString(values, "summary", r.Summary)

	return values
}
