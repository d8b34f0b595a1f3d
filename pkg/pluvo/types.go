package pluvo

import (
	"time"
)

// Page represents the wire form of a single page of a list endpoint. The
// count is the total number of items matching the listing, not the number of
// items in this page.
type Page[T any] struct {
	Count int `json:"count" yaml:"count"`
	Data  []T `json:"data"  yaml:"data"`
}

// Course represents a Pluvo course.
type Course struct {
	ID            int        `json:"id,omitempty"             yaml:"id,omitempty"`
	Title         string     `json:"title"                    yaml:"title"`
	Description   string     `json:"description,omitempty"    yaml:"description,omitempty"`
	CreatorID     int        `json:"creator_id,omitempty"     yaml:"creator_id,omitempty"`
	PublishedFrom *time.Time `json:"published_from,omitempty" yaml:"published_from,omitempty"`
	PublishedTo   *time.Time `json:"published_to,omitempty"   yaml:"published_to,omitempty"`
	CreationDate  *time.Time `json:"creation_date,omitempty"  yaml:"creation_date,omitempty"`
}

// User represents a Pluvo user.
type User struct {
	ID           int        `json:"id,omitempty"            yaml:"id,omitempty"`
	Name         string     `json:"name"                    yaml:"name"`
	Email        string     `json:"email,omitempty"         yaml:"email,omitempty"`
	CreationDate *time.Time `json:"creation_date,omitempty" yaml:"creation_date,omitempty"`
}

// Organisation represents a Pluvo organisation.
type Organisation struct {
	ID   int    `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name"         yaml:"name"`
}

// Version represents the /version/ response.
type Version struct {
	Version string `json:"version" yaml:"version"`
}

// TokenType selects the kind of course access token issued for a user.
type TokenType string

// Course token types accepted by the API.
const (
	TokenTypeStudent TokenType = "student"
	TokenTypeManager TokenType = "manager"
)

// CourseToken represents a token granting a user access to a course.
type CourseToken struct {
	Token string    `json:"token"          yaml:"token"`
	Type  TokenType `json:"type,omitempty" yaml:"type,omitempty"`
}

// S3UploadToken represents a signed upload grant for media files.
type S3UploadToken struct {
	Token string `json:"token"         yaml:"token"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}
