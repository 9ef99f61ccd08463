package superhero

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Image is a stored image blob reference. PublicID addresses the blob
// in the image store for deletion and never contains a path separator.
type Image struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"public_id" json:"public_id"`
}

// Superhero is the catalog entity. Nickname is unique across the
// collection (enforced by a unique index). Images keeps insertion
// order; the first entry is the cover image shown in list views.
type Superhero struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Nickname          string        `bson:"nickname" json:"nickname"`
	RealName          string        `bson:"real_name" json:"real_name"`
	OriginDescription string        `bson:"origin_description,omitempty" json:"origin_description,omitempty"`
	Superpowers       string        `bson:"superpowers,omitempty" json:"superpowers,omitempty"`
	CatchPhrase       string        `bson:"catch_phrase,omitempty" json:"catch_phrase,omitempty"`
	Images            []Image       `bson:"images" json:"images"`
}

// CoverImage returns the first image, or nil when the hero has none.
func (s *Superhero) CoverImage() *Image {
	if len(s.Images) == 0 {
		return nil
	}
	return &s.Images[0]
}

// FindImage returns the index of the image with the given public id,
// or -1 when no entry matches.
func (s *Superhero) FindImage(publicID string) int {
	for i, img := range s.Images {
		if img.PublicID == publicID {
			return i
		}
	}
	return -1
}
