package superhero

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateSuperheroRequest carries the text fields of a create form.
type CreateSuperheroRequest struct {
	Nickname          string `form:"nickname"`
	RealName          string `form:"real_name"`
	OriginDescription string `form:"origin_description"`
	Superpowers       string `form:"superpowers"`
	CatchPhrase       string `form:"catch_phrase"`
}

func (r CreateSuperheroRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nickname,
			validation.Required.Error("nickname is required"),
			validation.By(notBlank("nickname")),
			validation.Length(0, 255),
		),
		validation.Field(&r.RealName,
			validation.Required.Error("real_name is required"),
			validation.By(notBlank("real_name")),
			validation.Length(0, 255),
		),
	)
}

// UpdateSuperheroRequest carries a partial update: nil fields were
// absent from the form and keep their prior value.
type UpdateSuperheroRequest struct {
	Nickname          *string
	RealName          *string
	OriginDescription *string
	Superpowers       *string
	CatchPhrase       *string
}

func (r UpdateSuperheroRequest) Validate() error {
	// Nil pointers are skipped by ozzo, so rules only fire for fields
	// that were actually submitted.
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nickname, validation.By(notBlank("nickname"))),
		validation.Field(&r.RealName, validation.By(notBlank("real_name"))),
	)
}

// notBlank rejects values that are empty after trimming. Nil pointers
// mean the field was absent from the form and pass.
func notBlank(field string) validation.RuleFunc {
	return func(value interface{}) error {
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case *string:
			if v == nil {
				return nil
			}
			s = *v
		default:
			return errors.New(field + " must be a string")
		}
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " must be a non-empty string")
		}
		return nil
	}
}

// ListItem is the list-view projection: id, nickname and the cover
// image only.
type ListItem struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Image    *Image `json:"image"`
}

// ListResponse is the paging envelope for GET /superheroes.
type ListResponse struct {
	Page        int        `json:"page"`
	TotalPages  int        `json:"totalPages"`
	Superheroes []ListItem `json:"superheroes"`
}

// DeleteResponse confirms a record delete.
type DeleteResponse struct {
	Message string `json:"message"`
}
