package model

import "time"

const PointType = "Point"

type ReaderLocation struct {
	Type        string     `json:"type" validate:"omitempty,eq=Point"`
	Coordinates [2]float64 `json:"coordinates"`
}

type ReaderItem struct {
	ID        string         `json:"_id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Password  string         `json:"password,omitempty"`
	Location  ReaderLocation `json:"location"`
	Bio       string         `json:"bio,omitempty"`
	Avatar    string         `json:"avatar,omitempty"`
	CreatedAt *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt *time.Time     `json:"updatedAt,omitempty"`
}

// Redacted returns a copy safe to hand out of the admin API.
func (r ReaderItem) Redacted() ReaderItem {
	r.Password = ""
	return r
}

func RedactReaders(readers []ReaderItem) []ReaderItem {
	out := make([]ReaderItem, 0, len(readers))
	for _, r := range readers {
		out = append(out, r.Redacted())
	}
	return out
}

type CreateReaderRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Location *ReaderLocation `json:"location,omitempty"`
	Bio      string          `json:"bio,omitempty"`
	Avatar   string          `json:"avatar,omitempty" validate:"omitempty,url"`
}

type UpdateReaderRequest struct {
	Name     *string         `json:"name,omitempty" validate:"omitempty,min=1"`
	Email    *string         `json:"email,omitempty" validate:"omitempty,email"`
	Password *string         `json:"password,omitempty" validate:"omitempty,min=6"`
	Location *ReaderLocation `json:"location,omitempty"`
	Bio      *string         `json:"bio,omitempty"`
	Avatar   *string         `json:"avatar,omitempty" validate:"omitempty,url"`
}
