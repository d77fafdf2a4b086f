package model

type BookLocation struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// HasCoordinates reports whether both coordinates are present.
func (l BookLocation) HasCoordinates() bool {
	return len(l.Coordinates) >= 2
}

type BookItem struct {
	ID              string       `json:"_id"`
	Title           string       `json:"title"`
	Author          string       `json:"author"`
	Category        string       `json:"category"`
	Condition       string       `json:"condition"`
	Price           float64      `json:"price"`
	Location        BookLocation `json:"location"`
	Owner           OwnerRef     `json:"owner"`
	Image           string       `json:"image"`
	Description     string       `json:"description"`
	Available       bool         `json:"available"`
	IsApproved      bool         `json:"isApproved"`
	ApprovalStatus  string       `json:"approvalStatus"`
	ApprovedBy      string       `json:"approvedBy,omitempty"`
	ApprovedAt      string       `json:"approvedAt,omitempty"`
	RejectionReason string       `json:"rejectionReason,omitempty"`
	IsFeatured      bool         `json:"isFeatured"`
	Views           int          `json:"views"`
	CreatedAt       string       `json:"createdAt"`
	UpdatedAt       string       `json:"updatedAt"`
}

type CreateBookRequest struct {
	Title       string        `json:"title" validate:"required"`
	Author      string        `json:"author" validate:"required"`
	Category    string        `json:"category,omitempty"`
	Condition   string        `json:"condition,omitempty"`
	Price       float64       `json:"price" validate:"gte=0"`
	Location    *BookLocation `json:"location,omitempty"`
	Owner       string        `json:"owner,omitempty"`
	Image       string        `json:"image,omitempty" validate:"omitempty,url"`
	Description string        `json:"description,omitempty"`
	Available   *bool         `json:"available,omitempty"`
}

// UpdateBookRequest is a partial replacement; nil fields are not sent.
type UpdateBookRequest struct {
	Title           *string       `json:"title,omitempty" validate:"omitempty,min=1"`
	Author          *string       `json:"author,omitempty" validate:"omitempty,min=1"`
	Category        *string       `json:"category,omitempty"`
	Condition       *string       `json:"condition,omitempty"`
	Price           *float64      `json:"price,omitempty" validate:"omitempty,gte=0"`
	Location        *BookLocation `json:"location,omitempty"`
	Image           *string       `json:"image,omitempty" validate:"omitempty,url"`
	Description     *string       `json:"description,omitempty"`
	Available       *bool         `json:"available,omitempty"`
	IsApproved      *bool         `json:"isApproved,omitempty"`
	ApprovalStatus  *string       `json:"approvalStatus,omitempty"`
	RejectionReason *string       `json:"rejectionReason,omitempty"`
	IsFeatured      *bool         `json:"isFeatured,omitempty"`
}
