package domain

import "time"

// Drawing is a per-page annotation overlay for a PDF floor plan. One drawing
// exists per (userId, pdfUrl, pageNumber) tuple; the payload is the opaque
// serialized canvas data the frontend renders.
type Drawing struct {
	ID         string    `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID     string    `json:"userId" bson:"userId"`
	PdfURL     string    `json:"pdfUrl" bson:"pdfUrl"`
	PageNumber int       `json:"pageNumber" bson:"pageNumber"`
	Drawing    string    `json:"drawing" bson:"drawing"`
	CreatedAt  time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
