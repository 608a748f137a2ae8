package handler

// drawingRequest is the validated payload for saving a PDF annotation. The
// drawing payload itself is opaque to the backend and deliberately not
// escaped; it never renders as HTML.
type drawingRequest struct {
	UserID     string `json:"userId"     validate:"required"`
	PdfURL     string `json:"pdfUrl"     validate:"required"`
	PageNumber int    `json:"pageNumber" validate:"required,gte=1"`
	Drawing    string `json:"drawing"`
}

func (r *drawingRequest) sanitize() {
	r.UserID = cleanString(r.UserID)
	r.PdfURL = cleanString(r.PdfURL)
}
