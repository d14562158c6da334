package course

// CourseForm is the admin payload for creating or updating a course.
type CourseForm struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags,omitempty" validate:"dive,required"`
	Price       float64  `json:"price" validate:"gte=0"`
}

// ChapterForm is the admin payload for creating or updating a chapter.
type ChapterForm struct {
	Title              string `json:"title" validate:"required"`
	Position           int    `json:"position" validate:"gte=1"`
	Content            string `json:"content,omitempty"`
	RequiresSubmission bool   `json:"requiresSubmission"`
}
