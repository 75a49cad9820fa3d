package models

// Course is a purchasable diving-certification or experience offering.
// Field tags are checked once when the catalog snapshot is built. Only the id,
// media, includes, price and rating bounds are enforced; display text may be
// blank.
type Course struct {
	ID              string        `db:"id" json:"id" validate:"required"`
	Title           string        `db:"title" json:"title"`
	Type            string        `db:"course_type" json:"type"`
	Description     string        `db:"description" json:"description"`
	FullDescription string        `db:"full_description" json:"fullDescription"`
	Image           string        `db:"image" json:"image"`
	GalleryImages   []string      `db:"-" json:"galleryImages" validate:"min=1,dive,required"`
	Price           int           `db:"price" json:"price" validate:"gte=0"`
	Location        string        `db:"location" json:"location"`
	Duration        string        `db:"duration" json:"duration"`
	Level           string        `db:"level" json:"level"`
	Rating          float64       `db:"rating" json:"rating" validate:"gte=0,lte=5"`
	ReviewCount     int           `db:"review_count" json:"reviewCount" validate:"gte=0"`
	IsPopular       bool          `db:"is_popular" json:"isPopular"`
	Includes        []string      `db:"-" json:"includes" validate:"min=1,dive,required"`
	Certification   string        `db:"certification" json:"certification"`
	Schedule        []ScheduleDay `db:"-" json:"schedule"`
	Instructor      Instructor    `db:"-" json:"instructor"`
	Reviews         []Review      `db:"-" json:"reviews" validate:"dive"`
}

// ScheduleDay is one block of the course itinerary.
type ScheduleDay struct {
	Day        string `json:"day"`
	Activities string `json:"activities"`
}

// Instructor describes the lead instructor of a course.
type Instructor struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

// Review is a static customer review. Date is display text, not a parsed date.
type Review struct {
	UserName  string  `json:"userName"`
	UserImage string  `json:"userImage"`
	Rating    float64 `json:"rating" validate:"gte=0,lte=5"`
	Date      string  `json:"date"`
	Comment   string  `json:"comment"`
}

// Clone returns a deep copy so callers cannot reach the shared snapshot.
func (c Course) Clone() Course {
	out := c
	out.GalleryImages = cloneStrings(c.GalleryImages)
	out.Includes = cloneStrings(c.Includes)
	if c.Schedule != nil {
		out.Schedule = append([]ScheduleDay(nil), c.Schedule...)
	}
	if c.Reviews != nil {
		out.Reviews = append([]Review(nil), c.Reviews...)
	}
	return out
}

// CloneCourses deep-copies every record of the slice.
func CloneCourses(courses []Course) []Course {
	out := make([]Course, len(courses))
	for i := range courses {
		out[i] = courses[i].Clone()
	}
	return out
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	return append([]string(nil), values...)
}
