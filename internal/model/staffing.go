package model

// Post is a salary-bearing role staff members are hired into.
type Post struct {
	ID          uint64 `json:"id"`           // posts.id
	Title       string `json:"title"`        // posts.title
	SalaryCents int64  `json:"salary_cents"` // posts.salary_cents
}

// Staff is an employee linked to a post.
type Staff struct {
	ID         uint64 `json:"id"`          // staff.id
	FirstName  string `json:"first_name"`  // staff.first_name
	LastName   string `json:"last_name"`   // staff.last_name
	FatherName string `json:"father_name"` // staff.father_name
	Phone      string `json:"phone"`       // staff.phone
	PostID     uint64 `json:"post_id"`     // staff.post_id
}

// Shift is a timed assignment of an employee to work a concert.
type Shift struct {
	ID        uint64 `json:"id"`         // shifts.id
	Hours     string `json:"hours"`      // shifts.hours (HH:MM:SS duration)
	StaffID   uint64 `json:"staff_id"`   // shifts.staff_id
	ConcertID uint64 `json:"concert_id"` // shifts.concert_id
}
