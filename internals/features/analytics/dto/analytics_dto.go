package dto

import "github.com/google/uuid"

// ringkasan platform untuk dashboard admin
type DashboardResponse struct {
	TotalStudents    int64 `json:"total_students"`
	TotalAdmins      int64 `json:"total_admins"`
	ActiveUsers      int64 `json:"active_users"`
	TotalCourses     int64 `json:"total_courses"`
	PublishedCourses int64 `json:"published_courses"`
	TotalEnrollments int64 `json:"total_enrollments"`
	ActiveLearners   int64 `json:"active_learners"`
	Completions      int64 `json:"completions"`
	TotalReviews     int64 `json:"total_reviews"`

	// pendapatan dari payment PAID, dalam rupiah
	TotalRevenue   int64 `json:"total_revenue"`
	PaidPayments   int64 `json:"paid_payments"`
	PendingRevenue int64 `json:"pending_revenue"`
}

// satu baris per kursus; semua angka dihitung di DB (GROUP BY)
type CourseStatRow struct {
	CourseID        uuid.UUID `json:"course_id" gorm:"column:course_id"`
	CourseTitle     string    `json:"course_title" gorm:"column:course_title"`
	CourseStatus    string    `json:"course_status" gorm:"column:course_status"`
	CoursePrice     int64     `json:"course_price" gorm:"column:course_price"`
	EnrollmentCount int64     `json:"enrollment_count" gorm:"column:enrollment_count"`
	CompletionCount int64     `json:"completion_count" gorm:"column:completion_count"`
	AvgProgress     *float64  `json:"avg_progress" gorm:"column:avg_progress"`
	AvgRating       *float64  `json:"avg_rating" gorm:"column:avg_rating"`
	ReviewCount     int64     `json:"review_count" gorm:"column:review_count"`
	Revenue         int64     `json:"revenue" gorm:"column:revenue"`
}

// agregat harian pendaftaran, untuk chart
type EnrollmentTrendRow struct {
	Day   string `json:"day" gorm:"column:day"`
	Count int64  `json:"count" gorm:"column:count"`
}
