package enrollment

// courseTitles is a static id-to-title table standing in for a live
// course-service call. Keeping the lookup local means enrollment keeps
// working when the catalog is unreachable, at the cost of stale titles.
var courseTitles = map[string]string{
	"1": "AWS Fundamentals",
	"2": "Docker & Kubernetes",
	"3": "Cloud Security Best Practices",
}

const unknownCourseTitle = "Unknown Course"

// CourseTitle resolves a course id to its display title.
func CourseTitle(courseID string) string {
	if title, ok := courseTitles[courseID]; ok {
		return title
	}
	return unknownCourseTitle
}
