package candidate

// Evaluate assigns a review status. A record is ACTIVE only when it has a
// name, title, current company, location, some employment history, and
// some education; anything less needs review.
func Evaluate(r Record) Status {
	if r.FullName == "" || r.JobTitle == "" || r.CurrentCompany == "" || r.Location == "" {
		return StatusNeedsReview
	}
	if len(r.Companies) == 0 && r.CurrentCompany == "" {
		return StatusNeedsReview
	}
	if len(r.Universities) == 0 && r.Degrees == "" {
		return StatusNeedsReview
	}
	return StatusActive
}
