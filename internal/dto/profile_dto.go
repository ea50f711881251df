package dto

// LinkLeetCodeRequest carries the LeetCode identity posted by the browser
// extension after the user logs in to the judge.
type LinkLeetCodeRequest struct {
	Username      string `json:"username" validate:"required,min=1,max=255"`
	SessionCookie string `json:"sessionCookie" validate:"required"`
}
