package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the /add-user payload. Role and status are not taken
// from the caller: registration always produces an active donor.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Image      string `json:"image"`
	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	Password   string `json:"password"`
}
