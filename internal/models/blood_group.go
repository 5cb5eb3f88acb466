package models

// BloodGroups are the 8 canonical ABO/Rh values.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func IsBloodGroup(s string) bool {
	for _, g := range BloodGroups {
		if g == s {
			return true
		}
	}
	return false
}
