// Package flow holds the client-side logic of the donation-request
// lifecycle: status filtering, the confirm action, keyed collection
// patching after server-confirmed writes, and the create-request form with
// its cascading district/upazila selection. Everything here is pure except
// the orchestrations that take an API value explicitly.
package flow

import "bloodlink-backend/internal/models"

// FilterAll is the passthrough value of the status filter.
const FilterAll = "all"

// FilterByStatus keeps the requests whose donationStatus exactly matches
// the filter. Backend order is preserved; no sorting happens here.
func FilterByStatus(reqs []models.DonationRequest, filter string) []models.DonationRequest {
	if filter == FilterAll {
		return reqs
	}
	out := []models.DonationRequest{}
	for _, r := range reqs {
		if r.DonationStatus == filter {
			out = append(out, r)
		}
	}
	return out
}

// DonorSearch narrows the public feed by any combination of blood group,
// district and upazila. Empty criteria match everything.
type DonorSearch struct {
	BloodGroup string
	District   string
	Upazila    string
}

func (s DonorSearch) IsEmpty() bool {
	return s.BloodGroup == "" && s.District == "" && s.Upazila == ""
}

func (s DonorSearch) Apply(reqs []models.DonationRequest) []models.DonationRequest {
	if s.IsEmpty() {
		return nil
	}
	out := []models.DonationRequest{}
	for _, r := range reqs {
		if s.BloodGroup != "" && r.BloodGroup != s.BloodGroup {
			continue
		}
		if s.District != "" && r.RecipientDistrict != s.District {
			continue
		}
		if s.Upazila != "" && r.RecipientUpazila != s.Upazila {
			continue
		}
		out = append(out, r)
	}
	return out
}
