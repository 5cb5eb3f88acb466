package models

// Geography reference rows. The upstream dataset keys everything with
// string ids, and upazilas point at their district through district_id.
type District struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type Upazila struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	DistrictID string `bson:"district_id" json:"district_id"`
}
