package flow

import "bloodlink-backend/internal/models"

// Geography indexes the reference dataset for cascading selection.
type Geography struct {
	districts []models.District
	byID      map[string]string
	upazilas  map[string][]models.Upazila
}

func NewGeography(districts []models.District, upazilas []models.Upazila) *Geography {
	g := &Geography{
		districts: districts,
		byID:      make(map[string]string, len(districts)),
		upazilas:  make(map[string][]models.Upazila),
	}
	for _, d := range districts {
		g.byID[d.ID] = d.Name
	}
	for _, u := range upazilas {
		g.upazilas[u.DistrictID] = append(g.upazilas[u.DistrictID], u)
	}
	return g
}

func (g *Geography) Districts() []models.District { return g.districts }

// DistrictName resolves a district id to its display name. Persisted
// records store the name, not the id.
func (g *Geography) DistrictName(id string) string {
	return g.byID[id]
}

func (g *Geography) UpazilasOf(districtID string) []models.Upazila {
	if districtID == "" {
		return nil
	}
	return g.upazilas[districtID]
}

// LocationSelection is the cascading district -> upazila picker. Changing
// the district clears the upazila choice.
type LocationSelection struct {
	geo        *Geography
	DistrictID string
	Upazila    string
}

func NewLocationSelection(geo *Geography) *LocationSelection {
	return &LocationSelection{geo: geo}
}

func (s *LocationSelection) SelectDistrict(id string) {
	if s.DistrictID != id {
		s.Upazila = ""
	}
	s.DistrictID = id
}

func (s *LocationSelection) SelectUpazila(name string) {
	s.Upazila = name
}

// Options are the upazilas selectable under the current district.
func (s *LocationSelection) Options() []models.Upazila {
	return s.geo.UpazilasOf(s.DistrictID)
}
