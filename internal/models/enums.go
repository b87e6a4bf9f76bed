package models

// Closed enumerated sets used by host and guest profiles. Validation compares
// against these exact spellings; anything else is a validation failure.

var Sectors = []string{"Haredi", "Dati Leumi", "Masorti", "Secular"}

var Ethnicities = []string{"Ashkenazi", "Sefardi", "Mizrahi", "Other"}

var KashrutLevels = []string{"Mehadrin", "Rabbanut", "Badatz"}

var Genders = []string{"M", "F"}

func inSet(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func ValidSector(v string) bool    { return inSet(Sectors, v) }
func ValidEthnicity(v string) bool { return inSet(Ethnicities, v) }
func ValidKashrut(v string) bool   { return inSet(KashrutLevels, v) }
func ValidGender(v string) bool    { return inSet(Genders, v) }
