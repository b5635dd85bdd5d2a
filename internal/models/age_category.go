package models

// AgeCategory splits the whole catalog into two independent browsing contexts.
type AgeCategory string

const (
	AgeCategoryChildren AgeCategory = "children"
	AgeCategoryAdults   AgeCategory = "adults"
)

func (a AgeCategory) IsValid() bool {
	return a == AgeCategoryChildren || a == AgeCategoryAdults
}

func (a AgeCategory) String() string {
	return string(a)
}

// OrDefault returns def when a is not set.
func (a AgeCategory) OrDefault(def AgeCategory) AgeCategory {
	if a == "" {
		return def
	}
	return a
}
