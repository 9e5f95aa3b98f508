package models

// CrimeRecord is one row of the reference dataset: crime counts against
// women for a single state and year. Loaded once at startup and never
// mutated afterwards.
type CrimeRecord struct {
	ID               uint   `gorm:"primaryKey;column:id" json:"id"`
	State            string `gorm:"column:state;size:64;not null;index:idx_state_year,unique" json:"state"`
	Year             int    `gorm:"column:year;not null;index:idx_state_year,unique" json:"year"`
	Rape             int    `gorm:"column:rape;not null" json:"rape"`
	Kidnapping       int    `gorm:"column:kidnapping;not null" json:"kidnapping"`
	DowryDeaths      int    `gorm:"column:dowry_deaths;not null" json:"dowry_deaths"`
	AssaultOnWomen   int    `gorm:"column:assault_on_women;not null" json:"assault_on_women"`
	AssaultOnMinors  int    `gorm:"column:assault_on_minors;not null" json:"assault_on_minors"`
	DomesticViolence int    `gorm:"column:domestic_violence;not null" json:"domestic_violence"`
	Trafficking      int    `gorm:"column:trafficking;not null" json:"trafficking"`
}

func (CrimeRecord) TableName() string {
	return "crime_records"
}

// Counts returns the seven category counts as a vector in canonical
// crime-code order (Rape, K&A, DD, AoW, AoM, DV, WT).
func (r CrimeRecord) Counts() CrimeCounts {
	return CrimeCounts{
		Rape:             float64(r.Rape),
		Kidnapping:       float64(r.Kidnapping),
		DowryDeaths:      float64(r.DowryDeaths),
		AssaultOnWomen:   float64(r.AssaultOnWomen),
		AssaultOnMinors:  float64(r.AssaultOnMinors),
		DomesticViolence: float64(r.DomesticViolence),
		Trafficking:      float64(r.Trafficking),
	}
}

// CountFor returns the count for a single crime category.
func (r CrimeRecord) CountFor(code CrimeCode) float64 {
	switch code {
	case CrimeRape:
		return float64(r.Rape)
	case CrimeKidnapping:
		return float64(r.Kidnapping)
	case CrimeDowryDeaths:
		return float64(r.DowryDeaths)
	case CrimeAssaultOnWomen:
		return float64(r.AssaultOnWomen)
	case CrimeAssaultOnMinors:
		return float64(r.AssaultOnMinors)
	case CrimeDomesticViolence:
		return float64(r.DomesticViolence)
	case CrimeTrafficking:
		return float64(r.Trafficking)
	}
	return 0
}

// CrimeCounts is a fixed-size vector of the seven category counts, used as
// the scoring input so every category is always accounted for.
type CrimeCounts struct {
	Rape             float64
	Kidnapping       float64
	DowryDeaths      float64
	AssaultOnWomen   float64
	AssaultOnMinors  float64
	DomesticViolence float64
	Trafficking      float64
}

// Total sums all seven categories.
func (c CrimeCounts) Total() float64 {
	return c.Rape + c.Kidnapping + c.DowryDeaths + c.AssaultOnWomen +
		c.AssaultOnMinors + c.DomesticViolence + c.Trafficking
}
