package models

// CrimeCode identifies one of the seven statistic columns of the reference
// dataset. The short codes follow the NCRB column names used by the dataset
// (K&A = kidnapping & abduction, DD = dowry deaths, AoW/AoM = assault on
// women/minors, DV = domestic violence, WT = women trafficking).
type CrimeCode string

const (
	CrimeRape             CrimeCode = "Rape"
	CrimeKidnapping       CrimeCode = "K&A"
	CrimeDowryDeaths      CrimeCode = "DD"
	CrimeAssaultOnWomen   CrimeCode = "AoW"
	CrimeAssaultOnMinors  CrimeCode = "AoM"
	CrimeDomesticViolence CrimeCode = "DV"
	CrimeTrafficking      CrimeCode = "WT"
)

// CrimeCodes lists every recognized code in canonical column order.
var CrimeCodes = []CrimeCode{
	CrimeRape,
	CrimeKidnapping,
	CrimeDowryDeaths,
	CrimeAssaultOnWomen,
	CrimeAssaultOnMinors,
	CrimeDomesticViolence,
	CrimeTrafficking,
}

// ParseCrimeCode validates a query-string crime identifier.
func ParseCrimeCode(s string) (CrimeCode, bool) {
	for _, c := range CrimeCodes {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
