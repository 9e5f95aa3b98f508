package models

// States is the canonical enumeration of the 30 states covered by the
// reference dataset, in dataset order. Leaderboard tie-breaks follow this
// order, so it must stay stable.
var States = []string{
	"Andhra Pradesh",
	"Arunachal Pradesh",
	"Assam",
	"Bihar",
	"Chhattisgarh",
	"Goa",
	"Gujarat",
	"Haryana",
	"Himachal Pradesh",
	"Jammu & Kashmir",
	"Jharkhand",
	"Karnataka",
	"Kerala",
	"Madhya Pradesh",
	"Maharashtra",
	"Manipur",
	"Meghalaya",
	"Mizoram",
	"Nagaland",
	"Odisha",
	"Punjab",
	"Rajasthan",
	"Sikkim",
	"Tamil Nadu",
	"Telangana",
	"Tripura",
	"Uttar Pradesh",
	"Uttarakhand",
	"West Bengal",
	"Delhi",
}

var stateIndex = buildStateIndex()

func buildStateIndex() map[string]int {
	idx := make(map[string]int, len(States))
	for i, s := range States {
		idx[s] = i
	}
	return idx
}

// StateIndex returns the enumeration position of a state name, or false if
// the name is not part of the canonical set.
func StateIndex(name string) (int, bool) {
	i, ok := stateIndex[name]
	return i, ok
}
