package command

import "fmt"

// Station is a stop on the metro line
type Station uint8

// Stations in line order, west to east.
const (
	LambertT1 Station = iota
	LambertT2
	NorthHanley
	UMSLNorth
	UMSLSouth
	RockRoad
	Wellston
	DelmarLoop
	Shrewsbury
	Sunnen
	MaplewoodManchester
	Brentwood
	RichmondHeights
	Clayton
	Forsyth
	UCity
	Skinker
	ForestPark
	CentralWestEnd
	Cortex
	Grand
	Union
	CivicCenter
	Stadium
	EighthPine
	ConventionCenter
	LacledesLanding
	EastRiverfront
	FifthMissouri
	EmersonPark
	JJK
	Washington
	FairviewHeights
	MemorialHospital
	Swansea
	Belleville
	College
	ShilohScott

	numStations
)

// stationInfo describes one station. The first alias is the lookup key used
// by the schedule service.
type stationInfo struct {
	name     string
	schedule string
	aliases  []string
}

var stationTable = [numStations]stationInfo{
	LambertT1:           {"Lambert Terminal 1", "Lambert Airport Terminal # 1", []string{"lambert"}},
	LambertT2:           {"Lambert Terminal 2", "Lambert Airport Terminal # 2", []string{"lambert2"}},
	NorthHanley:         {"North Hanley", "North Hanley Station", []string{"hanley", "north hanley"}},
	UMSLNorth:           {"UMSL North", "UMSL North Station", []string{"umsl north", "umsl"}},
	UMSLSouth:           {"UMSL South", "UMSL South Station", []string{"umsl south"}},
	RockRoad:            {"Rock Road", "Rock Road Station", []string{"rock road"}},
	Wellston:            {"Wellston", "Wellston Station", []string{"wellston"}},
	DelmarLoop:          {"Delmar Loop", "Delmar Loop Station", []string{"delmar", "delmar loop"}},
	Shrewsbury:          {"Shrewsbury", "ShrewsburyLansdowne I44 Station", []string{"shrewsbury"}},
	Sunnen:              {"Sunnen", "Sunnen Station", []string{"sunnen"}},
	MaplewoodManchester: {"Maplewood Manchester", "MaplewoodManchester Station", []string{"maplewood"}},
	Brentwood:           {"Brentwood", "Brentwood I64 Station", []string{"brentwood"}},
	RichmondHeights:     {"Richmond Heights", "Richmond Heights Station", []string{"richmond", "richmond heights"}},
	Clayton:             {"Clayton", "Clayton Station", []string{"clayton"}},
	Forsyth:             {"Forsyth", "Forsyth Station", []string{"forsyth"}},
	UCity:               {"University City", "University CityBig Bend Station", []string{"ucity", "u city"}},
	Skinker:             {"Skinker", "Skinker Station", []string{"skinker"}},
	ForestPark:          {"Forest Park", "Forest ParkDeBaliviere Station", []string{"forest park"}},
	CentralWestEnd:      {"Central West End", "Central West End Station", []string{"cwe", "central west end"}},
	Cortex:              {"Cortex", "Cortex Station", []string{"cortex"}},
	Grand:               {"Grand", "Grand Station", []string{"grand"}},
	Union:               {"Union Station", "Union Station", []string{"union"}},
	CivicCenter:         {"Civic Center", "Civic Center Station", []string{"civic", "civic center"}},
	Stadium:             {"Stadium", "Stadium Station", []string{"stadium"}},
	EighthPine:          {"8th & Pine", "8th & Pine Station", []string{"8th pine", "8th and pine"}},
	ConventionCenter:    {"Convention Center", "Convention Center Station", []string{"convention", "convention center"}},
	LacledesLanding:     {"Laclede's Landing", "Laclede's Landing Station", []string{"lacledes", "lacledes landing"}},
	EastRiverfront:      {"East Riverfront", "East Riverfront Station", []string{"riverfront", "east riverfront"}},
	FifthMissouri:       {"5th & Missouri", "5th & Missouri Station", []string{"5th missouri", "fifth missouri"}},
	EmersonPark:         {"Emerson Park", "Emerson Park Station", []string{"emerson", "emerson park"}},
	JJK:                 {"JJK Center", "JJK Center Station", []string{"jjk", "jackie joiner"}},
	Washington:          {"Washington Park", "Washington Park Station", []string{"washington", "washington park"}},
	FairviewHeights:     {"Fairview Heights", "Fairview Heights Station", []string{"fvh", "fairview heights"}},
	MemorialHospital:    {"Memorial Hospital", "Memorial Hospital Station", []string{"memorial", "memorial hospital"}},
	Swansea:             {"Swansea", "Swansea Station", []string{"swansea"}},
	Belleville:          {"Belleville", "Belleville Station", []string{"belleville"}},
	College:             {"College", "College Station", []string{"college"}},
	ShilohScott:         {"Shiloh-Scott", "ShilohScott Station", []string{"shiloh", "shiloh scott"}},
}

// Stations returns every station in line order.
func Stations() []Station {
	out := make([]Station, numStations)
	for i := range out {
		out[i] = Station(i)
	}
	return out
}

func (s Station) valid() bool { return s < numStations }

// String returns the display name.
func (s Station) String() string {
	if !s.valid() {
		return fmt.Sprintf("Station(%d)", uint8(s))
	}
	return stationTable[s].name
}

// Key returns the lookup key sent to the schedule service.
func (s Station) Key() string {
	if !s.valid() {
		return ""
	}
	return stationTable[s].aliases[0]
}

// ScheduleName returns the column header used in the published time table.
func (s Station) ScheduleName() string {
	if !s.valid() {
		return ""
	}
	return stationTable[s].schedule
}

// Aliases returns the accepted spellings of the station.
func (s Station) Aliases() []string {
	if !s.valid() {
		return nil
	}
	return append([]string(nil), stationTable[s].aliases...)
}

func (s Station) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("invalid station %d", uint8(s))
	}
	return []byte(s.Key()), nil
}

func (s *Station) UnmarshalText(b []byte) error {
	v, ok := LookupStation(string(b))
	if !ok {
		return fmt.Errorf("unknown station %q", b)
	}
	*s = v
	return nil
}
