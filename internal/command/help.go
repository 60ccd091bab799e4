package command

import "strings"

// ScheduleHelp describes the arrival command and lists every station with
// the spellings it accepts.
func ScheduleHelp() string {
	var b strings.Builder
	b.WriteString("Next Arrival:\n")
	b.WriteString("Get the next arriving train on the STL Metro\n")
	b.WriteString("Type East or West followed by a station name e.g. \"West fvh\"\n")
	b.WriteString("station names:\n")
	for _, s := range Stations() {
		aliases := stationTable[s].aliases
		b.WriteString("  ")
		b.WriteString(aliases[0])
		if len(aliases) > 1 {
			b.WriteString(" (")
			b.WriteString(strings.Join(aliases[1:], ", "))
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SpendingHelp describes the spending tracker commands.
func SpendingHelp() string {
	names := make([]string, 0, numCategories)
	for _, c := range Categories() {
		names = append(names, c.Alias())
	}
	return "Spending Tracker:\n" +
		"spent total\n" +
		"spent reset\n" +
		"spent 10.67\n" +
		"spent 10.67 grocery\n" +
		"budget 5000\n" +
		"categories: " + strings.Join(names, ", ") + "\n"
}
