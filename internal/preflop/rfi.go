package preflop

// RFIShortStack is the depth below which late seats open by jamming
const RFIShortStack = 12

var rfiShortJam = []Rule{
	when("short stack: any pair jams", pairFrom(2), AllIn),
	when("short stack: any ace or K8+ jams", anyOf(highFrom(14), highWith(13, 8)), AllIn),
	when("short stack: suited T6+ jams", suited(allOf(highFrom(10), lowFrom(6))), AllIn),
}

var rfiEarly = []Rule{
	when("77+ opens", pairFrom(7), Raise),
	when("small pairs fold", anyPair, Fold),
	when("A2s+ and KTs+ open", suited(anyOf(highWith(14, 2), highWith(13, 10))), Raise),
	when("other suited hands fold", anySuited, Fold),
	when("AQo+ opens", highWith(14, 12), Raise),
}

var rfiMiddle = []Rule{
	when("55+ opens", pairFrom(5), Raise),
	when("small pairs fold", anyPair, Fold),
	when("A2s+, K8s+ and Q9s+ open", suited(anyOf(highWith(14, 2), highWith(13, 8), highWith(12, 9))), Raise),
	when("other suited hands fold", anySuited, Fold),
	when("AJo+ opens", highWith(14, 11), Raise),
}

var rfiCutoff = []Rule{
	when("every pair opens", anyPair, Raise),
	when("A2s+, Q5s+ and J7s+ open", suited(anyOf(highWith(14, 2), allOf(highFrom(12), lowFrom(5)), highWith(11, 7))), Raise),
	when("other suited hands fold", anySuited, Fold),
	when("ATo+ and KJo+ open", anyOf(highWith(14, 10), highWith(13, 11)), Raise),
}

var rfiButton = []Rule{
	when("every pair opens", anyPair, Raise),
	// The kicker clause admits every suited hand.
	when("T-high suited or any suited kicker opens", suited(anyOf(highFrom(10), lowFrom(2))), Raise),
	when("other suited hands fold", anySuited, Fold),
	when("Kxo, Q7o+ and J8o+ open", anyOf(highFrom(13), highWith(12, 7), highWith(11, 8)), Raise),
}

var rfiSmallBlind = []Rule{
	when("any pair, any suited or J-high opens", anyOf(anyPair, anySuited, highFrom(11)), Raise),
}

// rfiTables holds the deep and short variants for every seat
var rfiTables = func() map[Position][2]Table {
	seats := map[Position][]Rule{
		UTG: rfiEarly, UTG1: rfiEarly, UTG2: rfiEarly,
		LJ: rfiMiddle, HJ: rfiMiddle,
		CO:  rfiCutoff,
		BTN: rfiButton,
		SB:  rfiSmallBlind,
		BB:  nil,
	}
	out := make(map[Position][2]Table, len(seats))
	for seat, rules := range seats {
		deep := newTable("RFI "+seat.String(), Fold, rules)
		short := deep
		if seat.Late() {
			short = newTable("RFI "+seat.String()+" short", Fold, rfiShortJam, rules)
		}
		out[seat] = [2]Table{deep, short}
	}
	return out
}()

func rfiTable(seat Position, stack int) Table {
	variants, ok := rfiTables[seat]
	if !ok {
		return newTable("RFI unknown seat", Fold)
	}
	if stack < RFIShortStack {
		return variants[1]
	}
	return variants[0]
}
