package preflop

// BlindDefenseShortStack is the depth below which the blinds jam over a steal
const BlindDefenseShortStack = 15

var blindShortJam = []Rule{
	when("55+ jams", pairFrom(5), AllIn),
	when("any ace or K9+ jams", anyOf(highFrom(14), highWith(13, 9)), AllIn),
	when("Q-high suited or J7s+ jams", suited(anyOf(highFrom(12), highWith(11, 7))), AllIn),
}

var blindDefenseTables = struct {
	shortBB, shortSB, deepBB, deepSB Table
}{
	// The big blind is priced into calling nearly everything short.
	shortBB: newTable("Blind Defense BB short", Call, blindShortJam),
	shortSB: newTable("Blind Defense SB short", Fold, blindShortJam),
	deepBB: newTable("Blind Defense BB", Fold, []Rule{
		when("J-high, pairs and suited hands defend", anyOf(highFrom(11), anyPair, anySuited), Call),
	}),
	deepSB: newTable("Blind Defense SB", Fold, []Rule{
		when("K-high or Q-high suited 3-bets", anyOf(highFrom(13), suited(highWith(12, 2))), Raise),
	}),
}

func blindDefenseTable(seat Position, stack int) Table {
	switch {
	case stack < BlindDefenseShortStack && seat == BB:
		return blindDefenseTables.shortBB
	case stack < BlindDefenseShortStack:
		return blindDefenseTables.shortSB
	case seat == BB:
		return blindDefenseTables.deepBB
	default:
		return blindDefenseTables.deepSB
	}
}
