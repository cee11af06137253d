package preflop

// Vs3BetShortStack is the depth below which the opener jams or folds to a 3-bet
const Vs3BetShortStack = 25

func vs3BetShort(late bool) []Rule {
	var rules []Rule
	rules = append(rules, when("99+ jams", pairFrom(9), AllIn))
	rules = append(rules, only(late, when("77+ jams over a late 3-bet", pairFrom(7), AllIn))...)
	rules = append(rules,
		when("AQ+ jams", highWith(14, 12), AllIn),
		when("ATs+ jams", suited(highWith(14, 10)), AllIn),
	)
	rules = append(rules, only(late,
		when("AJo jams over a late 3-bet", highWith(14, 11), AllIn),
		when("KQs jams over a late 3-bet", suited(highWith(13, 12)), AllIn),
	)...)
	return rules
}

func vs3BetDeep(late bool) []Rule {
	var rules []Rule
	rules = append(rules,
		when("QQ+ 4-bets", pairFrom(12), Raise),
		when("77+ calls", pairFrom(7), Call),
		when("AK calls", highWith(14, 13), Call),
		when("AJs+ calls", suited(highWith(14, 11)), Call),
	)
	rules = append(rules, only(late,
		when("55+ calls a late 3-bet", pairFrom(5), Call),
		when("AQo calls a late 3-bet", highWith(14, 12), Call),
		when("A9s+ calls a late 3-bet", suited(highWith(14, 9)), Call),
		when("KJs+ calls a late 3-bet", suited(highWith(13, 11)), Call),
	)...)
	return rules
}

// vs3BetTables is indexed by [short][late]
var vs3BetTables = func() [2][2]Table {
	var out [2][2]Table
	for i, late := range []bool{false, true} {
		suffix := ""
		if late {
			suffix = " vs late 3-bet"
		}
		out[0][i] = newTable("vs 3bet"+suffix, Fold, vs3BetDeep(late))
		out[1][i] = newTable("vs 3bet short"+suffix, Fold, vs3BetShort(late))
	}
	return out
}()

func vs3BetTable(threeBettor Position, stack int) Table {
	short, late := 0, 0
	if stack < Vs3BetShortStack {
		short = 1
	}
	if threeBettor.Late() {
		late = 1
	}
	return vs3BetTables[short][late]
}
