package preflop

// VsOpenShortStack is the depth below which non-BB defenders jam or fold
const VsOpenShortStack = 15

func vsOpenShort(late bool) []Rule {
	var rules []Rule
	rules = append(rules, when("77+ jams", pairFrom(7), AllIn))
	rules = append(rules, only(late, when("55+ jams over a late open", pairFrom(5), AllIn))...)
	rules = append(rules,
		when("any ace jams", highFrom(14), AllIn),
		when("KTs+ jams", suited(highWith(13, 10)), AllIn),
		when("KQo jams", highWith(13, 12), AllIn),
	)
	rules = append(rules, only(late,
		when("K8s+ jams over a late open", suited(highWith(13, 8)), AllIn),
		when("QTs+ jams over a late open", suited(highWith(12, 10)), AllIn),
	)...)
	return rules
}

func vsOpenBigBlind(late bool) []Rule {
	var rules []Rule
	rules = append(rules,
		when("JJ+ 3-bets", pairFrom(11), Raise),
		when("AQ+ 3-bets", highWith(14, 12), Raise),
	)
	rules = append(rules, only(late,
		when("99+ 3-bets a late open", pairFrom(9), Raise),
		when("ATs+ 3-bets a late open", suited(highWith(14, 10)), Raise),
	)...)
	rules = append(rules, when("pairs, suited, T-high and 97+ defend",
		anyOf(anyPair, anySuited, highFrom(10), highWith(9, 7)), Call))
	rules = append(rules, only(late,
		when("86+ defends a late open", allOf(highFrom(8), lowFrom(6)), Call),
	)...)
	return rules
}

func vsOpenField(late bool) []Rule {
	var rules []Rule
	rules = append(rules,
		when("TT+ 3-bets", pairFrom(10), Raise),
		when("AK 3-bets", highWith(14, 13), Raise),
	)
	rules = append(rules, only(late,
		when("99+ 3-bets a late open", pairFrom(9), Raise),
		when("AQ 3-bets a late open", highWith(14, 12), Raise),
	)...)
	rules = append(rules,
		when("66+ flats", pairFrom(6), Call),
		when("ATs+ flats", suited(highWith(14, 10)), Call),
	)
	rules = append(rules, only(late,
		when("any pair flats a late open", anyPair, Call),
		when("any suited ace flats a late open", suited(highWith(14, 2)), Call),
		when("KTs+ flats a late open", suited(highWith(13, 10)), Call),
		when("AJo flats a late open", highWith(14, 11), Call),
	)...)
	return rules
}

// vsOpenTables is indexed by [band][late]: band 0 short, 1 big blind, 2 everyone else
var vsOpenTables = func() [3][2]Table {
	var out [3][2]Table
	for i, late := range []bool{false, true} {
		suffix := ""
		if late {
			suffix = " vs late open"
		}
		out[0][i] = newTable("vs Open short"+suffix, Fold, vsOpenShort(late))
		out[1][i] = newTable("vs Open BB"+suffix, Fold, vsOpenBigBlind(late))
		out[2][i] = newTable("vs Open"+suffix, Fold, vsOpenField(late))
	}
	return out
}()

func vsOpenTable(hero, opener Position, stack int) Table {
	late := 0
	if opener.Late() {
		late = 1
	}
	switch {
	case stack < VsOpenShortStack && hero != BB:
		return vsOpenTables[0][late]
	case hero == BB:
		return vsOpenTables[1][late]
	default:
		return vsOpenTables[2][late]
	}
}
