package preflop

// Vs4BetDeepStack is the depth above which QQ continues by calling a 4-bet
const Vs4BetDeepStack = 50

var vs4BetCore = []Rule{
	when("KK+ jams", pairFrom(13), AllIn),
	when("AK jams", func(s Shape) bool { return s.High == 14 && s.Low == 13 }, AllIn),
}

var vs4BetTables = [2]Table{
	newTable("vs 4bet", Fold, vs4BetCore),
	newTable("vs 4bet deep", Fold, vs4BetCore, []Rule{
		when("QQ calls deep", func(s Shape) bool { return s.Pair && s.High == 12 }, Call),
	}),
}

func vs4BetTable(stack int) Table {
	if stack > Vs4BetDeepStack {
		return vs4BetTables[1]
	}
	return vs4BetTables[0]
}
