package preflop

// PushFoldMinStack and PushFoldMaxStack bound the hero stack in Push/Fold drills
const (
	PushFoldMinStack = 8
	PushFoldMaxStack = 14
)

var pushFoldTable = newTable("Push/Fold", Fold, []Rule{
	when("any pair jams", anyPair, AllIn),
	when("any ace jams", highFrom(14), AllIn),
	when("K5+ or any suited king jams", func(s Shape) bool { return s.High == 13 && (s.Low >= 5 || s.Suited) }, AllIn),
	when("T-high suited jams", suited(highFrom(10)), AllIn),
	when("Q9+ jams", highWith(12, 9), AllIn),
})
