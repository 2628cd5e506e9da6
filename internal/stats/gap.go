package stats

// ComputeGap returns the subject's advantage over the opponent using the same
// orientation as WinningCharacteristics, so the result can be compared directly
// with the gaps stored on past games.
func ComputeGap(subject, opponent Team) (StatGap, error) {
	if subject.Profile == nil {
		return StatGap{}, &MissingTeamStatsError{TeamID: subject.ID}
	}
	if opponent.Profile == nil {
		return StatGap{}, &MissingTeamStatsError{TeamID: opponent.ID}
	}
	s, o := subject.Profile, opponent.Profile
	return StatGap{
		WinningPercentage:   Round(s.WinningPercentage-o.WinningPercentage, PercentageDigits),
		OffensiveEfficiency: Round(s.OffensiveEfficiency-o.OffensiveEfficiency, EfficiencyDigits),
		OffensiveRank:       o.OffensiveRank - s.OffensiveRank,
		DefensiveEfficiency: Round(o.DefensiveEfficiency-s.DefensiveEfficiency, EfficiencyDigits),
		DefensiveRank:       o.DefensiveRank - s.DefensiveRank,
	}, nil
}
