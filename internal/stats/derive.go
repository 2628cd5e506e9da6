package stats

// Derive computes the winner-oriented characteristics of an enriched game and stores them on the game.
func Derive(game *EnrichedGame) error {
	if game.Home.WonGame == game.Away.WonGame {
		reason := "no team won"
		if game.Home.WonGame {
			reason = "both teams won"
		}
		return &DataIntegrityError{GameID: game.GameID, Date: game.Date, Reason: reason}
	}

	winner, loser := game.Winner()
	if winner.Profile == nil {
		return &MissingTeamStatsError{TeamID: winner.ID, Date: game.Date}
	}
	if loser.Profile == nil {
		return &MissingTeamStatsError{TeamID: loser.ID, Date: game.Date}
	}
	if winner.Points < loser.Points {
		return &DataIntegrityError{GameID: game.GameID, Date: game.Date, Reason: "winner scored fewer points than loser"}
	}

	w, l := winner.Profile, loser.Profile
	game.Characteristics = &WinningCharacteristics{
		WasHomeTeam: game.Home.WonGame,

		MoreOffensivelyEfficient: w.OffensiveEfficiency > l.OffensiveEfficiency,
		OffensiveEfficiencyGap:   Round(w.OffensiveEfficiency-l.OffensiveEfficiency, characteristicDigits),

		// lower is better on defense
		MoreDefensivelyEfficient: w.DefensiveEfficiency < l.DefensiveEfficiency,
		DefensiveEfficiencyGap:   Round(l.DefensiveEfficiency-w.DefensiveEfficiency, characteristicDigits),

		HadHigherWinningPercentage: w.WinningPercentage > l.WinningPercentage,
		WinningPercentageGap:       Round(w.WinningPercentage-l.WinningPercentage, characteristicDigits),

		PointGap: winner.Points - loser.Points,
	}
	return nil
}
