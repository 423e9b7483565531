package logic

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/cricsight/prediction-api/internal/models"
)

type narrativeService struct {
	rng *lockedRand
	now func() time.Time
}

// NewNarrativeService builds the text generator. Supporting facts (venue win
// rates, head-to-head tallies, strike rates) are randomized at explanation
// time and are not reconciled with the numeric prediction, so the prose can
// disagree with the stored numbers. Kept that way on purpose.
func NewNarrativeService(rng *rand.Rand) NarrativeService {
	return &narrativeService{rng: newLockedRand(rng), now: time.Now}
}

// MatchExplanation renders the standard four-point analysis paragraph for a
// match prediction.
func (s *narrativeService) MatchExplanation(pred models.Prediction, match models.Match, team1, team2 models.Team, stadium *models.Stadium) string {
	winner, loser := team2, team1
	if pred.PredictedWinnerID == team1.ID {
		winner, loser = team1, team2
	}
	winPct := int(math.Round(pred.WinProbability * 100))

	homeAdvantage := ""
	if stadium != nil && winner.HomeVenue != nil && stadium.Name == *winner.HomeVenue {
		homeAdvantage = fmt.Sprintf(
			"%s has won %d%% of their matches at %s in the last 3 seasons, compared to %s's away win rate of %d%%.",
			winner.Name, 60+s.randInt(15), stadium.Name, loser.Name, 35+s.randInt(15))
	}

	h2hWins := 10 + s.randInt(10)
	var venueEdge string
	if stadium != nil {
		venueEdge = fmt.Sprintf("in %s %s leads %d-%d", stadium.City, winner.ShortName, 6+s.randInt(5), 2+s.randInt(3))
	} else {
		venueEdge = "the recent form favors " + winner.ShortName
	}
	headToHead := fmt.Sprintf("While historically balanced (%s %d - %s %d), %s.",
		loser.ShortName, h2hWins, winner.ShortName, 20-h2hWins, venueEdge)

	pitchConditions := ""
	if stadium != nil {
		pitch := ""
		if stadium.PitchType != nil {
			pitch = *stadium.PitchType
		}
		switch pitch {
		case models.PitchSpinFriendly:
			pitchConditions = fmt.Sprintf(
				"The slower %s pitch favors %s's spin-heavy bowling attack. %s's pace-heavy attack may struggle.",
				stadium.City, winner.ShortName, loser.ShortName)
		case models.PitchBattingFriendly:
			pitchConditions = fmt.Sprintf(
				"The batting-friendly conditions at %s tend to produce high-scoring games, which suits %s's strong batting lineup.",
				stadium.City, winner.ShortName)
		default:
			pitchConditions = fmt.Sprintf(
				"The pitch conditions at %s are expected to be balanced, but %s's adaptability gives them a slight edge.",
				stadium.City, winner.ShortName)
		}
	}

	return fmt.Sprintf(`After analyzing the historical performances of both teams, our model predicts a %s victory with %d%% confidence. Here's why:

1. Home advantage: %s

2. Current form: %s players have better individual form metrics in the last 3 matches, particularly in batting (avg. team SR: %d vs %d).

3. Head-to-head record: %s

4. Pitch conditions: %s

Note: This prediction accounts for all available data as of %s, including player availability and recent form.`,
		winner.Name, winPct, homeAdvantage,
		winner.Name, 140+s.randInt(20), 130+s.randInt(15),
		headToHead, pitchConditions,
		s.now().Format("1/2/2006"))
}

// PlayerExplanation renders role-conditioned batting and bowling clauses
// plus a closing confidence sentence.
func (s *narrativeService) PlayerExplanation(pred models.PlayerPerformancePrediction, player models.Player) string {
	var sb strings.Builder

	if pred.PredictedRunsScored != nil && *pred.PredictedRunsScored > 0 {
		sb.WriteString(s.battingClause(player))
	}

	if pred.PredictedWickets != nil && *pred.PredictedWickets > 0 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(s.bowlingClause(player))
	}

	confidence := int(math.Round(pred.Confidence * 100))
	if pred.Confidence == 0 {
		confidence = 70
	}
	fmt.Fprintf(&sb, " Our model has %d%% confidence in this prediction based on analysis of %s's performance in similar conditions and against similar opposition.",
		confidence, player.Name)

	return sb.String()
}

func (s *narrativeService) battingClause(player models.Player) string {
	switch player.Name {
	case "MS Dhoni":
		return "MS Dhoni has been in excellent form in the death overs, with a strike rate of over 180 in the last 3 matches. His experience and ability to finish games make him a key player for CSK."
	case "Rohit Sharma":
		return "Rohit Sharma has been consistent but not explosive in recent matches, with a strike rate around 125. As the captain, he typically plays the anchor role, which is reflected in our prediction."
	}
	switch player.Role {
	case models.RoleBatsman:
		return fmt.Sprintf("As a specialist batsman, %s is expected to contribute significantly to the team's total. Based on recent performances, we predict a steady innings with a strike rate around %d.",
			player.Name, 120+s.randInt(30))
	case models.RoleAllRounder:
		return fmt.Sprintf("%s's all-round abilities make them valuable in the middle order. We expect a quick-fire innings with a focus on rotating the strike and occasional boundaries.", player.Name)
	}
	return fmt.Sprintf("%s typically bats lower in the order but can contribute valuable runs, especially in the death overs.", player.Name)
}

func (s *narrativeService) bowlingClause(player models.Player) string {
	switch player.Name {
	case "Jasprit Bumrah":
		return "Jasprit Bumrah has been MI's best bowler, consistently taking wickets in all phases of the game. His yorkers and slower balls make him particularly effective in the death overs."
	case "Ravindra Jadeja":
		return "Ravindra Jadeja's left-arm spin is expected to be effective, especially if the pitch offers any assistance. His accuracy and variations make him a constant threat throughout the innings."
	}
	if player.Role == models.RoleBowler {
		return fmt.Sprintf("As a specialist bowler, %s is likely to complete their full quota of 4 overs. Based on their recent form and the expected pitch conditions, we predict a economical spell with regular wicket-taking opportunities.", player.Name)
	}
	return fmt.Sprintf("%s provides a useful bowling option for the captain, particularly when matchups favor their bowling style.", player.Name)
}

// chatIntent maps trigger keywords to a canned analyst response. Intents
// are checked in order; the first whose keywords match wins.
type chatIntent struct {
	keywords []string
	response string
}

var chatIntents = []chatIntent{
	{
		keywords: []string{"who will win", "match prediction", "predict winner"},
		response: "Based on our analysis of recent form, head-to-head records, and pitch conditions, CSK has a 62% chance of winning today's match against MI. Their strong home record at Chennai and current team form gives them an advantage.",
	},
	{
		keywords: []string{"top scorer", "most runs"},
		response: "Based on our ML model, MS Dhoni is predicted to be the top scorer for CSK with approximately 42 runs off 23 balls. For MI, Rohit Sharma is predicted to score 38 runs. This prediction is based on recent form, match-up analysis against the opposition bowlers, and historical performance at this venue.",
	},
	{
		keywords: []string{"win probability", "chances of winning"},
		response: "CSK's 62% win probability is driven by several key factors: home advantage at Chennai Stadium (68% win rate), superior team form based on recent matches, better head-to-head record at this venue, team composition better suited to pitch conditions, and key MI players showing inconsistent recent form.",
	},
	{
		keywords: []string{"bowling", "wickets", "bowler"},
		response: "Jasprit Bumrah is predicted to be the most effective bowler in today's match with figures of 3-28 in 4 overs. His ability to bowl yorkers in the death overs and his recent form (7 wickets in last 3 matches) make him MI's biggest bowling threat.",
	},
	{
		keywords: []string{"pitch", "conditions", "stadium"},
		response: "The Chennai pitch is expected to be slightly on the slower side, favoring spin bowlers. Teams batting first have won 60% of matches here this season. The average first innings score is around 175, and the team winning the toss is likely to bat first.",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		response: "Hello! I'm your IPL Cricket Analyst. Ask me anything about match predictions, player stats, or team analysis. I can provide insights based on our ML models and historical data.",
	},
}

// ChatReply answers a free-text question by keyword intent matching,
// falling back to an echo-style prompt for more specific questions.
func (s *narrativeService) ChatReply(message string) string {
	lower := strings.ToLower(message)

	for _, intent := range chatIntents {
		for _, kw := range intent.keywords {
			if strings.Contains(lower, kw) {
				return intent.response
			}
		}
	}

	truncated := lower
	if len(truncated) > 30 {
		truncated = truncated[:30]
	}
	return "I'm analyzing the data for your question about " + truncated +
		"... Based on our models, I can tell you that team performance depends on many factors including player form, match conditions, and historical data. Could you ask a more specific question about match predictions, player performance, or team analysis?"
}

func (s *narrativeService) randInt(n int) int {
	return int(math.Floor(s.rng.Float64() * float64(n)))
}
