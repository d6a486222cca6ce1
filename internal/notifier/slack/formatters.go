package slack

import (
	"fmt"

	"github.com/mauv0809/swiss-tournament/internal/tournament"
	"github.com/slack-go/slack"
)

func plainSection(text string) slack.Block {
	return slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, true, false), nil, nil)
}

// formatStandings creates a Slack message listing players by wins.
func formatStandings(standings []tournament.Standing) slack.Message {
	blocks := make([]slack.Block, 0, len(standings)+1)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Tournament Standings 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(standings) == 0 {
		blocks = append(blocks, plainSection("No players registered yet."))
		return slack.NewBlockMessage(blocks...)
	}

	for i, st := range standings {
		var medal string
		switch i {
		case 0:
			medal = "🥇 "
		case 1:
			medal = "🥈 "
		case 2:
			medal = "🥉 "
		}
		text := fmt.Sprintf("%d. %s%s\n> Wins: %d | Played: %d", i+1, medal, st.Name, st.Wins, st.Matches)
		blocks = append(blocks, plainSection(text))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPairings creates a Slack message announcing the next round.
func formatPairings(round tournament.Round) slack.Message {
	blocks := make([]slack.Block, 0, len(round.Pairings)+3)

	headerText := slack.NewTextBlockObject("plain_text", "⚔️ Next Round Pairings", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(round.Pairings) == 0 && round.Bye == nil {
		blocks = append(blocks, plainSection("No players to pair."))
		return slack.NewBlockMessage(blocks...)
	}

	for i, p := range round.Pairings {
		blocks = append(blocks, plainSection(fmt.Sprintf("Table %d: %s vs %s", i+1, p.Name1, p.Name2)))
	}

	if round.Bye != nil {
		byeText := fmt.Sprintf("%s sits out this round (bye).", round.Bye.Name)
		blocks = append(blocks, slack.NewDividerBlock())
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", byeText, true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

func formatError(message string) slack.Message {
	return slack.NewBlockMessage(plainSection("⚠️ " + message))
}
