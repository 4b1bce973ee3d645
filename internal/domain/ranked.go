package domain

// rankedTier is one entry of the fixed ranked point table.
type rankedTier struct {
	MinScore int
	Label    string
}

// rankedTiers is the 22-tier ranked ladder, lowest first. Labels are derived
// by thresholding a player's ranked score against this table.
var rankedTiers = []rankedTier{
	{0, "Bronze I"},
	{250, "Bronze II"},
	{500, "Bronze III"},
	{750, "Silver I"},
	{1000, "Silver II"},
	{1250, "Silver III"},
	{1500, "Gold I"},
	{1750, "Gold II"},
	{2000, "Gold III"},
	{2250, "Diamond I"},
	{2500, "Diamond II"},
	{2750, "Diamond III"},
	{3000, "Mythic I"},
	{3250, "Mythic II"},
	{3500, "Mythic III"},
	{3750, "Legendary I"},
	{4000, "Legendary II"},
	{4250, "Legendary III"},
	{4500, "Masters I"},
	{6000, "Masters II"},
	{7500, "Masters III"},
	{9000, "Pro"},
}

// RankLabelForScore returns the ranked tier label for a ranked score.
// Scores below the table floor map to the lowest tier.
func RankLabelForScore(score int) string {
	label := rankedTiers[0].Label
	for _, tier := range rankedTiers {
		if score < tier.MinScore {
			break
		}
		label = tier.Label
	}
	return label
}
