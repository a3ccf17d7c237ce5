package analysis

// Lexicon-based polarity/subjectivity scoring over normalized tokens.
// Each scored token carries a polarity in [-1, 1] and a subjectivity in
// [0, 1]; the text score is the average over matched tokens. Negators
// flip and dampen the polarity of tokens in their scope; the scope
// extends through a coordinating "or"/"nor" so that both sides of an
// explicit denial ("don't feel sad or happy") are negated.

type lexEntry struct {
	polarity     float64
	subjectivity float64
}

// negationFactor dampens a flipped token: "not good" is weaker than "bad".
const negationFactor = -0.5

// negationScope is how many following tokens a negator covers.
const negationScope = 4

// intensifierBoost scales the next scored token after e.g. "very".
const intensifierBoost = 1.3

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "nothing": true,
	"dont": true, "doesnt": true, "didnt": true, "isnt": true,
	"wasnt": true, "cant": true, "couldnt": true, "wont": true,
	"without": true, "hardly": true, "barely": true, "neither": true,
}

var intensifiers = map[string]bool{
	"very": true, "really": true, "extremely": true, "deeply": true,
	"incredibly": true, "totally": true,
}

// Tokens that extend a live negation scope across a coordination.
var coordinators = map[string]bool{
	"or": true, "nor": true,
}

var lexicon = map[string]lexEntry{
	// positive
	"happy":        {0.8, 1.0},
	"glad":         {0.5, 1.0},
	"joy":          {0.8, 1.0},
	"joyful":       {0.8, 1.0},
	"good":         {0.7, 0.6},
	"great":        {0.8, 0.75},
	"wonderful":    {1.0, 1.0},
	"amazing":      {0.6, 0.9},
	"beautiful":    {0.85, 1.0},
	"nice":         {0.6, 0.9},
	"love":         {0.5, 0.6},
	"loved":        {0.5, 0.6},
	"excited":      {0.6, 0.8},
	"grateful":     {0.8, 0.9},
	"thankful":     {0.8, 0.9},
	"blessed":      {0.7, 0.9},
	"lucky":        {0.6, 0.8},
	"proud":        {0.7, 0.8},
	"hopeful":      {0.6, 0.9},
	"calm":         {0.3, 0.7},
	"peaceful":     {0.6, 0.8},
	"relaxed":      {0.4, 0.7},
	"content":      {0.5, 0.7},
	"warm":         {0.6, 0.6},
	"fun":          {0.5, 0.6},
	"enjoyed":      {0.5, 0.5},
	"laughed":      {0.5, 0.6},
	"smile":        {0.4, 0.6},
	"smiled":       {0.4, 0.6},
	"better":       {0.5, 0.5},
	"accomplished": {0.6, 0.8},
	"energized":    {0.5, 0.8},
	"refreshed":    {0.5, 0.7},

	// negative
	"sad":         {-0.5, 1.0},
	"unhappy":     {-0.6, 1.0},
	"miserable":   {-0.8, 1.0},
	"terrible":    {-1.0, 1.0},
	"awful":       {-1.0, 1.0},
	"bad":         {-0.7, 0.67},
	"worse":       {-0.6, 0.7},
	"angry":       {-0.5, 1.0},
	"upset":       {-0.5, 0.9},
	"worried":     {-0.5, 0.8},
	"worry":       {-0.5, 0.8},
	"anxious":     {-0.6, 0.9},
	"afraid":      {-0.6, 0.9},
	"scared":      {-0.6, 0.9},
	"stress":      {-0.6, 0.8},
	"stressed":    {-0.6, 0.8},
	"tired":       {-0.4, 0.7},
	"exhausted":   {-0.8, 0.9},
	"drained":     {-0.6, 0.8},
	"lonely":      {-0.6, 0.9},
	"alone":       {-0.3, 0.5},
	"hurt":        {-0.6, 0.8},
	"pain":        {-0.7, 0.8},
	"cry":         {-0.5, 0.8},
	"crying":      {-0.5, 0.8},
	"annoyed":     {-0.4, 0.8},
	"frustrated":  {-0.6, 0.8},
	"frustrating": {-0.6, 0.8},
	"overwhelmed": {-0.5, 0.9},
	"hate":        {-0.8, 0.9},
	"hated":       {-0.8, 0.9},
	"guilty":      {-0.6, 0.8},
	"ashamed":     {-0.7, 0.9},
	"hopeless":    {-0.8, 0.9},
	"fail":        {-0.6, 0.7},
	"failed":      {-0.6, 0.7},
	"failure":     {-0.6, 0.7},
	"heavy":       {-0.3, 0.5},
	"dark":        {-0.3, 0.6},
	"empty":       {-0.4, 0.6},
}

// score averages lexicon hits over the token stream. It returns zeros
// when no token matches.
func score(tokens []string) (polarity, subjectivity float64) {
	var (
		polSum   float64
		subjSum  float64
		matched  int
		negUntil = -1
		boosted  bool
	)

	for i, tok := range tokens {
		if negators[tok] {
			negUntil = i + negationScope
			continue
		}
		if coordinators[tok] && i <= negUntil {
			negUntil = i + negationScope
			continue
		}
		if intensifiers[tok] {
			boosted = true
			continue
		}

		e, ok := lexicon[tok]
		if !ok {
			boosted = false
			continue
		}

		pol := e.polarity
		if boosted {
			pol = clamp(pol * intensifierBoost)
			boosted = false
		}
		if i <= negUntil {
			pol *= negationFactor
		}

		polSum += pol
		subjSum += e.subjectivity
		matched++
	}

	if matched == 0 {
		return 0, 0
	}
	return clamp(polSum / float64(matched)), subjSum / float64(matched)
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
