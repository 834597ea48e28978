package parser

// Lookup tables are ordered slices: scan order decides which keyword wins
// when several match, and tag insertion order follows it.

// keywordCategory maps a single token onto a task category.
type keywordCategory struct {
	keyword  string
	category string
}

var (
	urgentKeywords = []string{"urgent", "asap", "immediately", "critical", "emergency"}
	highKeywords   = []string{"important", "high priority", "soon", "quickly"}
	lowKeywords    = []string{"someday", "whenever", "no rush", "low priority", "eventually"}
)

// placeKeywords are place types that produce LOCATION tags.
var placeKeywords = []string{
	"supermarket",
	"grocery",
	"store",
	"shop",
	"mall",
	"market",
	"nursery",
	"garden center",
	"hospital",
	"clinic",
	"pharmacy",
	"bank",
	"atm",
	"restaurant",
	"cafe",
	"gym",
	"metro",
	"station",
	"airport",
	"office",
	"school",
	"college",
	"university",
	"temple",
	"church",
	"mosque",
	"park",
	"hotel",
	"petrol",
	"gas station",
}

// cityKeywords is the gazetteer of cities and neighbourhoods.
var cityKeywords = []string{
	"bangalore", "bengaluru", "mumbai", "delhi", "chennai", "hyderabad",
	"kolkata", "pune", "ahmedabad", "jaipur", "lucknow", "kochi",
	"goa", "mysore", "mangalore", "coimbatore", "chandigarh",
	"new york", "london", "tokyo", "dubai", "singapore",
	"jayanagar", "koramangala", "indiranagar", "whitefield", "hsr layout",
}

var categoryKeywords = []keywordCategory{
	{"car", "vehicle"},
	{"vehicle", "vehicle"},
	{"bike", "vehicle"},
	{"service", "vehicle"},
	{"brake", "vehicle"},
	{"engine", "vehicle"},
	{"tire", "vehicle"},
	{"tyre", "vehicle"},
	{"fuel", "vehicle"},
	{"petrol", "vehicle"},
	{"diesel", "vehicle"},
	{"buy", "shopping"},
	{"purchase", "shopping"},
	{"get", "shopping"},
	{"order", "shopping"},
	{"food", "food"},
	{"restaurant", "food"},
	{"eat", "food"},
	{"cook", "food"},
	{"recipe", "food"},
	{"doctor", "health"},
	{"medicine", "health"},
	{"hospital", "health"},
	{"health", "health"},
	{"fitness", "health"},
	{"exercise", "health"},
	{"workout", "health"},
	{"gym", "health"},
	{"run", "health"},
	{"yoga", "health"},
	{"pay", "finance"},
	{"bill", "finance"},
	{"rent", "finance"},
	{"insurance", "finance"},
	{"tax", "finance"},
	{"investment", "finance"},
	{"call", "communication"},
	{"email", "communication"},
	{"meet", "communication"},
	{"meeting", "work"},
	{"deadline", "work"},
	{"project", "work"},
	{"travel", "travel"},
	{"trip", "travel"},
	{"vacation", "travel"},
	{"holiday", "travel"},
	{"flight", "travel"},
	{"hotel", "travel"},
	{"booking", "travel"},
	{"passport", "travel"},
	{"visa", "travel"},
	{"learn", "learning"},
	{"study", "learning"},
	{"course", "learning"},
	{"read", "learning"},
	{"book", "learning"},
	{"plant", "home"},
	{"garden", "home"},
	{"clean", "home"},
	{"repair", "home"},
	{"fix", "home"},
	{"compost", "home"},
}

// categoryIndex is the exact-token view of categoryKeywords.
var categoryIndex = func() map[string]string {
	index := make(map[string]string, len(categoryKeywords))
	for _, kc := range categoryKeywords {
		index[kc.keyword] = kc.category
	}
	return index
}()

var goalKeywords = []string{
	"start", "begin", "plan", "goal", "routine", "habit",
	"from next", "onwards", "long term", "this year", "this month",
	"resolution", "target", "achieve", "improve", "build",
}

// Categories returns the distinct task categories the parser can assign, in table order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, kc := range categoryKeywords {
		if !seen[kc.category] {
			seen[kc.category] = true
			out = append(out, kc.category)
		}
	}
	return out
}

// CategoryFor returns the category for an exact lower-case token.
func CategoryFor(token string) (string, bool) {
	category, ok := categoryIndex[token]
	return category, ok
}
