package preference

// Closed vocabularies for activity and destination tags, shared with the
// discovery service. Built once at process start and never mutated.

var validActivities = newVocab(
	"art-gallery-visit", "beach-relaxation", "bungee-jumping", "cable-car-ride",
	"camping", "casino-gaming", "camel-safari", "cathedral-tour", "cave-exploration",
	"city-walk", "climbing", "concert-attendance", "cooking-class", "cycling",
	"dance-lessons", "desert-trek", "diving", "elephant-sanctuary", "festival-attendance",
	"fine-dining", "fishing", "food-tour", "geyser-viewing", "glacier-hiking",
	"gondola-ride", "golf", "hiking", "horse-riding", "hot-air-balloon", "jazz-club",
	"kayaking", "meditation", "monument-visit", "mountain-climbing", "museum-visit",
	"music-festival", "night-market", "photography-tour", "pub-crawl", "quad-biking",
	"rock-climbing", "safari", "sailing", "scuba-diving", "shopping-tour", "skiing",
	"snorkeling", "spa-treatment", "street-food-tour", "sunrise-hike", "sunset-cruise",
	"tea-ceremony", "temple-visit", "theater-show", "trekking", "volcano-tour",
	"water-skiing", "waterfall-visit", "whale-watching", "wine-tasting", "zip-lining",
	"local-culture", "photography", "nature", "historical-sites", "culinary-experience",
	"nightlife", "relaxation", "adventure-sports",
)

var validDestinations = newVocab(
	"mountains", "beaches", "cities", "countryside", "deserts", "forests", "islands",
	"coastal-areas", "historic-sites", "adventure-zones", "cultural-hubs", "food-capitals",
	"tropical", "arctic", "temperate", "urban", "rural", "sacred-sites", "nature-reserves",
	"wildlife-sanctuaries", "wine-regions", "skiing-destinations", "diving-spots",
	"trekking-trails",
)

func newVocab(tags ...string) map[string]struct{} {
	vocab := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		vocab[tag] = struct{}{}
	}
	return vocab
}
