package catalog

import "math/rand"

// firstNames holds the per-race name pools used by character creation.
var firstNames = map[Race][]string{
	RaceHuman: {
		"Arthur", "Gawain", "Lancelot", "Percival", "Tristan", "Bedivere",
		"Galahad", "Mordred", "Gareth", "Kay", "Guinevere", "Morgan",
		"Elaine", "Isolde", "Morgause", "Lynette", "Viviane", "Nimue",
	},
	RaceElf: {
		"Legolas", "Thranduil", "Celeborn", "Elrond", "Gil-galad", "Haldir",
		"Glorfindel", "Galadriel", "Arwen", "Luthien", "Idril", "Aredhel",
	},
	RaceDwarf: {
		"Thorin", "Balin", "Dwalin", "Gimli", "Gloin", "Bombur", "Dain", "Thrain",
	},
	RaceUndead: {
		"Morgoth", "Sauron", "Saruman", "Gothmog", "Azog", "Nazgul", "Shelob",
	},
	RaceBeastfolk: {
		"Fenrir", "Raksha", "Akela", "Baloo", "Bagheera", "Shere", "Kaa", "Hathi",
	},
}

var titles = []string{
	"the Brave", "the Wise", "the Bold", "the Swift", "the Strong", "the Cunning",
	"the Noble", "the Just", "the Valiant", "the Fearless", "the Ancient", "the Eternal",
	"Dragonslayer", "Ironheart", "Lightbringer", "Shadowbane", "Stormbringer", "Flamewarden",
	"of the North", "of the Realm", "of Legend", "the Undying", "the Magnificent", "the Dread",
}

// RandomName composes a race-appropriate name and title. Unknown races draw
// from the human pool.
func RandomName(race Race, rng *rand.Rand) string {
	pool, ok := firstNames[race]
	if !ok {
		pool = firstNames[RaceHuman]
	}
	return pool[rng.Intn(len(pool))] + " " + titles[rng.Intn(len(titles))]
}
