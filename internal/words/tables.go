package words

var defaultAdjectives = []string{
	"Amazing", "Awesome", "Brilliant", "Creative", "Dynamic", "Epic", "Fantastic", "Glorious",
	"Happy", "Incredible", "Joyful", "Keen", "Legendary", "Mighty", "Noble", "Outstanding",
	"Powerful", "Quick", "Radiant", "Strong", "Triumphant", "Ultimate", "Vibrant", "Wonderful",
	"Xenial", "Youthful", "Zealous", "Bold", "Clever", "Daring", "Elegant", "Fierce",
	"Graceful", "Heroic", "Inspiring", "Jovial", "Kind", "Lively", "Majestic", "Nimble",
	"Red", "Blue", "Green", "Golden", "Silver", "Purple", "Orange", "Pink", "Black", "White",
	"Crimson", "Azure", "Emerald", "Amber", "Violet", "Scarlet", "Turquoise", "Magenta",
	"Coral", "Indigo", "Jade", "Ruby", "Sapphire", "Pearl", "Diamond", "Crystal",
	"Sunny", "Stormy", "Misty", "Frosty", "Windy", "Cloudy", "Starry", "Lunar", "Solar",
	"Thunder", "Lightning", "Rainbow", "Aurora", "Cosmic", "Stellar", "Nebula",
	"Brave", "Calm", "Wise", "Swift", "Silent", "Loud", "Gentle", "Wild", "Free", "Pure",
	"Sharp", "Smooth", "Rough", "Soft", "Hard", "Light", "Dark", "Bright", "Dim",
	"Tiny", "Small", "Big", "Huge", "Giant", "Mini", "Mega", "Ultra", "Super", "Micro",
	"Massive", "Colossal", "Enormous", "Petite", "Compact", "Vast", "Immense",
	"Digital", "Cyber", "Virtual", "Quantum", "Neural", "Binary", "Pixel", "Neon",
	"Electric", "Magnetic", "Atomic", "Laser", "Plasma", "Holographic", "Synthetic",
}

var defaultNouns = []string{
	// animals
	"Tiger", "Eagle", "Dragon", "Phoenix", "Wolf", "Lion", "Falcon", "Shark", "Panther", "Hawk",
	"Bear", "Fox", "Raven", "Viper", "Cobra", "Jaguar", "Leopard", "Cheetah", "Rhino", "Elephant",
	"Dolphin", "Whale", "Octopus", "Spider", "Scorpion", "Butterfly", "Hummingbird", "Owl",
	"Penguin", "Kangaroo", "Koala", "Panda", "Zebra", "Giraffe", "Hippo", "Crocodile",
	// myth
	"Unicorn", "Griffin", "Kraken", "Hydra", "Chimera", "Sphinx", "Pegasus", "Cerberus",
	"Basilisk", "Gargoyle", "Banshee", "Valkyrie", "Minotaur", "Centaur", "Siren",
	"Warrior", "Knight", "Hunter", "Ranger", "Guardian", "Champion", "Hero", "Legend",
	"Master", "Sage", "Wizard", "Ninja", "Samurai", "Gladiator", "Viking", "Spartan",
	"Titan", "Giant", "Paladin", "Archer", "Assassin", "Berserker", "Crusader",
	// forces
	"Storm", "Thunder", "Lightning", "Fire", "Ice", "Wind", "Earth", "Water", "Shadow",
	"Light", "Darkness", "Flame", "Frost", "Blaze", "Tempest", "Cyclone", "Tsunami",
	"Avalanche", "Earthquake", "Volcano", "Meteor", "Comet", "Star", "Moon", "Sun",
	"Sword", "Shield", "Bow", "Arrow", "Spear", "Axe", "Hammer", "Blade", "Dagger",
	"Staff", "Wand", "Orb", "Crystal", "Gem", "Crown", "Throne", "Castle", "Tower",
	"Bridge", "Gate", "Key", "Lock", "Chain", "Ring", "Amulet", "Talisman",
	"Cyber", "Matrix", "Vector", "Pixel", "Byte", "Code", "Data", "Signal", "Circuit",
	"Engine", "Reactor", "Laser", "Plasma", "Quantum", "Neural", "Binary", "Digital",
	"Virtual", "Hologram", "Android", "Cyborg", "Robot", "Drone", "Satellite",
	// places
	"Mountain", "Valley", "River", "Ocean", "Forest", "Desert", "Jungle", "Meadow",
	"Canyon", "Cliff", "Peak", "Summit", "Ridge", "Grove", "Oasis", "Reef", "Island",
	"Glacier", "Tundra", "Prairie", "Savanna", "Rainforest", "Waterfall", "Geyser",
}

var defaultTechTerms = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Omega", "Prime", "Core", "Node", "Hub", "Link",
	"Sync", "Flow", "Stream", "Wave", "Pulse", "Spark", "Flash", "Bolt", "Surge", "Rush",
	"Boost", "Turbo", "Nitro", "Hyper", "Ultra", "Mega", "Giga", "Tera", "Nano", "Micro",
	"Proto", "Meta", "Neo", "Retro", "Vintage", "Modern", "Future", "Next", "Pro", "Max",
}

var defaultPrefixes = []string{
	"Mr", "Ms", "Dr", "Sir", "Lord", "Lady", "King", "Queen", "Prince", "Princess",
	"Captain", "Major", "General", "Admiral", "Chief", "Boss", "Master", "Expert",
	"Pro", "Elite", "Super", "Ultra", "Mega", "Hyper", "Alpha", "Beta", "Prime",
}

var defaultSuffixes = []string{
	"Jr", "Sr", "II", "III", "Pro", "Max", "Plus", "Elite", "Prime", "Alpha", "Beta",
	"X", "Z", "Neo", "Ultra", "Super", "Mega", "Turbo", "Nitro", "Boost", "Rush",
}

var defaultThemes = map[string]Theme{
	"fantasy": {
		Adjectives: []string{"Mystic", "Ancient", "Sacred", "Cursed", "Blessed", "Eternal", "Divine", "Infernal"},
		Nouns:      []string{"Dragon", "Phoenix", "Unicorn", "Griffin", "Wizard", "Knight", "Castle", "Sword"},
	},
	"tech": {
		Adjectives: []string{"Digital", "Cyber", "Quantum", "Neural", "Binary", "Virtual", "Atomic", "Laser"},
		Nouns:      []string{"Matrix", "Vector", "Pixel", "Code", "Signal", "Engine", "Reactor", "Circuit"},
	},
	"nature": {
		Adjectives: []string{"Wild", "Free", "Pure", "Natural", "Organic", "Fresh", "Green", "Blue"},
		Nouns:      []string{"Mountain", "River", "Forest", "Ocean", "Eagle", "Wolf", "Bear", "Tiger"},
	},
}
