package catalog

// Resource identifies one of the eight resource kinds. The set is closed;
// AllResources is the canonical iteration order.
type Resource string

const (
	ResourceGold          Resource = "gold"
	ResourceWood          Resource = "wood"
	ResourceStone         Resource = "stone"
	ResourceIron          Resource = "iron"
	ResourceMithril       Resource = "mithril"
	ResourceArcaneEssence Resource = "arcane_essence"
	ResourceDragonscale   Resource = "dragonscale"
	ResourceEtherealShard Resource = "ethereal_shard"
)

// AllResources lists every resource kind in display order.
var AllResources = []Resource{
	ResourceGold,
	ResourceWood,
	ResourceStone,
	ResourceIron,
	ResourceMithril,
	ResourceArcaneEssence,
	ResourceDragonscale,
	ResourceEtherealShard,
}

// Race identifies a playable race, fixed at character creation.
type Race string

const (
	RaceHuman     Race = "human"
	RaceElf       Race = "elf"
	RaceDwarf     Race = "dwarf"
	RaceUndead    Race = "undead"
	RaceBeastfolk Race = "beastfolk"
)

// Bonus is a set of multiplicative channel bonuses. A zero field means the
// bonus does not touch that channel; non-zero fields multiply into the
// running product for the channel.
type Bonus struct {
	Gold       float64 `json:"gold,omitempty"`
	Exp        float64 `json:"exp,omitempty"`
	Production float64 `json:"production,omitempty"`
	QuestSpeed float64 `json:"quest_speed,omitempty"`
	Attack     float64 `json:"attack,omitempty"`
	Defense    float64 `json:"defense,omitempty"`
	All        float64 `json:"all,omitempty"`

	// NoProductionPenalty exempts the holder from production penalties.
	// No penalty mechanic exists yet, so the flag is carried but inert.
	NoProductionPenalty bool `json:"no_production_penalty,omitempty"`
}

// RaceInfo describes a playable race and its permanent bonus.
type RaceInfo struct {
	Name        string
	Description string
	Bonus       Bonus
}

// Building is a production building definition.
type Building struct {
	ID             string
	Name           string
	Description    string
	BaseCost       map[Resource]float64
	CostMultiplier float64 // per-unit cost growth, > 1
	Produces       Resource
	BaseProduction float64 // output per second per unit owned
	UnlockLevel    int     // 0 = always available
}

// QuestReward is the reward bundle for a quest.
type QuestReward struct {
	Resources map[Resource]float64
	Exp       float64
}

// Quest is a standard quest definition. Exactly one of the requirement
// shapes is typically set: a resource bundle, a completion timer, or both a
// bundle and a kill count.
type Quest struct {
	ID           string
	Name         string
	Description  string
	Category     string
	Requirements map[Resource]float64
	// CompletionTime, when non-zero, is a waiting period in seconds: the
	// quest must be accepted first, and completes only after the period has
	// elapsed (shortened by the quest-speed channel).
	CompletionTime float64
	Rewards        QuestReward
	UnlockLevel    int // 0 = always unlocked
}

// TimeGated reports whether the quest has a waiting-period requirement.
func (q *Quest) TimeGated() bool { return q.CompletionTime > 0 }

// RequirementType enumerates achievement requirement shapes.
type RequirementType string

const (
	RequireResource      RequirementType = "resource"
	RequireBuilding      RequirementType = "building"
	RequireQuest         RequirementType = "quest"
	RequireLevel         RequirementType = "level"
	RequireAscension     RequirementType = "ascension"
	RequireTranscendence RequirementType = "transcendence"
	RequireChallenge     RequirementType = "challenge"
)

// AchievementRequirement is the unlock condition for an achievement.
type AchievementRequirement struct {
	Type     RequirementType
	Resource Resource // for RequireResource
	Amount   float64  // for RequireResource
	Count    int      // building/quest/ascension/transcendence/challenge counts
	Level    int      // for RequireLevel
}

// AchievementReward is granted once, on claim. Flat resources are credited
// immediately; the Bonus folds into multiplier aggregation for as long as
// the achievement stays claimed (forever).
type AchievementReward struct {
	Resources map[Resource]float64
	Bonus     Bonus
}

// Achievement is an achievement definition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Requirement AchievementRequirement
	Reward      AchievementReward
}

// Monster is a combat monster definition.
type Monster struct {
	ID          string
	Name        string
	HP          float64
	GoldMin     int
	GoldMax     int
	ExpMin      int
	ExpMax      int
	UnlockLevel int
}

// ChallengeReward is granted when a challenge tier is claimed.
type ChallengeReward struct {
	Gold      float64
	Exp       float64
	Equipment string // optional unique equipment id
}

// ChallengeTier is one step of a challenge chain.
type ChallengeTier struct {
	ID              string
	Name            string
	RequiredDefeats int
	Reward          ChallengeReward
}

// ChallengeChain is an ordered list of tiers claimed strictly in sequence.
type ChallengeChain struct {
	ID          string
	Name        string
	Description string
	UnlockLevel int // 0 = always accessible
	Tiers       []ChallengeTier
}

// Cadence is the scheduling tier for special quests.
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"

	// TierChallenge marks equipment granted by challenge-chain tiers rather
	// than the scheduler; it never appears in a cadence pool.
	TierChallenge Cadence = "challenge"
)

// Equipment is a special equipment definition. Ownership alone activates the
// bonus; there is no equip slot.
type Equipment struct {
	ID          string
	Name        string
	Description string
	Tier        Cadence
	Bonus       Bonus
}
