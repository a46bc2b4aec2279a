package genome

// Trait enumerations. Values arrive as plain strings from the stat-rolling
// service; unknown values fall back to the zero-index variant rather than
// failing, so a malformed genome still produces a drawable creature.

// AbdomenType selects the rear body mass shape.
type AbdomenType string

const (
	AbdomenRound     AbdomenType = "round"
	AbdomenOval      AbdomenType = "oval"
	AbdomenPointed   AbdomenType = "pointed"
	AbdomenBulbous   AbdomenType = "bulbous"
	AbdomenSegmented AbdomenType = "segmented"
	AbdomenSac       AbdomenType = "sac"
	AbdomenPlated    AbdomenType = "plated"
	AbdomenTailed    AbdomenType = "tailed"
)

// ThoraxType selects the mid body mass shape.
type ThoraxType string

const (
	ThoraxCompact   ThoraxType = "compact"
	ThoraxElongated ThoraxType = "elongated"
	ThoraxBroad     ThoraxType = "broad"
	ThoraxSegmented ThoraxType = "segmented"
	ThoraxArmored   ThoraxType = "armored"
)

// HeadType selects the skull mass and eye socket placement.
type HeadType string

const (
	HeadRound      HeadType = "round"
	HeadTriangular HeadType = "triangular"
	HeadElongated  HeadType = "elongated"
	HeadBroad      HeadType = "broad"
	HeadHorned     HeadType = "horned"
)

// EyeStyle selects the eye cluster built at the head's socket anchors.
type EyeStyle string

const (
	EyeCompound EyeStyle = "compound"
	EyeSimple   EyeStyle = "simple"
	EyeStalked  EyeStyle = "stalked"
	EyeMultiple EyeStyle = "multiple"
	EyeSunken   EyeStyle = "sunken"
	EyeGlowing  EyeStyle = "glowing"
)

// LegStyle selects the attachment layout and segment chain preset.
type LegStyle string

const (
	LegInsect      LegStyle = "insect"
	LegSpider      LegStyle = "spider"
	LegMantis      LegStyle = "mantis"
	LegGrasshopper LegStyle = "grasshopper"
	LegBeetle      LegStyle = "beetle"
	LegStick       LegStyle = "stick"
	LegCentipede   LegStyle = "centipede"
)

// AntennaStyle selects the antenna curve preset.
type AntennaStyle string

const (
	AntennaStraight  AntennaStyle = "straight"
	AntennaCurved    AntennaStyle = "curved"
	AntennaClubbed   AntennaStyle = "clubbed"
	AntennaFeathered AntennaStyle = "feathered"
	AntennaElbowed   AntennaStyle = "elbowed"
	AntennaNone      AntennaStyle = "none"
)

// WeaponType selects the attack apparatus.
type WeaponType string

const (
	WeaponMandibles WeaponType = "mandibles"
	WeaponFangs     WeaponType = "fangs"
	WeaponStinger   WeaponType = "stinger"
	WeaponPincers   WeaponType = "pincers"
	WeaponHorn      WeaponType = "horn"
	WeaponNone      WeaponType = "none"
)

// WingType selects the wing outline and vein decoration.
type WingType string

const (
	WingFly       WingType = "fly"
	WingBeetle    WingType = "beetle"
	WingDragonfly WingType = "dragonfly"
)

// Defense perturbs body dimensions or adds armor/pustule decoration.
type Defense string

const (
	DefenseNone    Defense = "none"
	DefenseAgility Defense = "agility"
	DefenseShell   Defense = "shell"
	DefenseToxic   Defense = "toxic"
)

// Mobility decides whether wings are built at all.
type Mobility string

const (
	MobilityGround Mobility = "ground"
	MobilityWinged Mobility = "winged"
)

// TextureStyle selects the surface synthesis procedure.
type TextureStyle string

const (
	TextureSmooth  TextureStyle = "smooth"
	TexturePlated  TextureStyle = "plated"
	TextureRough   TextureStyle = "rough"
	TextureSpotted TextureStyle = "spotted"
	TextureStriped TextureStyle = "striped"
)

// Genome is the immutable trait/stat record defining one creature. Built once
// at spawn; downstream stages read it and never write it.
type Genome struct {
	Abdomen  AbdomenType  `yaml:"abdomen"`
	Thorax   ThoraxType   `yaml:"thorax"`
	Head     HeadType     `yaml:"head"`
	Eyes     EyeStyle     `yaml:"eyes"`
	Legs     LegStyle     `yaml:"legs"`
	Antenna  AntennaStyle `yaml:"antenna"`
	Weapon   WeaponType   `yaml:"weapon"`
	Wings    WingType     `yaml:"wings"`
	Defense  Defense      `yaml:"defense"`
	Mobility Mobility     `yaml:"mobility"`
	Texture  TextureStyle `yaml:"texture"`

	// Bulk and Speed are stats in [0,100]; Size is a direct multiplier.
	Bulk  float32 `yaml:"bulk"`
	Speed float32 `yaml:"speed"`
	Size  float32 `yaml:"size"`

	// Hue in degrees [0,360), Saturation/Lightness in [0,1]. AccentHue < 0
	// means "use the complement" (Hue+180).
	Hue        float32 `yaml:"hue"`
	Saturation float32 `yaml:"saturation"`
	Lightness  float32 `yaml:"lightness"`
	AccentHue  float32 `yaml:"accent_hue"`

	// Seed drives surface synthesis and any per-creature randomness.
	Seed int64 `yaml:"seed"`
}

// BulkFactor maps the bulk stat to the body scale multiplier shared by every
// organ builder: 0.8 at bulk 0, 1.4 at bulk 100.
func (g Genome) BulkFactor() float32 {
	return 0.8 + g.Bulk/100*0.6
}

// SpeedFactor maps the speed stat to [0,1].
func (g Genome) SpeedFactor() float32 {
	return clamp(g.Speed/100, 0, 1)
}

// Normalized returns a copy with stats clamped to their valid ranges and
// empty/unknown traits replaced by defaults. Callers outside this package
// should normalize once at spawn and pass the result around.
func (g Genome) Normalized() Genome {
	g.Abdomen = pick(g.Abdomen, AbdomenRound, AbdomenOval, AbdomenPointed, AbdomenBulbous, AbdomenSegmented, AbdomenSac, AbdomenPlated, AbdomenTailed)
	g.Thorax = pick(g.Thorax, ThoraxCompact, ThoraxElongated, ThoraxBroad, ThoraxSegmented, ThoraxArmored)
	g.Head = pick(g.Head, HeadRound, HeadTriangular, HeadElongated, HeadBroad, HeadHorned)
	g.Eyes = pick(g.Eyes, EyeCompound, EyeSimple, EyeStalked, EyeMultiple, EyeSunken, EyeGlowing)
	g.Legs = pick(g.Legs, LegInsect, LegSpider, LegMantis, LegGrasshopper, LegBeetle, LegStick, LegCentipede)
	g.Antenna = pick(g.Antenna, AntennaStraight, AntennaCurved, AntennaClubbed, AntennaFeathered, AntennaElbowed, AntennaNone)
	g.Weapon = pick(g.Weapon, WeaponMandibles, WeaponFangs, WeaponStinger, WeaponPincers, WeaponHorn, WeaponNone)
	g.Wings = pick(g.Wings, WingFly, WingBeetle, WingDragonfly)
	g.Defense = pick(g.Defense, DefenseNone, DefenseAgility, DefenseShell, DefenseToxic)
	g.Mobility = pick(g.Mobility, MobilityGround, MobilityWinged)
	g.Texture = pick(g.Texture, TextureSmooth, TexturePlated, TextureRough, TextureSpotted, TextureStriped)

	g.Bulk = clamp(g.Bulk, 0, 100)
	g.Speed = clamp(g.Speed, 0, 100)
	if g.Size <= 0 {
		g.Size = 1
	}
	g.Hue = wrapHue(g.Hue)
	g.Saturation = clamp(g.Saturation, 0, 1)
	g.Lightness = clamp(g.Lightness, 0, 1)
	if g.AccentHue >= 0 {
		g.AccentHue = wrapHue(g.AccentHue)
	}
	return g
}

// pick returns v when it is one of valid, otherwise the first valid entry.
func pick[T ~string](v T, valid ...T) T {
	for _, c := range valid {
		if v == c {
			return v
		}
	}
	return valid[0]
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapHue(h float32) float32 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
