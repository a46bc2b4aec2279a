package genome

import (
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Roll returns a random genome for the given seed. The live show rolls
// genomes in a separate service; this is for fixtures and the preview tool.
func Roll(seed int64) Genome {
	r := rand.New(rand.NewSource(seed))
	g := Genome{
		Abdomen:  rollPick(r, AbdomenRound, AbdomenOval, AbdomenPointed, AbdomenBulbous, AbdomenSegmented, AbdomenSac, AbdomenPlated, AbdomenTailed),
		Thorax:   rollPick(r, ThoraxCompact, ThoraxElongated, ThoraxBroad, ThoraxSegmented, ThoraxArmored),
		Head:     rollPick(r, HeadRound, HeadTriangular, HeadElongated, HeadBroad, HeadHorned),
		Eyes:     rollPick(r, EyeCompound, EyeSimple, EyeStalked, EyeMultiple, EyeSunken, EyeGlowing),
		Legs:     rollPick(r, LegInsect, LegSpider, LegMantis, LegGrasshopper, LegBeetle, LegStick, LegCentipede),
		Antenna:  rollPick(r, AntennaStraight, AntennaCurved, AntennaClubbed, AntennaFeathered, AntennaElbowed, AntennaNone),
		Weapon:   rollPick(r, WeaponMandibles, WeaponFangs, WeaponStinger, WeaponPincers, WeaponHorn, WeaponNone),
		Wings:    rollPick(r, WingFly, WingBeetle, WingDragonfly),
		Defense:  rollPick(r, DefenseNone, DefenseAgility, DefenseShell, DefenseToxic),
		Mobility: rollPick(r, MobilityGround, MobilityGround, MobilityWinged),
		Texture:  rollPick(r, TextureSmooth, TexturePlated, TextureRough, TextureSpotted, TextureStriped),

		Bulk:       r.Float32() * 100,
		Speed:      r.Float32() * 100,
		Size:       0.7 + r.Float32()*0.6,
		Hue:        r.Float32() * 360,
		Saturation: 0.4 + r.Float32()*0.5,
		Lightness:  0.3 + r.Float32()*0.4,
		AccentHue:  -1,
		Seed:       seed,
	}
	return g.Normalized()
}

func rollPick[T ~string](r *rand.Rand, choices ...T) T {
	return choices[r.Intn(len(choices))]
}

// LoadFile reads a YAML genome fixture. Missing fields default through
// Normalized; a read or parse error is returned as-is.
func LoadFile(path string) (Genome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Genome{}, err
	}
	var g Genome
	g.AccentHue = -1
	if err := yaml.Unmarshal(data, &g); err != nil {
		return Genome{}, err
	}
	return g.Normalized(), nil
}
